package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/internal/graphfile"
)

// app carries flag values and the state built from them before a
// subcommand runs.
type app struct {
	graphPath string
	start     string
	logLevel  string

	logger zerolog.Logger
	doc    *graphfile.Document
	graph  *core.Graph[string]
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "graphsearch",
		Short: "Run BFS, DFS and shortest-path searches on an undirected graph",
		Long: `graphsearch loads an undirected graph (the built-in sample unless --graph
is given) and prints traversal results from the --start vertex.

Without a subcommand it prints the shortest path to every vertex, then the
DFS and BFS visit orders.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), a.graph, a.doc.VertexIDs(), a.start)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.graphPath, "graph", "g", "", "YAML graph document (default: built-in sample)")
	flags.StringVarP(&a.start, "start", "s", "1", "start vertex")
	flags.StringVar(&a.logLevel, "log-level", defaultLevel(), "log level (trace, debug, info, warn, error); env "+logLevelEnv)

	bfsCmd := &cobra.Command{
		Use:   "bfs",
		Short: "Print the breadth-first visit order and reachable set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTraversal(cmd.OutOrStdout(), a.graph, a.start, breadthFirst)
		},
	}
	dfsCmd := &cobra.Command{
		Use:   "dfs",
		Short: "Print the depth-first visit order and reachable set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTraversal(cmd.OutOrStdout(), a.graph, a.start, depthFirst)
		},
	}
	pathCmd := &cobra.Command{
		Use:   "path [target...]",
		Short: "Print shortest paths from the start vertex (default: to every vertex)",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := args
			if len(targets) == 0 {
				targets = a.doc.VertexIDs()
			}
			return runPaths(cmd.OutOrStdout(), a.graph, a.start, targets)
		},
	}
	rootCmd.AddCommand(bfsCmd, dfsCmd, pathCmd)

	return rootCmd
}

// setup configures logging, then loads and builds the graph.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	if a.graphPath == "" {
		a.doc = graphfile.Sample()
	} else if a.doc, err = graphfile.Load(a.graphPath); err != nil {
		return err
	}

	for _, e := range a.doc.SkippedEdges() {
		a.logger.Info().Str("u", string(e[0])).Str("v", string(e[1])).
			Msg("edge names an unknown vertex; skipped")
	}
	a.graph = a.doc.Graph()
	a.logger.Debug().
		Str("source", sourceName(a.graphPath)).
		Int("vertices", a.graph.VertexCount()).
		Int("edges", a.graph.EdgeCount()).
		Msg("graph loaded")

	if !a.graph.HasVertex(a.start) {
		a.logger.Warn().Str("start", a.start).Msg("start vertex is not in the graph; nothing is reachable")
	}

	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "sample"
	}

	return path
}
