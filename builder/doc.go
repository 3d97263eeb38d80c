// Package builder generates deterministic core.Graph[int] fixtures: paths,
// cycles, stars, complete graphs, grids and seeded random graphs.
//
// Compose constructors in one call:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Path(10),
//	    builder.RandomSparse(10, 0.1),
//	)
//
// Vertices are the ints 0..n-1; later constructors reuse existing vertices
// instead of re-adding them, so earlier edges survive.
package builder
