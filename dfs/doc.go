// Package dfs implements depth-first search traversal on a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...) explores as far as possible along each branch
//     before backtracking and returns the Set of reachable vertices.
//   - WithOnVisit installs a pre-order hook fired once per vertex.
//
// BFS and DFS from the same start always return the same Set; only the
// order in which the hook fires differs.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the stack (duplicate pushes) and the visited set.
//
// Errors:
//
//   - None. A start vertex that is not in the graph yields an empty Set.
package dfs
