// File: methods_clone.go
// Role: Deep copy of a graph.
// Concurrency:
//   - Read lock on the source for the whole snapshot.

package core

// Clone returns a deep copy of g: vertices, insertion order and neighbor
// sets (including any one-sided adjacency left by AddVertex resets).
// Mutating the clone never affects g.
//
// Complexity: O(V + E)
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[T](WithCapacity(len(g.order)))
	for _, u := range g.order {
		src := g.vertices[u]
		dst := newNeighborSet[T]()
		for _, v := range src.order {
			dst.add(v)
		}
		clone.vertices[u] = dst
		clone.index[u] = len(clone.order)
		clone.order = append(clone.order, u)
	}

	return clone
}
