// Package bfs provides breadth-first traversal over a core.Graph and the
// connected-component split built on it.
//
// Walk explores vertices in non-decreasing hop distance from a start
// vertex and returns a Result with the visit Order, hop Depth and the
// Parent link of every reached vertex. Edge weights are ignored: in a
// co-occurrence graph the weight is the shared value, not a distance.
//
// Components partitions every vertex into connected groups (column
// clusters), each group listed in visit order and the groups ordered by
// their first vertex in core insertion order.
//
// Determinism
//
//	core.Graph.NeighborIDs follows vertex insertion order and Walk enqueues
//	neighbors in that order, so traversals are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeued vertex.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNoPath               from Result.PathTo for an unreached vertex.
//   - context errors.
package bfs
