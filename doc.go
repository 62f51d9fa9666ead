// Package disjoint implements a disjoint-set (union-find) data structure
// for partitioning a dense range of integer elements into disjoint groups.
//
// [Set] is the core primitive: a compressed forest with path compression and
// union by size, giving effectively constant amortized Find and Join. A Set
// of length n tracks the elements 0 through n-1 and grows only by appending
// new singleton elements.
//
// Basic usage:
//
//	s := disjoint.NewSet(5)
//	s.Join(0, 1)
//	s.Join(3, 4)
//	joined, _ := s.Joined(0, 1) // true
//	groups := s.Sets()          // [[0 1] [2] [3 4]]
//
// [SetVec] pairs a Set with a slice of values, one per element, and keeps the
// two in lock-step: the only way to grow either is Push, which appends a value
// and a matching singleton together. Use it when each element carries data:
//
//	v := disjoint.SetVecOf("a", "b", "c")
//	v.Join(0, 2)
//	groups := v.Sets() // [[a c] [b]]
//
// # Errors
//
// Every operation that takes an element index validates it before touching any
// state and reports [ErrIndexOutOfRange] for indices outside [0, Len()). A
// failed call leaves the structure unchanged. No other error is produced.
//
// # Graph helpers
//
// [SpanningForest] and [Components] apply the Set to gonum graphs: Kruskal's
// minimum spanning forest and connected-components grouping, the two classic
// union-find driven graph algorithms.
//
// The package performs no synchronization. A Set or SetVec must be owned by a
// single goroutine during any call; note that Find compresses paths internally,
// so even logically read-only queries mutate shared state.
package disjoint
