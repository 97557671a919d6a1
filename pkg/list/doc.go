// Package list defines node identity and the read-only list contract
// consumed by the anomaly detector.
//
// # Identity
//
// Nodes are identified by an opaque [Ref], never by their value. Two
// nodes holding equal values are distinct entries. [Nil] is the zero Ref
// and stands for "no successor".
//
// # Stores
//
// A [Store] is owned by whoever built the list. It answers four questions:
// where the list starts, where a live node points, what a live node holds,
// and whether a reference names a currently allocated node. The detector
// only calls Next and Value on references that Live accepted.
//
// Two stores are provided:
//
//   - [Arena]: slot-allocated nodes with explicit Free, so use-after-free
//     and garbage references can be modelled deterministically.
//   - [Chain]: an adapter over ordinary pointer-linked Go nodes, with
//     identity taken from pointer equality.
//
// # Example
//
//	a := list.FromValues(10, 20, 30)
//	report := detect.Run(a)
package list
