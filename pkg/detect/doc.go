// Package detect walks a singly-linked list once and classifies its
// structural anomalies.
//
// # Algorithm
//
// [Run] performs two bounded passes over a [list.Store]:
//
//  1. A slow/fast pointer race from the head sets [Report.HasCycle].
//  2. A linear pass assigns each distinct identity a label ("n0", "n1", ...)
//     and a color, and records anomalies in discovery order.
//
// The linear pass stops at the first of three terminal states: the end of
// the list (Nil), a revisit of an identity already seen (a cycle), or a
// forward reference the store does not consider live (dangling). Every
// distinct identity is visited at most once, so Run terminates on any input
// in at most n+1 iterations.
//
// # Anomalies
//
//   - [KindCycle]: the pass reached an already visited node.
//   - [KindSelfLoop]: a node's successor is itself.
//   - [KindSuspicious]: the store flags the successor as corrupt (see
//     [list.Suspector]).
//   - [KindDangling]: the successor, or the head, is not live.
//
// Anomalies never abort the walk early except where continuing would mean
// revisiting a node or dereferencing a dead reference.
//
// # Values
//
// When a node's value cannot be read, messages degrade to the generic form
// ("Cycle detected at node") instead of failing.
//
// # Concurrency
//
// Run keeps all bookkeeping local to the call. Concurrent calls on
// independent stores are safe; calls on the same store are safe only if the
// store itself tolerates concurrent reads.
package detect
