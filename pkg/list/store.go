package list

import "fmt"

// Ref is an opaque node identity.
type Ref uint64

// Nil is the reference meaning "no successor".
const Nil Ref = 0

// String formats the reference as a hex address, e.g. "0x2a".
func (r Ref) String() string {
	return fmt.Sprintf("0x%x", uint64(r))
}

// Store is the read-only contract a list owner provides to the detector.
type Store interface {
	// Head returns the first node, or Nil for an empty list.
	Head() Ref

	// Next returns the forward reference of a live node.
	Next(r Ref) Ref

	// Value returns the printable value of a live node. The boolean is
	// false when the node's value cannot be read.
	Value(r Ref) (string, bool)

	// Live reports whether r names a currently allocated node.
	Live(r Ref) bool
}

// Suspector is implemented by stores that can flag references which look
// corrupt rather than merely stale (for example, never allocated at all).
type Suspector interface {
	Suspicious(r Ref) bool
}

// IsSuspicious reports whether s flags r as suspicious. Stores that do not
// implement [Suspector] never flag anything.
func IsSuspicious(s Store, r Ref) bool {
	if r == Nil {
		return false
	}
	sp, ok := s.(Suspector)
	return ok && sp.Suspicious(r)
}

// Step follows one forward link without dereferencing Nil or a reference
// the store does not consider live. Both yield Nil.
func Step(s Store, r Ref) Ref {
	if r == Nil || !s.Live(r) {
		return Nil
	}
	return s.Next(r)
}
