package list

import (
	"errors"
	"fmt"
)

// ErrNotLive is returned when an operation needs a live node but the
// reference names a freed or never-allocated slot.
var ErrNotLive = errors.New("reference is not live")

type slot[T any] struct {
	value T
	next  Ref
	live  bool
}

// Arena is a slot-allocated singly-linked list store. The Ref of a node is
// its slot index plus one, so Nil never names a slot.
//
// Links are stored verbatim: SetNext accepts any target, including freed
// slots and refs past the end of the arena, which is how corrupt lists are
// modelled. Arena is not safe for concurrent mutation.
type Arena[T any] struct {
	slots []slot[T]
	head  Ref
}

// NewArena returns an empty arena with no head.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// FromValues builds a proper Nil-terminated chain holding vals in order.
// The first value becomes the head.
func FromValues[T any](vals ...T) *Arena[T] {
	a := NewArena[T]()
	var prev Ref
	for _, v := range vals {
		r := a.Alloc(v)
		if prev == Nil {
			a.head = r
		} else {
			a.slots[prev-1].next = r
		}
		prev = r
	}
	return a
}

// Alloc places v in a new slot with no successor and returns its Ref.
func (a *Arena[T]) Alloc(v T) Ref {
	a.slots = append(a.slots, slot[T]{value: v, live: true})
	return Ref(len(a.slots))
}

// Free marks r as deallocated. Links pointing at it are left in place and
// become dangling. Freeing a slot that is not live returns [ErrNotLive].
func (a *Arena[T]) Free(r Ref) error {
	if !a.Live(r) {
		return fmt.Errorf("free %s: %w", r, ErrNotLive)
	}
	s := &a.slots[r-1]
	var zero T
	s.value = zero
	s.live = false
	return nil
}

// SetNext points from at to. The source must be live; the target is not
// checked.
func (a *Arena[T]) SetNext(from, to Ref) error {
	if !a.Live(from) {
		return fmt.Errorf("link %s -> %s: %w", from, to, ErrNotLive)
	}
	a.slots[from-1].next = to
	return nil
}

// SetHead sets the first node of the list. Any Ref is accepted.
func (a *Arena[T]) SetHead(r Ref) {
	a.head = r
}

// Get returns the payload of a live node.
func (a *Arena[T]) Get(r Ref) (T, bool) {
	if !a.Live(r) {
		var zero T
		return zero, false
	}
	return a.slots[r-1].value, true
}

// Len returns the number of slots ever allocated, live or freed.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// Refs returns every live Ref in allocation order.
func (a *Arena[T]) Refs() []Ref {
	refs := make([]Ref, 0, len(a.slots))
	for i, s := range a.slots {
		if s.live {
			refs = append(refs, Ref(i+1))
		}
	}
	return refs
}

// Head returns the first node of the list.
func (a *Arena[T]) Head() Ref { return a.head }

// Next returns the stored successor of r, or Nil when r is not live.
func (a *Arena[T]) Next(r Ref) Ref {
	if !a.Live(r) {
		return Nil
	}
	return a.slots[r-1].next
}

// Value returns the printable form of r's payload.
func (a *Arena[T]) Value(r Ref) (string, bool) {
	v, ok := a.Get(r)
	if !ok {
		return "", false
	}
	return Printable(v)
}

// Live reports whether r names an allocated, not yet freed slot.
func (a *Arena[T]) Live(r Ref) bool {
	return r != Nil && uint64(r) <= uint64(len(a.slots)) && a.slots[r-1].live
}

// Suspicious reports refs past the end of the arena: values that were
// never handed out by Alloc and can only come from corruption.
func (a *Arena[T]) Suspicious(r Ref) bool {
	return r != Nil && uint64(r) > uint64(len(a.slots))
}

var (
	_ Store     = (*Arena[int])(nil)
	_ Suspector = (*Arena[int])(nil)
)
