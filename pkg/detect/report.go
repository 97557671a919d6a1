package detect

import (
	"fmt"

	"github.com/matzehuels/linkviz/pkg/list"
)

// Kind classifies an anomaly.
type Kind int

const (
	KindCycle Kind = iota
	KindSelfLoop
	KindSuspicious
	KindDangling
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCycle:
		return "cycle"
	case KindSelfLoop:
		return "self-loop"
	case KindSuspicious:
		return "suspicious"
	case KindDangling:
		return "dangling"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Anomaly is one structural issue found during traversal.
type Anomaly struct {
	Kind Kind

	// At is the node the anomaly was observed on. It is Nil only for a
	// dangling head reference.
	At list.Ref

	// Target is the forward reference involved, when there is one.
	Target list.Ref

	Value    string
	HasValue bool
}

// Message returns the human-readable description shown in the error
// cluster. Without a readable value the message names the node generically.
func (a Anomaly) Message() string {
	var prefix string
	switch a.Kind {
	case KindCycle:
		if a.HasValue {
			return "Cycle detected at node with value: " + a.Value
		}
		return "Cycle detected at node"
	case KindSelfLoop:
		prefix = "Self-loop at node"
	case KindSuspicious:
		prefix = "Suspicious pointer value at node"
	case KindDangling:
		if a.At == list.Nil {
			return "Dangling head reference: " + a.Target.String()
		}
		prefix = "Dangling pointer from node"
	default:
		prefix = a.Kind.String() + " at node"
	}
	if a.HasValue {
		return prefix + ": " + a.Value
	}
	return prefix
}

// Palette holds the fill colors assigned to visited nodes.
type Palette struct {
	Head string
	Node string
}

// DefaultPalette colors the head green and every other node light blue.
var DefaultPalette = Palette{Head: "green", Node: "lightblue"}

// Visit is the bookkeeping kept for one visited node.
type Visit struct {
	Ref      list.Ref
	Index    int    // visitation order, 0 for the head
	Label    string // "n<Index>"
	Value    string
	HasValue bool
	Color    string
	Head     bool
	Next     list.Ref // forward reference as read from the store
}

// Report is the result of one traversal.
type Report struct {
	Visits    []Visit
	Anomalies []Anomaly
	HasCycle  bool
	Palette   Palette

	index map[list.Ref]int
}

// Len returns the number of visited nodes.
func (r *Report) Len() int { return len(r.Visits) }

// Empty reports whether the traversal reached no node at all.
func (r *Report) Empty() bool { return len(r.Visits) == 0 }

// Visited reports whether ref was reached by the traversal.
func (r *Report) Visited(ref list.Ref) bool {
	_, ok := r.index[ref]
	return ok
}

// Lookup returns the visit recorded for ref.
func (r *Report) Lookup(ref list.Ref) (Visit, bool) {
	i, ok := r.index[ref]
	if !ok {
		return Visit{}, false
	}
	return r.Visits[i], true
}

// Messages returns the anomaly descriptions in discovery order.
func (r *Report) Messages() []string {
	msgs := make([]string, len(r.Anomalies))
	for i, a := range r.Anomalies {
		msgs[i] = a.Message()
	}
	return msgs
}

// Count returns how many anomalies of kind k were recorded.
func (r *Report) Count(k Kind) int {
	n := 0
	for _, a := range r.Anomalies {
		if a.Kind == k {
			n++
		}
	}
	return n
}

// Healthy reports whether the list is a proper Nil-terminated chain.
func (r *Report) Healthy() bool {
	return !r.HasCycle && len(r.Anomalies) == 0
}
