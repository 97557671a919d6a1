package list

// Linked is implemented by pointer-based list nodes. P is usually the
// pointer type itself, e.g. *Node with a method Successor() *Node.
type Linked[P any] interface {
	comparable
	Successor() P
}

// Chain adapts an ordinary pointer-linked list to [Store].
//
// Refs are handed out lazily in the order nodes are first reached, keyed by
// pointer identity. Values are read with [Printable] on the node itself, so
// a node type with a String method shows its value and one without is
// rendered as unreadable.
type Chain[P Linked[P]] struct {
	head  P
	refs  map[P]Ref
	nodes []P
	live  func(P) bool
}

// ChainOption configures a [Chain].
type ChainOption[P Linked[P]] func(*Chain[P])

// WithLiveness installs a validity check, typically backed by an
// allocation registry. Nodes it rejects are treated as dangling and are
// never asked for their successor or value.
func WithLiveness[P Linked[P]](live func(P) bool) ChainOption[P] {
	return func(c *Chain[P]) {
		c.live = live
	}
}

// NewChain wraps the list starting at head. A zero head is an empty list.
func NewChain[P Linked[P]](head P, opts ...ChainOption[P]) *Chain[P] {
	c := &Chain[P]{head: head, refs: make(map[P]Ref)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RefOf returns the identity assigned to p, assigning one if needed.
func (c *Chain[P]) RefOf(p P) Ref {
	var zero P
	if p == zero {
		return Nil
	}
	if r, ok := c.refs[p]; ok {
		return r
	}
	c.nodes = append(c.nodes, p)
	r := Ref(len(c.nodes))
	c.refs[p] = r
	return r
}

// Head returns the identity of the head node.
func (c *Chain[P]) Head() Ref { return c.RefOf(c.head) }

// Next returns the identity of r's successor.
func (c *Chain[P]) Next(r Ref) Ref {
	if !c.Live(r) {
		return Nil
	}
	return c.RefOf(c.nodes[r-1].Successor())
}

// Value returns the printable form of the node behind r.
func (c *Chain[P]) Value(r Ref) (string, bool) {
	if !c.Live(r) {
		return "", false
	}
	return Printable(c.nodes[r-1])
}

// Live reports whether r was handed out by this chain and, when a liveness
// check is installed, whether it still accepts the node.
func (c *Chain[P]) Live(r Ref) bool {
	if r == Nil || uint64(r) > uint64(len(c.nodes)) {
		return false
	}
	return c.live == nil || c.live(c.nodes[r-1])
}
