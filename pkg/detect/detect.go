package detect

import (
	"strconv"

	"github.com/matzehuels/linkviz/pkg/list"
)

// Option configures [Run].
type Option func(*config)

type config struct {
	palette Palette
}

// WithPalette sets the colors assigned to the head and the other nodes.
// Empty fields keep their defaults.
func WithPalette(p Palette) Option {
	return func(c *config) {
		if p.Head != "" {
			c.palette.Head = p.Head
		}
		if p.Node != "" {
			c.palette.Node = p.Node
		}
	}
}

// Run traverses s once and returns its visit record and anomaly report.
//
// Run only reads from s. It calls Next and Value exclusively on references
// that s reports as live. See the package documentation for the traversal
// rules and termination guarantee.
func Run(s list.Store, opts ...Option) *Report {
	cfg := config{palette: DefaultPalette}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Report{
		Palette:  cfg.palette,
		HasCycle: HasCycle(s),
		index:    make(map[list.Ref]int),
	}

	head := s.Head()
	if head != list.Nil && !s.Live(head) {
		r.Anomalies = append(r.Anomalies, Anomaly{Kind: KindDangling, Target: head})
		return r
	}

	for curr := head; curr != list.Nil; {
		value, hasValue := s.Value(curr)

		if r.Visited(curr) {
			r.HasCycle = true
			r.record(KindCycle, curr, curr, value, hasValue)
			break
		}

		next := s.Next(curr)
		i := len(r.Visits)
		v := Visit{
			Ref:      curr,
			Index:    i,
			Label:    "n" + strconv.Itoa(i),
			Value:    value,
			HasValue: hasValue,
			Color:    cfg.palette.Node,
			Head:     i == 0,
			Next:     next,
		}
		if v.Head {
			v.Color = cfg.palette.Head
		}
		r.index[curr] = i
		r.Visits = append(r.Visits, v)

		if list.IsSuspicious(s, next) {
			r.record(KindSuspicious, curr, next, value, hasValue)
		}
		if next == curr {
			r.record(KindSelfLoop, curr, next, value, hasValue)
		}
		if next != list.Nil && !s.Live(next) {
			r.record(KindDangling, curr, next, value, hasValue)
			break
		}

		curr = next
	}

	return r
}

func (r *Report) record(k Kind, at, target list.Ref, value string, hasValue bool) {
	r.Anomalies = append(r.Anomalies, Anomaly{
		Kind:     k,
		At:       at,
		Target:   target,
		Value:    value,
		HasValue: hasValue,
	})
}
