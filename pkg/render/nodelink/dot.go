package nodelink

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/linkviz/pkg/detect"
	"github.com/matzehuels/linkviz/pkg/list"
)

// DefaultTitle is the graph label used when Options.Title is empty.
const DefaultTitle = "Linked List"

// Options configures DOT generation.
type Options struct {
	// Title is the graph label drawn above the diagram.
	Title string

	// Detailed adds each node's reference to its record label.
	Detailed bool
}

// EdgeKind classifies the forward link of a visited node.
type EdgeKind int

const (
	// EdgeNormal points at a node visited later in the walk.
	EdgeNormal EdgeKind = iota
	// EdgeCycle points back at a node visited at or before its source.
	EdgeCycle
	// EdgeDangling points at a reference the walk never reached.
	EdgeDangling
	// EdgeTerminal is a Nil successor.
	EdgeTerminal
)

// String returns the lowercase name of the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeNormal:
		return "normal"
	case EdgeCycle:
		return "cycle"
	case EdgeDangling:
		return "dangling"
	case EdgeTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("edge(%d)", int(k))
	}
}

// Classify returns the edge class of v's forward link.
//
// A link back to a node whose visitation index is not greater than the
// source's is the edge that closes a cycle. This is an order-based
// approximation: in merged or multi-entry cyclic structures it marks the
// edge that closed the walk, not necessarily a topologically unique one.
func Classify(r *detect.Report, v detect.Visit) EdgeKind {
	if v.Next == list.Nil {
		return EdgeTerminal
	}
	target, ok := r.Lookup(v.Next)
	if !ok {
		return EdgeDangling
	}
	if target.Index <= v.Index {
		return EdgeCycle
	}
	return EdgeNormal
}

// ToDOT converts a traversal report to Graphviz DOT.
//
// The output contains one record node per visit, one edge per visit, a
// placeholder node for every Nil or dangling successor, an error cluster
// when anomalies were found, and a legend. The result can be rendered with
// [Render] or written to disk for an external dot binary.
func ToDOT(r *detect.Report, opts Options) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	palette := r.Palette
	if palette == (detect.Palette{}) {
		palette = detect.DefaultPalette
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  node [shape=record, style=filled, fillcolor=%s, fontname=\"Arial\"];\n", quote(palette.Node))
	buf.WriteString("  edge [fontname=\"Arial\", fontsize=10];\n")
	fmt.Fprintf(&buf, "  label=%s;\n", quote(title))
	buf.WriteString("  labelloc=t;\n")

	if !r.Empty() {
		buf.WriteString("\n")
		for _, v := range r.Visits {
			fmt.Fprintf(&buf, "  %s [label=\"%s\", fillcolor=%s];\n", v.Label, fmtRecord(v, opts.Detailed), quote(v.Color))
		}

		buf.WriteString("\n")
		for _, v := range r.Visits {
			writeEdge(&buf, r, v)
		}
	}

	if len(r.Anomalies) > 0 {
		buf.WriteString("\n")
		buf.WriteString("  subgraph cluster_errors {\n")
		buf.WriteString("    label=\"DETECTED ERRORS\";\n")
		buf.WriteString("    style=filled;\n")
		buf.WriteString("    fillcolor=red;\n")
		buf.WriteString("    fontcolor=white;\n")
		buf.WriteString("    fontsize=12;\n")
		for i, a := range r.Anomalies {
			fmt.Fprintf(&buf, "    error%d [label=%s, shape=note, fillcolor=white, fontcolor=red];\n", i, quote(a.Message()))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	buf.WriteString("  subgraph cluster_legend {\n")
	buf.WriteString("    label=\"Legend\";\n")
	buf.WriteString("    style=dashed;\n")
	fmt.Fprintf(&buf, "    legend_head [label=\"Head\", fillcolor=%s, shape=record];\n", quote(palette.Head))
	fmt.Fprintf(&buf, "    legend_normal [label=\"Normal Node\", fillcolor=%s, shape=record];\n", quote(palette.Node))
	buf.WriteString("    legend_dangling [label=\"Dangling Ptr\", fillcolor=orange, shape=box];\n")
	buf.WriteString("    legend_null [label=\"NULL\", fillcolor=lightgrey, shape=box, style=dashed];\n")
	if r.HasCycle || len(r.Anomalies) > 0 {
		buf.WriteString("    legend_cycle [label=\"Cycle/Error\", fillcolor=red, shape=record];\n")
	}
	buf.WriteString("  }\n")

	buf.WriteString("}\n")
	return buf.String()
}

// WriteDOT writes the DOT for r to w in a single write.
func WriteDOT(w io.Writer, r *detect.Report, opts Options) error {
	_, err := io.WriteString(w, ToDOT(r, opts))
	return err
}

func writeEdge(buf *bytes.Buffer, r *detect.Report, v detect.Visit) {
	switch Classify(r, v) {
	case EdgeNormal:
		target, _ := r.Lookup(v.Next)
		fmt.Fprintf(buf, "  %s:next -> %s;\n", v.Label, target.Label)
	case EdgeCycle:
		target, _ := r.Lookup(v.Next)
		fmt.Fprintf(buf, "  %s:next -> %s [color=red, style=dashed, label=\"cycle\"];\n", v.Label, target.Label)
	case EdgeDangling:
		id := "dangling_" + v.Label
		fmt.Fprintf(buf, "  %s [label=\"DANGLING\\n%s\", shape=box, style=filled, fillcolor=orange];\n", id, v.Next)
		fmt.Fprintf(buf, "  %s:next -> %s [color=red, style=dashed, label=\"dangling\"];\n", v.Label, id)
	case EdgeTerminal:
		id := "null_" + v.Label
		fmt.Fprintf(buf, "  %s:next -> %s;\n", v.Label, id)
		fmt.Fprintf(buf, "  %s [label=\"NULL\", shape=box, style=dashed, fillcolor=lightgrey];\n", id)
	}
}

// fmtRecord returns the escaped record label body for v, ready to be
// placed between double quotes.
func fmtRecord(v detect.Visit, detailed bool) string {
	value := "?"
	if v.HasValue {
		value = recordEscaper.Replace(stringEscaper.Replace(v.Value))
	}
	if detailed {
		return fmt.Sprintf("{%s | %s | <next> next}", value, v.Ref)
	}
	return fmt.Sprintf("{%s | <next> next}", value)
}

var (
	// Record labels treat braces, bars and angle brackets as structure.
	recordEscaper = strings.NewReplacer(
		`{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
	)
	stringEscaper = strings.NewReplacer(
		`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", ``,
	)
)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}
