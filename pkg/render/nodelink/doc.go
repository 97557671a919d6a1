// Package nodelink turns a linked-list traversal report into a Graphviz
// node-link diagram.
//
// # Overview
//
// Each visited node becomes a record box showing its value and a "next"
// port. Each forward link becomes exactly one edge:
//
//   - normal: to a node visited later in the walk
//   - cycle: back to a node visited at or before the source (red, dashed)
//   - dangling: to a reference the walk never reached; drawn to an orange
//     placeholder labelled with the raw reference
//   - terminal: a Nil successor; drawn to a grey NULL placeholder
//
// Anomalies from the report are listed in a red "DETECTED ERRORS" cluster,
// and a legend explains the colors.
//
// # Usage
//
//	report := detect.Run(store)
//	dot := nodelink.ToDOT(report, nodelink.Options{Title: "Inventory"})
//	png, err := nodelink.RenderPNG(dot)
//
// The DOT text is deterministic for a given report: nodes and edges appear
// in visitation order, anomalies in discovery order.
//
// # Dependencies
//
// In-process rendering uses [github.com/goccy/go-graphviz]. The DOT output
// can equally be handed to an external dot binary (see package render).
package nodelink
