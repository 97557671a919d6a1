// Package pkg provides the libraries behind linkviz, a diagnostic
// visualizer for singly-linked lists.
//
// # Overview
//
// linkviz walks a list once, records what it finds, and draws it:
//
//  1. [list] - Node identity and list stores (arenas, pointer chains)
//  2. [detect] - Bounded traversal and anomaly detection
//  3. [render/nodelink] - DOT emission and in-process Graphviz rendering
//  4. [render] - External renderer and viewer collaborators
//  5. [pipeline] - Orchestration (detect → emit → render → view)
//  6. [io] - List fixtures in JSON, TOML and YAML
//
// Supporting packages: [cache] for rendered images, [errors] for coded
// errors, [observability] for hooks, and [buildinfo] for version data.
//
// # Architecture
//
// The typical data flow through linkviz:
//
//	list.Store (fixture, arena, or Go pointer chain)
//	         ↓
//	    [detect] package (visits, anomalies, cycle flag)
//	         ↓
//	    [render/nodelink] package (DOT text)
//	         ↓
//	    [pipeline] package (<base>.dot, then PNG/SVG/JPG)
//
// # Quick Start
//
//	a := list.FromValues(1, 2, 3)
//	report := detect.Run(a)
//	fmt.Print(nodelink.ToDOT(report, nodelink.Options{}))
//
// [list]: github.com/matzehuels/linkviz/pkg/list
// [detect]: github.com/matzehuels/linkviz/pkg/detect
// [render/nodelink]: github.com/matzehuels/linkviz/pkg/render/nodelink
// [render]: github.com/matzehuels/linkviz/pkg/render
// [pipeline]: github.com/matzehuels/linkviz/pkg/pipeline
// [io]: github.com/matzehuels/linkviz/pkg/io
// [cache]: github.com/matzehuels/linkviz/pkg/cache
// [errors]: github.com/matzehuels/linkviz/pkg/errors
// [observability]: github.com/matzehuels/linkviz/pkg/observability
// [buildinfo]: github.com/matzehuels/linkviz/pkg/buildinfo
package pkg
