// Package io loads linked-list fixtures from JSON, TOML, and YAML files and
// exports arena lists back to JSON.
//
// # Fixture Format
//
// A fixture names its nodes with string ids and links them through next:
//
//	{
//	  "title": "Corrupted list",
//	  "head": "a",
//	  "nodes": [
//	    {"id": "a", "value": 1, "next": "b"},
//	    {"id": "b", "value": 2, "next": "c"},
//	    {"id": "c", "value": 3}
//	  ],
//	  "freed": ["d"]
//	}
//
// The same structure is accepted as TOML ([[nodes]] tables) and YAML. The
// format is chosen by file extension: .json, .toml, .yaml or .yml.
//
// # Node Fields
//
// Required:
//   - id: Unique, non-empty identifier
//
// Optional:
//   - value: Scalar payload shown in the node. Objects and arrays load but
//     are not readable and render as "?".
//   - next: Id of the successor. Omitted or empty means end of list.
//
// # Corruption
//
// Fixtures describe broken lists as well as healthy ones:
//
//   - An id listed under freed is allocated and then freed, so links to it
//     become dangling references.
//   - A next or head naming an id that appears nowhere becomes a reference
//     past the end of the arena, which the detector reports as suspicious.
//
// Both cases load successfully. Only structurally invalid fixtures (empty
// or duplicate ids, undecodable input) are rejected with INVALID_FIXTURE.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write an arena in the same format. Freed
// slots still referenced by a link are listed under freed, and values are
// written in their printable form, so an export re-imports to an
// equivalent list.
package io
