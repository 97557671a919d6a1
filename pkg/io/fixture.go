package io

import (
	"github.com/matzehuels/linkviz/pkg/errors"
	"github.com/matzehuels/linkviz/pkg/list"
)

// Fixture is the decoded form of a list file.
type Fixture struct {
	Title string   `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Head  string   `json:"head" toml:"head" yaml:"head"`
	Nodes []Node   `json:"nodes" toml:"nodes" yaml:"nodes"`
	Freed []string `json:"freed,omitempty" toml:"freed,omitempty" yaml:"freed,omitempty"`
}

// Node is one fixture node.
type Node struct {
	ID    string `json:"id" toml:"id" yaml:"id"`
	Value any    `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"`
	Next  string `json:"next,omitempty" toml:"next,omitempty" yaml:"next,omitempty"`
}

// Loaded is a fixture materialized as an arena.
type Loaded struct {
	Arena *list.Arena[any]
	Title string

	// IDs maps every ref the fixture produced, including freed and unknown
	// ones, back to its fixture id.
	IDs map[list.Ref]string
}

// ID returns the fixture id of r, or r's String form when r did not come
// from the fixture.
func (l *Loaded) ID(r list.Ref) string {
	if id, ok := l.IDs[r]; ok {
		return id
	}
	return r.String()
}

// Validate checks the fixture for empty and duplicate ids.
func (f *Fixture) Validate() error {
	seen := make(map[string]bool, len(f.Nodes)+len(f.Freed))
	for i, n := range f.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidFixture, "node %d: id cannot be empty", i)
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidFixture, "duplicate node id: %q", n.ID)
		}
		seen[n.ID] = true
	}
	for _, id := range f.Freed {
		if id == "" {
			return errors.New(errors.ErrCodeInvalidFixture, "freed id cannot be empty")
		}
		if seen[id] {
			return errors.New(errors.ErrCodeInvalidFixture, "duplicate id in freed: %q", id)
		}
		seen[id] = true
	}
	return nil
}

// Build validates f and allocates its nodes in order. Freed ids are
// allocated after the nodes and then freed. Ids that are referenced but
// never declared receive refs past the end of the arena, one per id.
func (f *Fixture) Build() (*Loaded, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	a := list.NewArena[any]()
	refs := make(map[string]list.Ref, len(f.Nodes)+len(f.Freed))
	ids := make(map[list.Ref]string, len(f.Nodes)+len(f.Freed))

	for _, n := range f.Nodes {
		r := a.Alloc(n.Value)
		refs[n.ID] = r
		ids[r] = n.ID
	}
	for _, id := range f.Freed {
		r := a.Alloc(nil)
		refs[id] = r
		ids[r] = id
	}

	unknown := list.Ref(a.Len())
	resolve := func(id string) list.Ref {
		if id == "" {
			return list.Nil
		}
		if r, ok := refs[id]; ok {
			return r
		}
		unknown++
		refs[id] = unknown
		ids[unknown] = id
		return unknown
	}

	for _, n := range f.Nodes {
		if err := a.SetNext(refs[n.ID], resolve(n.Next)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "link %q", n.ID)
		}
	}
	a.SetHead(resolve(f.Head))

	for _, id := range f.Freed {
		if err := a.Free(refs[id]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "free %q", id)
		}
	}

	return &Loaded{Arena: a, Title: f.Title, IDs: ids}, nil
}
