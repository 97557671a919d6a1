package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/matzehuels/linkviz/pkg/list"
)

// ToFixture converts a into a fixture. Nodes are named n<ref> in
// allocation order. Freed slots that a link or the head still points at
// are listed under freed.
func ToFixture[T any](a *list.Arena[T], title string) *Fixture {
	id := func(r list.Ref) string {
		if r == list.Nil {
			return ""
		}
		return fmt.Sprintf("n%d", uint64(r))
	}

	f := &Fixture{Title: title, Head: id(a.Head())}
	freed := make(map[list.Ref]bool)
	noteFreed := func(r list.Ref) {
		if r != list.Nil && !a.Live(r) && uint64(r) <= uint64(a.Len()) && !freed[r] {
			freed[r] = true
			f.Freed = append(f.Freed, id(r))
		}
	}

	noteFreed(a.Head())
	for _, r := range a.Refs() {
		n := Node{ID: id(r), Next: id(a.Next(r))}
		if v, ok := a.Value(r); ok {
			n.Value = v
		}
		f.Nodes = append(f.Nodes, n)
		noteFreed(a.Next(r))
	}
	return f
}

// WriteJSON encodes a as an indented JSON fixture and writes it to w.
// The output can be re-imported with [ReadFixture].
func WriteJSON[T any](a *list.Arena[T], title string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToFixture(a, title)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a as a JSON fixture to path, creating or truncating
// the file.
func ExportJSON[T any](a *list.Arena[T], title, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return WriteJSON(a, title, f)
}
