package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/matzehuels/linkviz/pkg/errors"
)

// Fixture file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatFromPath returns the fixture format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unrecognized fixture extension %q (must be .json, .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// Decode reads a fixture in the given format from r without building it.
// JSON numbers keep their literal form so large integers print exactly.
func Decode(r io.Reader, format string) (*Fixture, error) {
	var f Fixture
	var err error

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		err = dec.Decode(&f)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&f)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported fixture format: %q", format)
	}

	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "decode %s fixture", format)
	}
	return &f, nil
}

// ReadFixture decodes a fixture from r and materializes it.
// ReadFixture does not close r.
func ReadFixture(r io.Reader, format string) (*Loaded, error) {
	f, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// ImportFixture reads the fixture file at path. The format follows the
// file extension.
func ImportFixture(path string) (*Loaded, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "fixture not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	l, err := ReadFixture(f, format)
	if e, ok := err.(*errors.Error); ok {
		e.Message = path + ": " + e.Message
		return nil, e
	}
	return l, err
}
