// Package source provides the opaque source-handle boundary the parser
// consumes: a name (for diagnostics) and a byte-indexable content view.
package source

import "github.com/ara-lang/ara-parser/pkg/parser"

// Source is an alias for parser.Source, the narrow interface that lets the
// parser stay agnostic of where bytes came from. Kept as its own name here
// so callers can talk about "a source" without importing pkg/parser
// directly.
type Source = parser.Source

// File is the common in-memory Source implementation: a name plus a byte
// slice, both copied at construction so the parser's view never aliases
// caller-owned, mutable memory.
type File struct {
	name    string
	content []byte
}

// New builds a File from raw content. content is copied.
func New(name string, content []byte) *File {
	buf := make([]byte, len(content))
	copy(buf, content)
	return &File{name: name, content: buf}
}

// NewFromString is a convenience constructor for literal/test sources.
func NewFromString(name, content string) *File {
	return New(name, []byte(content))
}

func (f *File) Name() string    { return f.name }
func (f *File) Content() []byte { return f.content }

// Map is an ordered collection of sources parsed together; a single failing
// source aborts the whole map parse with a concatenated Report
// (spec.md §4.10).
type Map struct {
	sources []Source
}

// NewMap builds a Map from the given sources, preserving order.
func NewMap(sources ...Source) *Map {
	m := &Map{sources: make([]Source, len(sources))}
	copy(m.sources, sources)
	return m
}

func (m *Map) Sources() []Source { return m.sources }

func (m *Map) Len() int { return len(m.sources) }
