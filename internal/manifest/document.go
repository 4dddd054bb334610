// Package manifest reads and rewrites a project's package.json.
//
// Documents keep the original key order at every nesting level so that a
// merge only touches the keys it names.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/iancoleman/orderedmap"
)

// Sentinel errors for manifest operations.
var (
	// ErrInvalidManifest indicates the manifest is not valid JSON.
	ErrInvalidManifest = errors.New("manifest: invalid package manifest")

	// ErrNotObject indicates a JSON value that must be an object is not one.
	ErrNotObject = errors.New("manifest: value is not a JSON object")
)

// Document is a JSON object that preserves key order.
type Document struct {
	m *orderedmap.OrderedMap
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{m: newOrderedMap()}
}

// newOrderedMap returns a map that leaves <, > and & unescaped, as npm does.
// Nested objects decoded into it inherit the setting.
func newOrderedMap() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}

// Entry is a single key/value pair applied in order.
type Entry struct {
	Key   string
	Value string
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	return slices.Clone(d.m.Keys())
}

// Set stores value under key. An existing key keeps its position; a new
// key is appended.
func (d *Document) Set(key string, value any) {
	if child, ok := value.(*Document); ok {
		value = child.m
	}
	d.m.Set(key, value)
}

// Object returns a copy of the nested object under key. A missing or null
// value yields an empty document. Changes are stored back with Set.
func (d *Document) Object(key string) (*Document, error) {
	v, ok := d.m.Get(key)
	if !ok || v == nil {
		return NewDocument(), nil
	}

	var src *orderedmap.OrderedMap
	switch obj := v.(type) {
	case orderedmap.OrderedMap:
		src = &obj
	case *orderedmap.OrderedMap:
		src = obj
	default:
		return nil, fmt.Errorf("%q: %w", key, ErrNotObject)
	}

	child := NewDocument()
	for _, k := range src.Keys() {
		val, _ := src.Get(k)
		child.m.Set(k, val)
	}
	return child, nil
}

// Merge sets every entry in order, overwriting same-named keys and
// preserving all others.
func (d *Document) Merge(entries []Entry) {
	for _, e := range entries {
		d.m.Set(e.Key, e.Value)
	}
}

// UnmarshalJSON decodes a JSON object, recording key order. Duplicate keys
// keep their last value.
func (d *Document) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotObject
	}
	m := newOrderedMap()
	if err := json.Unmarshal(trimmed, m); err != nil {
		return err
	}
	d.m = m
	return nil
}

// MarshalJSON encodes the object in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.m.MarshalJSON()
}

// Encode renders d with two-space indentation and a trailing newline.
// HTML characters are not escaped, matching how npm writes manifests.
func Encode(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
