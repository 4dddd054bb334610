package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/earlbalai/rn-blitz/internal/defs"
)

// Well-known package.json keys.
const (
	KeyDevDependencies = "devDependencies"
	KeyScripts         = "scripts"
)

// Load reads and parses the manifest at path. A missing file or invalid
// JSON is an error; a broken manifest cannot be patched safely.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}
	return doc, nil
}

// Save writes doc to path with two-space indentation.
func Save(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Update loads the manifest at path, applies fn and writes it back. Nothing
// is written when fn fails.
func Update(path string, fn func(doc *Document) error) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return Save(path, doc)
}

// MergeDevDependencies merges deps into devDependencies. Existing entries
// not named in deps are preserved.
func MergeDevDependencies(doc *Document, deps []Entry) error {
	devDeps, err := doc.Object(KeyDevDependencies)
	if err != nil {
		return fmt.Errorf("merge dev dependencies: %w", err)
	}
	devDeps.Merge(deps)
	doc.Set(KeyDevDependencies, devDeps)
	return nil
}

// ReplaceScripts replaces the scripts object wholesale.
func ReplaceScripts(doc *Document, scripts []Entry) {
	replacement := NewDocument()
	replacement.Merge(scripts)
	doc.Set(KeyScripts, replacement)
}
