// Package manifest reads and rewrites package.json. The file is held as
// raw JSON fields so everything this tool does not understand survives a
// rewrite byte-for-byte.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is the manifest filename in a project directory.
const File = "package.json"

// depSections are the four dependency categories, in merge order; a name
// declared in a later section wins for DependencyRange.
var depSections = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

// Manifest is a loaded package.json.
type Manifest struct {
	fields map[string]json.RawMessage
}

// Load reads and parses the manifest in dir.
func Load(dir string) (*Manifest, error) {
	content, err := os.ReadFile(filepath.Join(dir, File))
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(content, &fields); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", File, err)
	}
	return &Manifest{fields: fields}, nil
}

// Save writes the manifest back to dir, pretty-printed with two-space
// indentation and a trailing newline.
func (m *Manifest) Save(dir string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.fields); err != nil {
		return fmt.Errorf("encoding %s: %w", File, err)
	}
	return os.WriteFile(filepath.Join(dir, File), buf.Bytes(), 0644)
}

// Dependencies returns the merged name-to-range map across all four
// dependency sections.
func (m *Manifest) Dependencies() map[string]string {
	merged := make(map[string]string)
	for _, section := range depSections {
		for name, rng := range m.section(section) {
			merged[name] = rng
		}
	}
	return merged
}

// HasDependency reports whether name is declared in any dependency
// section. This is a key-presence check, not range satisfaction.
func (m *Manifest) HasDependency(name string) bool {
	for _, section := range depSections {
		if _, ok := m.section(section)[name]; ok {
			return true
		}
	}
	return false
}

// IsDevDependency reports whether name is declared under devDependencies.
func (m *Manifest) IsDevDependency(name string) bool {
	_, ok := m.section("devDependencies")[name]
	return ok
}

// DependencyRange returns the declared range for name, if any.
func (m *Manifest) DependencyRange(name string) (string, bool) {
	rng, ok := m.Dependencies()[name]
	return rng, ok
}

func (m *Manifest) section(key string) map[string]string {
	raw, ok := m.fields[key]
	if !ok {
		return nil
	}
	deps := make(map[string]string)
	if err := json.Unmarshal(raw, &deps); err != nil {
		return nil
	}
	return deps
}
