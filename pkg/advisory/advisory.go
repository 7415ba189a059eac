// Package advisory holds the static table of known-compromised npm
// releases. The table is compiled into the binary; updating it means
// editing advisories.yaml and rebuilding.
package advisory

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed advisories.yaml
var advisoriesYAML []byte

// Entry is a package with one or more compromised versions.
type Entry struct {
	Name     string   `yaml:"name"`
	Versions []string `yaml:"versions"`
}

var (
	loadOnce sync.Once
	entries  []Entry
)

// List returns every advisory entry. The embedded table is parsed once;
// a malformed table is a build defect and panics rather than scanning
// against an empty list.
func List() []Entry {
	loadOnce.Do(func() {
		var doc struct {
			Advisories []Entry `yaml:"advisories"`
		}
		if err := yaml.Unmarshal(advisoriesYAML, &doc); err != nil {
			panic(fmt.Sprintf("advisory: embedded table is invalid: %v", err))
		}
		if len(doc.Advisories) == 0 {
			panic("advisory: embedded table is empty")
		}
		entries = doc.Advisories
	})
	return entries
}
