package lockfile

import (
	"regexp"

	"github.com/lockmend/lockmend/pkg/pm"
)

// nameKey marks the start of a package block in package-lock.json; a
// match span must not cross into the next block.
var nameKey = regexp.MustCompile(`"name":\s*"`)

// PackageLockScanner matches npm's package-lock.json. It looks for a
// block containing "name": "<pkg>" followed by "version": "<ver>"
// before the next "name" key. This is a heuristic over the raw text,
// not a JSON-tree walk: it keeps one code path across lockfile schema
// v1 through v3, at the cost of possible mismatches when a block's
// fields are reordered across the span.
type PackageLockScanner struct{}

func (PackageLockScanner) File() string  { return "package-lock.json" }
func (PackageLockScanner) Kind() pm.Kind { return pm.NPM }

func (PackageLockScanner) Matches(content []byte, name, version string) bool {
	nameRe := regexp.MustCompile(`"name":\s*"` + regexp.QuoteMeta(name) + `"`)
	verRe := regexp.MustCompile(`"version":\s*"` + regexp.QuoteMeta(version) + `"`)

	for _, loc := range nameRe.FindAllIndex(content, -1) {
		block := content[loc[1]:]
		if next := nameKey.FindIndex(block); next != nil {
			block = block[:next[0]]
		}
		if verRe.Match(block) {
			return true
		}
	}
	return false
}
