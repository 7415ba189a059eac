package lockfile

import (
	"regexp"

	"github.com/lockmend/lockmend/pkg/pm"
)

// matchDualLine implements the resolution-graph format check shared by
// yarn, pnpm and bun lockfiles: the pair counts as installed when a
// descriptor line for the package and a resolved-version line are both
// present anywhere in the file. The two lines are not required to belong
// to the same entry; files with many packages can therefore produce
// false positives.
func matchDualLine(content []byte, namePat, verPat *regexp.Regexp) bool {
	return namePat.Match(content) && verPat.Match(content)
}

// YarnLockScanner matches yarn.lock (classic and berry). Descriptors
// look like `chalk@^5.6.0:` or `"chalk@npm:^5.6.0":`; resolved versions
// are `  version "5.6.1"` (classic) or `  version: 5.6.1` (berry).
type YarnLockScanner struct{}

func (YarnLockScanner) File() string  { return "yarn.lock" }
func (YarnLockScanner) Kind() pm.Kind { return pm.Yarn }

func (YarnLockScanner) Matches(content []byte, name, version string) bool {
	namePat := regexp.MustCompile(`(?m)^"?` + regexp.QuoteMeta(name) + `@`)
	verPat := regexp.MustCompile(`(?m)^\s*version:?\s*"?` + regexp.QuoteMeta(version) + `"?\s*$`)
	return matchDualLine(content, namePat, verPat)
}

// PnpmLockScanner matches pnpm-lock.yaml. Package keys are indented and
// may carry a leading slash or quotes depending on the lockfile version
// (`/chalk@5.6.1:`, `chalk@5.6.1:`, `'@scope/pkg@1.0.0':`); resolved
// versions appear as `version: 5.6.1`.
type PnpmLockScanner struct{}

func (PnpmLockScanner) File() string  { return "pnpm-lock.yaml" }
func (PnpmLockScanner) Kind() pm.Kind { return pm.Pnpm }

func (PnpmLockScanner) Matches(content []byte, name, version string) bool {
	namePat := regexp.MustCompile(`(?m)^\s*/?'?"?` + regexp.QuoteMeta(name) + `@`)
	verPat := regexp.MustCompile(`(?m)^\s*version:\s*'?"?` + regexp.QuoteMeta(version) + `'?"?\s*$`)
	return matchDualLine(content, namePat, verPat)
}

// BunLockScanner matches bun.lock, whose JSONC text carries yarn-shaped
// descriptor strings (`"chalk@^5.6.0": [...]`) and resolved specs
// embedding the exact version (`"chalk@5.6.1"`).
type BunLockScanner struct{}

func (BunLockScanner) File() string  { return "bun.lock" }
func (BunLockScanner) Kind() pm.Kind { return pm.Bun }

func (BunLockScanner) Matches(content []byte, name, version string) bool {
	namePat := regexp.MustCompile(`"` + regexp.QuoteMeta(name) + `@`)
	verPat := regexp.MustCompile(`"` + regexp.QuoteMeta(name) + `@` + regexp.QuoteMeta(version) + `"`)
	return matchDualLine(content, namePat, verPat)
}
