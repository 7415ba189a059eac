// Package pm abstracts the JavaScript package managers this tool drives.
// Every mutation of the dependency tree goes through a Manager so the
// audit loop never needs to know which manager's verbs are in play.
package pm

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies a package manager.
type Kind string

const (
	NPM  Kind = "npm"
	Yarn Kind = "yarn"
	Pnpm Kind = "pnpm"
	Bun  Kind = "bun"
)

// lockfiles maps each manager to its lockfile, in detection priority order.
var lockfiles = []struct {
	file string
	kind Kind
}{
	{"package-lock.json", NPM},
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", Pnpm},
	{"bun.lock", Bun},
}

// Detect determines which manager produced the install in dir. Lockfile
// presence wins; with no lockfile the npm_config_user_agent hint set by a
// running package manager is consulted; npm is the final fallback.
func Detect(dir string) Kind {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.kind
		}
	}
	return fromUserAgent(os.Getenv("npm_config_user_agent"))
}

func fromUserAgent(ua string) Kind {
	for _, k := range []Kind{Yarn, Pnpm, Bun} {
		if strings.HasPrefix(ua, string(k)+"/") {
			return k
		}
	}
	return NPM
}

// Lockfile returns the lockfile name for this manager kind.
func (k Kind) Lockfile() string {
	for _, lf := range lockfiles {
		if lf.kind == k {
			return lf.file
		}
	}
	return ""
}
