// Package lockfile detects known-compromised (name, version) pairs in the
// lockfiles a JavaScript project may carry. The scanners are textual
// pattern matchers, not structural lockfile parsers: they answer "does
// this exact pair appear installed here", nothing more.
package lockfile

import "github.com/lockmend/lockmend/pkg/pm"

// Scanner matches one lockfile format. Implementations never return
// errors; a pattern that cannot be found is simply not a match.
type Scanner interface {
	// File is the lockfile name this scanner reads.
	File() string
	// Kind is the package manager the lockfile belongs to.
	Kind() pm.Kind
	// Matches reports whether the pair appears installed in content.
	Matches(content []byte, name, version string) bool
}

// RawHit is a single scanner match, before deduplication.
type RawHit struct {
	Name     string
	Version  string
	Lockfile string
	Manager  pm.Kind
}

// Scanners returns one scanner per supported format, in detection
// priority order. The order decides which lockfile a deduplicated
// finding is attributed to.
func Scanners() []Scanner {
	return []Scanner{
		PackageLockScanner{},
		YarnLockScanner{},
		PnpmLockScanner{},
		BunLockScanner{},
	}
}
