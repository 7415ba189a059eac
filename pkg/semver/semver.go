// Package semver implements the minimal version ordering used to pick
// replacement releases. It understands plain major.minor.patch triples and
// nothing more: missing components count as zero and a component with a
// non-numeric suffix is read up to the last leading digit. Pre-release and
// build metadata are not ordered correctly; callers accept that limitation.
package semver

import "strings"

// Compare returns -1, 0 or 1 ordering a against b by major, minor, patch.
func Compare(a, b string) int {
	for i := 0; i < 3; i++ {
		ai := component(a, i)
		bi := component(b, i)
		if ai < bi {
			return -1
		}
		if ai > bi {
			return 1
		}
	}
	return 0
}

// Sort orders versions ascending in place.
func Sort(versions []string) {
	// Insertion sort keeps this dependency-free and stable; the lists we
	// sort are npm version histories, rarely more than a few hundred long.
	for i := 1; i < len(versions); i++ {
		for j := i; j > 0 && Compare(versions[j-1], versions[j]) > 0; j-- {
			versions[j-1], versions[j] = versions[j], versions[j-1]
		}
	}
}

// component extracts the i-th dot-separated component of v as an integer,
// parsing only the leading run of digits. Absent components are zero.
func component(v string, i int) int {
	parts := strings.SplitN(v, ".", 4)
	if i >= len(parts) {
		return 0
	}
	n := 0
	for _, r := range parts[i] {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
