// Package audit ties the pieces together: scan the lockfiles, classify
// and report findings, then walk the operator through remediation one
// finding at a time.
package audit

import (
	"context"
	"fmt"

	"github.com/lockmend/lockmend/pkg/advisory"
	"github.com/lockmend/lockmend/pkg/lockfile"
	"github.com/lockmend/lockmend/pkg/manifest"
	"github.com/lockmend/lockmend/pkg/pm"
)

// Finding is one compromised package detected in a lockfile.
type Finding struct {
	Name     string
	Version  string
	Lockfile string
	Manager  pm.Kind
	// Direct is true when the package is declared in the manifest.
	Direct bool
}

// Spec formats the finding as a name@version pair.
func (f Finding) Spec() string {
	return fmt.Sprintf("%s@%s", f.Name, f.Version)
}

// Collect scans every lockfile in dir, deduplicates hits by (name,
// version) keeping the first-matching lockfile, and classifies each as
// direct or transitive against the manifest.
func Collect(ctx context.Context, dir string) ([]Finding, error) {
	hits, err := lockfile.ScanDir(ctx, dir, advisory.List())
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var findings []Finding
	for _, h := range hits {
		key := h.Name + "@" + h.Version
		if seen[key] {
			continue
		}
		seen[key] = true
		findings = append(findings, Finding{
			Name:     h.Name,
			Version:  h.Version,
			Lockfile: h.Lockfile,
			Manager:  h.Manager,
			Direct:   isDirect(dir, h.Name),
		})
	}
	return findings, nil
}

// isDirect re-reads the manifest on every call so classification tracks
// the on-disk state even after earlier remediation steps rewrote it.
// A missing or unparseable manifest classifies everything as transitive.
func isDirect(dir, name string) bool {
	m, err := manifest.Load(dir)
	if err != nil {
		return false
	}
	return m.HasDependency(name)
}
