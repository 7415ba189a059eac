// Package registry answers "which published versions exist for this
// package" by asking the npm CLI, which already knows about auth,
// proxies and scoped registries.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lockmend/lockmend/pkg/pm"
	"github.com/lockmend/lockmend/pkg/semver"
)

// Resolver queries the package registry through the npm CLI.
type Resolver struct {
	Dir    string
	Runner pm.CommandRunner
}

// NewResolver builds a Resolver rooted at dir.
func NewResolver(dir string, runner pm.CommandRunner) *Resolver {
	return &Resolver{Dir: dir, Runner: runner}
}

// Versions returns every published version of name, oldest first as the
// registry reports them. `npm view ... versions --json` prints a JSON
// array, or a bare JSON string when only one version exists.
func (r *Resolver) Versions(ctx context.Context, name string) ([]string, error) {
	output, err := r.Runner.Output(ctx, r.Dir, "npm", "view", name, "versions", "--json")
	if err != nil {
		return nil, err
	}

	var versions []string
	if err := json.Unmarshal(output, &versions); err != nil {
		var single string
		if err := json.Unmarshal(output, &single); err != nil {
			return nil, fmt.Errorf("unexpected npm view output for %s: %w", name, err)
		}
		versions = []string{single}
	}
	return versions, nil
}

// SafeVersion picks a replacement for the compromised version of name:
// the highest published version that is not the bad one. The second
// return is false when the registry cannot be queried or has nothing to
// offer; callers skip the package rather than retry.
func (r *Resolver) SafeVersion(ctx context.Context, name, bad string) (string, bool) {
	versions, err := r.Versions(ctx, name)
	if err != nil {
		slog.Debug("registry query failed", "package", name, "error", err)
		return "", false
	}
	if len(versions) == 0 {
		return "", false
	}

	candidates := make([]string, 0, len(versions))
	for _, v := range versions {
		if v != bad {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) > 0 {
		semver.Sort(candidates)
		return candidates[len(candidates)-1], true
	}

	// Degenerate: every entry equals the bad version. Fall back to the
	// first differing entry of the raw list, if any.
	for _, v := range versions {
		if v != bad {
			return v, true
		}
	}
	return "", false
}
