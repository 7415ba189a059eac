package pm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Manager invokes one package manager's verbs in a project directory.
type Manager struct {
	Kind   Kind
	Dir    string
	Runner CommandRunner
}

// NewManager builds a Manager for kind rooted at dir.
func NewManager(kind Kind, dir string, runner CommandRunner) *Manager {
	return &Manager{Kind: kind, Dir: dir, Runner: runner}
}

// Remove uninstalls a direct dependency. The manager rewrites the
// manifest itself; we only invoke its uninstall verb.
func (m *Manager) Remove(ctx context.Context, name string) error {
	verb := map[Kind]string{NPM: "uninstall", Yarn: "remove", Pnpm: "remove", Bun: "remove"}[m.Kind]
	return m.Runner.Run(ctx, m.Dir, string(m.Kind), verb, name)
}

// Install adds a direct dependency pinned at an exact name@version spec.
// dev re-adds the package under the development category it came from.
func (m *Manager) Install(ctx context.Context, spec string, dev bool) error {
	var args []string
	switch m.Kind {
	case NPM:
		args = []string{"install", spec, "--save-exact"}
		if dev {
			args = append(args, "--save-dev")
		}
	case Yarn:
		args = []string{"add", spec, "--exact"}
		if dev {
			args = append(args, "--dev")
		}
	case Pnpm:
		args = []string{"add", spec, "--save-exact"}
		if dev {
			args = append(args, "--save-dev")
		}
	case Bun:
		args = []string{"add", spec, "--exact"}
		if dev {
			args = append(args, "--dev")
		}
	}
	return m.Runner.Run(ctx, m.Dir, string(m.Kind), args...)
}

// CleanCache clears the manager's shared package cache.
func (m *Manager) CleanCache(ctx context.Context) error {
	var args []string
	switch m.Kind {
	case NPM:
		args = []string{"cache", "clean", "--force"}
	case Yarn:
		args = []string{"cache", "clean"}
	case Pnpm:
		args = []string{"store", "prune"}
	case Bun:
		args = []string{"pm", "cache", "rm"}
	}
	return m.Runner.Run(ctx, m.Dir, string(m.Kind), args...)
}

// FrozenInstall performs a lockfile-respecting install that refuses to
// modify the lockfile.
func (m *Manager) FrozenInstall(ctx context.Context) error {
	var args []string
	switch m.Kind {
	case NPM:
		args = []string{"ci"}
	default:
		args = []string{"install", "--frozen-lockfile"}
	}
	return m.Runner.Run(ctx, m.Dir, string(m.Kind), args...)
}

// Reinstall converges the installed tree with the manifest and lockfile:
// drop node_modules, clear the shared cache, then frozen install. Cache
// cleaning is best effort; a failure there is logged and the install
// still runs.
func (m *Manager) Reinstall(ctx context.Context) error {
	modules := filepath.Join(m.Dir, "node_modules")
	if err := os.RemoveAll(modules); err != nil {
		return fmt.Errorf("removing %s: %w", modules, err)
	}
	if err := m.CleanCache(ctx); err != nil {
		slog.Warn("cache clean failed", "manager", m.Kind, "error", err)
	}
	return m.FrozenInstall(ctx)
}
