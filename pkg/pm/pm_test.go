package pm

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// recordingRunner captures every invocation instead of executing it.
type recordingRunner struct {
	calls  [][]string
	runErr error
}

func (r *recordingRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.runErr
}

func (r *recordingRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil, r.runErr
}

func TestDetectByLockfile(t *testing.T) {
	tests := []struct {
		file string
		want Kind
	}{
		{"package-lock.json", NPM},
		{"yarn.lock", Yarn},
		{"pnpm-lock.yaml", Pnpm},
		{"bun.lock", Bun},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, tt.file), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if got := Detect(dir); got != tt.want {
			t.Errorf("Detect with %s = %s, want %s", tt.file, got, tt.want)
		}
	}
}

func TestDetectPriorityOrder(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"package-lock.json", "yarn.lock"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if got := Detect(dir); got != NPM {
		t.Errorf("Detect with both lockfiles = %s, want npm", got)
	}
}

func TestDetectUserAgentFallback(t *testing.T) {
	tests := []struct {
		ua   string
		want Kind
	}{
		{"pnpm/9.1.0 npm/? node/v20.0.0 linux x64", Pnpm},
		{"yarn/1.22.22 npm/? node/v20.0.0 linux x64", Yarn},
		{"bun/1.1.0 npm/? node/v20.0.0 linux x64", Bun},
		{"npm/10.5.0 node/v20.0.0 linux x64", NPM},
		{"", NPM},
	}
	for _, tt := range tests {
		if got := fromUserAgent(tt.ua); got != tt.want {
			t.Errorf("fromUserAgent(%q) = %s, want %s", tt.ua, got, tt.want)
		}
	}
}

func TestManagerVerbs(t *testing.T) {
	ctx := context.Background()

	t.Run("remove", func(t *testing.T) {
		r := &recordingRunner{}
		m := NewManager(NPM, ".", r)
		if err := m.Remove(ctx, "chalk"); err != nil {
			t.Fatal(err)
		}
		want := []string{"npm", "uninstall", "chalk"}
		if !reflect.DeepEqual(r.calls[0], want) {
			t.Errorf("Remove args = %v, want %v", r.calls[0], want)
		}
	})

	t.Run("install dev", func(t *testing.T) {
		r := &recordingRunner{}
		m := NewManager(Yarn, ".", r)
		if err := m.Install(ctx, "chalk@5.7.0", true); err != nil {
			t.Fatal(err)
		}
		want := []string{"yarn", "add", "chalk@5.7.0", "--exact", "--dev"}
		if !reflect.DeepEqual(r.calls[0], want) {
			t.Errorf("Install args = %v, want %v", r.calls[0], want)
		}
	})

	t.Run("frozen install", func(t *testing.T) {
		for kind, want := range map[Kind][]string{
			NPM:  {"npm", "ci"},
			Pnpm: {"pnpm", "install", "--frozen-lockfile"},
		} {
			r := &recordingRunner{}
			m := NewManager(kind, ".", r)
			if err := m.FrozenInstall(ctx); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(r.calls[0], want) {
				t.Errorf("FrozenInstall(%s) args = %v, want %v", kind, r.calls[0], want)
			}
		}
	})
}

func TestReinstallRemovesNodeModules(t *testing.T) {
	dir := t.TempDir()
	modules := filepath.Join(dir, "node_modules", "chalk")
	if err := os.MkdirAll(modules, 0755); err != nil {
		t.Fatal(err)
	}

	r := &recordingRunner{}
	m := NewManager(NPM, dir, r)
	if err := m.Reinstall(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "node_modules")); !os.IsNotExist(err) {
		t.Error("expected node_modules to be removed")
	}
	// cache clean then npm ci
	if len(r.calls) != 2 {
		t.Fatalf("expected 2 commands, got %d: %v", len(r.calls), r.calls)
	}
	if !reflect.DeepEqual(r.calls[1], []string{"npm", "ci"}) {
		t.Errorf("final command = %v, want npm ci", r.calls[1])
	}
}

func TestKindLockfile(t *testing.T) {
	if got := Yarn.Lockfile(); got != "yarn.lock" {
		t.Errorf("Yarn.Lockfile() = %q", got)
	}
	if got := Kind("deno").Lockfile(); got != "" {
		t.Errorf("unknown kind lockfile = %q, want empty", got)
	}
}
