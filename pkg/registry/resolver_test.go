package registry

import (
	"context"
	"errors"
	"testing"
)

// fakeRunner serves canned npm view output.
type fakeRunner struct {
	output []byte
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	return nil
}

func (f *fakeRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	return f.output, f.err
}

func TestVersionsArray(t *testing.T) {
	r := NewResolver(".", &fakeRunner{output: []byte(`["1.0.0","1.2.3","2.0.0"]`)})
	versions, err := r.Versions(context.Background(), "chalk")
	if err != nil {
		t.Fatal(err)
	}
	if len(versions) != 3 || versions[2] != "2.0.0" {
		t.Errorf("Versions = %v", versions)
	}
}

func TestVersionsSingleString(t *testing.T) {
	r := NewResolver(".", &fakeRunner{output: []byte(`"1.0.0"`)})
	versions, err := r.Versions(context.Background(), "leftpad")
	if err != nil {
		t.Fatal(err)
	}
	if len(versions) != 1 || versions[0] != "1.0.0" {
		t.Errorf("Versions = %v", versions)
	}
}

func TestVersionsGarbage(t *testing.T) {
	r := NewResolver(".", &fakeRunner{output: []byte(`{"error":"E404"}`)})
	if _, err := r.Versions(context.Background(), "ghost"); err == nil {
		t.Error("expected parse error")
	}
}

func TestSafeVersionPicksLatestOther(t *testing.T) {
	r := NewResolver(".", &fakeRunner{output: []byte(`["1.0.0","1.2.3","2.0.0"]`)})
	got, ok := r.SafeVersion(context.Background(), "chalk", "1.2.3")
	if !ok || got != "2.0.0" {
		t.Errorf("SafeVersion = %q, %v; want 2.0.0, true", got, ok)
	}
}

func TestSafeVersionBadIsLatest(t *testing.T) {
	// The policy is "latest other release", which downgrades when the
	// compromised version is the newest one.
	r := NewResolver(".", &fakeRunner{output: []byte(`["5.6.0","5.6.1"]`)})
	got, ok := r.SafeVersion(context.Background(), "chalk", "5.6.1")
	if !ok || got != "5.6.0" {
		t.Errorf("SafeVersion = %q, %v; want 5.6.0, true", got, ok)
	}
}

func TestSafeVersionRegistryError(t *testing.T) {
	r := NewResolver(".", &fakeRunner{err: errors.New("E404")})
	if _, ok := r.SafeVersion(context.Background(), "private-pkg", "1.0.0"); ok {
		t.Error("expected unresolvable on registry error")
	}
}

func TestSafeVersionEmptyList(t *testing.T) {
	r := NewResolver(".", &fakeRunner{output: []byte(`[]`)})
	if _, ok := r.SafeVersion(context.Background(), "ghost", "1.0.0"); ok {
		t.Error("expected unresolvable on empty version list")
	}
}

func TestSafeVersionOnlyBadVersion(t *testing.T) {
	r := NewResolver(".", &fakeRunner{output: []byte(`["1.0.0"]`)})
	if _, ok := r.SafeVersion(context.Background(), "one-hit", "1.0.0"); ok {
		t.Error("expected unresolvable when every version is the bad one")
	}
}
