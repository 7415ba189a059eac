package audit

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lockmend/lockmend/pkg/manifest"
	"github.com/lockmend/lockmend/pkg/pm"
	"github.com/lockmend/lockmend/pkg/registry"
)

// VersionResolver picks a safe replacement version for a compromised
// package. Satisfied by *registry.Resolver.
type VersionResolver interface {
	SafeVersion(ctx context.Context, name, bad string) (string, bool)
}

// Session drives the interactive remediation loop over a findings list.
type Session struct {
	Dir      string
	Out      io.Writer
	Prompter Prompter
	Resolver VersionResolver
	Runner   pm.CommandRunner
}

// NewSession builds a Session rooted at dir, with the real prompter,
// resolver and command runner.
func NewSession(dir string, out io.Writer) *Session {
	runner := pm.ExecRunner{}
	return &Session{
		Dir:      dir,
		Out:      out,
		Prompter: SurveyPrompter{},
		Resolver: registry.NewResolver(dir, runner),
		Runner:   runner,
	}
}

// Run processes each finding in order: prompt, act, reinstall. Action
// failures are reported and the loop moves on; the operator re-runs the
// audit if something needs another attempt. Only prompt I/O errors
// (e.g. a closed terminal) abort the run.
func (s *Session) Run(ctx context.Context, findings []Finding) error {
	for _, f := range findings {
		var err error
		if f.Direct {
			err = s.handleDirect(ctx, f)
		} else {
			err = s.handleTransitive(ctx, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) handleDirect(ctx context.Context, f Finding) error {
	choice, err := s.Prompter.Select(
		fmt.Sprintf("%s is a direct dependency. What do you want to do?", f.Spec()),
		[]Choice{ChoiceRemove, ChoiceRevert, ChoiceSkip},
	)
	if err != nil {
		return err
	}

	switch choice {
	case ChoiceRemove:
		mgr := s.manager(f)
		s.act(ctx, f, mgr, func() error { return mgr.Remove(ctx, f.Name) })
	case ChoiceRevert:
		safe, ok := s.Resolver.SafeVersion(ctx, f.Name, f.Version)
		if !ok {
			s.reportUnresolvable(f)
			return nil
		}
		dev := s.isDevDependency(f.Name)
		mgr := s.manager(f)
		s.act(ctx, f, mgr, func() error {
			return mgr.Install(ctx, f.Name+"@"+safe, dev)
		})
	case ChoiceSkip:
	}
	return nil
}

func (s *Session) handleTransitive(ctx context.Context, f Finding) error {
	// Resolve up front so the prompt can show the candidate version.
	safe, ok := s.Resolver.SafeVersion(ctx, f.Name, f.Version)
	if !ok {
		s.reportUnresolvable(f)
		return nil
	}

	choice, err := s.Prompter.Select(
		fmt.Sprintf("%s is a transitive dependency. Pin %s@%s via overrides?", f.Spec(), f.Name, safe),
		[]Choice{ChoiceOverride, ChoiceSkip},
	)
	if err != nil {
		return err
	}

	if choice == ChoiceOverride {
		mgr := s.manager(f)
		s.act(ctx, f, mgr, func() error { return s.addOverride(f.Name, safe) })
	}
	return nil
}

// act runs an action and, on success, the deterministic reinstall.
// Failures are surfaced to the operator and the session continues.
func (s *Session) act(ctx context.Context, f Finding, mgr *pm.Manager, action func() error) {
	if err := action(); err != nil {
		color.New(color.FgYellow).Fprintf(s.Out, "  %s: action failed: %v\n", f.Spec(), err)
		return
	}
	if err := mgr.Reinstall(ctx); err != nil {
		color.New(color.FgYellow).Fprintf(s.Out, "  %s: reinstall failed: %v\n", f.Spec(), err)
	}
}

func (s *Session) addOverride(name, version string) error {
	m, err := manifest.Load(s.Dir)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	if err := m.AddOverride(name, version); err != nil {
		return err
	}
	return m.Save(s.Dir)
}

func (s *Session) reportUnresolvable(f Finding) {
	color.New(color.FgYellow).Fprintf(s.Out,
		"  %s: could not determine a safe version (private package or registry error), skipping\n", f.Spec())
}

func (s *Session) isDevDependency(name string) bool {
	m, err := manifest.Load(s.Dir)
	if err != nil {
		return false
	}
	return m.IsDevDependency(name)
}

func (s *Session) manager(f Finding) *pm.Manager {
	kind := f.Manager
	if kind == "" {
		kind = pm.Detect(s.Dir)
	}
	return pm.NewManager(kind, s.Dir, s.Runner)
}
