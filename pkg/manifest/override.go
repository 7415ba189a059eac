package manifest

import (
	"encoding/json"
	"fmt"
)

// AddOverride pins name to version in all three override conventions at
// once: overrides (npm), resolutions (yarn) and pnpm.overrides. Writing
// all of them keeps the pin effective no matter which manager performs
// the next install. Existing entries in each map are preserved.
func (m *Manifest) AddOverride(name, version string) error {
	pin, err := json.Marshal(version)
	if err != nil {
		return err
	}

	for _, key := range []string{"overrides", "resolutions"} {
		if err := m.mergeIntoObject(key, name, pin); err != nil {
			return err
		}
	}

	// pnpm keeps its overrides nested under the "pnpm" namespace; merge
	// into the inner map without disturbing the rest of the section.
	pnpm := make(map[string]json.RawMessage)
	if raw, ok := m.fields["pnpm"]; ok {
		if err := json.Unmarshal(raw, &pnpm); err != nil {
			return fmt.Errorf("parsing pnpm section: %w", err)
		}
	}
	overrides := make(map[string]json.RawMessage)
	if raw, ok := pnpm["overrides"]; ok {
		if err := json.Unmarshal(raw, &overrides); err != nil {
			return fmt.Errorf("parsing pnpm.overrides: %w", err)
		}
	}
	overrides[name] = pin
	merged, err := json.Marshal(overrides)
	if err != nil {
		return err
	}
	pnpm["overrides"] = merged
	section, err := json.Marshal(pnpm)
	if err != nil {
		return err
	}
	m.fields["pnpm"] = section

	return nil
}

func (m *Manifest) mergeIntoObject(key, name string, value json.RawMessage) error {
	obj := make(map[string]json.RawMessage)
	if raw, ok := m.fields[key]; ok {
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("parsing %s section: %w", key, err)
		}
	}
	obj[name] = value
	merged, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	m.fields[key] = merged
	return nil
}
