package engine

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentPack is an externally authored replacement for the built-in catalogs.
type ContentPack struct {
	Items  []Item      `yaml:"items"`
	Events []GameEvent `yaml:"events"`
}

// LoadContentPack parses and validates a YAML content pack.
func LoadContentPack(r io.Reader) (*ContentPack, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var pack ContentPack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("parse content pack: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}
	return &pack, nil
}

// LoadContentPackFile loads a content pack from disk.
func LoadContentPackFile(path string) (*ContentPack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadContentPack(f)
}

// Validate enforces the authoring rules the engine assumes at runtime:
// unique ids, known enum values, at least one choice per event.
func (p *ContentPack) Validate() error {
	seen := make(map[string]struct{}, len(p.Items)+len(p.Events))
	for _, it := range p.Items {
		if it.ID == "" {
			return fmt.Errorf("item with empty id")
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = struct{}{}
		if !it.Kind.Validate() {
			return fmt.Errorf("item %q: unknown kind %q", it.ID, it.Kind)
		}
	}
	for _, ev := range p.Events {
		if ev.ID == "" {
			return fmt.Errorf("event with empty id")
		}
		if _, dup := seen[ev.ID]; dup {
			return fmt.Errorf("duplicate event id %q", ev.ID)
		}
		seen[ev.ID] = struct{}{}
		if ev.Phase != PhaseDay && ev.Phase != PhaseNight {
			return fmt.Errorf("event %q: trigger phase must be day or night, got %q", ev.ID, ev.Phase)
		}
		if len(ev.Choices) == 0 {
			return fmt.Errorf("event %q: no choices", ev.ID)
		}
		if ev.Tier < 0 || ev.Tier > 3 {
			return fmt.Errorf("event %q: tier out of range: %d", ev.ID, ev.Tier)
		}
		for _, c := range ev.Choices {
			if c.Check != nil && !c.Check.Stat.Validate() {
				return fmt.Errorf("event %q choice %q: unknown check stat %q", ev.ID, c.ID, c.Check.Stat)
			}
			for path := range c.PathXP {
				if !path.Validate() {
					return fmt.Errorf("event %q choice %q: unknown path %q", ev.ID, c.ID, path)
				}
			}
		}
	}
	return nil
}
