package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a suite. Queries are deliberately NOT compiled
// here: a malformed expression is a per-case result the runner reports, not
// a reason to reject the whole suite.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *Suite) error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if c.ExpectTotal != nil && *c.ExpectTotal < 0 {
			return fmt.Errorf("case %q has negative expect_total", c.ID)
		}
	}
	return nil
}
