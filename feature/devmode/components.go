package devmode

import (
	"encoding/json"
	"fmt"
	"os"
)

// removeComponent reads the component list from src and writes it to dst
// with the given component dropped. components.json is a flat JSON string
// array.
func removeComponent(src, dst, component string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	var components []string
	if err := json.Unmarshal(raw, &components); err != nil {
		return fmt.Errorf("parse %s: %w", src, err)
	}

	out := components[:0]
	found := false
	for _, c := range components {
		if c == component {
			found = true
			continue
		}
		out = append(out, c)
	}

	if !found {
		return fmt.Errorf("component %q not present in %s", component, src)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, 0o644)
}
