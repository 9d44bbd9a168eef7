package body

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads an ordered set of initial conditions from JSON: an array of
// bodies with name, mass, position and velocity; acceleration is optional.
// The set is validated eagerly so a bad input fails before any integration.
func Load(r io.Reader) ([]Body, error) {
	var bodies []Body
	if err := json.NewDecoder(r).Decode(&bodies); err != nil {
		return nil, fmt.Errorf("decode initial conditions: %w", err)
	}
	if len(bodies) == 0 {
		return nil, errors.New("initial conditions contain no bodies")
	}

	seen := make(map[string]struct{}, len(bodies))
	for i, b := range bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("body %d has no name", i)
		}
		if b.Mass <= 0 {
			return nil, fmt.Errorf("body %q: mass must be positive, got %g", b.Name, b.Mass)
		}
		if _, ok := seen[b.Name]; ok {
			return nil, fmt.Errorf("duplicate body name %q", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return bodies, nil
}

// LoadFile reads initial conditions from a JSON file.
func LoadFile(path string) ([]Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
