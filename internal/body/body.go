package body

// Body is a named point mass. Acceleration is a derived field: the integrator
// overwrites it every step, so it is meaningless as persisted input state and
// defaults to the zero vector when absent from initial conditions.
type Body struct {
	Name         string  `json:"name" yaml:"name"`
	Mass         float64 `json:"mass" yaml:"mass"`
	Position     Vector3 `json:"position" yaml:"position"`
	Velocity     Vector3 `json:"velocity" yaml:"velocity"`
	Acceleration Vector3 `json:"acceleration" yaml:"acceleration"`
}

// Clone returns a deep copy of the collection. Vector3 is a value type, so a
// slice copy duplicates the full state of every body.
func Clone(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}
