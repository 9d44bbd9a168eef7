// Package metrics computes conserved-quantity diagnostics over a body set.
// All functions are pure and never mutate the bodies.
package metrics

import "github.com/orbit-lab/newtonian/internal/body"

// TotalMass sums the mass of every body. The integrator never touches mass,
// so this is constant for the whole run.
func TotalMass(bodies []body.Body) float64 {
	var m float64
	for _, b := range bodies {
		m += b.Mass
	}
	return m
}

// Kinetic is Σ ½·m·|v|².
func Kinetic(bodies []body.Body) float64 {
	var ke float64
	for _, b := range bodies {
		ke += 0.5 * b.Mass * b.Velocity.Dot(b.Velocity)
	}
	return ke
}

// Potential is the pairwise gravitational potential -Σ g·m_i·m_j/r over
// i < j. Coincident bodies yield -Inf, matching the integrator's unguarded
// singularity.
func Potential(bodies []body.Body, g float64) float64 {
	var pe float64
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Position.Sub(bodies[i].Position).Norm()
			pe -= g * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return pe
}

// TotalEnergy is kinetic plus potential energy.
func TotalEnergy(bodies []body.Body, g float64) float64 {
	return Kinetic(bodies) + Potential(bodies, g)
}

// Momentum is Σ m·v.
func Momentum(bodies []body.Body) body.Vector3 {
	var p body.Vector3
	for _, b := range bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}
