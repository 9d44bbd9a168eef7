// Package dynamics advances a set of point masses under mutual Newtonian
// gravitation using an explicit Euler scheme with a fixed pass order:
// acceleration, then velocity, then position, each pass completing over the
// whole collection before the next begins. Reversing that order changes the
// trajectory.
package dynamics

import "github.com/orbit-lab/newtonian/internal/body"

// G is the Newtonian gravitational constant in N·m²·kg⁻².
const G = 6.6743e-11

// Step advances every body by one step of size dt, mutating the collection
// in place. A single body is valid and receives zero acceleration.
func Step(bodies []body.Body, dt, g float64) {
	accelerate(bodies, g)
	advanceVelocity(bodies, dt)
	advancePosition(bodies, dt)
}

// accelerate overwrites each body's acceleration with the sum of
// contributions g*m_j*d/r³ from every other body. Forces are evaluated
// against a snapshot of the pre-step state so no body in the pass ever sees
// a partially updated collection. Coincident bodies divide by zero; the
// resulting non-finite values propagate unguarded.
func accelerate(bodies []body.Body, g float64) {
	prev := body.Clone(bodies)
	for i := range bodies {
		var acc body.Vector3
		for j := range prev {
			if j == i {
				continue
			}
			d := prev[j].Position.Sub(prev[i].Position)
			r := d.Norm()
			acc = acc.Add(d.Scale(g * prev[j].Mass / (r * r * r)))
		}
		bodies[i].Acceleration = acc
	}
}

func advanceVelocity(bodies []body.Body, dt float64) {
	for i := range bodies {
		bodies[i].Velocity = bodies[i].Velocity.Add(bodies[i].Acceleration.Scale(dt))
	}
}

func advancePosition(bodies []body.Body, dt float64) {
	for i := range bodies {
		bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Scale(dt))
	}
}
