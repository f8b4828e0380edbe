package particles

// Particle is one node of the background field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Pointer is the tracked cursor position in canvas space.
type Pointer struct {
	X, Y   float64
	Active bool
}

// wrap teleports p to the opposite edge once it leaves the canvas by
// more than margin on either axis.
func (p *Particle) wrap(width, height, margin float64) {
	if p.X < -margin {
		p.X = width + margin
	} else if p.X > width+margin {
		p.X = -margin
	}
	if p.Y < -margin {
		p.Y = height + margin
	} else if p.Y > height+margin {
		p.Y = -margin
	}
}
