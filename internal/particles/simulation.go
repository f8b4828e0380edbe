// Package particles implements the animated node field drawn behind the
// portfolio page: drifting particles pulled toward the pointer, links
// between close neighbours and a soft spotlight under the cursor.
package particles

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrNoSurface is returned by New when there is nothing to draw on.
// Callers treat it as "no background on this page" and carry on.
var ErrNoSurface = errors.New("particles: no drawing surface")

// Simulation owns the particle set, the pointer and the surface.
type Simulation struct {
	cfg     Config
	surface Surface
	canvas  Canvas
	rng     *rand.Rand

	particles []Particle
	pointer   Pointer

	scheduler Scheduler
	lastT     float64
	lastDraw  float64
	running   bool
	stopped   bool
	frames    int
}

// Option customises a Simulation.
type Option func(*Simulation)

// WithRand sets the random source used to seed the particles.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithCanvas sets the initial surface geometry.
func WithCanvas(c Canvas) Option {
	return func(s *Simulation) { s.canvas = c }
}

// New creates a simulation drawing on surface. Particles are placed
// uniformly over the initial canvas and the pointer starts, inactive,
// at its centre.
func New(surface Surface, cfg Config, opts ...Option) (*Simulation, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	s := &Simulation{cfg: cfg, surface: surface}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	surface.Resize(s.canvas)

	w, h := s.canvas.Width, s.canvas.Height
	n := cfg.ParticleCount()
	s.particles = make([]Particle, 0, n)
	for range n {
		s.particles = append(s.particles, Particle{
			X:      s.rng.Float64() * w,
			Y:      s.rng.Float64() * h,
			VX:     s.uniform(-cfg.MaxSpeed, cfg.MaxSpeed),
			VY:     s.uniform(-cfg.MaxSpeed, cfg.MaxSpeed),
			Radius: s.uniform(cfg.MinRadius, cfg.MaxRadius),
		})
	}
	s.pointer = Pointer{X: w / 2, Y: h / 2}
	return s, nil
}

func (s *Simulation) uniform(lo, hi float64) float64 {
	return s.rng.Float64()*(hi-lo) + lo
}

// Particles returns the live particle slice.
func (s *Simulation) Particles() []Particle { return s.particles }

// Pointer returns the current pointer state.
func (s *Simulation) Pointer() Pointer { return s.pointer }

// Canvas returns the current surface geometry.
func (s *Simulation) Canvas() Canvas { return s.canvas }

// Frames returns how many frames have been drawn.
func (s *Simulation) Frames() int { return s.frames }

// Resize recomputes the canvas for a new viewport. Particle positions
// are kept; anything now off-canvas wraps back in on the next step.
func (s *Simulation) Resize(width, height, pixelRatio float64) {
	s.canvas = NewCanvas(width, height, pixelRatio, s.cfg.MaxPixelRatio)
	s.surface.Resize(s.canvas)
}

// PointerMove records a pointer position in canvas space.
func (s *Simulation) PointerMove(x, y float64) {
	s.pointer.X, s.pointer.Y = x, y
	s.pointer.Active = true
}

// PointerLeave marks the pointer as gone; the last position is kept as
// the ambient drift target.
func (s *Simulation) PointerLeave() {
	s.pointer.Active = false
}

// Start begins the animation loop on sched. now is the current frame
// clock in milliseconds. Under reduced motion nothing is drawn and no
// frame is ever requested.
func (s *Simulation) Start(sched Scheduler, now float64) {
	if s.cfg.ReducedMotion || s.running || s.stopped {
		return
	}
	s.scheduler = sched
	s.lastT = now
	s.running = true
	sched.RequestFrame(s.tick)
}

// Stop ends the loop. A callback already queued returns without
// drawing or rescheduling.
func (s *Simulation) Stop() {
	s.stopped = true
	s.running = false
}

// Running reports whether the loop is active.
func (s *Simulation) Running() bool { return s.running }

func (s *Simulation) tick(t float64) {
	if s.stopped {
		return
	}
	if t-s.lastDraw < s.cfg.FrameInterval {
		s.scheduler.RequestFrame(s.tick)
		return
	}
	s.lastDraw = t
	dt := StepDelta(t-s.lastT, s.cfg.MaxStep)
	s.lastT = t

	s.Step(dt)
	s.Render()
	s.frames++

	if !s.cfg.ReducedMotion && !s.stopped {
		s.scheduler.RequestFrame(s.tick)
	}
}

// StepDelta bounds the elapsed time used for one integration step.
func StepDelta(elapsed, maxStep float64) float64 {
	if elapsed < 0 || math.IsNaN(elapsed) {
		return 0
	}
	return math.Min(maxStep, elapsed)
}

// Step advances every particle by dt milliseconds.
func (s *Simulation) Step(dt float64) {
	cfg := s.cfg
	scale := dt / cfg.ReferenceFrame
	w, h := s.canvas.Width, s.canvas.Height
	for i := range s.particles {
		p := &s.particles[i]
		dx := s.pointer.X - p.X
		dy := s.pointer.Y - p.Y
		d2 := dx*dx + dy*dy
		d := math.Sqrt(d2)
		if d == 0 {
			d = 1
		}
		influence := cfg.AmbientDrift
		if s.pointer.Active {
			influence = cfg.MaxAttraction
			if d2 > 0 {
				influence = math.Min(cfg.MaxAttraction, cfg.AttractionStrength/d2)
			}
		}
		p.VX += dx / d * influence
		p.VY += dy / d * influence

		p.X += p.VX * scale
		p.Y += p.VY * scale

		p.VX *= cfg.Friction
		p.VY *= cfg.Friction

		p.wrap(w, h, cfg.EdgeMargin)
	}
}

// Render draws the current state: nodes, links and the spotlight.
func (s *Simulation) Render() {
	cfg := s.cfg
	s.surface.Clear()

	node := cfg.Primary.Alpha(cfg.NodeAlpha)
	for _, p := range s.particles {
		s.surface.FillCircle(p.X, p.Y, p.Radius, node)
	}

	for i := range s.particles {
		a := s.particles[i]
		for j := i + 1; j < len(s.particles); j++ {
			b := s.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= cfg.LinkDistance {
				continue
			}
			md := math.Hypot((a.X+b.X)/2-s.pointer.X, (a.Y+b.Y)/2-s.pointer.Y)
			alpha := s.linkAlpha(d, md)
			s.surface.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.LinkWidth, cfg.Accent.Alpha(alpha))
		}
	}

	if s.pointer.Active {
		s.surface.Spotlight(s.pointer.X, s.pointer.Y, s.SpotlightRadius(), s.spotlightStops())
	}
}

func (s *Simulation) linkAlpha(d, pointerDist float64) float64 {
	cfg := s.cfg
	alpha := LinkAlpha(d, cfg.LinkDistance, cfg.LinkBaseAlpha) +
		PointerBoost(pointerDist, cfg.BoostAlpha, cfg.BoostFalloff)
	return clamp(alpha, 0, cfg.LinkMaxAlpha)
}

// LinkAlpha is the distance term of a link's opacity: base at zero
// distance, falling linearly to 0 at maxDist.
func LinkAlpha(d, maxDist, base float64) float64 {
	if d >= maxDist || maxDist <= 0 {
		return 0
	}
	return (1 - d/maxDist) * base
}

// PointerBoost is the extra opacity of a link whose midpoint lies
// pointerDist away from the pointer.
func PointerBoost(pointerDist, peak, falloff float64) float64 {
	return math.Max(0, peak-pointerDist/falloff)
}

// SpotlightRadius bounds the glow so its fill cost does not grow with
// the whole canvas.
func (s *Simulation) SpotlightRadius() float64 {
	return math.Max(420, math.Min(560, math.Sqrt(s.canvas.Width*s.canvas.Height)*0.18))
}

func (s *Simulation) spotlightStops() []GradientStop {
	return []GradientStop{
		{Offset: 0, Color: s.cfg.Primary.Alpha(0.08)},
		{Offset: 0.35, Color: s.cfg.Primary.Alpha(0.01)},
		{Offset: 1, Color: Transparent},
	}
}
