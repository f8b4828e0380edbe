package particles

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSurface struct {
	canvases   []Canvas
	clears     int
	circles    int
	lines      []Color
	spotlights int
}

func (r *recordingSurface) Resize(c Canvas) { r.canvases = append(r.canvases, c) }
func (r *recordingSurface) Clear()          { r.clears++ }
func (r *recordingSurface) FillCircle(x, y, radius float64, c Color) {
	r.circles++
}
func (r *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, c Color) {
	r.lines = append(r.lines, c)
}
func (r *recordingSurface) Spotlight(x, y, radius float64, stops []GradientStop) {
	r.spotlights++
}

func newTestSim(t *testing.T, cfg Config) (*Simulation, *recordingSurface) {
	t.Helper()
	surface := &recordingSurface{}
	sim, err := New(surface, cfg,
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithCanvas(NewCanvas(800, 600, 2, cfg.MaxPixelRatio)),
	)
	require.NoError(t, err)
	return sim, surface
}

func TestNew(t *testing.T) {
	t.Run("No Surface", func(t *testing.T) {
		sim, err := New(nil, DefaultConfig())
		require.ErrorIs(t, err, ErrNoSurface)
		require.Nil(t, sim)
	})

	t.Run("Initial Placement", func(t *testing.T) {
		cfg := DefaultConfig()
		sim, surface := newTestSim(t, cfg)

		require.Len(t, sim.Particles(), 200)
		require.Len(t, surface.canvases, 1)
		for _, p := range sim.Particles() {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, 800.0)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.Less(t, p.Y, 600.0)
			assert.GreaterOrEqual(t, p.VX, -cfg.MaxSpeed)
			assert.Less(t, p.VX, cfg.MaxSpeed)
			assert.GreaterOrEqual(t, p.Radius, cfg.MinRadius)
			assert.Less(t, p.Radius, cfg.MaxRadius)
		}

		ptr := sim.Pointer()
		require.Equal(t, Pointer{X: 400, Y: 300}, ptr)
	})
}

func TestReducedMotion(t *testing.T) {
	for _, count := range []int{0, 1, 50, 200} {
		cfg := DefaultConfig()
		cfg.Count = count
		cfg.ReducedMotion = true
		sim, surface := newTestSim(t, cfg)

		q := &FrameQueue{}
		sim.Start(q, 0)

		require.Empty(t, sim.Particles())
		require.False(t, q.Pending(), "no frame may be scheduled")
		require.False(t, sim.Running())
		require.Zero(t, surface.clears)
	}
}

func TestFrameLoop(t *testing.T) {
	t.Run("Throttle", func(t *testing.T) {
		sim, surface := newTestSim(t, DefaultConfig())
		q := &FrameQueue{}
		sim.Start(q, 0)
		require.True(t, q.Pending())

		require.True(t, q.Fire(40))
		require.Equal(t, 1, sim.Frames())

		// 20ms after the last drawn frame: skipped but rescheduled.
		require.True(t, q.Fire(60))
		require.Equal(t, 1, sim.Frames())
		require.True(t, q.Pending())

		require.True(t, q.Fire(73))
		require.Equal(t, 2, sim.Frames())
		require.Equal(t, 2, surface.clears)
	})

	t.Run("Stop", func(t *testing.T) {
		sim, surface := newTestSim(t, DefaultConfig())
		q := &FrameQueue{}
		sim.Start(q, 0)
		sim.Stop()

		require.True(t, q.Fire(100))
		require.False(t, q.Pending())
		require.Zero(t, surface.clears)
		require.Zero(t, sim.Frames())
	})
}

func TestStepDelta(t *testing.T) {
	require.Equal(t, 33.0, StepDelta(34, 33))
	require.Equal(t, 33.0, StepDelta(1000, 33))
	require.Equal(t, 33.0, StepDelta(StepDelta(500, 33), 33))
	require.Equal(t, 16.0, StepDelta(16, 33))
	require.Zero(t, StepDelta(-5, 33))
}

func TestStep(t *testing.T) {
	t.Run("Integration And Friction", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Count = 1
		sim, _ := newTestSim(t, cfg)
		sim.particles[0] = Particle{X: 100, Y: 100, VX: 1, VY: 0, Radius: 1}
		// Pointer far away and inactive: only ambient drift applies.
		sim.pointer = Pointer{X: 100, Y: 500}

		sim.Step(32)

		p := sim.particles[0]
		require.InDelta(t, 102, p.X, 1e-9)
		require.InDelta(t, 100+cfg.AmbientDrift*2, p.Y, 1e-9)
		require.InDelta(t, 0.97, p.VX, 1e-9)
		require.InDelta(t, cfg.AmbientDrift*0.97, p.VY, 1e-9)
	})

	t.Run("Attraction Is Clamped", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Count = 1
		sim, _ := newTestSim(t, cfg)
		sim.particles[0] = Particle{X: 100, Y: 100}
		sim.PointerMove(101, 100)

		sim.Step(0)
		require.InDelta(t, cfg.MaxAttraction*cfg.Friction, sim.particles[0].VX, 1e-9)

		sim.particles[0] = Particle{X: 100, Y: 100}
		sim.PointerMove(200, 100)
		sim.Step(0)
		require.InDelta(t, 24.0/10000*cfg.Friction, sim.particles[0].VX, 1e-12)
	})

	t.Run("Pointer On Particle", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Count = 1
		sim, _ := newTestSim(t, cfg)
		sim.particles[0] = Particle{X: 50, Y: 50}
		sim.PointerMove(50, 50)

		sim.Step(16)
		p := sim.particles[0]
		require.False(t, math.IsNaN(p.X) || math.IsNaN(p.VX))
		require.Zero(t, p.VX)
	})

	t.Run("Wrap", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Count = 4
		sim, _ := newTestSim(t, cfg)
		sim.particles = []Particle{
			{X: -10.5, Y: 300, VX: -0.1},
			{X: 810.5, Y: 300, VX: 0.1},
			{X: 400, Y: -40, VY: -5},
			{X: 400, Y: 650, VY: 5},
		}
		sim.pointer = Pointer{X: 400, Y: 300}

		sim.Step(16)

		w, h := sim.Canvas().Width, sim.Canvas().Height
		require.Equal(t, w+10, sim.particles[0].X)
		require.Equal(t, -10.0, sim.particles[1].X)
		require.Equal(t, h+10, sim.particles[2].Y)
		require.Equal(t, -10.0, sim.particles[3].Y)
	})

	t.Run("Stays In Margin", func(t *testing.T) {
		sim, _ := newTestSim(t, DefaultConfig())
		sim.PointerMove(20, 20)
		for range 500 {
			sim.Step(33)
		}
		w, h := sim.Canvas().Width, sim.Canvas().Height
		for _, p := range sim.Particles() {
			require.GreaterOrEqual(t, p.X, -10.0)
			require.LessOrEqual(t, p.X, w+10)
			require.GreaterOrEqual(t, p.Y, -10.0)
			require.LessOrEqual(t, p.Y, h+10)
		}
	})
}

func TestLinkAlpha(t *testing.T) {
	require.InDelta(t, 0.4, LinkAlpha(0, 100, 0.4), 1e-12)
	require.Zero(t, LinkAlpha(100, 100, 0.4))
	require.Zero(t, LinkAlpha(150, 100, 0.4))

	prev := LinkAlpha(0, 100, 0.4)
	for d := 1.0; d <= 100; d++ {
		cur := LinkAlpha(d, 100, 0.4)
		require.Less(t, cur, prev)
		prev = cur
	}

	require.InDelta(t, 0.1, PointerBoost(0, 0.1, 900), 1e-12)
	require.Zero(t, PointerBoost(90, 0.1, 900))
	require.Zero(t, PointerBoost(5000, 0.1, 900))
}

func TestRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 3
	sim, surface := newTestSim(t, cfg)
	sim.particles = []Particle{
		{X: 100, Y: 100, Radius: 1},
		{X: 150, Y: 100, Radius: 1},
		{X: 700, Y: 500, Radius: 1},
	}
	sim.pointer = Pointer{X: 125, Y: 100}

	sim.Render()
	require.Equal(t, 1, surface.clears)
	require.Equal(t, 3, surface.circles)
	require.Len(t, surface.lines, 1)
	require.InDelta(t, 0.2+0.1, surface.lines[0].A, 1e-9)
	require.Zero(t, surface.spotlights, "inactive pointer draws no spotlight")

	sim.PointerMove(125, 100)
	sim.Render()
	require.Equal(t, 1, surface.spotlights)
}

func TestResize(t *testing.T) {
	sim, surface := newTestSim(t, DefaultConfig())
	before := append([]Particle(nil), sim.Particles()...)

	sim.Resize(320.4, 240.6, 3)

	c := sim.Canvas()
	require.Equal(t, Canvas{Width: 320, Height: 241, PixelRatio: 1.5, BackingWidth: 480, BackingHeight: 362}, c)
	require.Equal(t, c, surface.canvases[len(surface.canvases)-1])
	require.Equal(t, before, sim.Particles())
}

func TestSpotlightRadius(t *testing.T) {
	sim, _ := newTestSim(t, DefaultConfig())
	require.Equal(t, 420.0, sim.SpotlightRadius())

	sim.Resize(4000, 4000, 1)
	require.Equal(t, 560.0, sim.SpotlightRadius())
}

func TestParseColor(t *testing.T) {
	require.Equal(t, RGB{R: 0x23, G: 0xae, B: 0xb3}, ParseColor(" #23aeb3 ", DefaultAccent))
	require.Equal(t, RGB{R: 0x02, G: 0x38, B: 0x5c}, ParseColor("02385c", DefaultPrimary))
	require.Equal(t, DefaultPrimary, ParseColor("", DefaultPrimary))
	require.Equal(t, DefaultPrimary, ParseColor("not-a-colour", DefaultPrimary))

	require.Equal(t, "rgba(35,174,179,0.6)", DefaultPrimary.Alpha(0.6).CSS())
	require.Equal(t, "rgba(0,0,0,0)", Transparent.CSS())
	require.Equal(t, "#23aeb3", DefaultPrimary.Hex())
}
