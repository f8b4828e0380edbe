//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/vlivernoche/portfolio/internal/particles"
)

const (
	CanvasID           = "bg-canvas"
	ReducedMotionQuery = "(prefers-reduced-motion: reduce)"
	primaryVar         = "--primary-color"
	accentVar          = "--accent-color"
)

// Background is the particle field running on the page canvas.
type Background struct {
	sim     *particles.Simulation
	surface *CanvasSurface
	frames  *AnimationFrames
	funcs   []js.Func
}

// StartBackground builds the simulation on #bg-canvas and starts it.
// It returns particles.ErrNoSurface when the page has no canvas.
func StartBackground(cfg particles.Config) (*Background, error) {
	surface, err := NewCanvasSurface(document().Call("getElementById", CanvasID))
	if err != nil {
		return nil, err
	}

	cfg.ReducedMotion = cfg.ReducedMotion || MatchesMedia(ReducedMotionQuery)
	cfg.Primary = particles.ParseColor(CSSVar(primaryVar), cfg.Primary)
	cfg.Accent = particles.ParseColor(CSSVar(accentVar), cfg.Accent)

	_, _, w, h := surface.Bounds()
	canvas := particles.NewCanvas(w, h, devicePixelRatio(), cfg.MaxPixelRatio)
	sim, err := particles.New(surface, cfg, particles.WithCanvas(canvas))
	if err != nil {
		return nil, err
	}

	b := &Background{sim: sim, surface: surface, frames: NewAnimationFrames()}
	b.listen(window(), "resize", func(js.Value) {
		_, _, w, h := b.surface.Bounds()
		b.sim.Resize(w, h, devicePixelRatio())
	})
	b.listen(window(), "mousemove", func(e js.Value) {
		left, top, _, _ := b.surface.Bounds()
		b.sim.PointerMove(e.Get("clientX").Float()-left, e.Get("clientY").Float()-top)
	})
	b.listen(document(), "mouseleave", func(js.Value) {
		b.sim.PointerLeave()
	})

	sim.Start(b.frames, b.frames.Now())
	return b, nil
}

func (b *Background) listen(target js.Value, event string, fn func(js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	})
	b.funcs = append(b.funcs, f)
	target.Call("addEventListener", event, f)
}

// Simulation exposes the running simulation.
func (b *Background) Simulation() *particles.Simulation { return b.sim }

// Stop halts the animation. Listeners stay registered for the page's
// lifetime.
func (b *Background) Stop() { b.sim.Stop() }

func devicePixelRatio() float64 {
	v := window().Get("devicePixelRatio")
	if v.Type() != js.TypeNumber {
		return 1
	}
	return v.Float()
}
