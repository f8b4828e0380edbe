package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vlivernoche/portfolio/internal/particles"
)

// tickInterval paces frame callbacks the way a 60 Hz display would; the
// simulation itself throttles drawing to ~30 FPS.
const tickInterval = 16 * time.Millisecond

// Preview runs a particle simulation on a terminal screen.
type Preview struct {
	screen  tcell.Screen
	surface *Surface
	sim     *particles.Simulation
	queue   particles.FrameQueue
	start   time.Time
}

// NewPreview sizes a simulation to the screen. The screen must already
// be initialised.
func NewPreview(screen tcell.Screen, cfg particles.Config, opts ...particles.Option) (*Preview, error) {
	surface := NewSurface(screen)
	cols, rows := screen.Size()
	opts = append([]particles.Option{particles.WithCanvas(CanvasFor(cols, rows))}, opts...)
	sim, err := particles.New(surface, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}
	return &Preview{screen: screen, surface: surface, sim: sim}, nil
}

// Simulation exposes the underlying simulation.
func (p *Preview) Simulation() *particles.Simulation { return p.sim }

// Run animates until ctx is done or the user quits with Esc, Ctrl-C or q.
func (p *Preview) Run(ctx context.Context) error {
	p.screen.EnableMouse(tcell.MouseMotionEvents)
	p.screen.EnableFocus()
	p.screen.Clear()
	p.screen.Show()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	p.start = time.Now()
	p.sim.Start(&p.queue, 0)
	defer p.sim.Stop()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !p.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if p.queue.Fire(float64(now.Sub(p.start).Milliseconds())) {
				p.screen.Show()
			}
		}
	}
}

// HandleEvent feeds one terminal event to the simulation. It returns
// false when the event asks to quit.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		x, y := PixelAt(ev.Position())
		p.sim.PointerMove(x, y)
	case *tcell.EventFocus:
		if !ev.Focused {
			p.sim.PointerLeave()
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		c := CanvasFor(cols, rows)
		p.sim.Resize(c.Width, c.Height, 1)
		p.screen.Sync()
	}
	return true
}
