//go:build js && wasm

package dom

import (
	"errors"
	"math"
	"syscall/js"

	"github.com/vlivernoche/portfolio/internal/particles"
)

var errNoContext = errors.New("canvas has no 2d context")

// CanvasSurface draws on an HTML canvas 2D context.
type CanvasSurface struct {
	el  js.Value
	ctx js.Value
}

var _ particles.Surface = (*CanvasSurface)(nil)

func NewCanvasSurface(el js.Value) (*CanvasSurface, error) {
	if !exists(el) {
		return nil, particles.ErrNoSurface
	}
	ctx := el.Call("getContext", "2d")
	if !exists(ctx) {
		return nil, errNoContext
	}
	return &CanvasSurface{el: el, ctx: ctx}, nil
}

// Bounds is the element's laid-out size and origin in the viewport.
func (s *CanvasSurface) Bounds() (left, top, width, height float64) {
	r := s.el.Call("getBoundingClientRect")
	return r.Get("left").Float(), r.Get("top").Float(), r.Get("width").Float(), r.Get("height").Float()
}

func (s *CanvasSurface) Resize(c particles.Canvas) {
	s.el.Set("width", c.BackingWidth)
	s.el.Set("height", c.BackingHeight)
	s.ctx.Call("setTransform", c.PixelRatio, 0, 0, c.PixelRatio, 0, 0)
}

func (s *CanvasSurface) Clear() {
	w, h := s.el.Get("width").Float(), s.el.Get("height").Float()
	s.ctx.Call("save")
	s.ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)
	s.ctx.Call("clearRect", 0, 0, w, h)
	s.ctx.Call("restore")
}

func (s *CanvasSurface) FillCircle(x, y, r float64, c particles.Color) {
	s.ctx.Set("fillStyle", c.CSS())
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	s.ctx.Call("fill")
}

func (s *CanvasSurface) StrokeLine(x1, y1, x2, y2, width float64, c particles.Color) {
	s.ctx.Set("strokeStyle", c.CSS())
	s.ctx.Set("lineWidth", width)
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", x1, y1)
	s.ctx.Call("lineTo", x2, y2)
	s.ctx.Call("stroke")
}

func (s *CanvasSurface) Spotlight(x, y, radius float64, stops []particles.GradientStop) {
	g := s.ctx.Call("createRadialGradient", x, y, 0, x, y, radius)
	for _, stop := range stops {
		g.Call("addColorStop", stop.Offset, stop.Color.CSS())
	}
	s.ctx.Set("fillStyle", g)
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", x, y, radius, 0, 2*math.Pi)
	s.ctx.Call("fill")
}
