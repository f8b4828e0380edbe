// Package termview draws the particle background in a terminal.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/vlivernoche/portfolio/internal/particles"
)

// One terminal cell stands for this many canvas pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	nodeRune = '•'
	linkRune = '·'
	// Cells are coarse and the page colours are faint on black, so
	// opacities are amplified before blending.
	gain = 2.5
)

var background = particles.RGB{R: 10, G: 10, B: 10}

// Surface implements particles.Surface on a tcell screen.
type Surface struct {
	screen tcell.Screen
	canvas particles.Canvas
}

var _ particles.Surface = (*Surface)(nil)

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// CanvasFor is the canvas geometry of a cols x rows terminal.
func CanvasFor(cols, rows int) particles.Canvas {
	return particles.NewCanvas(float64(cols*CellWidth), float64(rows*CellHeight), 1, 1)
}

// CellAt maps a canvas point to its cell.
func CellAt(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// PixelAt maps a cell to the canvas point at its centre.
func PixelAt(col, row int) (float64, float64) {
	return float64(col*CellWidth) + CellWidth/2, float64(row*CellHeight) + CellHeight/2
}

func (s *Surface) Resize(c particles.Canvas) { s.canvas = c }

func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(background)))
}

func (s *Surface) FillCircle(x, y, r float64, c particles.Color) {
	col, row := CellAt(x, y)
	s.set(col, row, nodeRune, amplify(c))
}

func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c particles.Color) {
	steps := int(math.Max(math.Abs(x2-x1)/CellWidth, math.Abs(y2-y1)/CellHeight))
	fg := amplify(c)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		col, row := CellAt(x1+(x2-x1)*t, y1+(y2-y1)*t)
		if r, _, _, _ := s.screen.GetContent(col, row); r == nodeRune {
			continue
		}
		s.set(col, row, linkRune, fg)
	}
}

func (s *Surface) Spotlight(x, y, radius float64, stops []particles.GradientStop) {
	c0, r0 := CellAt(x-radius, y-radius)
	c1, r1 := CellAt(x+radius, y+radius)
	cols, rows := s.screen.Size()
	for row := max(r0, 0); row <= min(r1, rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, cols-1); col++ {
			px, py := PixelAt(col, row)
			d := math.Hypot(px-x, py-y)
			if d > radius {
				continue
			}
			glow := gradientAt(stops, d/radius)
			if glow.A <= 0 {
				continue
			}
			r, comb, style, _ := s.screen.GetContent(col, row)
			glow.A = math.Min(1, glow.A*gain)
			style = style.Background(toTcell(glow.Over(background)))
			s.screen.SetContent(col, row, r, comb, style)
		}
	}
}

func (s *Surface) set(col, row int, r rune, fg particles.RGB) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	style := tcell.StyleDefault.Background(toTcell(background)).Foreground(toTcell(fg))
	s.screen.SetContent(col, row, r, nil, style)
}

func amplify(c particles.Color) particles.RGB {
	c.A = math.Min(1, c.A*gain)
	return c.Over(background)
}

// gradientAt interpolates the stops at offset t in [0, 1].
func gradientAt(stops []particles.GradientStop, t float64) particles.Color {
	if len(stops) == 0 {
		return particles.Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return particles.Color{
			RGB: a.Color.RGB,
			A:   a.Color.A + (b.Color.A-a.Color.A)*f,
		}
	}
	return stops[len(stops)-1].Color
}

func toTcell(c particles.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
