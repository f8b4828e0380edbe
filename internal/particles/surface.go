package particles

import "math"

// Canvas describes the drawing surface geometry: logical size in CSS
// pixels and the backing store scaled by the device pixel ratio.
type Canvas struct {
	Width, Height float64
	PixelRatio    float64

	BackingWidth, BackingHeight int
}

// NewCanvas rounds the logical size and clamps pixelRatio into
// [1, maxRatio] to bound backing store cost on dense displays.
func NewCanvas(width, height, pixelRatio, maxRatio float64) Canvas {
	if maxRatio < 1 {
		maxRatio = 1
	}
	if math.IsNaN(pixelRatio) || pixelRatio <= 0 {
		pixelRatio = 1
	}
	ratio := math.Min(maxRatio, math.Max(1, pixelRatio))
	w := math.Max(0, math.Round(width))
	h := math.Max(0, math.Round(height))
	return Canvas{
		Width:         w,
		Height:        h,
		PixelRatio:    ratio,
		BackingWidth:  int(math.Round(w * ratio)),
		BackingHeight: int(math.Round(h * ratio)),
	}
}

// GradientStop is one colour stop of a radial gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// Surface is what the simulation draws on. Coordinates are logical
// canvas pixels; implementations apply the pixel ratio themselves.
type Surface interface {
	// Resize reallocates the backing store for c.
	Resize(c Canvas)
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
	// Spotlight fills a radial gradient centred on (x, y), clipped to
	// the circle of the given radius.
	Spotlight(x, y, radius float64, stops []GradientStop)
}

// Scheduler runs a callback on the next rendering opportunity. The
// callback receives a millisecond timestamp.
type Scheduler interface {
	RequestFrame(fn func(timestamp float64))
}
