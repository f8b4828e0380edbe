package particles

// Config holds the tuning constants of the background animation.
type Config struct {
	Count        int     // number of nodes
	LinkDistance float64 // max distance for a connecting line

	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64 // initial velocity components are drawn from [-MaxSpeed, MaxSpeed)

	FrameInterval  float64 // ms; callbacks closer than this to the last drawn frame are skipped
	MaxStep        float64 // ms; integration step cap
	ReferenceFrame float64 // ms; velocity units are per reference frame

	Friction   float64
	EdgeMargin float64

	AttractionStrength float64 // numerator of the inverse-square pull
	MaxAttraction      float64
	AmbientDrift       float64 // pull toward the last pointer position while it is inactive

	MaxPixelRatio float64

	NodeAlpha     float64
	LinkWidth     float64
	LinkBaseAlpha float64
	LinkMaxAlpha  float64
	BoostAlpha    float64 // extra link alpha at the pointer
	BoostFalloff  float64 // distance over which the boost fades to zero

	Primary RGB
	Accent  RGB

	ReducedMotion bool
}

// DefaultConfig returns the settings the site ships with.
func DefaultConfig() Config {
	return Config{
		Count:              200,
		LinkDistance:       100,
		MinRadius:          1.1,
		MaxRadius:          2.0,
		MaxSpeed:           0.4,
		FrameInterval:      33,
		MaxStep:            33,
		ReferenceFrame:     16,
		Friction:           0.97,
		EdgeMargin:         10,
		AttractionStrength: 24,
		MaxAttraction:      0.10,
		AmbientDrift:       0.012,
		MaxPixelRatio:      1.5,
		NodeAlpha:          0.6,
		LinkWidth:          0.8,
		LinkBaseAlpha:      0.4,
		LinkMaxAlpha:       0.6,
		BoostAlpha:         0.1,
		BoostFalloff:       900,
		Primary:            DefaultPrimary,
		Accent:             DefaultAccent,
	}
}

// ParticleCount is the number of particles a simulation with this
// config creates. Reduced motion disables the field entirely.
func (c Config) ParticleCount() int {
	if c.ReducedMotion || c.Count < 0 {
		return 0
	}
	return c.Count
}
