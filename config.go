package sigil

// AnimationMode selects the motion regime applied by ComputePose.
type AnimationMode uint8

const (
	AnimGrow     AnimationMode = iota // radius ramps up linearly, trapezoidal fade
	AnimPulse                         // rhythmic radius swell with layered breathing
	AnimOrbit                         // circular positional drift with wobble
	AnimWaveform                      // vertical bob with radius shimmer
	AnimSpiral                        // revolving offset that swells mid-cycle
	AnimHarmonic                      // Lissajous positional figure (a=3, b=1.5+ε)
	AnimSwarm                         // per-instance seeded drift frequencies
	AnimBreathe                       // slow radius and opacity breathing
)

// ShapeAnimationConfig controls how a shape instance moves through its cycle.
// The zero value is a static shape (Grow mode with Speed 0 still produces a
// valid pose); call normalized before use to fill defaults.
type ShapeAnimationConfig struct {
	Mode    AnimationMode
	Reverse bool

	// Speed is a time multiplier. 0 is treated as 1.
	Speed float64

	// Intensity scales positional offsets and radius/opacity modulation.
	// 0 is treated as 1.
	Intensity float64

	// FadeIn and FadeOut are fractions of the cycle spent ramping opacity
	// (Grow mode). Their sum may exceed 1; opacity is clamped regardless.
	FadeIn  float64
	FadeOut float64

	// VariableTiming varies the loop duration per instance (deterministically,
	// seeded from the shape identity) so identical shapes drift apart.
	VariableTiming bool

	// StaggerDelay, in milliseconds, desynchronizes instance start times:
	// each instance waits uniqueID mod StaggerDelay before animating.
	StaggerDelay float64

	// ChildPhaseShift advances time by 500ms per unit. The fractal instancer
	// increments it per recursion depth so children lead their parents.
	ChildPhaseShift float64
}

// normalized returns the config with zero-value fields replaced by defaults.
func (c ShapeAnimationConfig) normalized() ShapeAnimationConfig {
	if c.Speed == 0 {
		c.Speed = 1
	}
	if c.Intensity == 0 {
		c.Intensity = 1
	}
	return c
}

// WaveType selects the waveform evaluated by the line factory.
type WaveType uint8

const (
	WaveNone      WaveType = iota // no displacement (fast path)
	WaveSine                      // sin(angle)
	WaveCosine                    // cos(angle)
	WaveSquare                    // sign of sin(angle)
	WaveTriangle                  // triangle wave
	WaveSawtooth                  // rising ramp per cycle
	WavePulse                     // narrow duty-cycle pulse train
	WaveNoise                     // seeded simplex noise sampled on a circle
	WaveLissajous                 // parametric: sin(3a), sin(2a)
	WaveFigure8                   // parametric lemniscate
	WaveRose                      // parametric rose curve, 3 petals
	WaveButterfly                 // parametric butterfly curve
	WaveCompound                  // weighted sum of scalar sub-waveforms
)

// IsParametric reports whether the waveform produces a 2D offset rather than
// a scalar perpendicular displacement.
func (w WaveType) IsParametric() bool {
	switch w {
	case WaveLissajous, WaveFigure8, WaveRose, WaveButterfly:
		return true
	}
	return false
}

const (
	defaultAmplitude = 10.0
	defaultFrequency = 0.1
)

// WaveComponent is one sub-waveform of a compound wave.
type WaveComponent struct {
	Type      WaveType
	Frequency float64 // multiplier on the compound's angle
	Phase     float64 // radians
	Weight    float64
}

// PostSpec holds optional transforms applied after base wave evaluation, in
// declaration order: invert, exponential reshape, hard clip, wave-fold.
type PostSpec struct {
	Invert bool

	// Exponent reshapes the magnitude (|v|^Exponent, sign preserved).
	// 0 or 1 disables.
	Exponent float64

	// Clip hard-limits the displacement to ±Clip. 0 disables.
	Clip float64

	// Fold reflects values exceeding ±Fold back into range. 0 disables.
	Fold float64
}

// WaveSpec describes the wave applied along a path by the line factory.
type WaveSpec struct {
	Type      WaveType
	Amplitude float64 // displacement in distance units; 0 means default when unset via preset
	Frequency float64 // cycles per 30 distance units of path length
	Phase     float64 // static phase offset in radians

	// Animated advances the phase continuously: phase += time * Speed.
	Animated bool
	Speed    float64 // phase revolutions per second when Animated

	// Bidirectional blends a forward and a reverse-running wave with weight
	// sin(progress·π), symmetrizing the displacement about the seam.
	Bidirectional bool

	// Components is used when Type == WaveCompound.
	Components []WaveComponent

	Post PostSpec
}

// normalized fills the animated-phase speed default. Amplitude and frequency
// are deliberately left alone: an explicit zero amplitude means "no wave",
// and missing-value defaulting belongs to the preset layer (settings.go).
func (w WaveSpec) normalized() WaveSpec {
	if w.Animated && w.Speed == 0 {
		w.Speed = 1
	}
	return w
}

// ModulationType selects how the wave is modulated before evaluation.
type ModulationType uint8

const (
	ModNone      ModulationType = iota
	ModFrequency                // perturbs the phase angle
	ModAmplitude                // perturbs the magnitude
	ModPhase                    // adds a time-varying phase offset
	ModHarmonic                 // weighted sum of integer harmonics
)

// ModulationSpec describes wave modulation.
//
// On closed paths ModFrequency warps the carrier angle by
// Depth*sin(Frequency*angle), which is 2π-periodic only when
// Frequency times the path's cycle count is an integer. Use an integer
// Frequency to keep the seam closed; fractional values can reopen it.
type ModulationSpec struct {
	Type      ModulationType
	Frequency float64 // modulator frequency (relative to the carrier angle, or Hz for ModPhase)
	Depth     float64
	Harmonics []float64 // harmonic weights for ModHarmonic (index i → harmonic i+1)
}

// TaperType selects how stroke width varies along the path.
type TaperType uint8

const (
	TaperNone  TaperType = iota
	TaperStart           // width ramps up over the Start fraction
	TaperEnd             // width ramps down over the End fraction
	TaperBoth            // both ends taper
)

// TaperSpec controls stroke-width tapering.
type TaperSpec struct {
	Type  TaperType
	Start float64 // fraction of path length, default 0.2
	End   float64 // fraction of path length, default 0.2
}

// DashSpec controls dashing of the final stroke. An empty Pattern draws a
// solid line. Pattern entries alternate on/off lengths in distance units.
type DashSpec struct {
	Pattern []float64
	Offset  float64
}

// GlowSpec controls the additive halo drawn beneath the stroke.
type GlowSpec struct {
	Intensity float64 // 0 disables; 1 is a strong halo
	Color     Color   // zero value means "use the stroke color"
}

// OutlineSpec controls a contrasting underlay stroke.
type OutlineSpec struct {
	Enabled bool
	Color   Color
	Width   float64 // extra width beyond the base stroke, default 2
}

// LineStyleSpec aggregates the stroke styling consumed by the line factory.
type LineStyleSpec struct {
	Taper   TaperSpec
	Dash    DashSpec
	Glow    GlowSpec
	Outline OutlineSpec

	// LoopLine closes the path even when the first and last vertices differ.
	LoopLine bool
}

// normalized fills style defaults.
func (s LineStyleSpec) normalized() LineStyleSpec {
	if s.Taper.Type != TaperNone {
		if s.Taper.Start == 0 {
			s.Taper.Start = 0.2
		}
		if s.Taper.End == 0 {
			s.Taper.End = 0.2
		}
	}
	if s.Outline.Enabled && s.Outline.Width == 0 {
		s.Outline.Width = 2
	}
	return s
}

// FractalSpec controls recursive child instancing.
type FractalSpec struct {
	// Depth is the recursion depth. Values ≤ 1 draw only the base shape.
	Depth int

	// Scale is the child radius multiplier per level, default 0.5.
	Scale float64

	// ThicknessFalloff multiplies child thickness and opacity per level,
	// default 0.7.
	ThicknessFalloff float64

	// ChildCount is the number of children per level, default 3.
	ChildCount int

	// SacredPositioning pulls children from equal angular spacing toward
	// golden-angle positions; Intensity in [0, 1] blends between the two.
	SacredPositioning bool
	Intensity         float64
}

// normalized fills fractal defaults.
func (f FractalSpec) normalized() FractalSpec {
	if f.Scale == 0 {
		f.Scale = 0.5
	}
	if f.ThicknessFalloff == 0 {
		f.ThicknessFalloff = 0.7
	}
	if f.ChildCount == 0 {
		f.ChildCount = 3
	}
	if f.SacredPositioning && f.Intensity == 0 {
		f.Intensity = 1
	}
	return f
}

// StackSpec controls time-offset ghost copies of a shape. Distinct from
// fractal children: stacked instances redraw the identical shape at shifted
// times to produce a trailing look.
type StackSpec struct {
	Count    int     // number of ghost copies (0 disables)
	Offset   float64 // base time offset in milliseconds
	Interval float64 // additional offset per copy in milliseconds

	// OpacityFalloff multiplies opacity per copy, default 0.6.
	OpacityFalloff float64
}

// normalized fills stacking defaults.
func (s StackSpec) normalized() StackSpec {
	if s.OpacityFalloff == 0 {
		s.OpacityFalloff = 0.6
	}
	if s.Interval == 0 && s.Count > 0 {
		s.Interval = 100
	}
	return s
}
