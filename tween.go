package sigil

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SpecTween animates up to 4 float64 fields of wave/style/fractal specs
// simultaneously, for smooth transitions between presets. Create one via the
// convenience constructors and call Update(dt) each frame.
//
// There is no global tween manager — hosts call Update themselves.
type SpecTween struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the bound
// fields.
func (g *SpecTween) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenFields creates a SpecTween animating up to 4 arbitrary float64 fields
// to the given targets. Extra entries beyond 4 are ignored; the slices must
// be the same length. Panics on a length mismatch.
func TweenFields(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *SpecTween {
	if len(fields) != len(to) {
		panic("sigil: tween fields and targets must be the same length")
	}
	g := &SpecTween{}
	for i := range fields {
		if g.count == len(g.tweens) {
			break
		}
		g.tweens[g.count] = gween.New(float32(*fields[i]), float32(to[i]), duration, fn)
		g.fields[g.count] = fields[i]
		g.count++
	}
	return g
}

// TweenWave creates a SpecTween that animates a wave's amplitude and
// frequency to the given targets over the specified duration.
func TweenWave(spec *WaveSpec, toAmplitude, toFrequency float64, duration float32, fn ease.TweenFunc) *SpecTween {
	return TweenFields(
		[]*float64{&spec.Amplitude, &spec.Frequency},
		[]float64{toAmplitude, toFrequency},
		duration, fn,
	)
}

// TweenGlow creates a SpecTween that animates a style's glow intensity.
func TweenGlow(style *LineStyleSpec, to float64, duration float32, fn ease.TweenFunc) *SpecTween {
	return TweenFields(
		[]*float64{&style.Glow.Intensity},
		[]float64{to},
		duration, fn,
	)
}

// TweenFractal creates a SpecTween that animates a fractal's child scale and
// thickness falloff.
func TweenFractal(spec *FractalSpec, toScale, toFalloff float64, duration float32, fn ease.TweenFunc) *SpecTween {
	return TweenFields(
		[]*float64{&spec.Scale, &spec.ThicknessFalloff},
		[]float64{toScale, toFalloff},
		duration, fn,
	)
}
