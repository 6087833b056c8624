package sigil

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// waveNoise is the seeded simplex source behind WaveNoise. The fixed seed is
// part of the determinism contract: the same angle and time always yield the
// same displacement, in any process.
var waveNoise = opensimplex.NewNormalized(7)

// SampleWave evaluates a scalar waveform at the given cycle progress.
// progress covers one full wave cycle in [0, 1); timeMs drives animated phase
// and noise drift. Parametric wave types return 0 here — use SampleWaveXY.
func SampleWave(progress float64, spec WaveSpec, mod ModulationSpec, timeMs float64) float64 {
	spec = spec.normalized()
	angle := progress*2*math.Pi + spec.Phase + animatedPhase(spec, timeMs)
	return sampleScalar(angle, spec, mod, timeMs/1000)
}

// SampleWaveXY evaluates a parametric waveform at the given cycle progress,
// returning a 2D offset. The caller rotates the pair into its own local
// tangent/normal frame.
func SampleWaveXY(progress float64, spec WaveSpec, mod ModulationSpec, timeMs float64) (float64, float64) {
	spec = spec.normalized()
	angle := progress*2*math.Pi + spec.Phase + animatedPhase(spec, timeMs)
	return sampleXY(angle, spec, mod, timeMs/1000)
}

// animatedPhase returns the time-varying phase contribution in radians.
func animatedPhase(spec WaveSpec, timeMs float64) float64 {
	if !spec.Animated {
		return 0
	}
	return timeMs / 1000 * spec.Speed * 2 * math.Pi
}

// sampleScalar evaluates spec at an absolute phase angle. Modulation is
// applied before base evaluation; amplitude and post transforms after.
func sampleScalar(angle float64, spec WaveSpec, mod ModulationSpec, tSec float64) float64 {
	amp := spec.Amplitude

	switch mod.Type {
	case ModFrequency:
		angle += mod.Depth * math.Sin(mod.Frequency*angle)
	case ModAmplitude:
		amp *= 1 + mod.Depth*math.Sin(mod.Frequency*angle)
	case ModPhase:
		angle += mod.Depth * math.Sin(2*math.Pi*mod.Frequency*tSec)
	case ModHarmonic:
		return finishScalar(harmonicSum(angle, mod.Harmonics), amp, spec.Post)
	}

	return finishScalar(baseScalar(angle, spec, tSec), amp, spec.Post)
}

// finishScalar applies shaping transforms, amplitude, then limiting transforms.
func finishScalar(v, amp float64, post PostSpec) float64 {
	if post.Invert {
		v = -v
	}
	if e := post.Exponent; e > 0 && e != 1 {
		v = math.Copysign(math.Pow(math.Abs(v), e), v)
	}
	v *= amp
	if c := post.Clip; c > 0 {
		v = math.Max(-c, math.Min(c, v))
	}
	if f := post.Fold; f > 0 {
		v = foldValue(v, f)
	}
	return v
}

// baseScalar evaluates the normalized base waveform in [-1, 1].
func baseScalar(angle float64, spec WaveSpec, tSec float64) float64 {
	switch spec.Type {
	case WaveNone:
		return 0
	case WaveSine:
		return math.Sin(angle)
	case WaveCosine:
		return math.Cos(angle)
	case WaveSquare:
		if cycleFrac(angle) < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 2 / math.Pi * math.Asin(math.Sin(angle))
	case WaveSawtooth:
		return 2*cycleFrac(angle) - 1
	case WavePulse:
		if cycleFrac(angle) < 0.3 {
			return 1
		}
		return -1
	case WaveNoise:
		// Sampled on a circle so the value is 2π-periodic in angle and the
		// seam of a closed path lands on the same noise coordinate.
		return 2*waveNoise.Eval2(1.3*math.Cos(angle), 1.3*math.Sin(angle)+0.35*tSec) - 1
	case WaveCompound:
		return compoundScalar(angle, spec.Components, tSec)
	default:
		// Parametric types have no scalar form.
		return 0
	}
}

// cycleFrac returns the position within the current 2π cycle in [0, 1).
// Fractions within rounding noise of a whole cycle snap to 0, so the
// discontinuous waveforms (square, sawtooth, pulse) land on the same side of
// their jump at an exact cycle boundary as at angle 0. Without the snap, the
// seam of a closed path can flicker one sample at integer cycle counts.
func cycleFrac(angle float64) float64 {
	f := angle / (2 * math.Pi)
	f -= math.Floor(f)
	if f > 1-1e-9 {
		return 0
	}
	return f
}

// compoundScalar sums weighted sub-waveforms, normalized by total weight.
func compoundScalar(angle float64, comps []WaveComponent, tSec float64) float64 {
	if len(comps) == 0 {
		return math.Sin(angle)
	}
	var sum, total float64
	for _, c := range comps {
		f := c.Frequency
		if f == 0 {
			f = 1
		}
		sub := WaveSpec{Type: c.Type}
		sum += c.Weight * baseScalar(angle*f+c.Phase, sub, tSec)
		total += math.Abs(c.Weight)
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// harmonicSum replaces the base waveform with a weighted sum of integer
// harmonics of the fundamental, normalized by total weight.
func harmonicSum(angle float64, weights []float64) float64 {
	if len(weights) == 0 {
		weights = []float64{1, 0.5, 0.33}
	}
	var sum, total float64
	for i, w := range weights {
		sum += w * math.Sin(float64(i+1)*angle)
		total += math.Abs(w)
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// sampleXY evaluates a parametric waveform at an absolute phase angle.
// Every curve here is 2π-periodic, so integer cycle counts close cleanly.
func sampleXY(angle float64, spec WaveSpec, mod ModulationSpec, tSec float64) (float64, float64) {
	amp := spec.Amplitude

	switch mod.Type {
	case ModFrequency:
		angle += mod.Depth * math.Sin(mod.Frequency*angle)
	case ModAmplitude:
		amp *= 1 + mod.Depth*math.Sin(mod.Frequency*angle)
	case ModPhase:
		angle += mod.Depth * math.Sin(2*math.Pi*mod.Frequency*tSec)
	}

	var x, y float64
	switch spec.Type {
	case WaveLissajous:
		x = math.Sin(3 * angle)
		y = math.Sin(2 * angle)
	case WaveFigure8:
		x = math.Sin(angle)
		y = 0.5 * math.Sin(2*angle)
	case WaveRose:
		r := math.Cos(3 * angle)
		x = r * math.Cos(angle)
		y = r * math.Sin(angle)
	case WaveButterfly:
		// Butterfly curve with the classic sin^5(t/12) petal term replaced by
		// an even power of sin(t/2), keeping the curve 2π-periodic.
		s := math.Sin(angle / 2)
		r := (math.Exp(math.Cos(angle)) - 2*math.Cos(4*angle) + math.Pow(s, 6)) / 3.5
		x = r * math.Sin(angle)
		y = r * math.Cos(angle)
	default:
		return 0, 0
	}

	return finishScalar(x, amp, spec.Post), finishScalar(y, amp, spec.Post)
}

// foldValue reflects v back into [-limit, limit], wave-folder style.
func foldValue(v, limit float64) float64 {
	t := math.Mod(v+limit, 4*limit)
	if t < 0 {
		t += 4 * limit
	}
	if t < 2*limit {
		return t - limit
	}
	return 3*limit - t
}
