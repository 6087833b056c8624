package sigil

import "math"

// Pose is the output of ComputePose, recomputed every frame. All fields are
// in the caller's units: radius in distance units, time in milliseconds,
// rotation in radians.
type Pose struct {
	DynamicRadius  float64
	FinalOpacity   float64
	OffsetX        float64
	OffsetY        float64
	RotationOffset float64
	Progress       float64 // wrapped cycle position in [0, 1)
	AdjustedTime   float64 // milliseconds after speed, stagger, and phase shift
	UniqueID       float64
}

const baseLoopDuration = 6000.0 // milliseconds per animation cycle

// ComputePose maps wall-clock time plus a shape's identity to its animated
// pose. Pure and deterministic: identical arguments always produce identical
// results, and no global state is read, so independent instances can be posed
// concurrently.
//
// radius and opacity are the shape's resting values; the returned pose scales
// and offsets them according to the configured mode.
func ComputePose(timeMs, radius, opacity float64, cfg ShapeAnimationConfig, id ShapeIdentity) Pose {
	cfg = cfg.normalized()
	uid := id.UniqueID()

	loop := baseLoopDuration
	if cfg.VariableTiming {
		loop += seedRand(uid)*2000 - 1000
	}

	var delay float64
	if cfg.StaggerDelay > 0 {
		delay = math.Mod(uid, cfg.StaggerDelay)
	}

	adjusted := timeMs*cfg.Speed - delay + cfg.ChildPhaseShift*500
	if adjusted < 0 {
		adjusted = 0
	}

	progress := math.Mod(adjusted, loop) / loop
	// tau is the unwrapped cycle angle. Non-integer frequency terms below are
	// evaluated on tau rather than on wrapped progress so every mode stays
	// continuous in time across the 0/1 wrap.
	tau := 2 * math.Pi * adjusted / loop
	if cfg.Reverse {
		progress = math.Mod(1-progress, 1)
		tau = -tau
	}

	p := Pose{
		DynamicRadius: radius,
		FinalOpacity:  opacity,
		Progress:      progress,
		AdjustedTime:  adjusted,
		UniqueID:      uid,
	}
	in := cfg.Intensity

	switch cfg.Mode {
	case AnimGrow:
		p.DynamicRadius = radius * progress
		p.FinalOpacity = opacity * growFade(progress, cfg.FadeIn, cfg.FadeOut)

	case AnimPulse:
		pulse := 0.5 + 0.5*math.Sin(tau)
		breathing := 1 + 0.15*in*math.Sin(2*tau)*(1+0.3*math.Sin(3*tau))
		p.DynamicRadius = radius * pulse * breathing
		p.FinalOpacity = opacity * (1 + 0.15*in*math.Sin(2.6*tau))

	case AnimOrbit:
		orbitR := radius * 0.2 * in * (1 + 0.25*math.Sin(2.7*tau))
		p.OffsetX = orbitR * math.Cos(tau)
		p.OffsetY = orbitR * math.Sin(tau)
		p.DynamicRadius = radius * (1 + 0.1*in*math.Sin(1.7*tau))
		p.RotationOffset = 0.3 * math.Sin(1.3*tau)

	case AnimWaveform:
		p.OffsetY = radius * 0.15 * in * (math.Sin(tau) + 0.5*math.Sin(2.3*tau))
		p.DynamicRadius = radius * (1 + 0.12*in*math.Sin(3.1*tau))
		p.FinalOpacity = opacity * (1 + 0.1*math.Sin(1.9*tau))

	case AnimSpiral:
		swell := 0.5 - 0.5*math.Cos(tau)
		rho := radius * 0.25 * in * swell
		p.OffsetX = rho * math.Cos(2*tau)
		p.OffsetY = rho * math.Sin(2*tau)
		p.DynamicRadius = radius * (1 - 0.15*in*swell)
		p.RotationOffset = 0.5 * tau

	case AnimHarmonic:
		// Lissajous figure with a=3 and b slightly detuned from 1.5 so the
		// pattern precesses instead of retracing itself.
		b := 1.5 + 0.05*seedRand(uid+7)
		amp := radius * 0.2 * in
		p.OffsetX = amp * math.Sin(3*tau)
		p.OffsetY = amp * math.Sin(b*tau)
		p.DynamicRadius = radius * (1 + 0.08*in*math.Sin(2*tau))
		p.RotationOffset = 0.2 * math.Sin(tau)

	case AnimSwarm:
		f1 := 0.7 + 1.6*seedRand(uid+1)
		f2 := 0.9 + 1.8*seedRand(uid+2)
		f3 := 1.1 + 1.4*seedRand(uid+3)
		amp := radius * 0.25 * in
		p.OffsetX = amp * (math.Sin(f1*tau) + 0.5*math.Cos(f2*tau))
		p.OffsetY = amp * (math.Cos(f1*tau) + 0.5*math.Sin(f3*tau))
		p.DynamicRadius = radius * (1 + 0.1*in*math.Sin(f2*tau))
		p.FinalOpacity = opacity * (0.9 + 0.1*math.Sin(f3*tau))
		p.RotationOffset = 0.3 * math.Sin(f1*tau)

	case AnimBreathe:
		breath := (math.Sin(tau) + 0.3*math.Sin(2*tau+1.3)) / 1.3
		p.DynamicRadius = radius * (1 + 0.18*in*breath)
		p.FinalOpacity = opacity * (0.85 + 0.15*math.Sin(tau+math.Pi/2))
	}

	if p.DynamicRadius < 0 {
		p.DynamicRadius = 0
	}
	p.FinalOpacity = clamp01(p.FinalOpacity)
	return p
}

// growFade is the trapezoidal opacity envelope for Grow mode: a linear ramp
// over the FadeIn fraction, full opacity in the middle, and a linear ramp
// down over the FadeOut fraction. The windows may overlap (fadeIn+fadeOut
// can exceed 1); the result is the lesser of the two ramps, clamped.
func growFade(progress, fadeIn, fadeOut float64) float64 {
	fade := 1.0
	if fadeIn > 0 && progress < fadeIn {
		fade = progress / fadeIn
	}
	if fadeOut > 0 && progress > 1-fadeOut {
		out := (1 - progress) / fadeOut
		if out < fade {
			fade = out
		}
	}
	return clamp01(fade)
}
