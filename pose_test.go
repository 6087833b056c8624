package sigil

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

var allModes = []AnimationMode{
	AnimGrow, AnimPulse, AnimOrbit, AnimWaveform,
	AnimSpiral, AnimHarmonic, AnimSwarm, AnimBreathe,
}

var testIdentity = ShapeIdentity{Kind: ShapePolygon, VertexCount: 6, OffsetX: 320, OffsetY: 240}

func TestComputePoseDeterministic(t *testing.T) {
	for _, mode := range allModes {
		cfg := ShapeAnimationConfig{
			Mode:           mode,
			VariableTiming: true,
			StaggerDelay:   300,
			FadeIn:         0.2,
			FadeOut:        0.2,
		}
		a := ComputePose(1234.5, 100, 0.8, cfg, testIdentity)
		b := ComputePose(1234.5, 100, 0.8, cfg, testIdentity)
		if a != b {
			t.Errorf("mode %d: poses differ: %+v vs %+v", mode, a, b)
		}
	}
}

func TestGrowRampInsideFadeWindow(t *testing.T) {
	// At progress 0.1 the radius has grown to 10% and the fade-in ramp
	// (0.2 of the cycle) is at its midpoint.
	cfg := ShapeAnimationConfig{Mode: AnimGrow, FadeIn: 0.2, FadeOut: 0.2}
	p := ComputePose(600, 100, 1, cfg, testIdentity) // 600ms of a 6000ms loop

	if !approxEqual(p.Progress, 0.1, 1e-9) {
		t.Fatalf("progress = %f, want 0.1", p.Progress)
	}
	if !approxEqual(p.DynamicRadius, 10, 1e-9) {
		t.Errorf("dynamicRadius = %f, want 10", p.DynamicRadius)
	}
	if !approxEqual(p.FinalOpacity, 0.5, 1e-9) {
		t.Errorf("finalOpacity = %f, want 0.5", p.FinalOpacity)
	}
}

func TestPulsePeakRadius(t *testing.T) {
	// Quarter cycle: base phase π/2, pulse = 1. The breathing layer is
	// sin(2τ)-carried, which is zero at τ=π/2, so the radius is exactly
	// the resting size.
	cfg := ShapeAnimationConfig{Mode: AnimPulse}
	p := ComputePose(1500, 100, 1, cfg, testIdentity)

	if !approxEqual(p.Progress, 0.25, 1e-9) {
		t.Fatalf("progress = %f, want 0.25", p.Progress)
	}
	if !approxEqual(p.DynamicRadius, 100, 1e-9) {
		t.Errorf("dynamicRadius = %f, want 100", p.DynamicRadius)
	}
}

func TestPulseTroughRadius(t *testing.T) {
	// Three-quarter cycle: pulse = 0, radius collapses regardless of breathing.
	cfg := ShapeAnimationConfig{Mode: AnimPulse}
	p := ComputePose(4500, 100, 1, cfg, testIdentity)
	if !approxEqual(p.DynamicRadius, 0, 1e-9) {
		t.Errorf("dynamicRadius = %f, want 0", p.DynamicRadius)
	}
}

func TestOpacityBoundsAllModes(t *testing.T) {
	for _, mode := range allModes {
		cfg := ShapeAnimationConfig{
			Mode:      mode,
			Intensity: 3, // exaggerate modulation to stress the clamp
			FadeIn:    0.8,
			FadeOut:   0.8, // overlapping fade windows (sum > 1)
		}
		for step := 0; step <= 120; step++ {
			tm := float64(step) * 97.3
			p := ComputePose(tm, 100, 1, cfg, testIdentity)
			if p.FinalOpacity < 0 || p.FinalOpacity > 1 {
				t.Fatalf("mode %d at t=%f: opacity %f out of [0,1]", mode, tm, p.FinalOpacity)
			}
			if p.Progress < 0 || p.Progress >= 1 {
				t.Fatalf("mode %d at t=%f: progress %f out of [0,1)", mode, tm, p.Progress)
			}
			if p.DynamicRadius < 0 {
				t.Fatalf("mode %d at t=%f: negative radius %f", mode, tm, p.DynamicRadius)
			}
		}
	}
}

func TestGrowFadeOverlapStillRamps(t *testing.T) {
	// fadeIn+fadeOut = 1.6: both windows overlap mid-cycle. The envelope is
	// the lesser of the two ramps and must stay within [0, 1].
	cfg := ShapeAnimationConfig{Mode: AnimGrow, FadeIn: 0.8, FadeOut: 0.8}
	mid := ComputePose(3000, 100, 1, cfg, testIdentity) // progress 0.5
	want := 0.5 / 0.8
	if !approxEqual(mid.FinalOpacity, want, 1e-9) {
		t.Errorf("opacity at overlap midpoint = %f, want %f", mid.FinalOpacity, want)
	}
}

func TestReverseInvertsProgress(t *testing.T) {
	fwd := ComputePose(600, 100, 1, ShapeAnimationConfig{Mode: AnimGrow}, testIdentity)
	rev := ComputePose(600, 100, 1, ShapeAnimationConfig{Mode: AnimGrow, Reverse: true}, testIdentity)
	if !approxEqual(fwd.Progress, 0.1, 1e-9) {
		t.Fatalf("forward progress = %f, want 0.1", fwd.Progress)
	}
	if !approxEqual(rev.Progress, 0.9, 1e-9) {
		t.Errorf("reverse progress = %f, want 0.9", rev.Progress)
	}
}

func TestReverseProgressStaysInRange(t *testing.T) {
	// Reverse of progress 0 would be 1; it must wrap back into [0, 1).
	rev := ComputePose(0, 100, 1, ShapeAnimationConfig{Mode: AnimGrow, Reverse: true}, testIdentity)
	if rev.Progress < 0 || rev.Progress >= 1 {
		t.Errorf("reverse progress at t=0 = %f, want within [0,1)", rev.Progress)
	}
}

func TestStaggerDelayHoldsStart(t *testing.T) {
	cfg := ShapeAnimationConfig{Mode: AnimGrow, StaggerDelay: 5000}
	delay := math.Mod(testIdentity.UniqueID(), 5000)
	if delay <= 0 {
		t.Skip("identity happens to have zero stagger")
	}
	early := ComputePose(delay/2, 100, 1, cfg, testIdentity)
	if early.AdjustedTime != 0 {
		t.Errorf("adjustedTime before delay elapsed = %f, want 0", early.AdjustedTime)
	}
	later := ComputePose(delay+600, 100, 1, cfg, testIdentity)
	if !approxEqual(later.AdjustedTime, 600, 1e-9) {
		t.Errorf("adjustedTime = %f, want 600", later.AdjustedTime)
	}
}

func TestChildPhaseShiftAdvancesTime(t *testing.T) {
	cfg := ShapeAnimationConfig{Mode: AnimGrow, ChildPhaseShift: 2}
	p := ComputePose(1000, 100, 1, cfg, testIdentity)
	if !approxEqual(p.AdjustedTime, 2000, 1e-9) {
		t.Errorf("adjustedTime = %f, want 2000 (1000 + 2*500)", p.AdjustedTime)
	}
}

func TestVariableTimingDesynchronizesInstances(t *testing.T) {
	cfg := ShapeAnimationConfig{Mode: AnimGrow, VariableTiming: true}
	a := ComputePose(9000, 100, 1, cfg, ShapeIdentity{Kind: ShapePolygon, VertexCount: 6, OffsetX: 100})
	b := ComputePose(9000, 100, 1, cfg, ShapeIdentity{Kind: ShapePolygon, VertexCount: 6, OffsetX: 200})
	if approxEqual(a.Progress, b.Progress, 1e-9) {
		t.Error("distinct identities with variable timing should have drifted apart")
	}
}

func TestSpeedScalesTime(t *testing.T) {
	slow := ComputePose(600, 100, 1, ShapeAnimationConfig{Mode: AnimGrow, Speed: 1}, testIdentity)
	fast := ComputePose(300, 100, 1, ShapeAnimationConfig{Mode: AnimGrow, Speed: 2}, testIdentity)
	if !approxEqual(slow.Progress, fast.Progress, 1e-9) {
		t.Errorf("speed 2 at t=300 (progress %f) should match speed 1 at t=600 (progress %f)",
			fast.Progress, slow.Progress)
	}
}

func TestSwarmVariesPerInstance(t *testing.T) {
	cfg := ShapeAnimationConfig{Mode: AnimSwarm}
	a := ComputePose(2500, 100, 1, cfg, ShapeIdentity{Kind: ShapeStar, VertexCount: 5, OffsetX: 50})
	b := ComputePose(2500, 100, 1, cfg, ShapeIdentity{Kind: ShapeStar, VertexCount: 5, OffsetX: 51})
	if approxEqual(a.OffsetX, b.OffsetX, 1e-9) && approxEqual(a.OffsetY, b.OffsetY, 1e-9) {
		t.Error("swarm instances with distinct identities should drift differently")
	}
}
