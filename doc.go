// Package sigil procedurally draws animated geometric motifs for
// [Ebitengine].
//
// Sigil turns an ordered vertex path into a continuously animated,
// wave-perturbed ribbon with taper, dash, glow, and outline effects, and
// recursively instances shapes into fractal and time-offset "stacked"
// arrangements. It is the rendering core of a sacred-geometry visualizer;
// UI, audio analysis, and elaborate motif layouts live in the host.
//
// # Quick start
//
// Create a surface over your frame image, an [Instancer] over the surface,
// and draw a [Shape] every frame with the current time in milliseconds:
//
//	surface := sigil.NewMeshSurface(screen)
//	inst := sigil.NewInstancer(surface)
//	inst.Draw(sigil.Shape{
//		Kind: sigil.ShapeStar, Center: sigil.Vec2{X: 320, Y: 240},
//		Radius: 120, Thickness: 2, VertexCount: 6,
//		Anim:    sigil.ShapeAnimationConfig{Mode: sigil.AnimPulse},
//		Wave:    sigil.WaveSpec{Type: sigil.WaveSine, Amplitude: 8, Frequency: 0.3},
//		Fractal: sigil.FractalSpec{Depth: 2},
//	}, timeMs)
//
// # Architecture
//
// Four subsystems layer bottom-up:
//
//   - [ComputePose] maps (time, config, shape identity) to a pose — radius
//     scale, opacity, positional offset, rotation offset — under eight motion
//     regimes with deterministic per-instance variation.
//   - [SampleWave] and [SampleWaveXY] evaluate scalar and parametric
//     waveforms with frequency/amplitude/phase/harmonic modulation.
//   - [Liner] (the "line factory") resamples a vertex path at high arc-length
//     density, displaces it by a seam-safe phase-synchronized wave, and
//     strokes the result onto a [Surface].
//   - [Instancer] re-invokes pose and liner to build fractal children and
//     stacked ghost copies.
//
// Everything is pure and synchronous: the host drives one call per frame,
// and identical inputs always produce identical output. [MeshSurface]
// strokes onto an ebiten image; [Recorder] captures stroke commands for
// testing or batching.
//
// Presets load from YAML via [LoadPreset]; live transitions between presets
// use [SpecTween] (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sigil
