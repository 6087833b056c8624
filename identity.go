package sigil

import "math"

// ShapeKind identifies a shape family. Used both for vertex generation
// dispatch (exhaustive switch in shapes.go) and as an input to the identity
// hash that seeds per-instance animation variation.
type ShapeKind uint8

const (
	ShapePolygon ShapeKind = iota // regular N-gon
	ShapeStar                     // N-pointed star
	ShapeCircle                   // high-resolution N-gon approximation
	ShapeCustom                   // caller-supplied PathFunc
)

// ShapeIdentity is the per-instance identity that drives deterministic
// animation variation. Two instances with equal identities animate
// identically; nothing else feeds the variation.
type ShapeIdentity struct {
	Kind        ShapeKind
	VertexCount int
	OffsetX     float64 // position offset from the layout origin
	OffsetY     float64
}

// UniqueID returns the deterministic identity hash. It is a pure function of
// the identity fields: kind code, vertex count, and the scaled position
// offsets. No process-wide state is involved, so independent instances can be
// posed concurrently.
func (id ShapeIdentity) UniqueID() float64 {
	return float64(id.Kind)*1000 +
		float64(id.VertexCount)*100 +
		math.Abs(id.OffsetX)*10 +
		math.Abs(id.OffsetY)*10
}

// seedRand maps a seed to a deterministic pseudo-random value in [0, 1).
// The sine-based hash is load-bearing: swapping it for a platform RNG would
// break pose reproducibility.
func seedRand(seed float64) float64 {
	v := math.Sin(seed) * 43758.5453123
	return v - math.Floor(v)
}
