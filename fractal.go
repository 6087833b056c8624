package sigil

import "math"

// goldenAngle is the golden-ratio angular step used by sacred positioning.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Shape is one animated shape instance: resting geometry, styling, and the
// animation/fractal/stacking configuration that drives it. Shapes are plain
// values; the instancer never retains or mutates them.
type Shape struct {
	Kind        ShapeKind
	Center      Vec2 // offset from the layout origin; feeds the identity hash
	Radius      float64
	Thickness   float64 // stroke width, default 1
	Opacity     float64 // default 1
	Rotation    float64 // radians
	VertexCount int
	Color       Color    // zero value means white
	Custom      PathFunc // generator for ShapeCustom

	Anim    ShapeAnimationConfig
	Style   LineStyleSpec
	Wave    WaveSpec
	Mod     ModulationSpec
	Fractal FractalSpec
	Stack   StackSpec
}

// normalized fills shape defaults.
func (sh Shape) normalized() Shape {
	if sh.Thickness == 0 {
		sh.Thickness = 1
	}
	if sh.Opacity == 0 {
		sh.Opacity = 1
	}
	if sh.Color == (Color{}) {
		sh.Color = ColorWhite
	}
	return sh
}

// Instancer orchestrates repeated AnimationEngine + line-factory invocations
// to build fractal children and time-offset stacked ghost copies. It owns a
// Liner and a reusable path buffer; one Instancer per goroutine.
type Instancer struct {
	liner   *Liner
	pathBuf []Vec2
}

// NewInstancer creates an instancer stroking onto the given surface.
// Panics if surface is nil.
func NewInstancer(surface Surface) *Instancer {
	return &Instancer{liner: NewLiner(surface)}
}

// Liner returns the underlying line factory, for hosts that also render
// free-standing paths.
func (ins *Instancer) Liner() *Liner {
	return ins.liner
}

// Draw renders the shape at the given wall-clock time: the fractal tree
// first, then any stacked ghost copies of the base shape at shifted times.
func (ins *Instancer) Draw(sh Shape, timeMs float64) {
	sh = sh.normalized()
	fr := sh.Fractal.normalized()

	ins.drawTree(sh, fr, timeMs, fr.Depth, 0)

	st := sh.Stack.normalized()
	for i := 1; i <= st.Count; i++ {
		ghost := sh
		ghost.Opacity *= math.Pow(st.OpacityFalloff, float64(i))
		ins.drawOne(ghost, timeMs+st.Offset+float64(i)*st.Interval, 0)
	}
}

// drawTree draws the base shape, then recurses into childCount children at
// equal angular spacing around the parent's rim, each scaled and attenuated.
// Children receive fresh parameter copies, never a reference to the parent,
// so the recursion is trivially cycle-free.
func (ins *Instancer) drawTree(sh Shape, fr FractalSpec, timeMs float64, depth int, phaseShift float64) {
	ins.drawOne(sh, timeMs, phaseShift)
	if depth <= 1 {
		return
	}

	for i := 0; i < fr.ChildCount; i++ {
		angle := sh.Rotation - math.Pi/2 + float64(i)/float64(fr.ChildCount)*2*math.Pi
		if fr.SacredPositioning {
			// Pull toward the golden-angle spiral positions.
			angle = lerp(angle, float64(i)*goldenAngle-math.Pi/2, fr.Intensity)
		}

		child := sh
		child.Center = Vec2{
			X: sh.Center.X + math.Cos(angle)*sh.Radius,
			Y: sh.Center.Y + math.Sin(angle)*sh.Radius,
		}
		child.Radius = sh.Radius * fr.Scale
		child.Thickness = sh.Thickness * fr.ThicknessFalloff
		child.Opacity = sh.Opacity * fr.ThicknessFalloff
		ins.drawTree(child, fr, timeMs, depth-1, phaseShift+1)
	}
}

// drawOne poses and strokes a single shape instance.
func (ins *Instancer) drawOne(sh Shape, timeMs, phaseShift float64) {
	cfg := sh.Anim
	cfg.ChildPhaseShift += phaseShift

	id := ShapeIdentity{
		Kind:        sh.Kind,
		VertexCount: sh.VertexCount,
		OffsetX:     sh.Center.X,
		OffsetY:     sh.Center.Y,
	}
	pose := ComputePose(timeMs, sh.Radius, sh.Opacity, cfg, id)

	center := Vec2{X: sh.Center.X + pose.OffsetX, Y: sh.Center.Y + pose.OffsetY}
	ins.pathBuf = AppendShapePath(ins.pathBuf[:0], sh.Kind, center,
		pose.DynamicRadius, sh.Rotation+pose.RotationOffset, sh.VertexCount, sh.Custom)

	ins.liner.RenderPath(ins.pathBuf, sh.Style, sh.Wave, sh.Mod,
		sh.Color.WithAlpha(pose.FinalOpacity), sh.Thickness, timeMs)
}
