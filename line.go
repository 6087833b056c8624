package sigil

import (
	"hash/fnv"
	"math"
)

const (
	// cycleLengthUnit is the path length covered by one wave cycle at
	// Frequency 1. cycles = round(Frequency * length / cycleLengthUnit),
	// forced to an integer so closed paths show no seam.
	cycleLengthUnit = 30.0

	// sampleSpacing is the target arc-length distance between resampled
	// points. minSamples/maxSamples bound the resample density.
	sampleSpacing = 4.0
	minSamples    = 64
	maxSamples    = 2048

	// minStrokeWidth is the smallest width ever handed to a Surface.
	minStrokeWidth = 0.5

	// arcCacheLimit bounds the arc-length table cache. The cache is a pure
	// performance aid; dropping it wholesale never affects output.
	arcCacheLimit = 64
)

// arcTable is a cached cumulative arc-length table for a vertex path.
type arcTable struct {
	cum   []float64
	total float64
}

// Liner is the wave-based continuous-path renderer ("line factory"). It walks
// a vertex path, resamples it at high arc-length density, displaces every
// sample by a phase-synchronized wave, and strokes the result onto a Surface
// with taper, dash, glow, and outline styling.
//
// A Liner is stateless between frames apart from reusable buffers and the
// arc-table cache; it is safe to drive one Liner per goroutine.
type Liner struct {
	surface Surface
	cache   map[uint64]arcTable

	// High-water-mark buffers reused across calls.
	work    []Vec2 // working path (with closing vertex when looped)
	samples []Vec2
	tangent []float64 // tangent angle per sample
	widths  []float64
	runPts  []Vec2 // dash run scratch
	runW    []float64
}

// NewLiner creates a line factory that strokes onto the given surface.
// Panics if surface is nil: a missing draw target is an integration bug, not
// a runtime data problem.
func NewLiner(surface Surface) *Liner {
	if surface == nil {
		panic("sigil: nil surface")
	}
	return &Liner{
		surface: surface,
		cache:   make(map[uint64]arcTable),
	}
}

// Cycles returns the integer wave cycle count for a path of the given length:
// max(1, round(frequency·length/30)). Exposing it keeps the seam guarantee
// testable without rendering.
func Cycles(frequency, length float64) int {
	c := int(math.Round(frequency * length / cycleLengthUnit))
	if c < 1 {
		c = 1
	}
	return c
}

// RenderPath draws the vertex path as a single styled stroke. Degenerate
// input (fewer than two vertices, zero total length) is a silent no-op; this
// runs every frame inside an animation loop, so malformed data degrades
// rather than erroring.
func (l *Liner) RenderPath(verts []Vec2, style LineStyleSpec, wave WaveSpec, mod ModulationSpec, col Color, baseWidth, timeMs float64) {
	if len(verts) < 2 {
		return
	}
	style = style.normalized()
	wave = wave.normalized()

	closed := style.LoopLine || samePoint(verts[0], verts[len(verts)-1])
	pts := l.workingPath(verts, closed)

	table := l.arcLengths(pts, closed)
	if table.total <= 0 {
		return
	}

	if wave.Type == WaveNone || wave.Amplitude == 0 {
		// Fast path: style the raw polyline without resampling.
		l.fastPath(pts, table, style, col, baseWidth)
		return
	}

	cycles := float64(Cycles(wave.Frequency, table.total))
	count := sampleCount(table.total)

	if cap(l.samples) < count {
		l.samples = make([]Vec2, count)
		l.tangent = make([]float64, count)
		l.widths = make([]float64, count)
	}
	l.samples = l.samples[:count]
	l.tangent = l.tangent[:count]
	l.widths = l.widths[:count]

	phase := wave.Phase + animatedPhase(wave, timeMs)
	tSec := timeMs / 1000
	parametric := wave.Type.IsParametric()

	seg := 0
	for i := 0; i < count; i++ {
		p := float64(i) / float64(count-1)
		x, y, angle := samplePath(pts, table.cum, p*table.total, &seg)

		forward := p*2*math.Pi*cycles + phase
		var dx, dy float64
		if parametric {
			wx, wy := l.evalXY(forward, p, cycles, phase, wave, mod, tSec)
			// Rotate the parametric pair into the local tangent/normal frame.
			sin, cos := math.Sincos(angle)
			dx = wx*cos - wy*sin
			dy = wx*sin + wy*cos
		} else {
			d := l.evalScalar(forward, p, cycles, phase, wave, mod, tSec)
			// Scalar displacement is always perpendicular to the tangent.
			dx = -math.Sin(angle) * d
			dy = math.Cos(angle) * d
		}

		l.samples[i] = Vec2{X: x + dx, Y: y + dy}
		l.tangent[i] = angle
		l.widths[i] = strokeWidth(baseWidth, p, style.Taper)
	}

	l.emit(l.samples, l.widths, style, col)
}

// evalScalar evaluates the scalar wave at the blended phase. Bidirectional
// blends a forward and a reverse-running wave with weight sin(progress·π) —
// zero at both ends, one at the midpoint — symmetrizing the displacement
// about the seam for any waveform.
func (l *Liner) evalScalar(forward, p, cycles, phase float64, wave WaveSpec, mod ModulationSpec, tSec float64) float64 {
	d := sampleScalar(forward, wave, mod, tSec)
	if wave.Bidirectional {
		reverse := (1-p)*2*math.Pi*cycles + phase + math.Pi
		w := math.Sin(p * math.Pi)
		d = (1-w)*d + w*sampleScalar(reverse, wave, mod, tSec)
	}
	return d
}

// evalXY is the parametric counterpart of evalScalar.
func (l *Liner) evalXY(forward, p, cycles, phase float64, wave WaveSpec, mod ModulationSpec, tSec float64) (float64, float64) {
	x, y := sampleXY(forward, wave, mod, tSec)
	if wave.Bidirectional {
		reverse := (1-p)*2*math.Pi*cycles + phase + math.Pi
		w := math.Sin(p * math.Pi)
		rx, ry := sampleXY(reverse, wave, mod, tSec)
		x = (1-w)*x + w*rx
		y = (1-w)*y + w*ry
	}
	return x, y
}

// fastPath styles the working path directly, skipping resampling.
func (l *Liner) fastPath(pts []Vec2, table arcTable, style LineStyleSpec, col Color, baseWidth float64) {
	n := len(pts)
	if cap(l.widths) < n {
		l.widths = make([]float64, n)
	}
	l.widths = l.widths[:n]
	for i := range pts {
		p := table.cum[i] / table.total
		l.widths[i] = strokeWidth(baseWidth, p, style.Taper)
	}
	l.emit(pts, l.widths, style, col)
}

// emit performs the layered stroke submission: glow halos first, then the
// outline underlay, then the dashed-or-solid main stroke.
func (l *Liner) emit(pts []Vec2, widths []float64, style LineStyleSpec, col Color) {
	if g := style.Glow; g.Intensity > 0 {
		glowCol := g.Color
		if glowCol == (Color{}) {
			glowCol = col
		}
		l.strokeScaled(pts, widths, 3.0, glowCol.WithAlpha(0.25*g.Intensity), BlendAdd)
		l.strokeScaled(pts, widths, 2.0, glowCol.WithAlpha(0.4*g.Intensity), BlendAdd)
	}

	if o := style.Outline; o.Enabled {
		l.strokeWidened(pts, widths, o.Width*2, o.Color, BlendNormal)
	}

	if len(style.Dash.Pattern) > 0 {
		l.strokeDashed(pts, widths, style.Dash, col)
		return
	}
	l.surface.StrokePolyline(pts, widths, col, BlendNormal)
}

// strokeScaled strokes with every width multiplied by factor.
func (l *Liner) strokeScaled(pts []Vec2, widths []float64, factor float64, col Color, blend BlendMode) {
	if cap(l.runW) < len(widths) {
		l.runW = make([]float64, len(widths))
	}
	w := l.runW[:len(widths)]
	for i, v := range widths {
		w[i] = v * factor
	}
	l.surface.StrokePolyline(pts, w, col, blend)
}

// strokeWidened strokes with a constant amount added to every width.
func (l *Liner) strokeWidened(pts []Vec2, widths []float64, extra float64, col Color, blend BlendMode) {
	if cap(l.runW) < len(widths) {
		l.runW = make([]float64, len(widths))
	}
	w := l.runW[:len(widths)]
	for i, v := range widths {
		w[i] = v + extra
	}
	l.surface.StrokePolyline(pts, w, col, blend)
}

// strokeDashed splits the polyline into "on" runs along its arc length and
// strokes each run separately. Run boundaries land on sample points; at the
// renderer's sample density the error is below a pixel.
func (l *Liner) strokeDashed(pts []Vec2, widths []float64, dash DashSpec, col Color) {
	var patLen float64
	for _, seg := range dash.Pattern {
		patLen += seg
	}
	if patLen <= 0 {
		l.surface.StrokePolyline(pts, widths, col, BlendNormal)
		return
	}

	if cap(l.runPts) < len(pts) {
		l.runPts = make([]Vec2, 0, len(pts))
		l.runW = make([]float64, 0, len(pts))
	}
	run := l.runPts[:0]
	runW := l.runW[:0]

	flush := func() {
		if len(run) >= 2 {
			l.surface.StrokePolyline(run, runW, col, BlendNormal)
		}
		run = run[:0]
		runW = runW[:0]
	}

	dist := 0.0
	for i, pt := range pts {
		if i > 0 {
			dx := pt.X - pts[i-1].X
			dy := pt.Y - pts[i-1].Y
			dist += math.Sqrt(dx*dx + dy*dy)
		}
		if dashOn(dist+dash.Offset, dash.Pattern, patLen) {
			run = append(run, pt)
			runW = append(runW, widths[i])
		} else {
			flush()
		}
	}
	flush()

	l.runPts = run[:0]
	l.runW = runW[:0]
}

// dashOn reports whether the given arc-length position falls in an "on"
// segment of the alternating pattern.
func dashOn(dist float64, pattern []float64, patLen float64) bool {
	pos := math.Mod(dist, patLen)
	if pos < 0 {
		pos += patLen
	}
	for i, seg := range pattern {
		if pos < seg {
			return i%2 == 0
		}
		pos -= seg
	}
	return len(pattern)%2 == 0
}

// strokeWidth applies the taper profile at path position p and enforces the
// minimum visible width.
func strokeWidth(base, p float64, taper TaperSpec) float64 {
	f := 1.0
	switch taper.Type {
	case TaperStart:
		if p < taper.Start {
			f = p / taper.Start
		}
	case TaperEnd:
		if p > 1-taper.End {
			f = (1 - p) / taper.End
		}
	case TaperBoth:
		if p < taper.Start {
			f = p / taper.Start
		}
		if p > 1-taper.End {
			out := (1 - p) / taper.End
			if out < f {
				f = out
			}
		}
	}
	w := base * clamp01(f)
	if w < minStrokeWidth {
		w = minStrokeWidth
	}
	return w
}

// workingPath returns the path to render: the input vertices, plus a closing
// copy of the first vertex when the style loops an open path.
func (l *Liner) workingPath(verts []Vec2, closed bool) []Vec2 {
	if !closed || samePoint(verts[0], verts[len(verts)-1]) {
		return verts
	}
	need := len(verts) + 1
	if cap(l.work) < need {
		l.work = make([]Vec2, need)
	}
	l.work = l.work[:need]
	copy(l.work, verts)
	l.work[need-1] = verts[0]
	return l.work
}

// arcLengths returns the cumulative arc-length table for pts, consulting the
// content-hash cache first.
func (l *Liner) arcLengths(pts []Vec2, closed bool) arcTable {
	key := pathHash(pts, closed)
	if t, ok := l.cache[key]; ok && len(t.cum) == len(pts) {
		return t
	}

	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		cum[i] = cum[i-1] + math.Sqrt(dx*dx+dy*dy)
	}
	t := arcTable{cum: cum, total: cum[len(cum)-1]}

	if len(l.cache) >= arcCacheLimit {
		clear(l.cache)
	}
	l.cache[key] = t
	return t
}

// pathHash is an FNV-1a content hash of the vertex list.
func pathHash(pts []Vec2, closed bool) uint64 {
	h := fnv.New64a()
	var buf [16]byte
	for _, p := range pts {
		putFloat64(buf[0:8], p.X)
		putFloat64(buf[8:16], p.Y)
		h.Write(buf[:])
	}
	if closed {
		h.Write([]byte{1})
	}
	return h.Sum64()
}

func putFloat64(b []byte, v float64) {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * i))
	}
}

// samplePath locates the point at arc-length distance d along pts using the
// cumulative table, returning the interpolated position and the local tangent
// angle. seg is a monotonically advancing segment cursor.
func samplePath(pts []Vec2, cum []float64, d float64, seg *int) (x, y, angle float64) {
	last := len(pts) - 1
	for *seg < last-1 && (cum[*seg+1] < d || cum[*seg+1] == cum[*seg]) {
		*seg++
	}
	i := *seg
	// Duplicate consecutive vertices carry no direction; take the tangent
	// from the nearest preceding real segment.
	for i > 0 && cum[i+1] == cum[i] {
		i--
	}
	a, b := pts[i], pts[i+1]
	segLen := cum[i+1] - cum[i]
	t := 0.0
	if segLen > 0 {
		t = (d - cum[i]) / segLen
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t, math.Atan2(b.Y-a.Y, b.X-a.X)
}

// sampleCount returns the resample density for a path of the given length.
func sampleCount(length float64) int {
	n := int(length / sampleSpacing)
	if n < minSamples {
		n = minSamples
	}
	if n > maxSamples {
		n = maxSamples
	}
	return n
}

// samePoint reports whether two vertices coincide within float tolerance.
func samePoint(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
