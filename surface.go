package sigil

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface receives the stroke commands produced by the line factory and the
// fractal instancer. The core never touches pixels itself; a Surface decides
// how a polyline becomes visible.
//
// widths carries one full stroke width per point (taper applied); it is
// always the same length as pts. Both slices are only valid during the call.
type Surface interface {
	StrokePolyline(pts []Vec2, widths []float64, col Color, blend BlendMode)
}

// --- MeshSurface ---

// MeshSurface strokes polylines as ribbon triangle meshes on an ebiten image.
// Each polyline becomes a 2N-vertex strip: every point is expanded along its
// miter-averaged perpendicular by half the local width.
type MeshSurface struct {
	target *ebiten.Image

	// High-water-mark buffers reused across strokes.
	verts []ebiten.Vertex
	inds  []uint16
}

// NewMeshSurface creates a surface that strokes onto target.
func NewMeshSurface(target *ebiten.Image) *MeshSurface {
	return &MeshSurface{target: target}
}

// SetTarget redirects subsequent strokes to a new image.
func (m *MeshSurface) SetTarget(target *ebiten.Image) {
	m.target = target
}

var strokePixelImage *ebiten.Image

// ensureStrokePixel returns a lazily-initialized 1x1 white pixel image shared
// by all untextured strokes.
func ensureStrokePixel() *ebiten.Image {
	if strokePixelImage == nil {
		strokePixelImage = ebiten.NewImage(1, 1)
		strokePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return strokePixelImage
}

// StrokePolyline builds the ribbon mesh and submits it via DrawTriangles.
func (m *MeshSurface) StrokePolyline(pts []Vec2, widths []float64, col Color, blend BlendMode) {
	n := len(pts)
	if n < 2 {
		return
	}

	numVerts := n * 2
	numInds := (n - 1) * 6
	if cap(m.verts) < numVerts {
		m.verts = make([]ebiten.Vertex, numVerts)
	}
	m.verts = m.verts[:numVerts]
	if cap(m.inds) < numInds {
		m.inds = make([]uint16, numInds)
	}
	m.inds = m.inds[:numInds]

	// Premultiplied vertex color over the shared white pixel.
	ca := float32(col.A)
	cr := float32(col.R) * ca
	cg := float32(col.G) * ca
	cb := float32(col.B) * ca

	for i := 0; i < n; i++ {
		var nx, ny float64
		if i == 0 {
			nx, ny = segmentNormal(pts[0], pts[1])
		} else if i == n-1 {
			nx, ny = segmentNormal(pts[n-2], pts[n-1])
		} else {
			// Average of adjacent segment normals, rescaled to keep the
			// stroke width at the joint (miter, clamped to 2x).
			nx0, ny0 := segmentNormal(pts[i-1], pts[i])
			nx1, ny1 := segmentNormal(pts[i], pts[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			dot := nx0*nx + ny0*ny
			if dot > 0.1 {
				scale := 1.0 / dot
				if scale > 2.0 {
					scale = 2.0
				}
				nx *= scale
				ny *= scale
			}
		}

		halfW := widths[i] / 2
		vi := i * 2
		m.verts[vi] = ebiten.Vertex{
			DstX: float32(pts[i].X + nx*halfW),
			DstY: float32(pts[i].Y + ny*halfW),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
		m.verts[vi+1] = ebiten.Vertex{
			DstX: float32(pts[i].X - nx*halfW),
			DstY: float32(pts[i].Y - ny*halfW),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		m.inds[ii+0] = v
		m.inds[ii+1] = v + 1
		m.inds[ii+2] = v + 2
		m.inds[ii+3] = v + 1
		m.inds[ii+4] = v + 3
		m.inds[ii+5] = v + 2
	}

	if m.target == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.Blend = blend.EbitenBlend()
	m.target.DrawTriangles(m.verts, m.inds, ensureStrokePixel(), op)
}

// segmentNormal returns the unit left-perpendicular of the segment from a to b.
func segmentNormal(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// --- Recorder ---

// RecordedStroke is one captured StrokePolyline call.
type RecordedStroke struct {
	Points []Vec2
	Widths []float64
	Color  Color
	Blend  BlendMode
}

// Recorder is a Surface that captures stroke commands instead of drawing.
// Used by tests and available to hosts that batch or serialize strokes.
type Recorder struct {
	Strokes []RecordedStroke
}

// StrokePolyline copies and records the stroke.
func (r *Recorder) StrokePolyline(pts []Vec2, widths []float64, col Color, blend BlendMode) {
	if len(pts) < 2 {
		return
	}
	s := RecordedStroke{
		Points: append([]Vec2(nil), pts...),
		Widths: append([]float64(nil), widths...),
		Color:  col,
		Blend:  blend,
	}
	r.Strokes = append(r.Strokes, s)
}

// Reset discards all recorded strokes, keeping capacity.
func (r *Recorder) Reset() {
	r.Strokes = r.Strokes[:0]
}

// Count returns the number of recorded strokes.
func (r *Recorder) Count() int {
	return len(r.Strokes)
}
