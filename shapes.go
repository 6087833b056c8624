package sigil

import "math"

// PathFunc generates an ordered vertex path for a shape. Implementations for
// elaborate sacred-geometry layouts live outside the core; the core only
// needs the resulting vertex list.
type PathFunc func(center Vec2, radius, rotation float64) []Vec2

// AppendShapePath appends the vertex path for the given shape to dst and
// returns the extended slice. The switch over ShapeKind is exhaustive, so a
// new kind without a generator fails to compile rather than silently drawing
// nothing.
//
// vertexCount is the polygon/star order (minimum 3). custom is consulted only
// for ShapeCustom.
func AppendShapePath(dst []Vec2, kind ShapeKind, center Vec2, radius, rotation float64, vertexCount int, custom PathFunc) []Vec2 {
	if vertexCount < 3 {
		vertexCount = 3
	}

	switch kind {
	case ShapePolygon:
		return appendRegularPolygon(dst, center, radius, rotation, vertexCount)

	case ShapeStar:
		// Alternating outer/inner vertices; inner radius at the classic 0.4.
		n := vertexCount * 2
		for i := 0; i < n; i++ {
			r := radius
			if i%2 == 1 {
				r = radius * 0.4
			}
			a := rotation + float64(i)/float64(n)*2*math.Pi - math.Pi/2
			dst = append(dst, Vec2{
				X: center.X + r*math.Cos(a),
				Y: center.Y + r*math.Sin(a),
			})
		}
		return closePath(dst, len(dst)-n)

	case ShapeCircle:
		// High-resolution polygon approximation.
		n := vertexCount
		if n < 48 {
			n = 48
		}
		return appendRegularPolygon(dst, center, radius, rotation, n)

	case ShapeCustom:
		if custom == nil {
			return dst
		}
		return append(dst, custom(center, radius, rotation)...)
	}

	// Unreachable: the switch above covers every ShapeKind.
	return dst
}

// appendRegularPolygon appends a closed regular N-gon with its first vertex
// at the top.
func appendRegularPolygon(dst []Vec2, center Vec2, radius, rotation float64, n int) []Vec2 {
	start := len(dst)
	for i := 0; i < n; i++ {
		a := rotation + float64(i)/float64(n)*2*math.Pi - math.Pi/2
		dst = append(dst, Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return closePath(dst, start)
}

// closePath appends a copy of the vertex at start so the path's first and
// last vertices coincide.
func closePath(dst []Vec2, start int) []Vec2 {
	return append(dst, dst[start])
}
