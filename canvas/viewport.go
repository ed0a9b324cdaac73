package canvas

// Viewport is an inclusive rectangle in logical-pixel coordinates,
// clamped to the framebuffer extents at the time it is set.
type Viewport struct {
	X0, Y0, X1, Y1 int
}

// width and height are in logical pixels.
func (v Viewport) width() int  { return v.X1 - v.X0 + 1 }
func (v Viewport) height() int { return v.Y1 - v.Y0 + 1 }

// clampViewport clamps a requested viewport rectangle to the
// framebuffer's actual pixel extents.
func clampViewport(x, y, w, h, fbCols, fbPixelHeight int) Viewport {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w-1, fbCols-1)
	y1 := min(y+h-1, fbPixelHeight-1)
	return Viewport{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// outsideNearFar reports whether a vertex fails the near/far test:
// z < 0 or z > w. Primitives with any vertex outside near/far are
// dropped whole; there is no near-plane clipping (spec.md non-goal).
func outsideNearFar(v Vertex) bool {
	return v.Z < 0 || v.Z > v.W
}

// outsideXY reports whether a vertex's x/y clip-space position falls
// entirely outside the [-w, w] box on either axis.
func outsideXY(v Vertex) bool {
	return v.X < -v.W || v.X > v.W || v.Y < -v.W || v.Y > v.W
}

// rejectTriangle implements the trivial reject of spec.md section
// 4.C3 for a three-vertex primitive: dropped if any vertex is outside
// the near/far bounds, or if every vertex is outside the viewport box.
func rejectTriangle(v0, v1, v2 Vertex) bool {
	outside := true
	for _, v := range [3]Vertex{v0, v1, v2} {
		if outsideNearFar(v) {
			return true
		}
		outside = outside && outsideXY(v)
	}
	return outside
}

// rejectLine is the two-vertex form of the same trivial reject, used
// by line.go instead of passing one vertex twice into rejectTriangle.
func rejectLine(v0, v1 Vertex) bool {
	outside := true
	for _, v := range [2]Vertex{v0, v1} {
		if outsideNearFar(v) {
			return true
		}
		outside = outside && outsideXY(v)
	}
	return outside
}
