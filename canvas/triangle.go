package canvas

// Triangle rasterizes a triangle in clip space against the given
// viewport and framebuffer. It implements spec.md section 4.C4 in
// full: trivial reject, perspective divide, subpixel screen mapping,
// edge-function setup, back-face cull, bounding-box clamp, scanline
// rasterization with perspective-correct color and a depth test.
func (c *Canvas) Triangle(v0, v1, v2 Vertex) {
	triangle(c.fb, c.viewport, v0, v1, v2)
}

func triangle(fb *Framebuffer, vp Viewport, v0, v1, v2 Vertex) {
	if rejectTriangle(v0, v1, v2) {
		return
	}

	// Perspective divide into NDC.
	x0n, y0n, z0n := v0.X/v0.W, v0.Y/v0.W, v0.Z/v0.W
	x1n, y1n, z1n := v1.X/v1.W, v1.Y/v1.W, v1.Z/v1.W
	x2n, y2n, z2n := v2.X/v2.W, v2.Y/v2.W, v2.Z/v2.W

	halfW := vp.width() / 2
	halfH := vp.height() / 2
	midX := vp.X0 + halfW
	midY := vp.Y0 + halfH

	// Screen mapping (y flips), then snap to the subpixel grid.
	x0 := toSubpixel(x0n * float64(halfW))
	y0 := toSubpixel(y0n * float64(-halfH))
	x1 := toSubpixel(x1n * float64(halfW))
	y1 := toSubpixel(y1n * float64(-halfH))
	x2 := toSubpixel(x2n * float64(halfW))
	y2 := toSubpixel(y2n * float64(-halfH))

	e0 := newEdge(x1, y1, x2, y2)
	e1 := newEdge(x2, y2, x0, y0)
	e2 := newEdge(x0, y0, x1, y1)

	area := e0.c + e1.c + e2.c
	if area <= 0 {
		// Back-facing (or degenerate, zero-area) triangle.
		return
	}
	areaF := float64(area)

	minX := min(x0, x1, x2) >> subpixelBits
	minY := min(y0, y1, y2) >> subpixelBits
	maxX := max(x0, x1, x2) >> subpixelBits
	maxY := max(y0, y1, y2) >> subpixelBits

	minX = clampInt(minX, -halfW, halfW-1)
	minY = clampInt(minY, -halfH, halfH-1)
	maxX = clampInt(maxX, -halfW, halfW-1)
	maxY = clampInt(maxY, -halfH, halfH-1)

	w0Row := e0.at(minX, minY)
	w1Row := e1.at(minX, minY)
	w2Row := e2.at(minX, minY)

	for i := minY; i <= maxY; i++ {
		w0, w1, w2 := w0Row, w1Row, w2Row

		for j := minX; j <= maxX; j++ {
			if (w0 | w1 | w2) >= 0 {
				x := midX + j
				y := midY + i

				w0f, w1f, w2f := float64(w0), float64(w1), float64(w2)
				z := z0n*w0f + z1n*w1f + z2n*w2f
				depth := clampByte(int((z / areaF) * 255))

				if depth < fb.depthAt(x, y) {
					r := clampByte(int((float64(v0.R)*w0f + float64(v1.R)*w1f + float64(v2.R)*w2f) / z))
					g := clampByte(int((float64(v0.G)*w0f + float64(v1.G)*w1f + float64(v2.G)*w2f) / z))
					b := clampByte(int((float64(v0.B)*w0f + float64(v1.B)*w1f + float64(v2.B)*w2f) / z))
					fb.setPixel(x, y, r, g, b, depth)
				}
			}

			w0 += int64(e0.a)
			w1 += int64(e1.a)
			w2 += int64(e2.a)
		}

		w0Row += int64(e0.b)
		w1Row += int64(e1.b)
		w2Row += int64(e2.b)
	}
}
