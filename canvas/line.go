package canvas

import "math"

// Line rasterizes a line segment in clip space using integer
// Bresenham stepping, interpolating depth and color linearly along
// the segment (spec.md section 4.C5). Lines are not sub-pixel
// accurate and do not bounds-check per pixel against the viewport;
// callers rely on the trivial reject accepting only in-bounds
// segments, as spec.md directs implementers to extend if finer
// clipping is needed.
func (c *Canvas) Line(v0, v1 Vertex) {
	line(c.fb, c.viewport, v0, v1)
}

func line(fb *Framebuffer, vp Viewport, v0, v1 Vertex) {
	if rejectLine(v0, v1) {
		return
	}

	x0n, y0n, z0n := v0.X/v0.W, v0.Y/v0.W, v0.Z/v0.W
	x1n, y1n, z1n := v1.X/v1.W, v1.Y/v1.W, v1.Z/v1.W

	halfW := vp.width() / 2
	halfH := vp.height() / 2
	midX := vp.X0 + halfW
	midY := vp.Y0 + halfH

	x0 := int(x0n*float64(halfW)) + midX
	y0 := int(y0n*float64(-halfH)) + midY
	x1 := int(x1n*float64(halfW)) + midX
	y1 := int(y1n*float64(-halfH)) + midY

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy

	length := math.Sqrt(float64(dx*dx + dy*dy))
	var step float64
	if length != 0 {
		step = 1.0 / length
	}
	f := 0.0

	x, y := x0, y0
	for {
		w0 := f
		w1 := 1.0 - f

		z := z0n*w0 + z1n*w1
		depth := clampByte(int(z * 255))

		if fb.inBounds(x, y) && depth < fb.depthAt(x, y) {
			r := clampByte(int((float64(v0.R)*w0 + float64(v1.R)*w1) / z))
			g := clampByte(int((float64(v0.G)*w0 + float64(v1.G)*w1) / z))
			b := clampByte(int((float64(v0.B)*w0 + float64(v1.B)*w1) / z))
			fb.setPixel(x, y, r, g, b, depth)
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := e * 2
		if e2 >= dy {
			e += dy
			x += sx
			f += step
		}
		if e2 <= dx {
			e += dx
			y += sy
			f += step
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
