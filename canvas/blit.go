package canvas

// Blit copies a row-major pixel array into the framebuffer at (x, y),
// clipped to the viewport. It bypasses the depth test entirely,
// unconditionally overwriting whatever was there (spec.md section
// 4.C6 and the layering guidance in section 5).
func (c *Canvas) Blit(x, y, w, h int, data []Color) {
	blit(c.fb, c.viewport, x, y, w, h, data)
}

func blit(fb *Framebuffer, vp Viewport, x, y, w, h int, data []Color) {
	x0 := vp.X0 + x
	y0 := vp.Y0 + y
	x1 := min(x0+w-1, vp.X1)
	y1 := min(y0+h-1, vp.Y1)

	for py := max(y0, vp.Y0); py <= y1; py++ {
		for px := max(x0, vp.X0); px <= x1; px++ {
			i := (py-y0)*w + (px - x0)
			if i >= len(data) {
				return
			}
			fb.setColor(px, py, data[i])
		}
	}
}
