package main

// The scene math below is the "companion linear-algebra utilities"
// spec.md names as an external collaborator (section 1): it is not
// part of canvas, it is a small helper private to this demo client,
// grounded on original_source/quickmaths.h.

import "math"

type vec3 [3]float64
type vec4 [4]float64
type mat4 [16]float64

func mat4Ident() mat4 {
	var m mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// mat4Mul computes out = a * b, using the same row-major / column
// vector convention as quickmaths.h's mat4_mul.
func mat4Mul(a, b mat4) mat4 {
	var out mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

func mat4Transform(m mat4, v vec4) vec4 {
	var out vec4
	for row := 0; row < 4; row++ {
		out[row] = m[row*4+0]*v[0] + m[row*4+1]*v[1] + m[row*4+2]*v[2] + m[row*4+3]*v[3]
	}
	return out
}

// mat4Camera builds a view matrix from a camera origin and an
// orthonormal axis basis (right, up, forward), matching
// quickmaths.h's mat4_camera.
func mat4Camera(origin vec3, axes [3]vec3) mat4 {
	m := mat4Ident()
	for i := 0; i < 3; i++ {
		m[i*4+0] = axes[0][i]
		m[i*4+1] = axes[1][i]
		m[i*4+2] = axes[2][i]
	}
	for i := 0; i < 3; i++ {
		var dot float64
		for j := 0; j < 3; j++ {
			dot += axes[i][j] * origin[j]
		}
		m[i*4+3] = -dot
	}
	return m
}

// mat4Perspective builds a perspective projection matrix for a
// vertical field of view fovY (degrees), output pixel dimensions w/h,
// and near/far planes, matching quickmaths.h's mat4_perspective: clip
// w carries +z_view (not -z_view), so view space keeps +Z as forward,
// consistent with mat4Camera and mat4Rotate*.
func mat4Perspective(fovY float64, w, h int, near, far float64) mat4 {
	aspect := float64(w) / float64(h)
	f := 1.0 / math.Tan(fovY*math.Pi/180/2)
	q := far / (far - near)

	var m mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = q
	m[11] = -q * near
	m[14] = 1
	return m
}

func mat4RotatePitch(rads float64) mat4 {
	m := mat4Ident()
	c, s := math.Cos(rads), math.Sin(rads)
	m[5], m[6] = c, -s
	m[9], m[10] = s, c
	return m
}

func mat4RotateYaw(rads float64) mat4 {
	m := mat4Ident()
	c, s := math.Cos(rads), math.Sin(rads)
	m[0], m[2] = c, s
	m[8], m[10] = -s, c
	return m
}
