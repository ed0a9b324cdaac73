// Command cube is the interactive demo client for canvas: a spinning,
// colored wireframe-filled cube rendered with the software rasterizer,
// grounded on original_source/example-cube.c. It is explicitly outside
// canvas's own scope (spec.md section 1 names a demo client as an
// external collaborator) and depends on nothing beyond the standard
// library and canvas itself.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olivier-w/termraster/canvas"
	"github.com/olivier-w/termraster/canvas/termhost"
)

const frameInterval = 33 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cube:", err)
		os.Exit(1)
	}
}

func run() error {
	host := termhost.New(os.Stdin, os.Stdout)

	restore, err := host.EnterRaw()
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer restore()

	cv, err := canvas.New(host, 0, 0)
	if err != nil {
		return fmt.Errorf("creating canvas: %w", err)
	}
	if cv.Width() == 0 || cv.Height() == 0 {
		return fmt.Errorf("terminal reported zero size")
	}

	faces := cubeFaces()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var yaw, pitch float64
	frame := 0

	for range ticker.C {
		if cv.CanRead() {
			var buf [16]byte
			n, _ := cv.Read(buf[:])
			for i := 0; i < n; i++ {
				if buf[i] == 'q' || buf[i] == 'Q' {
					return nil
				}
			}
		}

		yaw += 0.03
		pitch += 0.017

		mvp := buildMVP(yaw, pitch, cv.Width(), cv.Height())

		cv.Clear()
		for _, f := range faces {
			v0 := projectVertex(mvp, f[0])
			v1 := projectVertex(mvp, f[1])
			v2 := projectVertex(mvp, f[2])
			cv.Triangle(v0, v1, v2)
		}
		cv.Printf(1, 0, "\x1b[f15]termraster cube  frame %d  q to quit", frame)

		if err := cv.Paint(); err != nil {
			return fmt.Errorf("painting frame %d: %w", frame, err)
		}
		frame++
	}
	return nil
}

// buildMVP composes the model (spin), view (fixed camera looking at
// the origin), and perspective matrices into one model-view-projection
// matrix, following quickmaths.h's composition order.
func buildMVP(yaw, pitch float64, width, height int) mat4 {
	model := mat4Mul(mat4RotateYaw(yaw), mat4RotatePitch(pitch))

	eye := vec3{0, 0, -4}
	forward := vec3{0, 0, 1}
	up := vec3{0, 1, 0}
	right := vec3{1, 0, 0}
	view := mat4Camera(eye, [3]vec3{right, up, forward})

	proj := mat4Perspective(60, width, height, 0.1, 100)

	return mat4Mul(proj, mat4Mul(view, model))
}

// projectVertex transforms a cube vertex through mvp into the clip
// space coordinates and RGB color canvas.Vertex expects.
func projectVertex(mvp mat4, v cubeVertex) canvas.Vertex {
	clip := mat4Transform(mvp, vec4{v.pos[0], v.pos[1], v.pos[2], 1})
	return canvas.Vertex{
		X: clip[0], Y: clip[1], Z: clip[2], W: clip[3],
		R: v.color.R(), G: v.color.G(), B: v.color.B(),
	}
}

type cubeVertex struct {
	pos   vec3
	color canvas.Color
}

// cubeFaces returns the 12 triangles (2 per face) of a cube spanning
// [-1, 1] on each axis, one solid color per face, matching the
// vertex layout in original_source/example-cube.c.
func cubeFaces() [][3]cubeVertex {
	corners := [8]vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}

	type face struct {
		idx   [4]int
		color canvas.Color
	}
	faces := []face{
		{[4]int{0, 1, 2, 3}, canvas.RGB(220, 60, 60)},  // back
		{[4]int{4, 5, 6, 7}, canvas.RGB(60, 220, 60)},  // front
		{[4]int{0, 4, 7, 3}, canvas.RGB(60, 60, 220)},  // left
		{[4]int{1, 5, 6, 2}, canvas.RGB(220, 220, 60)}, // right
		{[4]int{3, 2, 6, 7}, canvas.RGB(220, 60, 220)}, // top
		{[4]int{0, 1, 5, 4}, canvas.RGB(60, 220, 220)}, // bottom
	}

	var tris [][3]cubeVertex
	for _, f := range faces {
		v := [4]cubeVertex{}
		for i, ci := range f.idx {
			v[i] = cubeVertex{pos: corners[ci], color: f.color}
		}
		tris = append(tris, [3]cubeVertex{v[0], v[1], v[2]})
		tris = append(tris, [3]cubeVertex{v[0], v[2], v[3]})
	}
	return tris
}
