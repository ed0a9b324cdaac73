package canvas

// Vertex is a vertex in homogeneous clip space, already transformed by
// the caller's model/view/projection matrices, plus a flat per-vertex
// color used for perspective-correct interpolation across a primitive.
type Vertex struct {
	X, Y, Z, W float64
	R, G, B    byte
}
