package canvas

import "bytes"

// fakeHost is an in-memory canvas.Host used by tests in this package:
// it records everything Paint/Printf write and reports a fixed size,
// standing in for the real termhost.Host per DESIGN.md's testing-tools
// ledger entry.
type fakeHost struct {
	buf        bytes.Buffer
	rows, cols int
}

func newFakeHost(rows, cols int) *fakeHost {
	return &fakeHost{rows: rows, cols: cols}
}

func (h *fakeHost) Write(p []byte) (int, error) { return h.buf.Write(p) }

func (h *fakeHost) Size() (rows, cols int, err error) { return h.rows, h.cols, nil }

func (h *fakeHost) EnterRaw() (func(), error) { return func() {}, nil }

func (h *fakeHost) CanRead() bool { return false }

func (h *fakeHost) Read(buf []byte) (int, error) { return 0, nil }
