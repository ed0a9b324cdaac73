package termhost

import (
	"os"
	"testing"
)

// Most of Host requires a real controlling terminal (raw mode, SIGINT
// handling, poll-based CanRead) and is exercised manually rather than
// under go test; queryCursor's reply parsing has no such dependency
// and is tested in isolation here.
func TestQueryCursorParsesReply(t *testing.T) {
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer inR.Close()
	defer inW.Close()

	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("opening %s error = %v", os.DevNull, err)
	}
	defer null.Close()

	h := New(inR, null)

	if _, err := inW.WriteString("\x1b[24;80R"); err != nil {
		t.Fatalf("writing fake reply error = %v", err)
	}

	row, col, err := h.queryCursor()
	if err != nil {
		t.Fatalf("queryCursor() error = %v", err)
	}
	if row != 24 || col != 80 {
		t.Fatalf("queryCursor() = (%d,%d), want (24,80)", row, col)
	}
}

func TestQueryCursorRejectsMalformedReply(t *testing.T) {
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer inR.Close()
	defer inW.Close()

	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("opening %s error = %v", os.DevNull, err)
	}
	defer null.Close()

	h := New(inR, null)

	if _, err := inW.WriteString("garbage"); err != nil {
		t.Fatalf("writing fake reply error = %v", err)
	}

	if _, _, err := h.queryCursor(); err == nil {
		t.Fatalf("queryCursor() error = nil, want error on malformed reply")
	}
}
