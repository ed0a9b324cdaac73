// Package termhost is the default canvas.Host implementation, backed
// by a real TTY. It is grounded on the reference tz_init/tz_reset/
// tz_sigint/tz_get_bounds routines in original_source/terminizer.h,
// reimplemented with golang.org/x/term for raw-mode and size queries
// and golang.org/x/sys/unix for non-blocking stdin polling.
package termhost

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Host is a TTY-backed implementation of canvas.Host.
type Host struct {
	in, out *os.File

	mu      sync.Mutex
	oldTerm *term.State
}

// New creates a Host that reads from in and writes to out. Both are
// expected to refer to the same controlling terminal; typically
// os.Stdin and os.Stdout.
func New(in, out *os.File) *Host {
	return &Host{in: in, out: out}
}

// Write implements canvas.Host.
func (h *Host) Write(p []byte) (int, error) {
	return h.out.Write(p)
}

// Size implements canvas.Host. It first tries an ioctl-based query
// via golang.org/x/term, falling back to the cursor-position probe
// from the reference implementation (move the cursor far away, ask
// the terminal where it landed, put it back) when the ioctl fails —
// e.g. when stdout has been redirected to a pipe that nonetheless
// shares a controlling terminal that still answers device-status
// queries on stdin.
func (h *Host) Size() (rows, cols int, err error) {
	if w, hgt, err := term.GetSize(int(h.out.Fd())); err == nil {
		return hgt, w, nil
	}
	return h.probeSizeByCursor()
}

func (h *Host) probeSizeByCursor() (rows, cols int, err error) {
	row0, col0, err := h.queryCursor()
	if err != nil {
		return 0, 0, err
	}

	if _, err := h.out.WriteString("\x1b[9999;9999H"); err != nil {
		return 0, 0, err
	}
	row1, col1, err := h.queryCursor()
	if err != nil {
		return 0, 0, err
	}

	_, _ = fmt.Fprintf(h.out, "\x1b[%d;%dH", row0, col0)

	return row1, col1, nil
}

func (h *Host) queryCursor() (row, col int, err error) {
	if _, err := h.out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var buf [32]byte
	n, err := h.in.Read(buf[:])
	if err != nil {
		return 0, 0, err
	}

	reply := string(buf[:n])
	idx := strings.IndexByte(reply, '[')
	if idx < 0 {
		return 0, 0, fmt.Errorf("termhost: malformed cursor position reply %q", reply)
	}
	if _, err := fmt.Sscanf(reply[idx:], "[%d;%dR", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("termhost: parsing cursor position reply %q: %w", reply, err)
	}
	return row, col, nil
}

// EnterRaw implements canvas.Host. It switches the terminal to raw
// mode and installs a SIGINT handler that restores the terminal and
// re-raises the signal, matching the reference implementation's
// atexit/sigaction pair.
func (h *Host) EnterRaw() (restore func(), err error) {
	old, err := term.MakeRaw(int(h.in.Fd()))
	if err != nil {
		return func() {}, err
	}

	h.mu.Lock()
	h.oldTerm = old
	h.mu.Unlock()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			h.restoreTerm()
			signal.Stop(sigCh)
			// Re-raise so the process exits with the conventional
			// SIGINT disposition, per spec.md section 5.
			_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
		case <-done:
		}
	}()

	restore = func() {
		close(done)
		signal.Stop(sigCh)
		h.restoreTerm()
	}
	return restore, nil
}

func (h *Host) restoreTerm() {
	h.mu.Lock()
	old := h.oldTerm
	h.oldTerm = nil
	h.mu.Unlock()

	if old == nil {
		return
	}
	_ = term.Restore(int(h.in.Fd()), old)
}

// CanRead implements canvas.Host using a zero-timeout poll(2), the
// same contract as the reference tz_can_read.
func (h *Host) CanRead() bool {
	fds := []unix.PollFd{{Fd: int32(h.in.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	return err == nil && n > 0
}

// Read implements canvas.Host. A leading 0x03 (Ctrl-C) is treated as
// an interrupt: it restores the terminal and re-raises SIGINT rather
// than being delivered to the caller, matching tz_read.
func (h *Host) Read(buf []byte) (int, error) {
	n, err := h.in.Read(buf)
	if err != nil {
		return 0, err
	}
	if n > 0 && buf[0] == 0x03 {
		h.restoreTerm()
		_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
		return 0, nil
	}
	return n, nil
}

