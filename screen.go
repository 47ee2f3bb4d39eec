package gridin

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// enterRawMode puts the input terminal into raw mode and returns a restore
// function for the caller to defer. Inputs that are not a terminal (pipes,
// test buffers) get a no-op restore, so the loop runs unmodified against
// scripted input.
func enterRawMode(in io.Reader) (func(), error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}, nil
	}
	fd := int(f.Fd())

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("failed to get termios: %w", err)
	}
	orig := *termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, fmt.Errorf("failed to set raw mode: %w", err)
	}

	return func() {
		unix.IoctlSetTermios(fd, ioctlSetTermios, &orig)
	}, nil
}

// outputWidth returns the terminal width of the output, or 0 when the output
// is not a terminal (no clipping needed there).
func outputWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}

// clipLine truncates a line to the given display width. A line wider than
// the terminal would wrap and break the erase-by-line-count cycle.
func clipLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// drawFrame erases the prev lines drawn by the previous frame and prints the
// new ones, leaving the terminal cursor just below the frame. Everything is
// batched into one write. Raw mode has OPOST disabled, so lines end in \r\n.
func drawFrame(out io.Writer, lines []string, prev int) error {
	var b bytes.Buffer
	if prev > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", prev)
	}
	for _, ln := range lines {
		b.WriteString("\r\x1b[2K")
		b.WriteString(ln)
		b.WriteString("\r\n")
	}
	// A shrinking frame (error line cleared) leaves stale lines below; wipe
	// them and move back up so the cursor invariant holds.
	if extra := prev - len(lines); extra > 0 {
		for i := 0; i < extra; i++ {
			b.WriteString("\r\x1b[2K\r\n")
		}
		fmt.Fprintf(&b, "\x1b[%dA", extra)
	}
	_, err := out.Write(b.Bytes())
	return err
}
