package gridin

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCanceled is returned when the user abandons the session with ESC.
// No partial values are ever returned alongside it.
var ErrCanceled = errors.New("input canceled")

// editor runs one interactive session over a grid: block on one input unit,
// apply it, redraw, repeat. The redraw bookkeeping lives here, one instance
// per session.
type editor struct {
	grid      *grid
	in        io.Reader
	out       io.Writer
	lastLines int
	width     int
}

func newEditor(g *grid) *editor {
	return &editor{grid: g, in: os.Stdin, out: os.Stdout}
}

// run drives the session to a terminal state and returns the canonical cell
// text. Raw mode is restored on every exit path.
func (e *editor) run() ([]string, error) {
	restore, err := enterRawMode(e.in)
	if err != nil {
		return nil, err
	}
	defer restore()

	e.width = outputWidth(e.out)
	keys := newKeyReader(e.in, !e.grid.linear)

	for {
		if err := e.draw(true); err != nil {
			return nil, fmt.Errorf("failed to draw grid: %w", err)
		}

		act, err := keys.next()
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		e.grid.apply(act)

		switch e.grid.state {
		case stateCanceled:
			return nil, ErrCanceled
		case stateCompleted:
			// Final frame without the cursor marker so the last committed
			// value is visible.
			if err := e.draw(false); err != nil {
				return nil, fmt.Errorf("failed to draw grid: %w", err)
			}
			out := make([]string, len(e.grid.cells))
			copy(out, e.grid.cells)
			return out, nil
		}
	}
}

func (e *editor) draw(showCursor bool) error {
	lines := renderLines(e.grid, showCursor)
	for i, ln := range lines {
		lines[i] = clipLine(ln, e.width)
	}
	err := drawFrame(e.out, lines, e.lastLines)
	e.lastLines = len(lines)
	return err
}

// ArrayEditor is an interactive editor for a fixed-size 1-D array. Configure
// it with the chainable methods, then call Run.
type ArrayEditor struct {
	size int
	kind Kind
	v    Validator
	in   io.Reader
	out  io.Writer
}

// NewArrayEditor creates an editor for size cells of the given kind.
func NewArrayEditor(size int, kind Kind) *ArrayEditor {
	return &ArrayEditor{size: size, kind: kind, in: os.Stdin, out: os.Stdout}
}

// Validator overrides the default validation for the kind.
func (a *ArrayEditor) Validator(v Validator) *ArrayEditor {
	a.v = v
	return a
}

// IO redirects the session's input and output, e.g. for tests or an
// embedding host. Raw mode is only toggled when in is a real terminal.
func (a *ArrayEditor) IO(in io.Reader, out io.Writer) *ArrayEditor {
	a.in = in
	a.out = out
	return a
}

// Run blocks until every cell is committed or the session ends early. It
// returns the canonical cell text, or ErrCanceled if the user backed out.
func (a *ArrayEditor) Run() ([]string, error) {
	e := newEditor(newGrid(1, a.size, a.kind, a.v, true))
	e.in, e.out = a.in, a.out
	return e.run()
}

// MatrixEditor is an interactive editor for a fixed-shape 2-D matrix.
type MatrixEditor struct {
	rows, cols int
	kind       Kind
	v          Validator
	in         io.Reader
	out        io.Writer
}

// NewMatrixEditor creates an editor for a rows×cols matrix of the given kind.
func NewMatrixEditor(rows, cols int, kind Kind) *MatrixEditor {
	return &MatrixEditor{rows: rows, cols: cols, kind: kind, in: os.Stdin, out: os.Stdout}
}

// Validator overrides the default validation for the kind.
func (m *MatrixEditor) Validator(v Validator) *MatrixEditor {
	m.v = v
	return m
}

// IO redirects the session's input and output.
func (m *MatrixEditor) IO(in io.Reader, out io.Writer) *MatrixEditor {
	m.in = in
	m.out = out
	return m
}

// Run blocks until every cell is committed or the session ends early. It
// returns the canonical cell text row by row, or ErrCanceled.
func (m *MatrixEditor) Run() ([][]string, error) {
	e := newEditor(newGrid(m.rows, m.cols, m.kind, m.v, false))
	e.in, e.out = m.in, m.out
	cells, err := e.run()
	if err != nil {
		return nil, err
	}
	return reshape(cells, m.rows, m.cols), nil
}

func reshape(cells []string, rows, cols int) [][]string {
	out := make([][]string, rows)
	for r := 0; r < rows; r++ {
		out[r] = cells[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return out
}
