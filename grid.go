package gridin

// sessionState tracks where an editing session is in its lifecycle.
// stateCanceled and stateCompleted are terminal.
type sessionState uint8

const (
	stateEditing sessionState = iota
	stateCanceled
	stateCompleted
)

// grid is the mutable model for one editing session: committed cell text in
// row-major order, the cursor, the pending keystroke buffer for the cell
// under the cursor, and the last validation error. Cells fill monotonically;
// the session completes exactly when every cell is non-empty. One grid
// serves exactly one session.
type grid struct {
	rows, cols int
	cells      []string
	row, col   int
	buffer     []rune
	lastErr    string

	kind     Kind
	validate Validator // optional override, nil = default for kind
	linear   bool      // 1-D array topology: advance left-to-right, no emptiness seeking
	state    sessionState
}

func newGrid(rows, cols int, kind Kind, v Validator, linear bool) *grid {
	return &grid{
		rows:     rows,
		cols:     cols,
		cells:    make([]string, rows*cols),
		kind:     kind,
		validate: v,
		linear:   linear,
	}
}

func (g *grid) idx() int { return g.row*g.cols + g.col }

func (g *grid) complete() bool {
	for _, c := range g.cells {
		if c == "" {
			return false
		}
	}
	return true
}

// apply runs one action through the session state machine. Terminal states
// absorb everything.
func (g *grid) apply(a action) {
	if g.state != stateEditing {
		return
	}
	switch a.kind {
	case actAppend:
		g.buffer = append(g.buffer, a.ch)
		g.lastErr = ""
	case actDelete:
		if len(g.buffer) > 0 {
			g.buffer = g.buffer[:len(g.buffer)-1]
			g.lastErr = ""
		}
	case actMove:
		g.buffer = g.buffer[:0]
		g.lastErr = ""
		g.move(a.dir)
	case actCancel:
		g.state = stateCanceled
	case actConfirm:
		g.confirm()
	}
}

// move shifts the cursor one cell, clamped at the edges. The buffer and
// error were already cleared by apply.
func (g *grid) move(d direction) {
	switch d {
	case dirUp:
		if g.row > 0 {
			g.row--
		}
	case dirDown:
		if g.row < g.rows-1 {
			g.row++
		}
	case dirLeft:
		if g.col > 0 {
			g.col--
		}
	case dirRight:
		if g.col < g.cols-1 {
			g.col++
		}
	}
}

// confirm commits the pending buffer. An empty buffer commits nothing and
// steps one cell forward; a rejected buffer stays put with the error shown;
// an accepted buffer is formatted, stored, and the cursor advanced.
func (g *grid) confirm() {
	if len(g.buffer) == 0 {
		if i := g.idx(); i < len(g.cells)-1 {
			g.row, g.col = (i+1)/g.cols, (i+1)%g.cols
		}
		return
	}

	raw := string(g.buffer)
	if err := g.check(raw); err != nil {
		g.lastErr = err.Error()
		return
	}

	g.cells[g.idx()] = FormatValue(raw, g.kind)
	g.buffer = g.buffer[:0]
	g.lastErr = ""
	g.advance()
}

// check runs the validation pipeline for the pending text. Numeric kinds
// gate any custom validator behind the parse precondition; symbol mode
// hands the raw text straight to the override when one is set.
func (g *grid) check(raw string) error {
	if g.kind == KindSymbol {
		if g.validate != nil {
			return g.validate(raw)
		}
		return VSymbol(raw)
	}
	if err := VNumber(raw); err != nil {
		return err
	}
	if g.validate != nil {
		return g.validate(raw)
	}
	return nil
}

// advance applies the post-commit navigation policy. Arrays move strictly
// left to right and never seek emptiness; matrices scan circularly from
// just past the committed cell for the first empty one. Either way the
// session completes once no cell is empty.
func (g *grid) advance() {
	if g.linear {
		if g.col < g.cols-1 {
			g.col++
		}
		if g.complete() {
			g.state = stateCompleted
		}
		return
	}
	next := nextEmpty(g.cells, g.idx())
	if next < 0 {
		g.state = stateCompleted
		return
	}
	g.row, g.col = next/g.cols, next%g.cols
}

// nextEmpty returns the index of the first empty cell in a circular scan
// starting just past after, or -1 when the other cells are all filled.
func nextEmpty(cells []string, after int) int {
	n := len(cells)
	for step := 1; step < n; step++ {
		if i := (after + step) % n; cells[i] == "" {
			return i
		}
	}
	return -1
}
