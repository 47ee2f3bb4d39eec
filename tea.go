package gridin

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Model adapts a grid editing session to Bubble Tea, for hosts that compose
// the widget into an existing program instead of running the blocking loop.
// The program quits when the session completes or is canceled; inspect
// Done/Canceled and read the values afterwards:
//
//	m := gridin.NewMatrixModel(3, 3, gridin.KindInt, nil)
//	out, err := tea.NewProgram(m).Run()
//	if m, ok := out.(gridin.Model); ok && m.Done() {
//	    vals := m.Matrix()
//	    ...
//	}
type Model struct {
	grid *grid
}

// NewArrayModel creates a Bubble Tea model editing a 1-D array of size
// cells. A nil validator applies the default for the kind.
func NewArrayModel(size int, kind Kind, v Validator) Model {
	return Model{grid: newGrid(1, size, kind, v, true)}
}

// NewMatrixModel creates a Bubble Tea model editing a rows×cols matrix.
func NewMatrixModel(rows, cols int, kind Kind, v Validator) Model {
	return Model{grid: newGrid(rows, cols, kind, v, false)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model, feeding key events into the session state
// machine. Keys that the engine does not recognize are ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.grid.apply(action{kind: actConfirm})
	case tea.KeyBackspace:
		m.grid.apply(action{kind: actDelete})
	case tea.KeyEsc:
		m.grid.apply(action{kind: actCancel})
	case tea.KeyLeft:
		m.grid.apply(action{kind: actMove, dir: dirLeft})
	case tea.KeyRight:
		m.grid.apply(action{kind: actMove, dir: dirRight})
	case tea.KeyUp:
		if !m.grid.linear {
			m.grid.apply(action{kind: actMove, dir: dirUp})
		}
	case tea.KeyDown:
		if !m.grid.linear {
			m.grid.apply(action{kind: actMove, dir: dirDown})
		}
	case tea.KeySpace:
		m.grid.apply(action{kind: actAppend, ch: ' '})
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if unicode.IsPrint(r) {
				m.grid.apply(action{kind: actAppend, ch: r})
			}
		}
	}

	if m.grid.state != stateEditing {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return strings.Join(renderLines(m.grid, m.grid.state == stateEditing), "\n")
}

// Done reports whether every cell was committed.
func (m Model) Done() bool { return m.grid.state == stateCompleted }

// Canceled reports whether the session was abandoned.
func (m Model) Canceled() bool { return m.grid.state == stateCanceled }

// Values returns the canonical cell text in row-major order. Cells are empty
// strings until the session completes.
func (m Model) Values() []string {
	out := make([]string, len(m.grid.cells))
	copy(out, m.grid.cells)
	return out
}

// Matrix returns the canonical cell text row by row.
func (m Model) Matrix() [][]string {
	return reshape(m.Values(), m.grid.rows, m.grid.cols)
}
