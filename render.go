package gridin

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// cursorBlock marks the active cell, appended to whatever has been typed.
const cursorBlock = "█"

const (
	helpArray  = "ESC - cancel, Enter - confirm, ← → - move"
	helpMatrix = "ESC - cancel, Enter - confirm, ← → ↑ ↓ - move"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle = lipgloss.NewStyle().Faint(true)
	cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// renderLines turns the grid state into display lines: the grid itself, a
// help line, and an error line when a validation failure is pending. The
// line count depends only on the grid shape and error presence, never on
// cell contents, so a caller can erase exactly what it drew last time.
// showCursor is dropped for the final frame so committed values stay visible.
func renderLines(g *grid, showCursor bool) []string {
	var lines []string
	if g.linear {
		lines = []string{renderArrayLine(g, showCursor)}
	} else {
		lines = renderMatrixTable(g, showCursor)
	}

	help := helpMatrix
	if g.linear {
		help = helpArray
	}
	lines = append(lines, helpStyle.Render(help))

	if g.lastErr != "" {
		lines = append(lines, errStyle.Render("Error: "+g.lastErr))
	}
	return lines
}

// renderArrayLine renders the 1-D grid as a bracketed list, empty cells as
// underscores: [5, 7█, _]
func renderArrayLine(g *grid, showCursor bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for c := 0; c < g.cols; c++ {
		if c > 0 {
			b.WriteString(", ")
		}
		v := g.displayCell(0, c, showCursor)
		if v == "" {
			v = "_"
		}
		b.WriteString(v)
	}
	b.WriteByte(']')
	return b.String()
}

// renderMatrixTable renders the 2-D grid as a rounded-box table with column
// headers and row labels, cells right-aligned. With row separators the table
// is always 2*rows+3 lines regardless of content.
func renderMatrixTable(g *grid, showCursor bool) []string {
	headers := make([]string, g.cols+1)
	headers[0] = ""
	for c := 0; c < g.cols; c++ {
		headers[c+1] = "C" + strconv.Itoa(c+1)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderRow(true).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...)

	for r := 0; r < g.rows; r++ {
		row := make([]string, g.cols+1)
		row[0] = "R" + strconv.Itoa(r+1)
		for c := 0; c < g.cols; c++ {
			row[c+1] = g.displayCell(r, c, showCursor)
		}
		t = t.Row(row...)
	}

	return strings.Split(t.Render(), "\n")
}

// displayCell returns what a cell shows right now: the pending buffer plus
// the cursor block for the active cell, otherwise the committed text.
func (g *grid) displayCell(r, c int, showCursor bool) string {
	if showCursor && r == g.row && c == g.col {
		return string(g.buffer) + cursorBlock
	}
	return g.cells[r*g.cols+c]
}
