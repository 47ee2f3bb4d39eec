// Package gridin provides interactive terminal widgets for entering
// fixed-size arrays and matrices directly into a rendered grid, one
// keystroke at a time.
//
// The widgets draw inline in the normal terminal flow (no alternate screen):
// the active cell shows the pending text with a block cursor, Enter commits
// a cell and moves the cursor onward to the next empty one, arrows move it
// manually, and ESC cancels the whole session. Each redraw erases exactly
// the lines of the previous frame, so the grid edits in place.
//
//	values, err := gridin.InputIntArray(5, nil)
//	if errors.Is(err, gridin.ErrCanceled) {
//	    return
//	}
//
// Hosts that already run a Bubble Tea program can embed the same engine via
// NewArrayModel / NewMatrixModel instead of the blocking calls.
package gridin

import (
	"fmt"
	"strconv"
)

// InputArray interactively fills a 1-D array of size cells and returns the
// canonical cell text. A nil validator applies the default for the kind.
// Returns ErrCanceled if the user cancels.
func InputArray(size int, kind Kind, v Validator) ([]string, error) {
	return NewArrayEditor(size, kind).Validator(v).Run()
}

// InputIntArray interactively fills an integer array.
func InputIntArray(size int, v Validator) ([]int, error) {
	cells, err := InputArray(size, KindInt, v)
	if err != nil {
		return nil, err
	}
	return cellsToInts(cells)
}

// InputFloatArray interactively fills a float array.
func InputFloatArray(size int, v Validator) ([]float64, error) {
	cells, err := InputArray(size, KindFloat, v)
	if err != nil {
		return nil, err
	}
	return cellsToFloats(cells)
}

// InputMatrix interactively fills a rows×cols matrix and returns the
// canonical cell text row by row. A nil validator applies the default for
// the kind. Returns ErrCanceled if the user cancels.
func InputMatrix(rows, cols int, kind Kind, v Validator) ([][]string, error) {
	return NewMatrixEditor(rows, cols, kind).Validator(v).Run()
}

// InputIntMatrix interactively fills an integer matrix.
func InputIntMatrix(rows, cols int, v Validator) ([][]int, error) {
	grid, err := InputMatrix(rows, cols, KindInt, v)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(grid))
	for r, row := range grid {
		vals, err := cellsToInts(row)
		if err != nil {
			return nil, err
		}
		out[r] = vals
	}
	return out, nil
}

// InputFloatMatrix interactively fills a float matrix.
func InputFloatMatrix(rows, cols int, v Validator) ([][]float64, error) {
	grid, err := InputMatrix(rows, cols, KindFloat, v)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(grid))
	for r, row := range grid {
		vals, err := cellsToFloats(row)
		if err != nil {
			return nil, err
		}
		out[r] = vals
	}
	return out, nil
}

// InputSymbolMatrix interactively fills a matrix of single-character
// symbols.
func InputSymbolMatrix(rows, cols int, v Validator) ([][]string, error) {
	return InputMatrix(rows, cols, KindSymbol, v)
}

// Committed cells hold canonical text that was validated before commit, so
// these conversions cannot fail in a healthy session; if one does it is an
// engine bug and must surface, never be papered over with a zero value.

func cellsToInts(cells []string) ([]int, error) {
	out := make([]int, len(cells))
	for i, c := range cells {
		n, err := strconv.Atoi(c)
		if err != nil {
			return nil, fmt.Errorf("committed cell %d is not an integer: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

func cellsToFloats(cells []string) ([]float64, error) {
	out := make([]float64, len(cells))
	for i, c := range cells {
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, fmt.Errorf("committed cell %d is not a number: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
