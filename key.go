package gridin

import (
	"bufio"
	"io"
	"unicode"
)

// actionKind enumerates the editing actions a keystroke can produce.
type actionKind uint8

const (
	actNone actionKind = iota
	actAppend
	actDelete
	actConfirm
	actCancel
	actMove
)

type direction uint8

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// action is one decoded input unit. ch is set for actAppend, dir for actMove.
type action struct {
	kind actionKind
	ch   rune
	dir  direction
}

// keyReader decodes raw terminal bytes into editing actions, one blocking
// read per action. vertical controls whether up/down arrows are recognized;
// a 1-D array only moves left and right.
type keyReader struct {
	r        *bufio.Reader
	vertical bool
}

func newKeyReader(r io.Reader, vertical bool) *keyReader {
	return &keyReader{r: bufio.NewReader(r), vertical: vertical}
}

// next reads one input unit. Unrecognized bytes decode to actNone so the
// loop can redraw idempotently and wait again.
//
// An arrow key arrives as the single write "\x1b[A".."\x1b[D", so after an
// ESC byte the rest of the sequence is already buffered. A lone ESC has no
// follow-up bytes and means cancel; so does ESC followed by anything that
// does not continue an arrow sequence.
func (k *keyReader) next() (action, error) {
	r, _, err := k.r.ReadRune()
	if err != nil {
		return action{}, err
	}

	switch r {
	case '\r', '\n':
		return action{kind: actConfirm}, nil
	case 0x7f, 0x08:
		return action{kind: actDelete}, nil
	case 0x1b:
		if k.r.Buffered() == 0 {
			return action{kind: actCancel}, nil
		}
		b, err := k.r.ReadByte()
		if err != nil || b != '[' {
			return action{kind: actCancel}, nil
		}
		if k.r.Buffered() == 0 {
			return action{kind: actCancel}, nil
		}
		d, err := k.r.ReadByte()
		if err != nil {
			return action{kind: actCancel}, nil
		}
		switch d {
		case 'A':
			if k.vertical {
				return action{kind: actMove, dir: dirUp}, nil
			}
		case 'B':
			if k.vertical {
				return action{kind: actMove, dir: dirDown}, nil
			}
		case 'C':
			return action{kind: actMove, dir: dirRight}, nil
		case 'D':
			return action{kind: actMove, dir: dirLeft}, nil
		}
		return action{kind: actNone}, nil
	}

	if unicode.IsPrint(r) {
		return action{kind: actAppend, ch: r}, nil
	}
	return action{kind: actNone}, nil
}
