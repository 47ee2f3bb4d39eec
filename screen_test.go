package gridin

import (
	"bytes"
	"strings"
	"testing"
)

func TestDrawFrame(t *testing.T) {
	t.Run("first frame erases nothing", func(t *testing.T) {
		var out bytes.Buffer
		if err := drawFrame(&out, []string{"a", "b"}, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.String()
		if got != "\r\x1b[2Ka\r\n\r\x1b[2Kb\r\n" {
			t.Errorf("unexpected frame bytes: %q", got)
		}
	})

	t.Run("redraw moves up by previous line count", func(t *testing.T) {
		var out bytes.Buffer
		if err := drawFrame(&out, []string{"x"}, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.String()
		if !strings.HasPrefix(got, "\x1b[3A") {
			t.Errorf("expected cursor-up 3 prefix, got %q", got)
		}
	})

	t.Run("shrinking frame wipes stale lines and returns", func(t *testing.T) {
		var out bytes.Buffer
		if err := drawFrame(&out, []string{"x"}, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.String()
		if strings.Count(got, "\x1b[2K") != 3 {
			t.Errorf("expected 3 line clears, got %q", got)
		}
		if !strings.HasSuffix(got, "\x1b[2A") {
			t.Errorf("expected cursor moved back below content, got %q", got)
		}
	})
}

func TestEnterRawModeNonTerminal(t *testing.T) {
	restore, err := enterRawMode(strings.NewReader("input"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	restore() // must be callable
}

func TestOutputWidthNonTerminal(t *testing.T) {
	var out bytes.Buffer
	if w := outputWidth(&out); w != 0 {
		t.Errorf("expected width 0 for non-terminal output, got %d", w)
	}
}
