package gridin

import (
	"strconv"
	"testing"
)

func TestFormatValueInt(t *testing.T) {
	cases := []struct{ in, want string }{
		{"3.7", "3"},
		{"-2.9", "-2"},
		{"007", "7"},
		{"42", "42"},
		{"0", "0"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in, KindInt); got != c.want {
			t.Errorf("FormatValue(%q, KindInt) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatValueFloat(t *testing.T) {
	cases := []struct{ in, want string }{
		{"3.500", "3.5"},
		{"4.0", "4"},
		{"0.50", "0.5"},
		{"-12.250", "-12.25"},
		{"007", "7"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in, KindFloat); got != c.want {
			t.Errorf("FormatValue(%q, KindFloat) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatValueSymbol(t *testing.T) {
	for _, s := range []string{"x", "#", "é", "not even one char"} {
		if got := FormatValue(s, KindSymbol); got != s {
			t.Errorf("FormatValue(%q, KindSymbol) = %q, want identity", s, got)
		}
	}
}

func TestFormatValueFailsClosed(t *testing.T) {
	if got := FormatValue("abc", KindInt); got != "abc" {
		t.Errorf("expected unparseable text returned unchanged, got %q", got)
	}
	if got := FormatValue("1.2.3", KindFloat); got != "1.2.3" {
		t.Errorf("expected unparseable text returned unchanged, got %q", got)
	}
}

func TestFormatValueFloatIdempotent(t *testing.T) {
	inputs := []string{"3.500", "4.0", "0.1", "-0.0001", "12345.6789", "1e3", "2", "1e20"}
	for _, in := range inputs {
		once := FormatValue(in, KindFloat)
		twice := FormatValue(once, KindFloat)
		if once != twice {
			t.Errorf("formatting %q is not idempotent: %q -> %q", in, once, twice)
		}
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		cells := []string{"5", "-3", "0"}
		vals, err := cellsToInts(cells)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, v := range vals {
			if got := FormatValue(strconv.Itoa(v), KindInt); got != cells[i] {
				t.Errorf("round trip of %d = %q, want %q", v, got, cells[i])
			}
		}
	})

	t.Run("floats", func(t *testing.T) {
		cells := []string{"3.5", "4", "-0.25"}
		vals, err := cellsToFloats(cells)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, v := range vals {
			got := FormatValue(strconv.FormatFloat(v, 'g', -1, 64), KindFloat)
			if got != cells[i] {
				t.Errorf("round trip of %g = %q, want %q", v, got, cells[i])
			}
		}
	})
}

func TestConversionFailsLoudly(t *testing.T) {
	if _, err := cellsToInts([]string{"5", "x"}); err == nil {
		t.Error("expected error for malformed committed cell")
	}
	if _, err := cellsToFloats([]string{"y"}); err == nil {
		t.Error("expected error for malformed committed cell")
	}
}

func TestValidators(t *testing.T) {
	t.Run("VNumber", func(t *testing.T) {
		if err := VNumber("3.14"); err != nil {
			t.Errorf("unexpected rejection: %v", err)
		}
		if err := VNumber("pi"); err == nil || err.Error() != "enter a valid number" {
			t.Errorf("expected number message, got %v", err)
		}
	})

	t.Run("VSymbol", func(t *testing.T) {
		if err := VSymbol("é"); err != nil {
			t.Errorf("single rune rejected: %v", err)
		}
		if err := VSymbol(""); err == nil {
			t.Error("expected rejection of empty text")
		}
		if err := VSymbol("ab"); err == nil || err.Error() != "enter a single character" {
			t.Errorf("expected symbol message, got %v", err)
		}
	})

	t.Run("VRange", func(t *testing.T) {
		v := VRange(-100, 100)
		if err := v("100"); err != nil {
			t.Errorf("boundary rejected: %v", err)
		}
		if err := v("-100.0"); err != nil {
			t.Errorf("boundary rejected: %v", err)
		}
		if err := v("101"); err == nil {
			t.Error("expected rejection above range")
		}
		if err := v("nope"); err == nil {
			t.Error("expected rejection of non-number")
		}
	})
}
