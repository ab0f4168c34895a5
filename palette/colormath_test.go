package palette

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestLuminance(t *testing.T) {
	t.Parallel()
	if got := Luminance(Black); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := Luminance(White); !almostEqual(got, 1, 1e-9) {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
	// Pure green carries most of the luminance weight.
	if g, r := Luminance(MustHex("#00FF00")), Luminance(MustHex("#FF0000")); g <= r {
		t.Errorf("green luminance %v not greater than red %v", g, r)
	}
}

func TestContrastRatio(t *testing.T) {
	t.Parallel()
	if got := ContrastRatio(Black, White); !almostEqual(got, 21, 1e-6) {
		t.Errorf("black/white = %v, want 21", got)
	}
	if got := ContrastRatio(White, White); !almostEqual(got, 1, 1e-9) {
		t.Errorf("white/white = %v, want 1", got)
	}
	a, b := MustHex("#111827"), MustHex("#F9FAFB")
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Error("ContrastRatio is not symmetric")
	}
	if got := ContrastRatio(a, b); got < ContrastAAA {
		t.Errorf("catalog text on background = %v, want at least %v", got, ContrastAAA)
	}
}

func TestBlendEndpoints(t *testing.T) {
	t.Parallel()
	a, b := MustHex("#FF0000"), MustHex("#0000FF")
	if got := Blend(a, b, 0); got != a {
		t.Errorf("t=0: got %s, want %s", got, a)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("t=1: got %s, want %s", got, b)
	}
	if got := Blend(a, b, -3); got != a {
		t.Errorf("t<0: got %s, want %s", got, a)
	}
	if got := Blend(a, b, 3); got != b {
		t.Errorf("t>1: got %s, want %s", got, b)
	}
}

func TestBlendAlphaInterpolates(t *testing.T) {
	t.Parallel()
	a := Color{255, 0, 0, 0}
	b := Color{0, 0, 255, 255}
	mid := Blend(a, b, 0.5)
	if !almostEqual(float64(mid.A), 128, 1) {
		t.Errorf("mid alpha = %d, want about 128", mid.A)
	}
}

func TestDarkenLighten(t *testing.T) {
	t.Parallel()
	base := MustHex("#2563EB")
	darker := Darken(base, 0.3)
	lighter := Lighten(base, 0.3)
	if Luminance(darker) >= Luminance(base) {
		t.Errorf("Darken did not reduce luminance: %v >= %v", Luminance(darker), Luminance(base))
	}
	if Luminance(lighter) <= Luminance(base) {
		t.Errorf("Lighten did not raise luminance: %v <= %v", Luminance(lighter), Luminance(base))
	}
	if darker.A != base.A || lighter.A != base.A {
		t.Error("Darken/Lighten changed alpha")
	}
	if got := Darken(base, 1); got != (Color{A: 255}) {
		t.Errorf("Darken(1) = %+v, want black", got)
	}
}
