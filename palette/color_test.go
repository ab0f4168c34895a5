package palette

import "testing"

func TestHex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"six digits", "#112233", Color{0x11, 0x22, 0x33, 0xFF}},
		{"no hash", "112233", Color{0x11, 0x22, 0x33, 0xFF}},
		{"lowercase", "#aabbcc", Color{0xAA, 0xBB, 0xCC, 0xFF}},
		{"short form", "#1AF", Color{0x11, 0xAA, 0xFF, 0xFF}},
		{"with alpha", "#11223344", Color{0x11, 0x22, 0x33, 0x44}},
		{"surrounding space", "  #112233 ", Color{0x11, 0x22, 0x33, 0xFF}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Hex(tt.input)
			if err != nil {
				t.Fatalf("Hex(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "#", "#12", "#12345", "#GGHHII", "not a color", "#1122334455"} {
		if _, err := Hex(input); err == nil {
			t.Errorf("Hex(%q) accepted invalid input", input)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("MustHex did not panic on invalid input")
		}
	}()
	MustHex("#nope")
}

func TestHexFormat(t *testing.T) {
	t.Parallel()
	c := Color{0x11, 0x22, 0x33, 0xFF}
	if got := c.Hex(); got != "#112233" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.HexRGBA(); got != "#112233" {
		t.Errorf("HexRGBA() = %q for opaque color", got)
	}
	translucent := Color{0x11, 0x22, 0x33, 0x80}
	if got := translucent.HexRGBA(); got != "#11223380" {
		t.Errorf("HexRGBA() = %q", got)
	}
	if got := translucent.String(); got != "#11223380" {
		t.Errorf("String() = %q", got)
	}
}

func TestWithAlpha(t *testing.T) {
	t.Parallel()
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{0, 0},
		{0.05, 13},
		{0.5, 128},
		{1, 255},
		{-0.5, 0},
		{2, 255},
	}
	for _, tt := range tests {
		got := White.WithAlpha(tt.opacity)
		if got.A != tt.want {
			t.Errorf("WithAlpha(%v).A = %d, want %d", tt.opacity, got.A, tt.want)
		}
		if got.R != 255 || got.G != 255 || got.B != 255 {
			t.Errorf("WithAlpha(%v) changed RGB channels: %+v", tt.opacity, got)
		}
	}
}

func TestAlphaHelpers(t *testing.T) {
	t.Parallel()
	if !White.Opaque() {
		t.Error("White.Opaque() = false")
	}
	if Transparent.Opaque() {
		t.Error("Transparent.Opaque() = true")
	}
	if got := (Color{A: 51}).Alpha(); got != 0.2 {
		t.Errorf("Alpha() = %v, want 0.2", got)
	}
}

func TestColorInterface(t *testing.T) {
	t.Parallel()
	r, g, b, a := MustHex("#FF0000").RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("RGBA() = %d,%d,%d,%d", r, g, b, a)
	}
	// Premultiplied: half-alpha white reports scaled channels.
	r, _, _, a = Color{255, 255, 255, 128}.RGBA()
	if a != 0x8080 || r != 0x8080 {
		t.Errorf("premultiplied RGBA() = r=%#x a=%#x, want 0x8080", r, a)
	}
	n := Color{1, 2, 3, 4}.NRGBA()
	if n.R != 1 || n.G != 2 || n.B != 3 || n.A != 4 {
		t.Errorf("NRGBA() = %+v", n)
	}
}
