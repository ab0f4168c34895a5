package palette

// entryKind discriminates the three shapes a built-in table entry can take.
type entryKind uint8

const (
	// kindFixed is a single color used in both themes.
	kindFixed entryKind = iota
	// kindPair is a light/dark color pair selected by the theme flag.
	kindPair
	// kindFunc computes the color from the theme flag.
	kindFunc
)

// entry is one built-in table value. Exactly one shape is populated,
// according to kind.
type entry struct {
	kind  entryKind
	value Color
	light Color
	dark  Color
	fn    ResolveFunc
}

func fixed(c Color) entry {
	return entry{kind: kindFixed, value: c}
}

func pair(light, dark Color) entry {
	return entry{kind: kindPair, light: light, dark: dark}
}

func themed(fn ResolveFunc) entry {
	return entry{kind: kindFunc, fn: fn}
}

// resolve returns the entry's color for the given theme.
func (e entry) resolve(dark bool) Color {
	switch e.kind {
	case kindPair:
		if dark {
			return e.dark
		}
		return e.light
	case kindFunc:
		return e.fn(dark)
	default:
		return e.value
	}
}

// invariant reports whether the entry yields the same color in both themes.
func (e entry) invariant() bool {
	return e.resolve(false) == e.resolve(true)
}
