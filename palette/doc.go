// Package palette resolves semantic color keys ("text.primary",
// "accent.danger") to concrete RGBA values for light and dark themes.
//
// Integration example:
//
//	colors := palette.New()
//	colors.RegisterPair("accent.primary", palette.MustHex("#0F766E"), palette.MustHex("#2DD4BF"))
//
//	fg := colors.Resolve("text.primary", dark, palette.Black)
//	bg := colors.Resolve("surface.background", dark, palette.White)
//
// Resolution order is custom registrations, then the built-in catalog, then
// the caller's fallback; a lookup never fails. The package has no opinion on
// how the dark flag is derived; callers detect their environment and pass it
// in.
package palette
