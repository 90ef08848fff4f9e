package ui

// Color accessors return the escape code for a role in the active theme.
// They return "" when colors are disabled, so callers can always concatenate.

func ColorBanner() string   { return GetCurrentTheme().Banner }
func ColorMenu() string     { return GetCurrentTheme().Menu }
func ColorSequence() string { return GetCurrentTheme().Sequence }
func ColorStats() string    { return GetCurrentTheme().Stats }
func ColorError() string    { return GetCurrentTheme().Error }
func ColorHint() string     { return GetCurrentTheme().Hint }
func ColorBold() string     { return GetCurrentTheme().Bold }
func ColorReset() string    { return GetCurrentTheme().Reset }

// Paint wraps s in the given color code and a reset, or returns s unchanged
// when the color is empty.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
