package compose

import (
	"github.com/spexop/theme/pkg/theme"
)

// ExtractTheme returns a partial theme holding only the named sections.
func ExtractTheme(cfg theme.Config, sections ...theme.Section) theme.Config {
	var out theme.Config
	for _, s := range sections {
		theme.CopySection(&out, cfg, s)
	}
	return out
}

// PickColors keeps only the requested keys that colors defines.
func PickColors(colors theme.Colors, keys ...theme.ColorKey) theme.Colors {
	var out theme.Colors
	for _, k := range keys {
		if v, ok := colors.Get(k); ok {
			out = out.With(k, v)
		}
	}
	return out
}

// OmitColors returns colors with the given keys cleared.
func OmitColors(colors theme.Colors, keys ...theme.ColorKey) theme.Colors {
	return colors.Without(keys...)
}

// AreThemesCompatible reports whether both themes are structurally complete.
// It does not compare their values.
func AreThemesCompatible(a, b theme.Config) bool {
	return a.IsComplete() && b.IsComplete()
}
