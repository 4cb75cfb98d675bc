package compose

import (
	"fmt"
	"strings"

	"github.com/spexop/theme/pkg/colormath"
	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/theme"
)

// VariantKind names a derived theme variant.
type VariantKind string

const (
	VariantDark         VariantKind = "dark"
	VariantLight        VariantKind = "light"
	VariantHighContrast VariantKind = "high-contrast"
	VariantLowContrast  VariantKind = "low-contrast"
)

// VariantKinds lists every supported kind.
func VariantKinds() []VariantKind {
	return []VariantKind{VariantDark, VariantLight, VariantHighContrast, VariantLowContrast}
}

// ParseVariantKind validates a user-supplied kind name.
func ParseVariantKind(s string) (VariantKind, error) {
	kind := VariantKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range VariantKinds() {
		if kind == known {
			return kind, nil
		}
	}
	return "", themeerrors.NewCompositionError("variant", fmt.Sprintf("unknown variant %q", s), nil)
}

// Key is the kind with hyphens removed, as used by CreateThemeVariants.
func (k VariantKind) Key() string {
	return strings.ReplaceAll(string(k), "-", "")
}

// Intensity tunes how far a variant shifts colours.
type Intensity string

const (
	IntensitySubtle  Intensity = "subtle"
	IntensityIntense Intensity = "intense"
)

// VariantOptions configures CreateThemeVariant. The zero value is subtle.
type VariantOptions struct {
	Intensity Intensity
}

func (o VariantOptions) intense() (bool, error) {
	switch o.Intensity {
	case "", IntensitySubtle:
		return false, nil
	case IntensityIntense:
		return true, nil
	default:
		return false, themeerrors.NewCompositionError("variant", fmt.Sprintf("unknown intensity %q", o.Intensity), nil)
	}
}

const (
	darkSuffix         = " (Dark)"
	highContrastSuffix = " (High Contrast)"
	lowContrastSuffix  = " (Low Contrast)"
)

// palette is the surface, text and border family a variant installs.
type palette struct {
	surface, surfaceSecondary, surfaceHover string
	text, textSecondary, textMuted          string
	border, borderStrong, borderSubtle      string
}

var (
	darkSubtle = palette{
		surface: "#0f172a", surfaceSecondary: "#1e293b", surfaceHover: "#334155",
		text: "#f1f5f9", textSecondary: "#cbd5e1", textMuted: "#94a3b8",
		border: "#334155", borderStrong: "#475569", borderSubtle: "#1e293b",
	}
	darkIntense = palette{
		surface: "#000000", surfaceSecondary: "#0a0a0a", surfaceHover: "#1a1a1a",
		text: "#ffffff", textSecondary: "#e5e5e5", textMuted: "#a3a3a3",
		border: "#404040", borderStrong: "#737373", borderSubtle: "#262626",
	}
	lightSubtle = palette{
		surface: "#ffffff", surfaceSecondary: "#f8fafc", surfaceHover: "#f1f5f9",
		text: "#0f172a", textSecondary: "#334155", textMuted: "#64748b",
		border: "#cbd5e1", borderStrong: "#94a3b8", borderSubtle: "#e2e8f0",
	}
	lightIntense = palette{
		surface: "#ffffff", surfaceSecondary: "#fafafa", surfaceHover: "#f5f5f5",
		text: "#000000", textSecondary: "#262626", textMuted: "#525252",
		border: "#a3a3a3", borderStrong: "#525252", borderSubtle: "#d4d4d4",
	}
)

func (p palette) apply(c theme.Colors) theme.Colors {
	c.Surface, c.SurfaceSecondary, c.SurfaceHover = p.surface, p.surfaceSecondary, p.surfaceHover
	c.Text, c.TextSecondary, c.TextMuted = p.text, p.textSecondary, p.textMuted
	c.Border, c.BorderStrong, c.BorderSubtle = p.border, p.borderStrong, p.borderSubtle
	return c
}

// CreateThemeVariant derives a dark, light, high-contrast or low-contrast
// variant of base. Primary and secondary colours are never altered.
func CreateThemeVariant(base theme.Config, kind VariantKind, opts VariantOptions) (theme.Config, error) {
	intense, err := opts.intense()
	if err != nil {
		return theme.Config{}, err
	}

	out := base.Clone()
	switch kind {
	case VariantDark:
		return darkVariant(out, intense), nil
	case VariantLight:
		return lightVariant(out, intense), nil
	case VariantHighContrast:
		return highContrastVariant(out, intense), nil
	case VariantLowContrast:
		return lowContrastVariant(out, intense)
	default:
		return theme.Config{}, themeerrors.NewCompositionError("variant", fmt.Sprintf("unknown variant %q", kind), nil)
	}
}

func darkVariant(cfg theme.Config, intense bool) theme.Config {
	if !strings.HasSuffix(cfg.Meta.Name, "(Dark)") {
		cfg.Meta.Name += darkSuffix
	}

	p := darkSubtle
	if intense {
		p = darkIntense
	}
	cfg.Colors = p.apply(cfg.Colors)

	if cfg.DarkMode == nil {
		cfg.DarkMode = &theme.DarkMode{}
	}
	cfg.DarkMode.Enabled = true
	if authored := cfg.DarkMode.Colors; authored != nil {
		authored.Each(func(k theme.ColorKey, value string) {
			if value == "" || k == theme.ColorPrimary || k == theme.ColorSecondary {
				return
			}
			cfg.Colors = cfg.Colors.With(k, value)
		})
	}
	return cfg
}

func lightVariant(cfg theme.Config, intense bool) theme.Config {
	name := strings.TrimSuffix(cfg.Meta.Name, darkSuffix)
	name = strings.TrimSuffix(name, "(Dark)")
	cfg.Meta.Name = strings.TrimSpace(name)

	if cfg.IsDark() {
		p := lightSubtle
		if intense {
			p = lightIntense
		}
		cfg.Colors = p.apply(cfg.Colors)
	}
	cfg.DarkMode = nil
	return cfg
}

func highContrastVariant(cfg theme.Config, intense bool) theme.Config {
	dark := cfg.IsDark()
	if !strings.HasSuffix(cfg.Meta.Name, highContrastSuffix) {
		cfg.Meta.Name += highContrastSuffix
	}

	if dark {
		cfg.Colors.Text, cfg.Colors.Surface = "#ffffff", "#000000"
	} else {
		cfg.Colors.Text, cfg.Colors.Surface = "#000000", "#ffffff"
	}

	if intense {
		text := cfg.Colors.Text
		cfg.Colors.TextSecondary, cfg.Colors.TextMuted = text, text
		cfg.Colors.Border, cfg.Colors.BorderStrong = text, text
	}
	return cfg
}

func lowContrastVariant(cfg theme.Config, intense bool) (theme.Config, error) {
	if !strings.HasSuffix(cfg.Meta.Name, lowContrastSuffix) {
		cfg.Meta.Name += lowContrastSuffix
	}

	amount := 0.3
	if intense {
		amount = 0.5
	}

	text, err := colormath.Mix(cfg.Colors.Text, cfg.Colors.Surface, amount)
	if err != nil {
		return theme.Config{}, themeerrors.NewCompositionError("variant", "blend text toward surface", err)
	}
	cfg.Colors.Text = text
	return cfg, nil
}

// CreateThemeVariants derives one variant per kind, keyed by Key(). Repeated
// kinds overwrite earlier results.
func CreateThemeVariants(base theme.Config, kinds []VariantKind, opts VariantOptions) (map[string]theme.Config, error) {
	out := make(map[string]theme.Config, len(kinds))
	for _, kind := range kinds {
		variant, err := CreateThemeVariant(base, kind, opts)
		if err != nil {
			return nil, err
		}
		out[kind.Key()] = variant
	}
	return out, nil
}
