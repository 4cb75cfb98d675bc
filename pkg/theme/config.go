package theme

import (
	"strings"

	"github.com/spexop/theme/pkg/colormath"
)

// Section names a top-level field of Config by its wire name.
type Section string

const (
	SectionMeta        Section = "meta"
	SectionColors      Section = "colors"
	SectionTypography  Section = "typography"
	SectionSpacing     Section = "spacing"
	SectionBorders     Section = "borders"
	SectionRadii       Section = "radii"
	SectionShadows     Section = "shadows"
	SectionZIndex      Section = "zIndex"
	SectionButtons     Section = "buttons"
	SectionCards       Section = "cards"
	SectionBreakpoints Section = "breakpoints"
	SectionAnimations  Section = "animations"
	SectionOpacity     Section = "opacity"
	SectionGrid        Section = "grid"
	SectionDarkMode    Section = "darkMode"
)

// RequiredSections are the sections a structurally complete theme defines.
func RequiredSections() []Section {
	return []Section{SectionMeta, SectionColors, SectionTypography, SectionSpacing, SectionBorders}
}

// AllSections lists every top-level section in declaration order.
func AllSections() []Section {
	return append(RequiredSections(),
		SectionRadii, SectionShadows, SectionZIndex, SectionButtons, SectionCards,
		SectionBreakpoints, SectionAnimations, SectionOpacity, SectionGrid, SectionDarkMode)
}

// DefaultWeights are the weights used when a theme omits or garbles them.
func DefaultWeights() FontWeights {
	return FontWeights{Regular: 400, Medium: 500, Semibold: 600, Bold: 700}
}

// DefaultLineHeights are the line heights used when a theme omits or garbles them.
func DefaultLineHeights() LineHeights {
	return LineHeights{Tight: 1.2, Snug: 1.375, Normal: 1.5, Relaxed: 1.75}
}

// IsZero reports whether no meta field is set.
func (m Meta) IsZero() bool {
	return m.Name == "" && m.Version == "" && m.Author == "" && m.Description == "" && len(m.Tags) == 0
}

// IsZero reports whether the typography section is empty.
func (t Typography) IsZero() bool {
	return t.FontFamily == "" && t.FontFamilyHeading == "" && t.FontFamilyMono == "" &&
		t.BaseSize == 0 && t.Scale == 0 && t.Weights == (FontWeights{}) &&
		t.LineHeights == (LineHeights{}) && t.Sizes == nil
}

// IsZero reports whether the spacing section is empty.
func (s Spacing) IsZero() bool {
	return s.BaseUnit == 0 && len(s.Scale) == 0 && s.Values == nil
}

// IsZero reports whether the borders section is empty.
func (b Borders) IsZero() bool {
	return b == Borders{}
}

// Has reports whether section s carries any value in c.
func (c Config) Has(s Section) bool {
	switch s {
	case SectionMeta:
		return !c.Meta.IsZero()
	case SectionColors:
		return !c.Colors.IsZero()
	case SectionTypography:
		return !c.Typography.IsZero()
	case SectionSpacing:
		return !c.Spacing.IsZero()
	case SectionBorders:
		return !c.Borders.IsZero()
	case SectionRadii:
		return c.Radii != nil
	case SectionShadows:
		return c.Shadows != nil
	case SectionZIndex:
		return c.ZIndex != nil
	case SectionButtons:
		return c.Buttons != nil
	case SectionCards:
		return c.Cards != nil
	case SectionBreakpoints:
		return c.Breakpoints != nil
	case SectionAnimations:
		return c.Animations != nil
	case SectionOpacity:
		return c.Opacity != nil
	case SectionGrid:
		return c.Grid != nil
	case SectionDarkMode:
		return c.DarkMode != nil
	default:
		return false
	}
}

// CopySection sets section s of dst to a deep copy of the same section in src.
func CopySection(dst *Config, src Config, s Section) {
	src = src.Clone()
	switch s {
	case SectionMeta:
		dst.Meta = src.Meta
	case SectionColors:
		dst.Colors = src.Colors
	case SectionTypography:
		dst.Typography = src.Typography
	case SectionSpacing:
		dst.Spacing = src.Spacing
	case SectionBorders:
		dst.Borders = src.Borders
	case SectionRadii:
		dst.Radii = src.Radii
	case SectionShadows:
		dst.Shadows = src.Shadows
	case SectionZIndex:
		dst.ZIndex = src.ZIndex
	case SectionButtons:
		dst.Buttons = src.Buttons
	case SectionCards:
		dst.Cards = src.Cards
	case SectionBreakpoints:
		dst.Breakpoints = src.Breakpoints
	case SectionAnimations:
		dst.Animations = src.Animations
	case SectionOpacity:
		dst.Opacity = src.Opacity
	case SectionGrid:
		dst.Grid = src.Grid
	case SectionDarkMode:
		dst.DarkMode = src.DarkMode
	}
}

// IsComplete performs the minimal structural check used before composing
// themes: meta identity, every required colour, a font family and non-zero
// base metrics must be present. It does not validate colour formats.
func (c Config) IsComplete() bool {
	if strings.TrimSpace(c.Meta.Name) == "" || strings.TrimSpace(c.Meta.Version) == "" {
		return false
	}
	for _, k := range requiredColorKeys {
		if _, ok := c.Colors.Get(k); !ok {
			return false
		}
	}
	if strings.TrimSpace(c.Typography.FontFamily) == "" || c.Typography.BaseSize == 0 {
		return false
	}
	if c.Spacing.BaseUnit == 0 {
		return false
	}
	return !c.Borders.IsZero()
}

// IsDark reports whether the surface colour is darker than the text colour.
// Unparseable colours yield false.
func (c Config) IsDark() bool {
	dark, err := colormath.IsDarker(c.Colors.Surface, c.Colors.Text)
	return err == nil && dark
}

// Clone returns a deep copy of c that shares no memory with it.
func (c Config) Clone() Config {
	out := c
	out.Meta.Tags = cloneSlice(c.Meta.Tags)
	out.Typography.Sizes = clonePtr(c.Typography.Sizes)
	out.Spacing.Scale = cloneSlice(c.Spacing.Scale)
	out.Spacing.Values = clonePtr(c.Spacing.Values)
	out.Radii = clonePtr(c.Radii)
	out.Shadows = clonePtr(c.Shadows)
	out.ZIndex = clonePtr(c.ZIndex)
	out.Buttons = c.Buttons.clone()
	out.Cards = c.Cards.clone()
	out.Breakpoints = clonePtr(c.Breakpoints)
	out.Animations = clonePtr(c.Animations)
	out.Opacity = clonePtr(c.Opacity)
	out.Grid = clonePtr(c.Grid)
	if c.DarkMode != nil {
		dm := *c.DarkMode
		dm.Colors = clonePtr(c.DarkMode.Colors)
		dm.Buttons = c.DarkMode.Buttons.clone()
		dm.Cards = c.DarkMode.Cards.clone()
		out.DarkMode = &dm
	}
	return out
}

func (b *Buttons) clone() *Buttons {
	if b == nil {
		return nil
	}
	return &Buttons{
		Primary:   clonePtr(b.Primary),
		Secondary: clonePtr(b.Secondary),
		Outline:   clonePtr(b.Outline),
		Ghost:     clonePtr(b.Ghost),
		Danger:    clonePtr(b.Danger),
	}
}

func (c *Cards) clone() *Cards {
	if c == nil {
		return nil
	}
	return &Cards{
		Default:  clonePtr(c.Default),
		Elevated: clonePtr(c.Elevated),
		Outlined: clonePtr(c.Outlined),
		Filled:   clonePtr(c.Filled),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}
