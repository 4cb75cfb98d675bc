// Package theme defines the Spexop design-token configuration model.
//
// A Config is treated as an immutable value: the composition, sanitization and
// audit packages never modify a Config they receive and always return fresh
// copies. Leaves use omitempty, so a zero leaf reads as "unset"; this lets the
// same type describe both complete themes and partial overrides.
package theme

// Config is the root design-token document (SpexopThemeConfig).
type Config struct {
	Meta       Meta       `json:"meta" yaml:"meta"`
	Colors     Colors     `json:"colors" yaml:"colors"`
	Typography Typography `json:"typography" yaml:"typography"`
	Spacing    Spacing    `json:"spacing" yaml:"spacing"`
	Borders    Borders    `json:"borders" yaml:"borders"`

	Radii       *Radii       `json:"radii,omitempty" yaml:"radii,omitempty" mapstructure:"radii"`
	Shadows     *Shadows     `json:"shadows,omitempty" yaml:"shadows,omitempty" mapstructure:"shadows"`
	ZIndex      *ZIndex      `json:"zIndex,omitempty" yaml:"zIndex,omitempty" mapstructure:"zIndex"`
	Buttons     *Buttons     `json:"buttons,omitempty" yaml:"buttons,omitempty" mapstructure:"buttons"`
	Cards       *Cards       `json:"cards,omitempty" yaml:"cards,omitempty" mapstructure:"cards"`
	Breakpoints *Breakpoints `json:"breakpoints,omitempty" yaml:"breakpoints,omitempty" mapstructure:"breakpoints"`
	Animations  *Animations  `json:"animations,omitempty" yaml:"animations,omitempty" mapstructure:"animations"`
	Opacity     *Opacity     `json:"opacity,omitempty" yaml:"opacity,omitempty" mapstructure:"opacity"`
	Grid        *Grid        `json:"grid,omitempty" yaml:"grid,omitempty" mapstructure:"grid"`
	DarkMode    *DarkMode    `json:"darkMode,omitempty" yaml:"darkMode,omitempty" mapstructure:"darkMode"`
}

// Meta identifies a theme.
type Meta struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty" validate:"required"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty" validate:"required"`
	Author      string   `json:"author,omitempty" yaml:"author,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Colors holds every colour token. The first ten fields are required; the
// rest are optional and empty when absent.
type Colors struct {
	Primary          string `json:"primary,omitempty" yaml:"primary,omitempty" mapstructure:"primary" validate:"required,themecolor"`
	Surface          string `json:"surface,omitempty" yaml:"surface,omitempty" mapstructure:"surface" validate:"required,themecolor"`
	SurfaceSecondary string `json:"surfaceSecondary,omitempty" yaml:"surfaceSecondary,omitempty" mapstructure:"surfaceSecondary" validate:"required,themecolor"`
	SurfaceHover     string `json:"surfaceHover,omitempty" yaml:"surfaceHover,omitempty" mapstructure:"surfaceHover" validate:"required,themecolor"`
	Text             string `json:"text,omitempty" yaml:"text,omitempty" mapstructure:"text" validate:"required,themecolor"`
	TextSecondary    string `json:"textSecondary,omitempty" yaml:"textSecondary,omitempty" mapstructure:"textSecondary" validate:"required,themecolor"`
	TextMuted        string `json:"textMuted,omitempty" yaml:"textMuted,omitempty" mapstructure:"textMuted" validate:"required,themecolor"`
	Border           string `json:"border,omitempty" yaml:"border,omitempty" mapstructure:"border" validate:"required,themecolor"`
	BorderStrong     string `json:"borderStrong,omitempty" yaml:"borderStrong,omitempty" mapstructure:"borderStrong" validate:"required,themecolor"`
	BorderSubtle     string `json:"borderSubtle,omitempty" yaml:"borderSubtle,omitempty" mapstructure:"borderSubtle" validate:"required,themecolor"`

	PrimaryHover    string `json:"primaryHover,omitempty" yaml:"primaryHover,omitempty" mapstructure:"primaryHover" validate:"omitempty,themecolor"`
	PrimaryActive   string `json:"primaryActive,omitempty" yaml:"primaryActive,omitempty" mapstructure:"primaryActive" validate:"omitempty,themecolor"`
	Secondary       string `json:"secondary,omitempty" yaml:"secondary,omitempty" mapstructure:"secondary" validate:"omitempty,themecolor"`
	SecondaryHover  string `json:"secondaryHover,omitempty" yaml:"secondaryHover,omitempty" mapstructure:"secondaryHover" validate:"omitempty,themecolor"`
	SecondaryActive string `json:"secondaryActive,omitempty" yaml:"secondaryActive,omitempty" mapstructure:"secondaryActive" validate:"omitempty,themecolor"`
	Success         string `json:"success,omitempty" yaml:"success,omitempty" mapstructure:"success" validate:"omitempty,themecolor"`
	SuccessLight    string `json:"successLight,omitempty" yaml:"successLight,omitempty" mapstructure:"successLight" validate:"omitempty,themecolor"`
	Warning         string `json:"warning,omitempty" yaml:"warning,omitempty" mapstructure:"warning" validate:"omitempty,themecolor"`
	WarningLight    string `json:"warningLight,omitempty" yaml:"warningLight,omitempty" mapstructure:"warningLight" validate:"omitempty,themecolor"`
	Error           string `json:"error,omitempty" yaml:"error,omitempty" mapstructure:"error" validate:"omitempty,themecolor"`
	ErrorLight      string `json:"errorLight,omitempty" yaml:"errorLight,omitempty" mapstructure:"errorLight" validate:"omitempty,themecolor"`
	Info            string `json:"info,omitempty" yaml:"info,omitempty" mapstructure:"info" validate:"omitempty,themecolor"`
	InfoLight       string `json:"infoLight,omitempty" yaml:"infoLight,omitempty" mapstructure:"infoLight" validate:"omitempty,themecolor"`
	Accent          string `json:"accent,omitempty" yaml:"accent,omitempty" mapstructure:"accent" validate:"omitempty,themecolor"`
	Link            string `json:"link,omitempty" yaml:"link,omitempty" mapstructure:"link" validate:"omitempty,themecolor"`
	LinkHover       string `json:"linkHover,omitempty" yaml:"linkHover,omitempty" mapstructure:"linkHover" validate:"omitempty,themecolor"`
	Focus           string `json:"focus,omitempty" yaml:"focus,omitempty" mapstructure:"focus" validate:"omitempty,themecolor"`
	Overlay         string `json:"overlay,omitempty" yaml:"overlay,omitempty" mapstructure:"overlay" validate:"omitempty,themecolor"`
	Neutral         string `json:"neutral,omitempty" yaml:"neutral,omitempty" mapstructure:"neutral" validate:"omitempty,themecolor"`
	NeutralLight    string `json:"neutralLight,omitempty" yaml:"neutralLight,omitempty" mapstructure:"neutralLight" validate:"omitempty,themecolor"`
}

// Typography configures font families, sizes and the type scale.
type Typography struct {
	FontFamily        string      `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty" validate:"required"`
	FontFamilyHeading string      `json:"fontFamilyHeading,omitempty" yaml:"fontFamilyHeading,omitempty"`
	FontFamilyMono    string      `json:"fontFamilyMono,omitempty" yaml:"fontFamilyMono,omitempty"`
	BaseSize          float64     `json:"baseSize,omitempty" yaml:"baseSize,omitempty" validate:"required,gt=0"`
	Scale             float64     `json:"scale,omitempty" yaml:"scale,omitempty" validate:"required,gt=0"`
	Weights           FontWeights `json:"weights,omitzero" yaml:"weights,omitempty"`
	LineHeights       LineHeights `json:"lineHeights,omitzero" yaml:"lineHeights,omitempty"`
	Sizes             *FontSizes  `json:"sizes,omitempty" yaml:"sizes,omitempty" mapstructure:"sizes"`
}

// FontWeights are numeric CSS font weights.
type FontWeights struct {
	Regular  int `json:"regular,omitempty" yaml:"regular,omitempty" validate:"required,min=100,max=900"`
	Medium   int `json:"medium,omitempty" yaml:"medium,omitempty" validate:"required,min=100,max=900"`
	Semibold int `json:"semibold,omitempty" yaml:"semibold,omitempty" validate:"required,min=100,max=900"`
	Bold     int `json:"bold,omitempty" yaml:"bold,omitempty" validate:"required,min=100,max=900"`
}

// LineHeights are unitless line-height multipliers.
type LineHeights struct {
	Tight   float64 `json:"tight,omitempty" yaml:"tight,omitempty" validate:"required,gt=0"`
	Snug    float64 `json:"snug,omitempty" yaml:"snug,omitempty" validate:"required,gt=0"`
	Normal  float64 `json:"normal,omitempty" yaml:"normal,omitempty" validate:"required,gt=0"`
	Relaxed float64 `json:"relaxed,omitempty" yaml:"relaxed,omitempty" validate:"required,gt=0"`
}

// FontSizes overrides the sizes otherwise derived from BaseSize and Scale.
type FontSizes struct {
	XS   float64 `json:"xs,omitempty" yaml:"xs,omitempty" mapstructure:"xs" validate:"gte=0"`
	SM   float64 `json:"sm,omitempty" yaml:"sm,omitempty" mapstructure:"sm" validate:"gte=0"`
	Base float64 `json:"base,omitempty" yaml:"base,omitempty" mapstructure:"base" validate:"gte=0"`
	LG   float64 `json:"lg,omitempty" yaml:"lg,omitempty" mapstructure:"lg" validate:"gte=0"`
	XL   float64 `json:"xl,omitempty" yaml:"xl,omitempty" mapstructure:"xl" validate:"gte=0"`
	XL2  float64 `json:"2xl,omitempty" yaml:"2xl,omitempty" mapstructure:"2xl" validate:"gte=0"`
	XL3  float64 `json:"3xl,omitempty" yaml:"3xl,omitempty" mapstructure:"3xl" validate:"gte=0"`
	XL4  float64 `json:"4xl,omitempty" yaml:"4xl,omitempty" mapstructure:"4xl" validate:"gte=0"`
}

// Spacing describes the spacing scale.
type Spacing struct {
	BaseUnit float64        `json:"baseUnit,omitempty" yaml:"baseUnit,omitempty" validate:"required,gt=0"`
	Scale    []float64      `json:"scale,omitempty" yaml:"scale,omitempty"`
	Values   *SpacingValues `json:"values,omitempty" yaml:"values,omitempty" mapstructure:"values"`
}

// SpacingValues is an explicit named spacing scale from 0 to 12.
type SpacingValues struct {
	S0  float64 `json:"0,omitempty" yaml:"0,omitempty" mapstructure:"0"`
	S1  float64 `json:"1,omitempty" yaml:"1,omitempty" mapstructure:"1"`
	S2  float64 `json:"2,omitempty" yaml:"2,omitempty" mapstructure:"2"`
	S3  float64 `json:"3,omitempty" yaml:"3,omitempty" mapstructure:"3"`
	S4  float64 `json:"4,omitempty" yaml:"4,omitempty" mapstructure:"4"`
	S5  float64 `json:"5,omitempty" yaml:"5,omitempty" mapstructure:"5"`
	S6  float64 `json:"6,omitempty" yaml:"6,omitempty" mapstructure:"6"`
	S7  float64 `json:"7,omitempty" yaml:"7,omitempty" mapstructure:"7"`
	S8  float64 `json:"8,omitempty" yaml:"8,omitempty" mapstructure:"8"`
	S9  float64 `json:"9,omitempty" yaml:"9,omitempty" mapstructure:"9"`
	S10 float64 `json:"10,omitempty" yaml:"10,omitempty" mapstructure:"10"`
	S11 float64 `json:"11,omitempty" yaml:"11,omitempty" mapstructure:"11"`
	S12 float64 `json:"12,omitempty" yaml:"12,omitempty" mapstructure:"12"`
}

// BorderStyle is the CSS border-style applied by default.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
)

// Borders configures border widths and radii.
type Borders struct {
	Thin          float64     `json:"thin,omitempty" yaml:"thin,omitempty" validate:"required,gt=0"`
	Default       float64     `json:"default,omitempty" yaml:"default,omitempty" validate:"required,gt=0"`
	Thick         float64     `json:"thick,omitempty" yaml:"thick,omitempty" validate:"required,gt=0"`
	RadiusSubtle  float64     `json:"radiusSubtle,omitempty" yaml:"radiusSubtle,omitempty" validate:"gte=0"`
	RadiusRelaxed float64     `json:"radiusRelaxed,omitempty" yaml:"radiusRelaxed,omitempty" validate:"gte=0"`
	RadiusPill    float64     `json:"radiusPill,omitempty" yaml:"radiusPill,omitempty" validate:"gte=0"`
	DefaultStyle  BorderStyle `json:"defaultStyle,omitempty" yaml:"defaultStyle,omitempty" validate:"omitempty,oneof=solid dashed dotted"`
}

// Radii is the corner-radius scale.
type Radii struct {
	None float64 `json:"none,omitempty" yaml:"none,omitempty" mapstructure:"none" validate:"gte=0"`
	SM   float64 `json:"sm,omitempty" yaml:"sm,omitempty" mapstructure:"sm" validate:"gte=0"`
	MD   float64 `json:"md,omitempty" yaml:"md,omitempty" mapstructure:"md" validate:"gte=0"`
	LG   float64 `json:"lg,omitempty" yaml:"lg,omitempty" mapstructure:"lg" validate:"gte=0"`
	XL   float64 `json:"xl,omitempty" yaml:"xl,omitempty" mapstructure:"xl" validate:"gte=0"`
	Full float64 `json:"full,omitempty" yaml:"full,omitempty" mapstructure:"full" validate:"gte=0"`
}

// Shadows are CSS box-shadow values.
type Shadows struct {
	None string `json:"none,omitempty" yaml:"none,omitempty" mapstructure:"none"`
	SM   string `json:"sm,omitempty" yaml:"sm,omitempty" mapstructure:"sm"`
	MD   string `json:"md,omitempty" yaml:"md,omitempty" mapstructure:"md"`
	LG   string `json:"lg,omitempty" yaml:"lg,omitempty" mapstructure:"lg"`
	XL   string `json:"xl,omitempty" yaml:"xl,omitempty" mapstructure:"xl"`
}

// ZIndex is the stacking order for layered components.
type ZIndex struct {
	Base          int `json:"base,omitempty" yaml:"base,omitempty" mapstructure:"base"`
	Dropdown      int `json:"dropdown,omitempty" yaml:"dropdown,omitempty" mapstructure:"dropdown"`
	Sticky        int `json:"sticky,omitempty" yaml:"sticky,omitempty" mapstructure:"sticky"`
	Fixed         int `json:"fixed,omitempty" yaml:"fixed,omitempty" mapstructure:"fixed"`
	ModalBackdrop int `json:"modalBackdrop,omitempty" yaml:"modalBackdrop,omitempty" mapstructure:"modalBackdrop"`
	Modal         int `json:"modal,omitempty" yaml:"modal,omitempty" mapstructure:"modal"`
	Popover       int `json:"popover,omitempty" yaml:"popover,omitempty" mapstructure:"popover"`
	Tooltip       int `json:"tooltip,omitempty" yaml:"tooltip,omitempty" mapstructure:"tooltip"`
}

// VariantColors is the colour set for one button or card variant.
type VariantColors struct {
	Background      string `json:"background,omitempty" yaml:"background,omitempty" mapstructure:"background" validate:"omitempty,themecolor"`
	Text            string `json:"text,omitempty" yaml:"text,omitempty" mapstructure:"text" validate:"omitempty,themecolor"`
	Border          string `json:"border,omitempty" yaml:"border,omitempty" mapstructure:"border" validate:"omitempty,themecolor"`
	BackgroundHover string `json:"backgroundHover,omitempty" yaml:"backgroundHover,omitempty" mapstructure:"backgroundHover" validate:"omitempty,themecolor"`
	TextHover       string `json:"textHover,omitempty" yaml:"textHover,omitempty" mapstructure:"textHover" validate:"omitempty,themecolor"`
	BorderHover     string `json:"borderHover,omitempty" yaml:"borderHover,omitempty" mapstructure:"borderHover" validate:"omitempty,themecolor"`
}

// Buttons holds per-variant button colours.
type Buttons struct {
	Primary   *VariantColors `json:"primary,omitempty" yaml:"primary,omitempty" mapstructure:"primary"`
	Secondary *VariantColors `json:"secondary,omitempty" yaml:"secondary,omitempty" mapstructure:"secondary"`
	Outline   *VariantColors `json:"outline,omitempty" yaml:"outline,omitempty" mapstructure:"outline"`
	Ghost     *VariantColors `json:"ghost,omitempty" yaml:"ghost,omitempty" mapstructure:"ghost"`
	Danger    *VariantColors `json:"danger,omitempty" yaml:"danger,omitempty" mapstructure:"danger"`
}

// Cards holds per-variant card colours.
type Cards struct {
	Default  *VariantColors `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
	Elevated *VariantColors `json:"elevated,omitempty" yaml:"elevated,omitempty" mapstructure:"elevated"`
	Outlined *VariantColors `json:"outlined,omitempty" yaml:"outlined,omitempty" mapstructure:"outlined"`
	Filled   *VariantColors `json:"filled,omitempty" yaml:"filled,omitempty" mapstructure:"filled"`
}

// Breakpoints are responsive viewport widths in pixels.
type Breakpoints struct {
	XS  float64 `json:"xs,omitempty" yaml:"xs,omitempty" mapstructure:"xs" validate:"gte=0"`
	SM  float64 `json:"sm,omitempty" yaml:"sm,omitempty" mapstructure:"sm" validate:"gte=0"`
	MD  float64 `json:"md,omitempty" yaml:"md,omitempty" mapstructure:"md" validate:"gte=0"`
	LG  float64 `json:"lg,omitempty" yaml:"lg,omitempty" mapstructure:"lg" validate:"gte=0"`
	XL  float64 `json:"xl,omitempty" yaml:"xl,omitempty" mapstructure:"xl" validate:"gte=0"`
	XL2 float64 `json:"2xl,omitempty" yaml:"2xl,omitempty" mapstructure:"2xl" validate:"gte=0"`
}

// Animations configures durations (ms) and easing curves.
type Animations struct {
	DurationFast   float64 `json:"durationFast,omitempty" yaml:"durationFast,omitempty" mapstructure:"durationFast" validate:"gte=0"`
	DurationNormal float64 `json:"durationNormal,omitempty" yaml:"durationNormal,omitempty" mapstructure:"durationNormal" validate:"gte=0"`
	DurationSlow   float64 `json:"durationSlow,omitempty" yaml:"durationSlow,omitempty" mapstructure:"durationSlow" validate:"gte=0"`
	EasingDefault  string  `json:"easingDefault,omitempty" yaml:"easingDefault,omitempty" mapstructure:"easingDefault"`
	EasingIn       string  `json:"easingIn,omitempty" yaml:"easingIn,omitempty" mapstructure:"easingIn"`
	EasingOut      string  `json:"easingOut,omitempty" yaml:"easingOut,omitempty" mapstructure:"easingOut"`
}

// Opacity holds named opacity levels in [0,1].
type Opacity struct {
	Disabled float64 `json:"disabled,omitempty" yaml:"disabled,omitempty" mapstructure:"disabled" validate:"gte=0,lte=1"`
	Hover    float64 `json:"hover,omitempty" yaml:"hover,omitempty" mapstructure:"hover" validate:"gte=0,lte=1"`
	Overlay  float64 `json:"overlay,omitempty" yaml:"overlay,omitempty" mapstructure:"overlay" validate:"gte=0,lte=1"`
	Subtle   float64 `json:"subtle,omitempty" yaml:"subtle,omitempty" mapstructure:"subtle" validate:"gte=0,lte=1"`
}

// Grid configures the layout grid.
type Grid struct {
	Columns   int     `json:"columns,omitempty" yaml:"columns,omitempty" mapstructure:"columns" validate:"gte=0"`
	Gutter    float64 `json:"gutter,omitempty" yaml:"gutter,omitempty" mapstructure:"gutter" validate:"gte=0"`
	MaxWidth  float64 `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty" mapstructure:"maxWidth" validate:"gte=0"`
	Container float64 `json:"container,omitempty" yaml:"container,omitempty" mapstructure:"container" validate:"gte=0"`
}

// DarkMode carries author-supplied overrides used when dark mode is active.
type DarkMode struct {
	Enabled bool     `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled"`
	Colors  *Colors  `json:"colors,omitempty" yaml:"colors,omitempty" mapstructure:"colors" validate:"-"`
	Buttons *Buttons `json:"buttons,omitempty" yaml:"buttons,omitempty" mapstructure:"buttons"`
	Cards   *Cards   `json:"cards,omitempty" yaml:"cards,omitempty" mapstructure:"cards"`
}
