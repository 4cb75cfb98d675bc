package colormath

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Minimum ratios for body text and for UI elements (icons, borders, large text).
const (
	TextAA  = 4.5
	TextAAA = 7.0
	UIAA    = 3.0
	UIAAA   = 4.5
)

// Contrast is the outcome of comparing a foreground against a background at
// body-text thresholds.
type Contrast struct {
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"AA"`
	AAA   bool    `json:"AAA"`
}

// CheckContrast reports the contrast ratio of fg on bg and whether it meets
// the AA and AAA body-text minimums.
func CheckContrast(fg, bg string) (Contrast, error) {
	ratio, err := CalculateContrastRatio(fg, bg)
	if err != nil {
		return Contrast{}, err
	}
	return Contrast{Ratio: ratio, AA: ratio >= TextAA, AAA: ratio >= TextAAA}, nil
}

// RequiredRatio returns the minimum contrast for level. uiElement selects the
// relaxed non-text thresholds.
func RequiredRatio(level Level, uiElement bool) float64 {
	switch {
	case level == LevelAAA && uiElement:
		return UIAAA
	case level == LevelAAA:
		return TextAAA
	case uiElement:
		return UIAA
	default:
		return TextAA
	}
}

// ToHex normalises any supported colour string to lower-case #rrggbb.
func ToHex(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return toColorful(c).Hex(), nil
}

// Mix blends a toward b by t in [0,1] and returns the result as hex.
func Mix(a, b string, t float64) (string, error) {
	ca, err := Parse(a)
	if err != nil {
		return "", err
	}
	cb, err := Parse(b)
	if err != nil {
		return "", err
	}
	t = clamp01(t)
	return toColorful(ca).BlendRgb(toColorful(cb), t).Clamped().Hex(), nil
}

// Lighten moves s toward white by amount in [0,1].
func Lighten(s string, amount float64) (string, error) {
	return Mix(s, "#ffffff", amount)
}

// Darken moves s toward black by amount in [0,1].
func Darken(s string, amount float64) (string, error) {
	return Mix(s, "#000000", amount)
}

// IsDarker reports whether a has lower relative luminance than b.
func IsDarker(a, b string) (bool, error) {
	la, err := Luminance(a)
	if err != nil {
		return false, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return false, err
	}
	return la < lb, nil
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
