// Package colormath parses CSS-style colour strings and computes WCAG relative
// luminance and contrast ratios.
package colormath

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	themeerrors "github.com/spexop/theme/pkg/errors"
)

// Format identifies which grammar a colour string was written in.
type Format int

const (
	FormatUnknown Format = iota
	FormatHex
	FormatRGB
	FormatHSL
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	default:
		return "unknown"
	}
}

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3}(?:\.\d+)?)\s*,\s*(\d{1,3}(?:\.\d+)?)\s*,\s*(\d{1,3}(?:\.\d+)?)\s*(?:,\s*(\d*\.?\d+%?)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(-?\d+(?:\.\d+)?)(?:deg)?\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*(?:,\s*(\d*\.?\d+%?)\s*)?\)$`)
)

// RGB is an sRGB colour with channels in [0,1]. A is carried for completeness
// but never participates in luminance or contrast.
type RGB struct {
	R, G, B float64
	A       float64
}

// DetectFormat reports the grammar s conforms to, or FormatUnknown.
func DetectFormat(s string) Format {
	_, format, err := parse(s)
	if err != nil {
		return FormatUnknown
	}
	return format
}

// IsValid reports whether s parses as a hex, rgb() or hsl() colour.
func IsValid(s string) bool {
	return DetectFormat(s) != FormatUnknown
}

// Parse converts a colour string into sRGB components.
func Parse(s string) (RGB, error) {
	c, _, err := parse(s)
	return c, err
}

func parse(raw string) (RGB, Format, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		c, err := parseHex(m[1])
		if err != nil {
			return RGB{}, FormatUnknown, themeerrors.NewInvalidColorError(raw)
		}
		return c, FormatHex, nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var channels [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil || v > 255 {
				return RGB{}, FormatUnknown, themeerrors.NewInvalidColorError(raw)
			}
			channels[i] = v / 255
		}
		alpha, ok := parseAlpha(m[4])
		if !ok {
			return RGB{}, FormatUnknown, themeerrors.NewInvalidColorError(raw)
		}
		return RGB{R: channels[0], G: channels[1], B: channels[2], A: alpha}, FormatRGB, nil
	}

	if m := hslPattern.FindStringSubmatch(s); m != nil {
		h, errH := strconv.ParseFloat(m[1], 64)
		sat, errS := strconv.ParseFloat(m[2], 64)
		light, errL := strconv.ParseFloat(m[3], 64)
		if errH != nil || errS != nil || errL != nil || sat > 100 || light > 100 {
			return RGB{}, FormatUnknown, themeerrors.NewInvalidColorError(raw)
		}
		alpha, ok := parseAlpha(m[4])
		if !ok {
			return RGB{}, FormatUnknown, themeerrors.NewInvalidColorError(raw)
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
		c := colorful.Hsl(h, sat/100, light/100).Clamped()
		return RGB{R: c.R, G: c.G, B: c.B, A: alpha}, FormatHSL, nil
	}

	return RGB{}, FormatUnknown, themeerrors.NewInvalidColorError(raw)
}

func parseHex(digits string) (RGB, error) {
	alpha := 1.0
	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:8], 16, 8)
		if err != nil {
			return RGB{}, err
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func parseAlpha(raw string) (float64, bool) {
	if raw == "" {
		return 1, true
	}
	percent := strings.HasSuffix(raw, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return 0, false
	}
	if percent {
		v /= 100
	}
	if v < 0 || v > 1 {
		return 0, false
	}
	return v, true
}

// linearize applies the sRGB transfer function using the WCAG 2.x cutoff.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Luminance parses s and returns its relative luminance.
func Luminance(s string) (float64, error) {
	c, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(c), nil
}

// ContrastRatio computes the WCAG contrast ratio of two parsed colours.
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// CalculateContrastRatio returns the contrast ratio between two colour
// strings. The result lies in [1,21] and is symmetric in its arguments.
func CalculateContrastRatio(colorA, colorB string) (float64, error) {
	a, err := Parse(colorA)
	if err != nil {
		return 0, err
	}
	b, err := Parse(colorB)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(a, b), nil
}
