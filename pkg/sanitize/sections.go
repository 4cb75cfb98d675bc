package sanitize

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/theme"
)

func (s *sanitizer) warn(field, msg string, fallback any) {
	s.opts.Logger.WithFields(map[string]any{
		"field":    field,
		"fallback": fallback,
	}).Warn(msg)
}

func (s *sanitizer) meta(raw any) (theme.Meta, error) {
	obj, err := s.object("meta", raw)
	if err != nil {
		return theme.Meta{}, err
	}

	var meta theme.Meta
	if meta.Name, err = s.str(obj, "name", "meta.name", true, s.opts.MaxStringLength); err != nil {
		return theme.Meta{}, err
	}
	if meta.Version, err = s.str(obj, "version", "meta.version", true, s.opts.MaxStringLength); err != nil {
		return theme.Meta{}, err
	}
	if meta.Author, err = s.str(obj, "author", "meta.author", false, s.opts.MaxStringLength); err != nil {
		return theme.Meta{}, err
	}
	if meta.Description, err = s.str(obj, "description", "meta.description", false, s.opts.MaxStringLength*descriptionLengthFactor); err != nil {
		return theme.Meta{}, err
	}
	if meta.Tags, err = s.stringList(obj, "tags", "meta.tags"); err != nil {
		return theme.Meta{}, err
	}
	return meta, nil
}

func (s *sanitizer) colors(raw any) (theme.Colors, error) {
	obj, err := s.object("colors", raw)
	if err != nil {
		return theme.Colors{}, err
	}

	var colors theme.Colors
	for _, key := range theme.AllColorKeys() {
		value, err := s.color(obj, string(key), "colors."+string(key), key.IsRequired())
		if err != nil {
			return theme.Colors{}, err
		}
		colors = colors.With(key, value)
	}

	for key := range obj {
		if !theme.ColorKey(key).Known() {
			s.opts.Logger.WithFields(map[string]any{"field": "colors." + key}).Debug("dropping unknown color")
		}
	}
	return colors, nil
}

func (s *sanitizer) typography(raw any) (theme.Typography, error) {
	obj, err := s.object("typography", raw)
	if err != nil {
		return theme.Typography{}, err
	}

	var typo theme.Typography
	if typo.FontFamily, err = s.str(obj, "fontFamily", "typography.fontFamily", true, s.opts.MaxStringLength); err != nil {
		return theme.Typography{}, err
	}
	if typo.FontFamilyHeading, err = s.str(obj, "fontFamilyHeading", "typography.fontFamilyHeading", false, s.opts.MaxStringLength); err != nil {
		return theme.Typography{}, err
	}
	if typo.FontFamilyMono, err = s.str(obj, "fontFamilyMono", "typography.fontFamilyMono", false, s.opts.MaxStringLength); err != nil {
		return theme.Typography{}, err
	}
	if typo.BaseSize, err = s.num(obj, "baseSize", "typography.baseSize", true); err != nil {
		return theme.Typography{}, err
	}
	if typo.Scale, err = s.num(obj, "scale", "typography.scale", true); err != nil {
		return theme.Typography{}, err
	}

	typo.Weights = s.weights(obj)
	typo.LineHeights = s.lineHeights(obj)

	if typo.Sizes, err = decodeSection[theme.FontSizes](s, obj, "sizes", "typography.sizes"); err != nil {
		return theme.Typography{}, err
	}
	return typo, nil
}

// weights never fails: a missing or malformed entry falls back to its default.
func (s *sanitizer) weights(typo map[string]any) theme.FontWeights {
	defaults := theme.DefaultWeights()
	raw, present := typo["weights"]
	obj, ok := asObject(raw)
	if !ok {
		if present && raw != nil {
			s.warn("typography.weights", "font weights are malformed; using defaults", defaults)
		}
		return defaults
	}

	out := defaults
	entries := []struct {
		key string
		dst *int
		def int
	}{
		{"regular", &out.Regular, defaults.Regular},
		{"medium", &out.Medium, defaults.Medium},
		{"semibold", &out.Semibold, defaults.Semibold},
		{"bold", &out.Bold, defaults.Bold},
	}
	for _, e := range entries {
		field := "typography.weights." + e.key
		n, err := s.num(obj, e.key, field, true)
		if err != nil {
			s.warn(field, "font weight is missing or malformed; using default", e.def)
			continue
		}
		*e.dst = roundClamped(n, 100, 900)
	}
	return out
}

// lineHeights never fails: a missing, malformed or non-positive entry falls
// back to its default.
func (s *sanitizer) lineHeights(typo map[string]any) theme.LineHeights {
	defaults := theme.DefaultLineHeights()
	raw, present := typo["lineHeights"]
	obj, ok := asObject(raw)
	if !ok {
		if present && raw != nil {
			s.warn("typography.lineHeights", "line heights are malformed; using defaults", defaults)
		}
		return defaults
	}

	out := defaults
	entries := []struct {
		key string
		dst *float64
		def float64
	}{
		{"tight", &out.Tight, defaults.Tight},
		{"snug", &out.Snug, defaults.Snug},
		{"normal", &out.Normal, defaults.Normal},
		{"relaxed", &out.Relaxed, defaults.Relaxed},
	}
	for _, e := range entries {
		field := "typography.lineHeights." + e.key
		n, err := s.num(obj, e.key, field, true)
		if err != nil || n <= 0 {
			s.warn(field, "line height is missing or malformed; using default", e.def)
			continue
		}
		*e.dst = n
	}
	return out
}

func (s *sanitizer) spacing(raw any) (theme.Spacing, error) {
	obj, err := s.object("spacing", raw)
	if err != nil {
		return theme.Spacing{}, err
	}

	var spacing theme.Spacing
	if spacing.BaseUnit, err = s.num(obj, "baseUnit", "spacing.baseUnit", true); err != nil {
		return theme.Spacing{}, err
	}
	if spacing.Scale, err = s.numberList(obj, "scale", "spacing.scale"); err != nil {
		return theme.Spacing{}, err
	}
	if spacing.Values, err = decodeSection[theme.SpacingValues](s, obj, "values", "spacing.values"); err != nil {
		return theme.Spacing{}, err
	}
	return spacing, nil
}

func (s *sanitizer) borders(raw any) (theme.Borders, error) {
	obj, err := s.object("borders", raw)
	if err != nil {
		return theme.Borders{}, err
	}

	var borders theme.Borders
	widths := []struct {
		key      string
		dst      *float64
		required bool
	}{
		{"thin", &borders.Thin, true},
		{"default", &borders.Default, true},
		{"thick", &borders.Thick, true},
		{"radiusSubtle", &borders.RadiusSubtle, false},
		{"radiusRelaxed", &borders.RadiusRelaxed, false},
		{"radiusPill", &borders.RadiusPill, false},
	}
	for _, w := range widths {
		n, err := s.num(obj, w.key, "borders."+w.key, w.required)
		if err != nil {
			return theme.Borders{}, err
		}
		*w.dst = math.Max(n, 0)
	}

	style, err := s.str(obj, "defaultStyle", "borders.defaultStyle", false, s.opts.MaxStringLength)
	if err != nil {
		return theme.Borders{}, err
	}
	switch theme.BorderStyle(style) {
	case "", theme.BorderSolid, theme.BorderDashed, theme.BorderDotted:
		borders.DefaultStyle = theme.BorderStyle(style)
	default:
		return theme.Borders{}, themeerrors.NewSanitizationError("borders.defaultStyle", "one of solid, dashed, dotted", fmt.Sprintf("got %q", style), nil)
	}
	return borders, nil
}

// optional decodes every optional top-level section present in root.
func (s *sanitizer) optional(root map[string]any, cfg *theme.Config) error {
	var err error
	if cfg.Radii, err = decodeSection[theme.Radii](s, root, "radii", "radii"); err != nil {
		return err
	}
	if cfg.Shadows, err = decodeSection[theme.Shadows](s, root, "shadows", "shadows"); err != nil {
		return err
	}
	if cfg.ZIndex, err = decodeSection[theme.ZIndex](s, root, "zIndex", "zIndex"); err != nil {
		return err
	}
	if cfg.Buttons, err = decodeSection[theme.Buttons](s, root, "buttons", "buttons"); err != nil {
		return err
	}
	if cfg.Cards, err = decodeSection[theme.Cards](s, root, "cards", "cards"); err != nil {
		return err
	}
	if cfg.Breakpoints, err = decodeSection[theme.Breakpoints](s, root, "breakpoints", "breakpoints"); err != nil {
		return err
	}
	if cfg.Animations, err = decodeSection[theme.Animations](s, root, "animations", "animations"); err != nil {
		return err
	}
	if cfg.Opacity, err = decodeSection[theme.Opacity](s, root, "opacity", "opacity"); err != nil {
		return err
	}
	if cfg.Opacity != nil {
		o := cfg.Opacity
		o.Disabled, o.Hover, o.Overlay, o.Subtle = clampUnit(o.Disabled), clampUnit(o.Hover), clampUnit(o.Overlay), clampUnit(o.Subtle)
	}
	if cfg.Grid, err = decodeSection[theme.Grid](s, root, "grid", "grid"); err != nil {
		return err
	}
	if cfg.DarkMode, err = decodeSection[theme.DarkMode](s, root, "darkMode", "darkMode"); err != nil {
		return err
	}
	return nil
}

// decodeSection maps an optional object onto T. Absent sections yield nil.
func decodeSection[T any](s *sanitizer, obj map[string]any, key, field string) (*T, error) {
	raw, present := obj[key]
	if !present || raw == nil {
		return nil, nil
	}
	if _, err := s.object(field, raw); err != nil {
		return nil, err
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "mapstructure",
		WeaklyTypedInput: !s.opts.StrictNumbers,
	})
	if err != nil {
		return nil, fmt.Errorf("build decoder for %s: %w", field, err)
	}
	if err := decoder.Decode(s.cleanTree(raw)); err != nil {
		return nil, themeerrors.NewSanitizationError(field, "object matching the "+field+" schema", err.Error(), err)
	}
	if err := ensureFinite(field, reflect.ValueOf(&out)); err != nil {
		return nil, err
	}
	return &out, nil
}

func ensureFinite(field string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return ensureFinite(field, v.Elem())
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			name := t.Field(i).Tag.Get("mapstructure")
			if name == "" {
				name = t.Field(i).Name
			}
			if err := ensureFinite(field+"."+name, v.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Float32, reflect.Float64:
		if f := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return themeerrors.NewSanitizationError(field, "finite number", fmt.Sprintf("got %v", f), nil)
		}
	}
	return nil
}

// roundClamped clamps before converting so huge values cannot overflow int.
func roundClamped(v, lo, hi float64) int {
	return int(math.Round(math.Max(lo, math.Min(v, hi))))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
