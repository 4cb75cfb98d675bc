package sanitize

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	themeerrors "github.com/spexop/theme/pkg/errors"
)

// sanitizer carries options through a single Sanitize call.
type sanitizer struct {
	opts Options
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any, map[any]any:
		return "object"
	case float64, float32, int, int64, int32, uint, uint64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func mismatch(field, expected string, v any) error {
	return themeerrors.NewSanitizationError(field, expected, "got "+typeName(v), nil)
}

// asObject normalises YAML's map[any]any into map[string]any.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func (s *sanitizer) object(field string, v any) (map[string]any, error) {
	obj, ok := asObject(v)
	if !ok {
		return nil, mismatch(field, "object", v)
	}
	return obj, nil
}

// cleanString trims again after truncating, so a cut that lands next to a
// space never leaves whitespace for a later pass to remove.
func (s *sanitizer) cleanString(v string, limit int) string {
	v = RemoveDangerousChars(v)
	if s.opts.KeepWhitespace {
		return truncate(v, limit)
	}
	return strings.TrimSpace(truncate(strings.TrimSpace(v), limit))
}

// str reads a string leaf. A missing required leaf is an error; a missing
// optional leaf yields "".
func (s *sanitizer) str(obj map[string]any, key, field string, required bool, limit int) (string, error) {
	raw, present := obj[key]
	if !present || raw == nil {
		if required {
			return "", themeerrors.NewSanitizationError(field, "string", "value is missing", nil)
		}
		return "", nil
	}

	value, ok := raw.(string)
	if !ok {
		return "", mismatch(field, "string", raw)
	}
	return s.cleanString(value, limit), nil
}

func (s *sanitizer) color(obj map[string]any, key, field string, required bool) (string, error) {
	raw, present := obj[key]
	if present {
		if _, ok := raw.(string); !ok && raw != nil {
			return "", mismatch(field, "color string", raw)
		}
	}
	return s.str(obj, key, field, required, s.opts.MaxStringLength)
}

// toNumber coerces JSON/YAML numerics and, unless StrictNumbers is set,
// numeric strings. Non-finite results are rejected.
func (s *sanitizer) toNumber(field string, raw any) (float64, error) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, themeerrors.NewSanitizationError(field, "number", fmt.Sprintf("got %q", v.String()), err)
		}
		n = parsed
	case string:
		if s.opts.StrictNumbers {
			return 0, mismatch(field, "number", raw)
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, themeerrors.NewSanitizationError(field, "number", fmt.Sprintf("got %q", v), err)
		}
		n = parsed
	default:
		return 0, mismatch(field, "number", raw)
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, themeerrors.NewSanitizationError(field, "finite number", fmt.Sprintf("got %v", n), nil)
	}
	return n, nil
}

func (s *sanitizer) num(obj map[string]any, key, field string, required bool) (float64, error) {
	raw, present := obj[key]
	if !present || raw == nil {
		if required {
			return 0, themeerrors.NewSanitizationError(field, "number", "value is missing", nil)
		}
		return 0, nil
	}
	return s.toNumber(field, raw)
}

func (s *sanitizer) stringList(obj map[string]any, key, field string) ([]string, error) {
	raw, present := obj[key]
	if !present || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, mismatch(field, "array of strings", raw)
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		value, ok := item.(string)
		if !ok {
			return nil, mismatch(fmt.Sprintf("%s[%d]", field, i), "string", item)
		}
		out = append(out, s.cleanString(value, s.opts.MaxStringLength))
	}
	return out, nil
}

func (s *sanitizer) numberList(obj map[string]any, key, field string) ([]float64, error) {
	raw, present := obj[key]
	if !present || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, mismatch(field, "array of numbers", raw)
	}

	out := make([]float64, 0, len(items))
	for i, item := range items {
		n, err := s.toNumber(fmt.Sprintf("%s[%d]", field, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// checkDepth rejects documents nested deeper than MaxDepth.
func (s *sanitizer) checkDepth(field string, v any, depth int) error {
	if depth > s.opts.MaxDepth {
		return themeerrors.NewSanitizationError(field, fmt.Sprintf("at most %d levels of nesting", s.opts.MaxDepth), "document is nested too deeply", nil)
	}

	if obj, ok := asObject(v); ok {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := s.checkDepth(field+"."+k, obj[k], depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if items, ok := v.([]any); ok {
		for i, item := range items {
			if err := s.checkDepth(fmt.Sprintf("%s[%d]", field, i), item, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// cleanTree returns a copy of v with every string cleaned and every map keyed
// by string, ready for structural decoding.
func (s *sanitizer) cleanTree(v any) any {
	if obj, ok := asObject(v); ok {
		out := make(map[string]any, len(obj))
		for k, val := range obj {
			out[s.cleanString(k, s.opts.MaxStringLength)] = s.cleanTree(val)
		}
		return out
	}

	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.cleanTree(item)
		}
		return out
	case string:
		return s.cleanString(val, s.opts.MaxStringLength)
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
