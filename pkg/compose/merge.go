// Package compose merges, overrides and derives theme variants.
//
// Every function treats its inputs as immutable values and returns fresh
// copies. A zero leaf in a theme.Config means "unset", so partial themes are
// expressed with the same type as complete ones.
package compose

import (
	"fmt"

	"dario.cat/mergo"

	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/theme"
)

// Strategy selects how MergeThemes resolves keys defined by several themes.
type Strategy string

const (
	// StrategyMerge deep-merges sections; later leaves win.
	StrategyMerge Strategy = "merge"
	// StrategyOverride replaces whole top-level sections with later ones.
	StrategyOverride Strategy = "override"
	// StrategyFirst keeps the earliest value and only fills gaps.
	StrategyFirst Strategy = "first"
)

// ParseStrategy converts a user-supplied name into a Strategy. The empty
// string maps to StrategyMerge.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyMerge:
		return StrategyMerge, nil
	case StrategyOverride, StrategyFirst:
		return Strategy(s), nil
	default:
		return "", themeerrors.NewCompositionError("merge", fmt.Sprintf("unknown strategy %q", s), nil)
	}
}

// MergeOptions configures MergeThemes. The zero value deep-merges.
type MergeOptions struct {
	Strategy Strategy
	// PreserveMeta takes meta from the first theme regardless of strategy.
	PreserveMeta bool
}

// MergeThemes folds themes left to right. It fails on an empty list and
// returns a single theme as-is. Slices such as spacing.scale are replaced
// atomically, never merged element-wise.
func MergeThemes(themes []theme.Config, opts MergeOptions) (theme.Config, error) {
	if len(themes) == 0 {
		return theme.Config{}, themeerrors.NewCompositionError("merge", "at least one theme is required", nil)
	}
	if len(themes) == 1 {
		return themes[0], nil
	}

	strategy, err := ParseStrategy(string(opts.Strategy))
	if err != nil {
		return theme.Config{}, err
	}

	out := themes[0].Clone()
	for i, next := range themes[1:] {
		switch strategy {
		case StrategyOverride:
			for _, section := range theme.AllSections() {
				if next.Has(section) {
					theme.CopySection(&out, next, section)
				}
			}
		case StrategyFirst:
			if err := mergo.Merge(&out, next.Clone()); err != nil {
				return theme.Config{}, themeerrors.NewCompositionError("merge", fmt.Sprintf("theme %d", i+1), err)
			}
		default:
			if err := mergo.Merge(&out, next.Clone(), mergo.WithOverride); err != nil {
				return theme.Config{}, themeerrors.NewCompositionError("merge", fmt.Sprintf("theme %d", i+1), err)
			}
		}
	}

	if opts.PreserveMeta {
		theme.CopySection(&out, themes[0], theme.SectionMeta)
	}
	return out, nil
}

// ExtendTheme deep-merges overrides onto base. Neither argument is modified.
func ExtendTheme(base, overrides theme.Config) (theme.Config, error) {
	return MergeThemes([]theme.Config{base, overrides}, MergeOptions{Strategy: StrategyMerge})
}
