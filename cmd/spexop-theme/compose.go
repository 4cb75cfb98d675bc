package main

import (
	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/compose"
)

type composeOptions struct {
	Strategy     string
	PreserveMeta bool
	Variants     []string
	Intensity    string
}

func newComposeCmd(state *app) *cobra.Command {
	opts := composeOptions{}
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "compose <base-theme> [overlay-theme]...",
		Short: "Merge themes and optionally derive variants from the result",
		Long: `Compose folds overlay themes onto the base theme from left to right. The merge
strategy decides conflicts: "merge" deep-merges with later values winning,
"override" replaces whole sections and "first" only fills gaps. With --variant,
the composed theme and its variants are printed as one JSON object keyed by
base, dark, light, highContrast and lowContrast.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, state, opts, out, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", string(compose.StrategyMerge), "Merge strategy: merge, override or first")
	cmd.Flags().BoolVar(&opts.PreserveMeta, "preserve-meta", false, "Keep the base theme's meta section")
	cmd.Flags().StringSliceVar(&opts.Variants, "variant", nil, "Variants to derive: dark, light, high-contrast, low-contrast")
	cmd.Flags().StringVar(&opts.Intensity, "intensity", string(compose.IntensitySubtle), "Variant intensity: subtle or intense")
	out.register(cmd)

	return cmd
}

func variantSet(names []string) (compose.VariantSet, error) {
	var set compose.VariantSet
	for _, name := range names {
		kind, err := compose.ParseVariantKind(name)
		if err != nil {
			return set, err
		}
		switch kind {
		case compose.VariantDark:
			set.Dark = true
		case compose.VariantLight:
			set.Light = true
		case compose.VariantHighContrast:
			set.HighContrast = true
		case compose.VariantLowContrast:
			set.LowContrast = true
		}
	}
	return set, nil
}

func runCompose(cmd *cobra.Command, state *app, opts composeOptions, out *outputFlags, paths []string) error {
	strategy, err := compose.ParseStrategy(opts.Strategy)
	if err != nil {
		return err
	}
	variants, err := variantSet(opts.Variants)
	if err != nil {
		return err
	}

	themes, err := themefile.LoadAll(paths, state.sanitizeOptions())
	if err != nil {
		return err
	}

	merged, err := compose.MergeThemes(themes, compose.MergeOptions{Strategy: strategy, PreserveMeta: opts.PreserveMeta})
	if err != nil {
		return err
	}
	state.log.WithFields(map[string]any{"themes": len(themes), "strategy": strategy}).Debug("merged themes")

	if variants.Empty() {
		return out.emit(cmd, merged)
	}

	composition, err := compose.ComposeThemes(compose.Request{
		Base:     merged,
		Variants: variants,
		Options:  compose.VariantOptions{Intensity: compose.Intensity(opts.Intensity)},
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd, composition.All())
}
