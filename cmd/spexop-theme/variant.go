package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/compose"
	"github.com/spexop/theme/pkg/theme"
)

type variantOptions struct {
	Kinds     []string
	Intensity string
	OutDir    string
}

func newVariantCmd(state *app) *cobra.Command {
	opts := variantOptions{}
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "variant <theme-file>",
		Short: "Derive dark, light, high-contrast or low-contrast variants",
		Long: `Variant derives themes from a base theme. With a single --kind the variant is
written like any other theme. With several kinds and --out-dir, each variant is
saved next to the others as <name>.<kind>.<ext>; without --out-dir they are
printed as one JSON object keyed by kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariant(cmd, state, opts, out, args[0])
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Kinds, "kind", "k", nil, "Variant kinds: dark, light, high-contrast, low-contrast (default all)")
	cmd.Flags().StringVar(&opts.Intensity, "intensity", string(compose.IntensitySubtle), "Variant intensity: subtle or intense")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "Directory to write one file per variant")
	out.register(cmd)

	return cmd
}

func parseKinds(names []string) ([]compose.VariantKind, error) {
	if len(names) == 0 {
		return compose.VariantKinds(), nil
	}
	kinds := make([]compose.VariantKind, 0, len(names))
	for _, name := range names {
		kind, err := compose.ParseVariantKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func runVariant(cmd *cobra.Command, state *app, opts variantOptions, out *outputFlags, path string) error {
	kinds, err := parseKinds(opts.Kinds)
	if err != nil {
		return err
	}

	base, err := themefile.Load(path, state.sanitizeOptions())
	if err != nil {
		return err
	}

	variantOpts := compose.VariantOptions{Intensity: compose.Intensity(opts.Intensity)}

	if len(kinds) == 1 && opts.OutDir == "" {
		variant, err := compose.CreateThemeVariant(base, kinds[0], variantOpts)
		if err != nil {
			return err
		}
		return out.emit(cmd, variant)
	}

	variants, err := compose.CreateThemeVariants(base, kinds, variantOpts)
	if err != nil {
		return err
	}

	if opts.OutDir == "" {
		return writeJSON(cmd, variants)
	}

	return saveVariants(cmd, state, opts.OutDir, path, kinds, variants)
}

func saveVariants(cmd *cobra.Command, state *app, dir, source string, kinds []compose.VariantKind, variants map[string]theme.Config) error {
	ext := filepath.Ext(source)
	if ext == "" || source == themefile.Stdin {
		ext = ".json"
	}
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if source == themefile.Stdin {
		stem = "theme"
	}

	for _, kind := range kinds {
		target := filepath.Join(dir, fmt.Sprintf("%s.%s%s", stem, kind, ext))
		if err := themefile.Save(target, variants[kind.Key()]); err != nil {
			return err
		}
		state.log.WithFields(map[string]any{"kind": kind, "path": target}).Info("wrote variant")
		fmt.Fprintln(cmd.OutOrStdout(), target)
	}
	return nil
}
