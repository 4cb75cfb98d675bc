package compose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spexop/theme/pkg/colormath"
	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/theme"
)

func sampleTheme() theme.Config {
	return theme.Default()
}

func darkTheme() theme.Config {
	cfg := theme.Default()
	cfg.Meta.Name = "Night (Dark)"
	cfg.Colors.Surface = "#0b1120"
	cfg.Colors.Text = "#e2e8f0"
	cfg.DarkMode = &theme.DarkMode{Enabled: true}
	return cfg
}

func contrast(t *testing.T, cfg theme.Config) float64 {
	t.Helper()
	ratio, err := colormath.CalculateContrastRatio(cfg.Colors.Text, cfg.Colors.Surface)
	require.NoError(t, err)
	return ratio
}

func requireCompositionError(t *testing.T, err error, op string) {
	t.Helper()
	var compErr *themeerrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	require.Equal(t, op, compErr.Op)
}

func TestMergeThemesRejectsEmptyList(t *testing.T) {
	t.Parallel()

	_, err := MergeThemes(nil, MergeOptions{})
	requireCompositionError(t, err, "merge")
}

func TestMergeThemesSingletonIsIdentity(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	got, err := MergeThemes([]theme.Config{base}, MergeOptions{Strategy: StrategyOverride})
	require.NoError(t, err)
	require.Equal(t, base, got)
}

func TestMergeThemesStrategies(t *testing.T) {
	t.Parallel()

	partial := theme.Config{
		Meta:       theme.Meta{Name: "Partial"},
		Colors:     theme.Colors{Primary: "#ff0000", Accent: "#abcdef"},
		Typography: theme.Typography{Weights: theme.FontWeights{Bold: 800}},
		Spacing:    theme.Spacing{Scale: []float64{1, 2}},
	}

	cases := []struct {
		name   string
		opts   MergeOptions
		verify func(t *testing.T, got theme.Config)
	}{
		{
			name: "merge",
			opts: MergeOptions{},
			verify: func(t *testing.T, got theme.Config) {
				require.Equal(t, "Partial", got.Meta.Name)
				require.Equal(t, "1.0.0", got.Meta.Version)
				require.Equal(t, "#ff0000", got.Colors.Primary)
				require.Equal(t, "#abcdef", got.Colors.Accent)
				require.Equal(t, "#ffffff", got.Colors.Surface)
				require.Equal(t, theme.FontWeights{Regular: 400, Medium: 500, Semibold: 600, Bold: 800}, got.Typography.Weights)
				require.Equal(t, "Inter, system-ui, sans-serif", got.Typography.FontFamily)
				require.Equal(t, []float64{1, 2}, got.Spacing.Scale)
				require.Equal(t, 4.0, got.Spacing.BaseUnit)
			},
		},
		{
			name: "override",
			opts: MergeOptions{Strategy: StrategyOverride},
			verify: func(t *testing.T, got theme.Config) {
				require.Equal(t, theme.Colors{Primary: "#ff0000", Accent: "#abcdef"}, got.Colors)
				require.Equal(t, partial.Typography, got.Typography)
				require.Equal(t, sampleTheme().Borders, got.Borders)
			},
		},
		{
			name: "first",
			opts: MergeOptions{Strategy: StrategyFirst},
			verify: func(t *testing.T, got theme.Config) {
				require.Equal(t, "Spexop Default", got.Meta.Name)
				require.Equal(t, "#3b82f6", got.Colors.Primary)
				require.Equal(t, "#abcdef", got.Colors.Accent)
				require.Equal(t, 700, got.Typography.Weights.Bold)
				require.Equal(t, sampleTheme().Spacing.Scale, got.Spacing.Scale)
			},
		},
		{
			name: "merge preserving meta",
			opts: MergeOptions{PreserveMeta: true},
			verify: func(t *testing.T, got theme.Config) {
				require.Equal(t, sampleTheme().Meta, got.Meta)
				require.Equal(t, "#ff0000", got.Colors.Primary)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := MergeThemes([]theme.Config{sampleTheme(), partial}, tc.opts)
			require.NoError(t, err)
			tc.verify(t, got)
		})
	}
}

func TestMergeThemesRejectsUnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := MergeThemes([]theme.Config{sampleTheme(), sampleTheme()}, MergeOptions{Strategy: "shuffle"})
	requireCompositionError(t, err, "merge")
}

func TestExtendThemeWithEmptyOverrides(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	got, err := ExtendTheme(base, theme.Config{})
	require.NoError(t, err)
	require.Equal(t, base, got)
}

func TestExtendThemeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := darkTheme()
	base.DarkMode.Colors = &theme.Colors{Surface: "#000000"}
	snapshot := base.Clone()

	overrides := theme.Config{
		Meta:     theme.Meta{Tags: []string{"custom"}},
		DarkMode: &theme.DarkMode{Colors: &theme.Colors{Surface: "#111111", Text: "#fafafa"}},
	}
	overridesSnapshot := overrides.Clone()

	got, err := ExtendTheme(base, overrides)
	require.NoError(t, err)
	require.Equal(t, "#111111", got.DarkMode.Colors.Surface)
	require.Equal(t, "#fafafa", got.DarkMode.Colors.Text)
	require.Equal(t, []string{"custom"}, got.Meta.Tags)

	require.Equal(t, snapshot, base)
	require.Equal(t, overridesSnapshot, overrides)

	got.DarkMode.Colors.Surface = "#222222"
	require.Equal(t, "#000000", base.DarkMode.Colors.Surface)
	require.Equal(t, "#111111", overrides.DarkMode.Colors.Surface)
}

func TestOverrideTheme(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	got, err := OverrideTheme(base, map[string]any{
		"colors.primary":          "#123456",
		"typography.weights.bold": 800,
		"darkMode.colors.surface": "#000000",
		"meta.tags":               []string{"custom"},
	})
	require.NoError(t, err)

	require.Equal(t, "#123456", got.Colors.Primary)
	require.Equal(t, 800, got.Typography.Weights.Bold)
	require.Equal(t, 400, got.Typography.Weights.Regular)
	require.NotNil(t, got.DarkMode)
	require.Equal(t, "#000000", got.DarkMode.Colors.Surface)
	require.Equal(t, []string{"custom"}, got.Meta.Tags)

	require.Equal(t, sampleTheme(), base)
}

func TestOverrideThemeErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]map[string]any{
		"unknown leaf":       {"colors.sparkle": "#ffffff"},
		"unknown section":    {"palette.primary": "#ffffff"},
		"type mismatch":      {"typography.baseSize": "big"},
		"through a leaf":     {"colors.primary.hue": 10},
		"empty path segment": {"colors..primary": "#ffffff"},
	}

	for name, overrides := range cases {
		name, overrides := name, overrides
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := OverrideTheme(sampleTheme(), overrides)
			requireCompositionError(t, err, "override")
		})
	}
}

func TestCreateDarkVariant(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	dark, err := CreateThemeVariant(base, VariantDark, VariantOptions{})
	require.NoError(t, err)

	require.Equal(t, "Spexop Default (Dark)", dark.Meta.Name)
	require.True(t, dark.IsDark())
	require.NotNil(t, dark.DarkMode)
	require.True(t, dark.DarkMode.Enabled)
	require.Equal(t, base.Colors.Primary, dark.Colors.Primary)
	require.Equal(t, base.Colors.Secondary, dark.Colors.Secondary)
	require.Nil(t, base.DarkMode)

	again, err := CreateThemeVariant(dark, VariantDark, VariantOptions{})
	require.NoError(t, err)
	require.Equal(t, "Spexop Default (Dark)", again.Meta.Name)

	intense, err := CreateThemeVariant(base, VariantDark, VariantOptions{Intensity: IntensityIntense})
	require.NoError(t, err)
	subtleSurface, err := colormath.Luminance(dark.Colors.Surface)
	require.NoError(t, err)
	intenseSurface, err := colormath.Luminance(intense.Colors.Surface)
	require.NoError(t, err)
	require.LessOrEqual(t, intenseSurface, subtleSurface)
}

func TestDarkVariantAppliesAuthoredColors(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	base.DarkMode = &theme.DarkMode{Colors: &theme.Colors{Surface: "#111827", Primary: "#000000"}}

	dark, err := CreateThemeVariant(base, VariantDark, VariantOptions{})
	require.NoError(t, err)
	require.Equal(t, "#111827", dark.Colors.Surface)
	require.Equal(t, base.Colors.Primary, dark.Colors.Primary)
	require.False(t, base.DarkMode.Enabled)
}

func TestLightVariantUndoesDark(t *testing.T) {
	t.Parallel()

	dark, err := CreateThemeVariant(sampleTheme(), VariantDark, VariantOptions{})
	require.NoError(t, err)

	light, err := CreateThemeVariant(dark, VariantLight, VariantOptions{})
	require.NoError(t, err)
	require.Equal(t, "Spexop Default", light.Meta.Name)
	require.Nil(t, light.DarkMode)
	require.False(t, light.IsDark())

	unchanged, err := CreateThemeVariant(sampleTheme(), VariantLight, VariantOptions{})
	require.NoError(t, err)
	require.Equal(t, sampleTheme().Colors, unchanged.Colors)
}

func TestHighContrastVariantMaximisesContrast(t *testing.T) {
	t.Parallel()

	for name, base := range map[string]theme.Config{"light": sampleTheme(), "dark": darkTheme()} {
		name, base := name, base
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			hc, err := CreateThemeVariant(base, VariantHighContrast, VariantOptions{})
			require.NoError(t, err)
			require.GreaterOrEqual(t, contrast(t, hc), 21-1e-9)
			require.Contains(t, hc.Meta.Name, "(High Contrast)")
			require.Equal(t, base.IsDark(), hc.IsDark())
		})
	}

	intense, err := CreateThemeVariant(sampleTheme(), VariantHighContrast, VariantOptions{Intensity: IntensityIntense})
	require.NoError(t, err)
	require.Equal(t, intense.Colors.Text, intense.Colors.TextMuted)
	require.Equal(t, intense.Colors.Text, intense.Colors.Border)
}

func TestLowContrastVariantReducesContrastMonotonically(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	subtle, err := CreateThemeVariant(base, VariantLowContrast, VariantOptions{Intensity: IntensitySubtle})
	require.NoError(t, err)
	intense, err := CreateThemeVariant(base, VariantLowContrast, VariantOptions{Intensity: IntensityIntense})
	require.NoError(t, err)

	require.Equal(t, "Spexop Default (Low Contrast)", subtle.Meta.Name)
	require.Less(t, contrast(t, subtle), contrast(t, base))
	require.LessOrEqual(t, contrast(t, intense), contrast(t, subtle))
	require.Greater(t, contrast(t, intense), 1.0)
}

func TestCreateThemeVariantRejectsUnknownInput(t *testing.T) {
	t.Parallel()

	_, err := CreateThemeVariant(sampleTheme(), "sepia", VariantOptions{})
	requireCompositionError(t, err, "variant")

	_, err = CreateThemeVariant(sampleTheme(), VariantDark, VariantOptions{Intensity: "extreme"})
	requireCompositionError(t, err, "variant")

	_, err = ParseVariantKind("sepia")
	requireCompositionError(t, err, "variant")

	kind, err := ParseVariantKind(" High-Contrast ")
	require.NoError(t, err)
	require.Equal(t, VariantHighContrast, kind)
}

func TestCreateThemeVariants(t *testing.T) {
	t.Parallel()

	variants, err := CreateThemeVariants(sampleTheme(), []VariantKind{VariantHighContrast, VariantDark, VariantDark}, VariantOptions{})
	require.NoError(t, err)
	require.Len(t, variants, 2)
	require.Contains(t, variants, "highcontrast")
	require.Contains(t, variants, "dark")

	empty, err := CreateThemeVariants(sampleTheme(), nil, VariantOptions{})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestComposeThemes(t *testing.T) {
	t.Parallel()

	req := Request{
		Base: sampleTheme(),
		Overrides: []theme.Config{
			{Colors: theme.Colors{Primary: "#ff0000"}},
			{Colors: theme.Colors{Primary: "#00ff00"}, Meta: theme.Meta{Name: "Brand"}},
		},
	}

	single, err := ComposeThemes(req)
	require.NoError(t, err)
	require.False(t, single.HasVariants())
	require.Equal(t, "#00ff00", single.Base.Colors.Primary)
	require.Equal(t, "Brand", single.Base.Meta.Name)
	require.Len(t, single.All(), 1)

	req.Variants = VariantSet{Dark: true, HighContrast: true}
	composed, err := ComposeThemes(req)
	require.NoError(t, err)

	all := composed.All()
	require.Len(t, all, 3)
	require.Contains(t, all, BaseKey)
	require.Contains(t, all, "highContrast")
	require.Equal(t, "Brand (Dark)", all["dark"].Meta.Name)
	require.Equal(t, "#00ff00", all["dark"].Colors.Primary)
	require.Equal(t, sampleTheme(), req.Base)
}

func TestExtractAndPick(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	extracted := ExtractTheme(base, theme.SectionColors, theme.SectionMeta)
	require.Equal(t, base.Colors, extracted.Colors)
	require.Equal(t, base.Meta, extracted.Meta)
	require.True(t, extracted.Typography.IsZero())
	require.False(t, extracted.Has(theme.SectionBorders))

	picked := PickColors(base.Colors, theme.ColorPrimary, theme.ColorAccent, theme.ColorText)
	require.Equal(t, theme.Colors{Primary: base.Colors.Primary, Text: base.Colors.Text}, picked)

	omitted := OmitColors(base.Colors, theme.ColorPrimary)
	require.Empty(t, omitted.Primary)
	require.Equal(t, "#3b82f6", base.Colors.Primary)
	require.Equal(t, base.Colors.Surface, omitted.Surface)
}

func TestAreThemesCompatible(t *testing.T) {
	t.Parallel()

	require.True(t, AreThemesCompatible(sampleTheme(), darkTheme()))
	require.False(t, AreThemesCompatible(sampleTheme(), theme.Config{}))

	missingColor := sampleTheme()
	missingColor.Colors.BorderSubtle = ""
	require.False(t, AreThemesCompatible(missingColor, sampleTheme()))
}

func TestComposeDarkVariantLeavesBaseUntouched(t *testing.T) {
	t.Parallel()

	base := sampleTheme()
	composed, err := ComposeThemes(Request{Base: base, Variants: VariantSet{Dark: true}})
	require.NoError(t, err)

	all := composed.All()
	require.Len(t, all, 2)
	require.True(t, all["dark"].DarkMode.Enabled)
	require.Equal(t, "#3b82f6", all[BaseKey].Colors.Primary)
	require.Equal(t, base, all[BaseKey])
}
