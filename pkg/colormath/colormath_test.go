package colormath

import (
	"testing"

	"github.com/stretchr/testify/require"

	themeerrors "github.com/spexop/theme/pkg/errors"
)

func TestParseSupportedFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		format Format
		want   RGB
	}{
		{name: "short hex", input: "#fff", format: FormatHex, want: RGB{R: 1, G: 1, B: 1, A: 1}},
		{name: "long hex", input: "#FF0000", format: FormatHex, want: RGB{R: 1, A: 1}},
		{name: "hex with alpha", input: "#00ff0080", format: FormatHex, want: RGB{G: 1, A: 128.0 / 255}},
		{name: "rgb", input: "rgb(0, 0, 255)", format: FormatRGB, want: RGB{B: 1, A: 1}},
		{name: "rgba", input: "rgba(255,255,255,0.5)", format: FormatRGB, want: RGB{R: 1, G: 1, B: 1, A: 0.5}},
		{name: "hsl red", input: "hsl(0, 100%, 50%)", format: FormatHSL, want: RGB{R: 1, A: 1}},
		{name: "hsl wraps hue", input: "hsl(360, 100%, 50%)", format: FormatHSL, want: RGB{R: 1, A: 1}},
		{name: "padded", input: "  #000000 ", format: FormatHex, want: RGB{A: 1}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input)
			require.NoError(t, err)
			require.InDelta(t, tc.want.R, got.R, 1e-9)
			require.InDelta(t, tc.want.G, got.G, 1e-9)
			require.InDelta(t, tc.want.B, got.B, 1e-9)
			require.InDelta(t, tc.want.A, got.A, 1e-9)
			require.Equal(t, tc.format, DetectFormat(tc.input))
		})
	}
}

func TestParseRejectsMalformedColors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "not-a-color", "#12", "#12345", "#gggggg", "rgb(256,0,0)", "rgb(1,2)", "hsl(10, 120%, 50%)", "blue"} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(input)
			var colorErr *themeerrors.InvalidColorError
			require.ErrorAs(t, err, &colorErr)
			require.False(t, IsValid(input))
		})
	}
}

func TestContrastRatioBounds(t *testing.T) {
	t.Parallel()

	ratio, err := CalculateContrastRatio("#000000", "#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 1e-9)

	for _, c := range []string{"#3b82f6", "rgb(12, 200, 99)", "hsl(210, 40%, 30%)", "#ffffff"} {
		same, err := CalculateContrastRatio(c, c)
		require.NoError(t, err)
		require.InDelta(t, 1.0, same, 1e-9, c)
	}
}

func TestContrastRatioIsSymmetric(t *testing.T) {
	t.Parallel()

	colors := []string{"#000", "#ffffff", "#3b82f6", "rgb(100, 116, 139)", "hsl(45, 90%, 55%)", "#1f293780"}
	for _, a := range colors {
		for _, b := range colors {
			ab, err := CalculateContrastRatio(a, b)
			require.NoError(t, err)
			ba, err := CalculateContrastRatio(b, a)
			require.NoError(t, err)
			require.Equal(t, ab, ba)
			require.GreaterOrEqual(t, ab, 1.0)
			require.LessOrEqual(t, ab, 21.0+1e-9)
		}
	}
}

func TestContrastRatioMatchesHexAcrossFormats(t *testing.T) {
	t.Parallel()

	fromHex, err := CalculateContrastRatio("#3b82f6", "#ffffff")
	require.NoError(t, err)
	fromRGB, err := CalculateContrastRatio("rgb(59, 130, 246)", "rgb(255,255,255)")
	require.NoError(t, err)
	require.InDelta(t, fromHex, fromRGB, 1e-9)
	require.InDelta(t, 3.68, fromHex, 0.01)
}

func TestCheckContrastThresholds(t *testing.T) {
	t.Parallel()

	c, err := CheckContrast("#000000", "#ffffff")
	require.NoError(t, err)
	require.True(t, c.AA)
	require.True(t, c.AAA)

	c, err = CheckContrast("#777777", "#ffffff")
	require.NoError(t, err)
	require.False(t, c.AA)
	require.False(t, c.AAA)

	_, err = CheckContrast("bogus", "#ffffff")
	require.Error(t, err)
}

func TestRequiredRatio(t *testing.T) {
	t.Parallel()

	require.Equal(t, 4.5, RequiredRatio(LevelAA, false))
	require.Equal(t, 3.0, RequiredRatio(LevelAA, true))
	require.Equal(t, 7.0, RequiredRatio(LevelAAA, false))
	require.Equal(t, 4.5, RequiredRatio(LevelAAA, true))
}

func TestMixAndHex(t *testing.T) {
	t.Parallel()

	hex, err := ToHex("rgb(255, 0, 0)")
	require.NoError(t, err)
	require.Equal(t, "#ff0000", hex)

	mid, err := Mix("#000000", "#ffffff", 0.5)
	require.NoError(t, err)
	require.Equal(t, "#808080", mid)

	same, err := Mix("#3b82f6", "#ffffff", 0)
	require.NoError(t, err)
	require.Equal(t, "#3b82f6", same)

	darker, err := IsDarker("#111111", "#eeeeee")
	require.NoError(t, err)
	require.True(t, darker)
}
