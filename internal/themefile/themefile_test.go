package themefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/sanitize"
	"github.com/spexop/theme/pkg/theme"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "json", want: FormatJSON},
		{input: "YAML", want: FormatYAML},
		{input: " yml ", want: FormatYAML},
		{input: "toml", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, FormatYAML, FormatFromPath("brand.yaml"))
	require.Equal(t, FormatYAML, FormatFromPath("dir/brand.YML"))
	require.Equal(t, FormatJSON, FormatFromPath("brand.json"))
	require.Equal(t, FormatJSON, FormatFromPath("brand"))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"theme.json", "theme.yaml"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, theme.Default()))

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

			loaded, err := Load(path, sanitize.DefaultOptions())
			require.NoError(t, err)
			require.Equal(t, theme.Default(), loaded)
		})
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Save(filepath.Join(dir, "theme.json"), theme.Default()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), sanitize.DefaultOptions())
	require.Error(t, err)

	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadReportsLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		format Format
		input  string
		line   int
	}{
		{name: "json syntax", format: FormatJSON, input: "{\n  \"meta\": {\n    \"name\": ,\n  }\n}", line: 3},
		{name: "yaml syntax", format: FormatYAML, input: "meta:\n\tname: x\n", line: 2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(strings.NewReader(tc.input), "input", tc.format, sanitize.DefaultOptions())
			require.Error(t, err)

			var parseErr *themeerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, "input", parseErr.Path)
			require.Equal(t, tc.line, parseErr.Line)
		})
	}
}

func TestReadSniffsFormat(t *testing.T) {
	t.Parallel()

	yamlData, err := Encode(theme.Default(), FormatYAML)
	require.NoError(t, err)
	jsonData, err := Encode(theme.Default(), FormatJSON)
	require.NoError(t, err)

	for _, data := range [][]byte{yamlData, jsonData} {
		cfg, err := Read(bytes.NewReader(data), "<stdin>", "", sanitize.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, theme.Default().Meta.Name, cfg.Meta.Name)
	}
}

func TestReadEmptyYAML(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader(""), "empty.yaml", FormatYAML, sanitize.DefaultOptions())
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestReadSanitizationErrorIsLabelled(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader(`{"meta": {}}`), "broken.json", FormatJSON, sanitize.DefaultOptions())
	require.Error(t, err)
	require.True(t, sanitize.IsSanitizationError(err))
	require.True(t, strings.HasPrefix(err.Error(), "broken.json: "))
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.yaml")

	brand := theme.Default()
	brand.Meta.Name = "Brand"
	require.NoError(t, Save(first, theme.Default()))
	require.NoError(t, Save(second, brand))

	themes, err := LoadAll([]string{first, second}, sanitize.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, themes, 2)
	require.Equal(t, "Brand", themes[1].Meta.Name)

	_, err = LoadAll([]string{first, filepath.Join(dir, "nope.json")}, sanitize.DefaultOptions())
	require.Error(t, err)
}

func TestEncodeUnsupported(t *testing.T) {
	t.Parallel()

	_, err := Encode(theme.Default(), Format("toml"))
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, theme.Default(), FormatJSON))
	require.True(t, strings.HasSuffix(buf.String(), "}\n"))
}

func TestDecodeYAMLNormalizesKeys(t *testing.T) {
	t.Parallel()

	doc, err := Decode([]byte("spacing:\n  values:\n    1: 4\n    2: 8\n"), "spacing.yaml", FormatYAML)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	spacing, ok := root["spacing"].(map[string]any)
	require.True(t, ok)
	values, ok := spacing["values"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, 4, values["1"])
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"meta": {"name": "x"}}`), 0o600))

	doc, err := DecodeFile(path)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"meta": map[string]any{"name": "x"}}, doc)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.json"))
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
