package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spexop/theme/pkg/colormath"
	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/sanitize"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetValidator(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestWCAGLevelValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()
	cases := []struct {
		level string
		valid bool
	}{
		{"AA", true},
		{"AAA", true},
		{"aa", true},
		{"A", false},
		{"", false},
		{"AAAA", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()

			err := v.Var(tc.level, "wcag_level")
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	settings := Default()
	require.NoError(t, settings.Validate())
	require.Equal(t, "warn", settings.LogLevel)
	require.Equal(t, colormath.LevelAA, settings.AuditLevel())
	require.True(t, settings.Validation.AllowRGB)

	defaults := sanitize.DefaultOptions()
	opts := settings.SanitizeOptions(nil)
	require.True(t, settings.Sanitize.TrimStrings)
	require.True(t, settings.Sanitize.ParseNumbers)
	require.Equal(t, defaults.KeepWhitespace, opts.KeepWhitespace)
	require.Equal(t, defaults.MaxStringLength, opts.MaxStringLength)
	require.Equal(t, defaults.StrictNumbers, opts.StrictNumbers)
	require.Equal(t, defaults.MaxDepth, opts.MaxDepth)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
log_level: debug
validation:
  strict: true
  allow_rgb: false
sanitize:
  max_string_length: 200
audit:
  level: aaa
`)

	settings, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", settings.LogLevel)
	require.Equal(t, colormath.LevelAAA, settings.AuditLevel())
	require.Equal(t, 200, settings.Sanitize.MaxStringLength)
	require.Equal(t, sanitize.DefaultOptions().MaxDepth, settings.Sanitize.MaxDepth)

	opts := settings.ValidateOptions()
	require.True(t, opts.Strict)
	require.NotNil(t, opts.ColorOptions.AllowRGB)
	require.False(t, *opts.ColorOptions.AllowRGB)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		field   string
	}{
		{name: "audit level", content: "audit:\n  level: A\n", field: "audit.level"},
		{name: "log level", content: "log_level: loud\n", field: "log_level"},
		{name: "string length", content: "sanitize:\n  max_string_length: 0\n", field: "sanitize.max_string_length"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeSettings(t, tc.content))
			require.Error(t, err)

			var validationErr *themeerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	_, err := Load(writeSettings(t, "audit: [unterminated\n"))
	require.Error(t, err)

	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SPEXOP_THEME_AUDIT_LEVEL", "AAA")
	t.Setenv("SPEXOP_THEME_VALIDATION_STRICT", "true")

	settings, err := Load(writeSettings(t, "log_level: info\n"))
	require.NoError(t, err)
	require.Equal(t, colormath.LevelAAA, settings.AuditLevel())
	require.True(t, settings.Validation.Strict)
	require.Equal(t, "info", settings.LogLevel)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var settings *Settings
	require.Error(t, settings.Validate())
}
