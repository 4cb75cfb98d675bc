// Package config loads spexop-theme CLI settings from defaults, an optional
// YAML file and SPEXOP_THEME_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/spexop/theme/pkg/colormath"
	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/logger"
	"github.com/spexop/theme/pkg/sanitize"
	"github.com/spexop/theme/pkg/validate"
)

// EnvPrefix prefixes every environment override, e.g. SPEXOP_THEME_AUDIT_LEVEL.
const EnvPrefix = "SPEXOP_THEME"

// FileName is the settings file searched for when no path is given.
const FileName = ".spexop-theme"

// Settings holds every tunable of the CLI.
type Settings struct {
	LogLevel   string             `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogHuman   bool               `mapstructure:"log_human"`
	Validation ValidationSettings `mapstructure:"validation"`
	Sanitize   SanitizeSettings   `mapstructure:"sanitize"`
	Audit      AuditSettings      `mapstructure:"audit"`
}

// ValidationSettings maps onto validate.Options.
type ValidationSettings struct {
	Strict   bool `mapstructure:"strict"`
	AllowRGB bool `mapstructure:"allow_rgb"`
}

// SanitizeSettings maps onto sanitize.Options.
type SanitizeSettings struct {
	TrimStrings     bool `mapstructure:"trim_strings"`
	MaxStringLength int  `mapstructure:"max_string_length" validate:"min=1,max=100000"`
	ParseNumbers    bool `mapstructure:"parse_numbers"`
	MaxDepth        int  `mapstructure:"max_depth" validate:"min=1,max=64"`
}

// AuditSettings configures the accessibility audit.
type AuditSettings struct {
	Level string `mapstructure:"level" validate:"wcag_level"`
}

// Load reads settings. An empty path searches the working directory and the
// home directory for .spexop-theme.yaml; a missing file is not an error.
func Load(path string) (*Settings, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, themeerrors.NewParseError(path, themeerrors.LineFromMessage(err), err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetDefaults registers the default value of every setting.
func SetDefaults(v *viper.Viper) {
	defaults := sanitize.DefaultOptions()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_human", true)

	v.SetDefault("validation.strict", false)
	v.SetDefault("validation.allow_rgb", true)

	v.SetDefault("sanitize.trim_strings", !defaults.KeepWhitespace)
	v.SetDefault("sanitize.max_string_length", defaults.MaxStringLength)
	v.SetDefault("sanitize.parse_numbers", !defaults.StrictNumbers)
	v.SetDefault("sanitize.max_depth", defaults.MaxDepth)

	v.SetDefault("audit.level", string(colormath.LevelAA))
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	v := viper.New()
	SetDefaults(v)

	var settings Settings
	_ = v.Unmarshal(&settings)
	return settings
}

// Validate checks settings against their struct tags.
func (s *Settings) Validate() error {
	if s == nil {
		return themeerrors.NewValidationError("settings", "settings are nil", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateOptions converts the validation settings.
func (s Settings) ValidateOptions() validate.Options {
	return validate.Options{
		Strict:       s.Validation.Strict,
		ColorOptions: validate.ColorOptions{AllowRGB: validate.Bool(s.Validation.AllowRGB)},
	}
}

// SanitizeOptions converts the sanitize settings, attaching log for
// fallback diagnostics.
func (s Settings) SanitizeOptions(log *logger.Logger) sanitize.Options {
	return sanitize.Options{
		KeepWhitespace:  !s.Sanitize.TrimStrings,
		MaxStringLength: s.Sanitize.MaxStringLength,
		StrictNumbers:   !s.Sanitize.ParseNumbers,
		MaxDepth:        s.Sanitize.MaxDepth,
		Validation:      s.ValidateOptions(),
		Logger:          log,
	}
}

// AuditLevel returns the configured WCAG level.
func (s Settings) AuditLevel() colormath.Level {
	return colormath.Level(strings.ToUpper(s.Audit.Level))
}

// LoggerOptions converts the log settings.
func (s Settings) LoggerOptions() logger.Options {
	return logger.Options{Level: s.LogLevel, HumanReadable: s.LogHuman}
}
