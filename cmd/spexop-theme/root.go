package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spexop/theme/internal/config"
	"github.com/spexop/theme/internal/render"
	"github.com/spexop/theme/pkg/logger"
	"github.com/spexop/theme/pkg/sanitize"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
	noColor    bool
	strict     bool
}

// app is the state shared by every subcommand, built once flags are parsed.
type app struct {
	settings config.Settings
	log      *logger.Logger
	color    bool
}

func (a *app) sanitizeOptions() sanitize.Options {
	return a.settings.SanitizeOptions(a.log)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	state := &app{settings: config.Default(), log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "spexop-theme",
		Short:         "Validate, sanitize, audit and compose design-system themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.setup(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default: ./.spexop-theme.yaml or ~/.spexop-theme.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable coloured output")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Treat validation warnings as errors")

	cmd.AddCommand(newValidateCmd(state))
	cmd.AddCommand(newSanitizeCmd(state))
	cmd.AddCommand(newAuditCmd(state))
	cmd.AddCommand(newVariantCmd(state))
	cmd.AddCommand(newComposeCmd(state))
	cmd.AddCommand(newOverrideCmd(state))
	cmd.AddCommand(newDiffCmd(state))
	cmd.AddCommand(newShowCmd(state))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	if flags.logLevel != "" {
		settings.LogLevel = flags.logLevel
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}
	if flags.strict {
		settings.Validation.Strict = true
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	opts := settings.LoggerOptions()
	opts.Writer = cmd.ErrOrStderr()
	opts.HumanReadable = opts.HumanReadable && isTerminal(cmd.ErrOrStderr())
	log, err := logger.New(opts)
	if err != nil {
		return err
	}

	a.settings = *settings
	a.log = log
	a.log.WithFields(map[string]any{"command": cmd.Name(), "strict": settings.Validation.Strict}).Debug("settings loaded")

	a.color = !flags.noColor && isTerminal(cmd.OutOrStdout())
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.color)
}
