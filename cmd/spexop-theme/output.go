package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/theme"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// outputFlags are shared by every command that emits a theme.
type outputFlags struct {
	path   string
	format string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "output", "o", "", "Write the theme to this file instead of stdout")
	cmd.Flags().StringVar(&o.format, "format", "", "Output format for stdout: json or yaml (default json)")
}

// emit writes cfg to the output file, whose extension picks the format, or
// to stdout in the requested format.
func (o *outputFlags) emit(cmd *cobra.Command, cfg theme.Config) error {
	if o.path != "" {
		if err := themefile.Save(o.path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", o.path)
		return nil
	}

	format := themefile.FormatJSON
	if o.format != "" {
		parsed, err := themefile.ParseFormat(o.format)
		if err != nil {
			return err
		}
		format = parsed
	}
	return themefile.Write(cmd.OutOrStdout(), cfg, format)
}
