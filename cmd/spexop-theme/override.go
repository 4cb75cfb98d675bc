package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/compose"
	"github.com/spexop/theme/pkg/sanitize"
)

type overrideOptions struct {
	Set   []string
	Unset []string
}

func newOverrideCmd(state *app) *cobra.Command {
	opts := overrideOptions{}
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "override <theme-file>",
		Short: "Set or unset individual theme values by dotted path",
		Long: `Override changes single values, for example
  --set colors.primary=#e11d48 --set typography.weights.bold=800
Values are read as JSON when they parse as JSON (numbers, booleans, arrays,
quoted strings) and as plain strings otherwise. The result is sanitized again
before it is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverride(cmd, state, opts, out, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "path=value to set (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Unset, "unset", nil, "Path to remove (repeatable)")
	out.register(cmd)

	return cmd
}

func parseAssignments(set, unset []string) (map[string]any, error) {
	overrides := make(map[string]any, len(set)+len(unset))
	for _, assignment := range set {
		path, raw, ok := strings.Cut(assignment, "=")
		path = strings.TrimSpace(path)
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid --set %q (want path=value)", assignment)
		}
		overrides[path] = parseValue(raw)
	}
	for _, path := range unset {
		overrides[strings.TrimSpace(path)] = nil
	}
	return overrides, nil
}

func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

func runOverride(cmd *cobra.Command, state *app, opts overrideOptions, out *outputFlags, path string) error {
	overrides, err := parseAssignments(opts.Set, opts.Unset)
	if err != nil {
		return err
	}

	base, err := themefile.Load(path, state.sanitizeOptions())
	if err != nil {
		return err
	}

	updated, err := compose.OverrideTheme(base, overrides)
	if err != nil {
		return err
	}

	cleaned, err := sanitize.Sanitize(updated, state.sanitizeOptions())
	if err != nil {
		return err
	}
	return out.emit(cmd, cleaned)
}
