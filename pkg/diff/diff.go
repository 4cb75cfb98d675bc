// Package diff compares themes as canonical JSON documents.
package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/spexop/theme/pkg/theme"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Canonical renders cfg as indented JSON with a trailing newline. Field order
// follows the model, so equal themes always render identically.
func Canonical(cfg theme.Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode theme %q: %w", cfg.Meta.Name, err)
	}
	return append(data, '\n'), nil
}

// Themes returns a unified diff between the canonical forms of a and b, or
// "" when they are equal.
func Themes(a, b theme.Config, labelA, labelB string) (string, error) {
	before, err := Canonical(a)
	if err != nil {
		return "", err
	}
	after, err := Canonical(b)
	if err != nil {
		return "", err
	}
	return GenerateUnifiedDiff(before, after, labelA, labelB), nil
}

// GenerateUnifiedDiff produces a single-hunk unified diff of before and after,
// compared line by line. It returns "" if the content is identical and
// truncates output beyond 10,000 lines.
func GenerateUnifiedDiff(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}

// Change is one leaf that differs between two themes. Before or After is nil
// when the leaf is absent on that side.
type Change struct {
	Path   string `json:"path"`
	Before any    `json:"before,omitempty"`
	After  any    `json:"after,omitempty"`
}

// Changes lists differing leaves by dotted path (the same paths accepted by
// compose.OverrideTheme), sorted by path. Arrays are compared whole.
func Changes(a, b theme.Config) ([]Change, error) {
	before, err := flatten(a)
	if err != nil {
		return nil, err
	}
	after, err := flatten(b)
	if err != nil {
		return nil, err
	}

	paths := make(map[string]struct{}, len(before)+len(after))
	for p := range before {
		paths[p] = struct{}{}
	}
	for p := range after {
		paths[p] = struct{}{}
	}

	var changes []Change
	for p := range paths {
		if !reflect.DeepEqual(before[p], after[p]) {
			changes = append(changes, Change{Path: p, Before: before[p], After: after[p]})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}

func flatten(cfg theme.Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode theme %q: %w", cfg.Meta.Name, err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode theme %q: %w", cfg.Meta.Name, err)
	}

	out := make(map[string]any)
	var walk func(prefix string, node map[string]any)
	walk = func(prefix string, node map[string]any) {
		for k, v := range node {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if child, ok := v.(map[string]any); ok {
				walk(path, child)
				continue
			}
			out[path] = v
		}
	}
	walk("", tree)
	return out, nil
}
