// Package themefile reads and writes theme documents on disk. Every theme
// read through this package passes through the sanitizer.
package themefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/sanitize"
	"github.com/spexop/theme/pkg/theme"
)

// Format is a supported serialization of a theme.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", s)
	}
}

// FormatFromPath picks the format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and sanitizes the theme at path. Stdin reads standard input as
// JSON unless it fails to parse, in which case YAML is tried.
func Load(path string, opts sanitize.Options) (theme.Config, error) {
	if path == Stdin {
		return Read(os.Stdin, "<stdin>", "", opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return theme.Config{}, themeerrors.NewParseError(path, 0, err)
	}
	defer f.Close()

	return Read(f, path, FormatFromPath(path), opts)
}

// DecodeFile reads the document at path without sanitizing it, for callers
// that want to report every problem rather than stop at the first.
func DecodeFile(path string) (any, error) {
	if path == Stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, themeerrors.NewParseError("<stdin>", 0, err)
		}
		return Decode(data, "<stdin>", "")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return Decode(data, path, FormatFromPath(path))
}

// LoadAll loads every path in order, stopping at the first failure.
func LoadAll(paths []string, opts sanitize.Options) ([]theme.Config, error) {
	themes := make([]theme.Config, 0, len(paths))
	for _, path := range paths {
		cfg, err := Load(path, opts)
		if err != nil {
			return nil, err
		}
		themes = append(themes, cfg)
	}
	return themes, nil
}

// Read decodes a theme document from r. name labels parse errors. An empty
// format sniffs JSON first and falls back to YAML.
func Read(r io.Reader, name string, format Format, opts sanitize.Options) (theme.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return theme.Config{}, themeerrors.NewParseError(name, 0, err)
	}

	doc, err := Decode(data, name, format)
	if err != nil {
		return theme.Config{}, err
	}

	cfg, err := sanitize.Sanitize(doc, opts)
	if err != nil {
		return theme.Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Decode parses data into a generic document without sanitizing it.
func Decode(data []byte, name string, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data, name)
	case FormatYAML:
		return decodeYAML(data, name)
	case "":
		if doc, err := decodeJSON(data, name); err == nil {
			return doc, nil
		}
		return decodeYAML(data, name)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func decodeJSON(data []byte, name string) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, themeerrors.NewParseError(name, jsonErrorLine(data, err), err)
	}
	return doc, nil
}

func decodeYAML(data []byte, name string) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, themeerrors.NewParseError(name, themeerrors.LineFromMessage(err), err)
	}
	if doc == nil {
		return nil, themeerrors.NewParseError(name, 0, errors.New("document is empty"))
	}
	return normalizeYAML(doc), nil
}

// normalizeYAML rewrites non-string mapping keys, such as the integer steps
// of spacing.values, so the tree has the same shape as decoded JSON.
func normalizeYAML(node any) any {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			v[k] = normalizeYAML(child)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[fmt.Sprint(k)] = normalizeYAML(child)
		}
		return out
	case []any:
		for i, child := range v {
			v[i] = normalizeYAML(child)
		}
		return v
	default:
		return v
	}
}

// jsonErrorLine maps the byte offset of a JSON syntax or type error to a
// 1-based line number.
func jsonErrorLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}

	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// Encode serializes cfg. JSON output is indented by two spaces and YAML
// output uses two-space indentation; both end with a newline.
func Encode(cfg theme.Config, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode theme %q as json: %w", cfg.Meta.Name, err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode theme %q as yaml: %w", cfg.Meta.Name, err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode theme %q as yaml: %w", cfg.Meta.Name, err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Write encodes cfg to w.
func Write(w io.Writer, cfg theme.Config, format Format) error {
	data, err := Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save writes cfg to path in the format implied by its extension. The file
// is written to a temporary sibling first and renamed into place.
func Save(path string, cfg theme.Config) error {
	data, err := Encode(cfg, FormatFromPath(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
