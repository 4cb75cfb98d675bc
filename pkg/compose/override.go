package compose

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/theme"
)

// OverrideTheme sets each dotted path in overrides (for example
// "colors.primary" or "typography.weights.bold") on a copy of base, creating
// intermediate objects as needed. Paths are applied in lexical order. A path
// that does not exist in the theme model, or a value of the wrong type, is
// reported as a *errors.CompositionError. A nil value unsets the leaf.
func OverrideTheme(base theme.Config, overrides map[string]any) (theme.Config, error) {
	if len(overrides) == 0 {
		return base.Clone(), nil
	}

	tree, err := toTree(base)
	if err != nil {
		return theme.Config{}, themeerrors.NewCompositionError("override", "encode base theme", err)
	}

	paths := make([]string, 0, len(overrides))
	for path := range overrides {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := setPath(tree, path, overrides[path]); err != nil {
			return theme.Config{}, err
		}
	}

	out, err := fromTree(tree)
	if err != nil {
		return theme.Config{}, themeerrors.NewCompositionError("override", "apply overrides", err)
	}
	return out, nil
}

func setPath(tree map[string]any, path string, value any) error {
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return themeerrors.NewCompositionError("override", fmt.Sprintf("invalid path %q", path), nil)
		}
	}

	node := tree
	for i, segment := range segments[:len(segments)-1] {
		next, exists := node[segment]
		if !exists || next == nil {
			child := map[string]any{}
			node[segment] = child
			node = child
			continue
		}

		child, ok := next.(map[string]any)
		if !ok {
			prefix := strings.Join(segments[:i+1], ".")
			return themeerrors.NewCompositionError("override", fmt.Sprintf("cannot set %q: %q is not an object", path, prefix), nil)
		}
		node = child
	}

	node[segments[len(segments)-1]] = value
	return nil
}

func toTree(cfg theme.Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// fromTree decodes strictly so that misspelled paths surface as errors.
func fromTree(tree map[string]any) (theme.Config, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return theme.Config{}, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var out theme.Config
	if err := decoder.Decode(&out); err != nil {
		return theme.Config{}, err
	}
	return out, nil
}
