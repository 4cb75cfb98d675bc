package compose

import (
	"fmt"

	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/theme"
)

// VariantSet selects the variants ComposeThemes derives.
type VariantSet struct {
	Dark         bool `json:"dark,omitempty" yaml:"dark,omitempty"`
	Light        bool `json:"light,omitempty" yaml:"light,omitempty"`
	HighContrast bool `json:"highContrast,omitempty" yaml:"highContrast,omitempty"`
	LowContrast  bool `json:"lowContrast,omitempty" yaml:"lowContrast,omitempty"`
}

// Empty reports whether no variant is requested.
func (v VariantSet) Empty() bool {
	return v == VariantSet{}
}

type namedVariant struct {
	key  string
	kind VariantKind
}

func (v VariantSet) selected() []namedVariant {
	var out []namedVariant
	if v.Dark {
		out = append(out, namedVariant{"dark", VariantDark})
	}
	if v.Light {
		out = append(out, namedVariant{"light", VariantLight})
	}
	if v.HighContrast {
		out = append(out, namedVariant{"highContrast", VariantHighContrast})
	}
	if v.LowContrast {
		out = append(out, namedVariant{"lowContrast", VariantLowContrast})
	}
	return out
}

// Request describes a composition: overrides are layered onto Base in order,
// then each requested variant is derived from the result.
type Request struct {
	Base      theme.Config
	Overrides []theme.Config
	Variants  VariantSet
	Options   VariantOptions
}

// BaseKey is the key of the composed base theme in Composition.All.
const BaseKey = "base"

// Composition is the result of ComposeThemes. Variants is nil when none
// were requested.
type Composition struct {
	Base     theme.Config
	Variants map[string]theme.Config
}

// HasVariants reports whether the composition carries derived variants.
func (c Composition) HasVariants() bool {
	return len(c.Variants) > 0
}

// All returns the base theme under BaseKey plus every variant.
func (c Composition) All() map[string]theme.Config {
	out := make(map[string]theme.Config, len(c.Variants)+1)
	out[BaseKey] = c.Base
	for k, v := range c.Variants {
		out[k] = v
	}
	return out
}

// ComposeThemes applies the overrides to the base and derives the
// requested variants from the overridden base.
func ComposeThemes(req Request) (Composition, error) {
	base := req.Base.Clone()
	for i, override := range req.Overrides {
		extended, err := ExtendTheme(base, override)
		if err != nil {
			return Composition{}, themeerrors.NewCompositionError("compose", fmt.Sprintf("override %d", i), err)
		}
		base = extended
	}

	composition := Composition{Base: base}
	if req.Variants.Empty() {
		return composition, nil
	}

	composition.Variants = make(map[string]theme.Config)
	for _, v := range req.Variants.selected() {
		variant, err := CreateThemeVariant(base, v.kind, req.Options)
		if err != nil {
			return Composition{}, err
		}
		composition.Variants[v.key] = variant
	}
	return composition, nil
}
