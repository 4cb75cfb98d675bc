package theme

// ColorKey names a field of Colors using its wire (JSON) name.
type ColorKey string

const (
	ColorPrimary          ColorKey = "primary"
	ColorSurface          ColorKey = "surface"
	ColorSurfaceSecondary ColorKey = "surfaceSecondary"
	ColorSurfaceHover     ColorKey = "surfaceHover"
	ColorText             ColorKey = "text"
	ColorTextSecondary    ColorKey = "textSecondary"
	ColorTextMuted        ColorKey = "textMuted"
	ColorBorder           ColorKey = "border"
	ColorBorderStrong     ColorKey = "borderStrong"
	ColorBorderSubtle     ColorKey = "borderSubtle"

	ColorPrimaryHover    ColorKey = "primaryHover"
	ColorPrimaryActive   ColorKey = "primaryActive"
	ColorSecondary       ColorKey = "secondary"
	ColorSecondaryHover  ColorKey = "secondaryHover"
	ColorSecondaryActive ColorKey = "secondaryActive"
	ColorSuccess         ColorKey = "success"
	ColorSuccessLight    ColorKey = "successLight"
	ColorWarning         ColorKey = "warning"
	ColorWarningLight    ColorKey = "warningLight"
	ColorError           ColorKey = "error"
	ColorErrorLight      ColorKey = "errorLight"
	ColorInfo            ColorKey = "info"
	ColorInfoLight       ColorKey = "infoLight"
	ColorAccent          ColorKey = "accent"
	ColorLink            ColorKey = "link"
	ColorLinkHover       ColorKey = "linkHover"
	ColorFocus           ColorKey = "focus"
	ColorOverlay         ColorKey = "overlay"
	ColorNeutral         ColorKey = "neutral"
	ColorNeutralLight    ColorKey = "neutralLight"
)

var requiredColorKeys = []ColorKey{
	ColorPrimary,
	ColorSurface,
	ColorSurfaceSecondary,
	ColorSurfaceHover,
	ColorText,
	ColorTextSecondary,
	ColorTextMuted,
	ColorBorder,
	ColorBorderStrong,
	ColorBorderSubtle,
}

var optionalColorKeys = []ColorKey{
	ColorPrimaryHover,
	ColorPrimaryActive,
	ColorSecondary,
	ColorSecondaryHover,
	ColorSecondaryActive,
	ColorSuccess,
	ColorSuccessLight,
	ColorWarning,
	ColorWarningLight,
	ColorError,
	ColorErrorLight,
	ColorInfo,
	ColorInfoLight,
	ColorAccent,
	ColorLink,
	ColorLinkHover,
	ColorFocus,
	ColorOverlay,
	ColorNeutral,
	ColorNeutralLight,
}

// RequiredColorKeys lists the colour fields every theme must define, in
// declaration order.
func RequiredColorKeys() []ColorKey {
	return append([]ColorKey(nil), requiredColorKeys...)
}

// OptionalColorKeys lists the colour fields a theme may omit.
func OptionalColorKeys() []ColorKey {
	return append([]ColorKey(nil), optionalColorKeys...)
}

// AllColorKeys lists required keys followed by optional keys.
func AllColorKeys() []ColorKey {
	return append(RequiredColorKeys(), optionalColorKeys...)
}

// IsRequired reports whether k is one of the required colour fields.
func (k ColorKey) IsRequired() bool {
	for _, r := range requiredColorKeys {
		if r == k {
			return true
		}
	}
	return false
}

// Known reports whether k names a Colors field.
func (k ColorKey) Known() bool {
	return (&Colors{}).field(k) != nil
}

func (c *Colors) field(k ColorKey) *string {
	switch k {
	case ColorPrimary:
		return &c.Primary
	case ColorSurface:
		return &c.Surface
	case ColorSurfaceSecondary:
		return &c.SurfaceSecondary
	case ColorSurfaceHover:
		return &c.SurfaceHover
	case ColorText:
		return &c.Text
	case ColorTextSecondary:
		return &c.TextSecondary
	case ColorTextMuted:
		return &c.TextMuted
	case ColorBorder:
		return &c.Border
	case ColorBorderStrong:
		return &c.BorderStrong
	case ColorBorderSubtle:
		return &c.BorderSubtle
	case ColorPrimaryHover:
		return &c.PrimaryHover
	case ColorPrimaryActive:
		return &c.PrimaryActive
	case ColorSecondary:
		return &c.Secondary
	case ColorSecondaryHover:
		return &c.SecondaryHover
	case ColorSecondaryActive:
		return &c.SecondaryActive
	case ColorSuccess:
		return &c.Success
	case ColorSuccessLight:
		return &c.SuccessLight
	case ColorWarning:
		return &c.Warning
	case ColorWarningLight:
		return &c.WarningLight
	case ColorError:
		return &c.Error
	case ColorErrorLight:
		return &c.ErrorLight
	case ColorInfo:
		return &c.Info
	case ColorInfoLight:
		return &c.InfoLight
	case ColorAccent:
		return &c.Accent
	case ColorLink:
		return &c.Link
	case ColorLinkHover:
		return &c.LinkHover
	case ColorFocus:
		return &c.Focus
	case ColorOverlay:
		return &c.Overlay
	case ColorNeutral:
		return &c.Neutral
	case ColorNeutralLight:
		return &c.NeutralLight
	default:
		return nil
	}
}

// Get returns the value stored under k and whether it is set.
func (c Colors) Get(k ColorKey) (string, bool) {
	f := c.field(k)
	if f == nil || *f == "" {
		return "", false
	}
	return *f, true
}

// With returns a copy of c with k set to value. Unknown keys leave c unchanged.
func (c Colors) With(k ColorKey, value string) Colors {
	if f := c.field(k); f != nil {
		*f = value
	}
	return c
}

// Without returns a copy of c with the given keys cleared.
func (c Colors) Without(keys ...ColorKey) Colors {
	for _, k := range keys {
		if f := c.field(k); f != nil {
			*f = ""
		}
	}
	return c
}

// Defined returns the keys that carry a value, in AllColorKeys order.
func (c Colors) Defined() []ColorKey {
	var keys []ColorKey
	for _, k := range AllColorKeys() {
		if _, ok := c.Get(k); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Each calls fn for every key in AllColorKeys order, including unset ones.
func (c Colors) Each(fn func(k ColorKey, value string)) {
	for _, k := range AllColorKeys() {
		v, _ := c.Get(k)
		fn(k, v)
	}
}

// IsZero reports whether no colour is set.
func (c Colors) IsZero() bool {
	return len(c.Defined()) == 0
}
