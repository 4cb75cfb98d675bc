package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/spexop/theme/pkg/colormath"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for theme
// documents. Field names are reported by their JSON names so issue paths match
// the wire format.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("themecolor", func(fl validator.FieldLevel) bool {
			return colormath.IsValid(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// fieldPath strips the root struct name from a validator namespace, turning
// "Config.colors.primary" into "colors.primary".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
