package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/spexop/theme/pkg/colormath"
	themeerrors "github.com/spexop/theme/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// settings. Fields are named by their mapstructure keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("wcag_level", func(fl validator.FieldLevel) bool {
			level := colormath.Level(strings.ToUpper(fl.Field().String()))
			return level == colormath.LevelAA || level == colormath.LevelAAA
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := settingsFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "wcag_level" {
			msg = fmt.Sprintf("%s must be AA or AAA (got %q)", field, ve.Value())
		}
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("settings", err.Error(), err)
}

// settingsFieldName turns "Settings.audit.level" into "audit.level".
func settingsFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
