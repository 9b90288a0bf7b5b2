package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	fberrors "github.com/alexisbeaulieu97/formbuilder/pkg/errors"
)

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fberrors.NewValidationError("config", "configuration is empty", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into validation errors
// naming the offending YAML field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := YAMLFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return fberrors.NewValidationError(field, msg, err)
	}

	return fberrors.NewValidationError("config", err.Error(), err)
}

// YAMLFieldName renders a field error's namespace as a dotted YAML path with
// the root struct name dropped, e.g. "ui.theme" or "themes[theme9]".
func YAMLFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
