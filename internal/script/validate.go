package script

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/formbuilder/internal/config"
	fberrors "github.com/alexisbeaulieu97/formbuilder/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the config package's validator with the step
// rules registered on it.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := config.GetValidator()
		v.RegisterStructValidation(validateStep, Step{})
		validateInst = v
	})
	return validateInst
}

// validateStep enforces one action per step and positive element ids.
func validateStep(sl validator.StructLevel) {
	step := sl.Current().Interface().(Step)
	switch n := step.actions(); {
	case n == 0:
		sl.ReportError(step, "action", "Action", "one_action", "none set")
	case n > 1:
		sl.ReportError(step, "action", "Action", "one_action", fmt.Sprintf("%d set", n))
	}
	if step.Remove != nil && *step.Remove == 0 {
		sl.ReportError(*step.Remove, "remove", "Remove", "min", "1")
	}
}

// Validate checks s and returns a *errors.ValidationError naming the first
// offending field, with the step's source line when known.
func Validate(s *Script) error {
	if s == nil {
		return fberrors.NewValidationError("script", "script is empty", nil)
	}

	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fberrors.NewValidationError("script", err.Error(), err)
	}

	fe := ves[0]
	field := config.YAMLFieldName(fe)
	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("%s (%s)", msg, fe.Param())
	}
	if line := stepLine(s, fe.Namespace()); line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, line)
	}
	return fberrors.NewValidationError(field, msg, err)
}

// stepLine finds the line of the step an error namespace points into, e.g.
// "Script.events[2].toggle".
func stepLine(s *Script, namespace string) int {
	var index int
	start := strings.Index(namespace, "events[")
	if start < 0 {
		return 0
	}
	if _, err := fmt.Sscanf(namespace[start:], "events[%d]", &index); err != nil {
		return 0
	}
	if index < 0 || index >= len(s.Steps) {
		return 0
	}
	return s.Steps[index].Line()
}
