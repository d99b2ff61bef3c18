// Package validator wraps go-playground/validator for declarative struct
// validation with a detectable sentinel error and readable field messages.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the root of every error chain returned when a
// struct fails validation, so callers can detect the class of failure with
// errors.Is even when multiple fields are invalid.
var ErrValidationFailed = errors.New("struct validation failed")

// validate is the singleton validator instance, built on package load.
var validate *gvalidator.Validate

// errStringFormat renders one field failure, e.g.
// "'AccountID': value '' does not meet the requirements for the 'required' validation".
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError converts raw validator errors into a joined chain rooted at
// ErrValidationFailed. Non-validation errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its `validate` tags. It returns
// nil when every field passes, or an error chain rooted at
// ErrValidationFailed otherwise.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
