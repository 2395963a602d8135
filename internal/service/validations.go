package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/pkg/datekey"
)

var (
	validate *validator.Validate
	once     sync.Once
)

var customValidations = map[string]validator.Func{
	"alphanum_underscore": isIdentifier,
	"daykey":              isDayKey,
}

// InitValidator must run before any service validates input.
func InitValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		for tag, fn := range customValidations {
			if err := validate.RegisterValidation(tag, fn); err != nil {
				panic("registering validation " + tag + ": " + err.Error())
			}
		}
	})
}

// isIdentifier accepts letters, digits and underscores, not starting with a digit or underscore.
func isIdentifier(fl validator.FieldLevel) bool {
	for i, char := range fl.Field().String() {
		if i == 0 && (unicode.IsDigit(char) || char == '_') {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}

func isDayKey(fl validator.FieldLevel) bool {
	return datekey.Valid(fl.Field().String())
}

// validationError joins ErrValidation with every failed field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	joined := []error{errorvalues.ErrValidation}
	for _, fieldErr := range fieldErrs {
		joined = append(joined, fieldErr)
	}
	return errors.Join(joined...)
}
