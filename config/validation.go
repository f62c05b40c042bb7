package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/samacumen/MyGenericLogger/core"
)

// ValidationError describes one invalid settings key
type ValidationError struct {
	Key     string
	Message string
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("config: validation failed with %d error(s):", len(ve)))
	for _, err := range ve {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Key, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("logtype", validateLogType); err != nil {
		panic(err)
	}

	// Report fields by their settings key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, ok := core.LevelFromInt(int(fl.Field().Int()))
	return ok
}

func validateLogType(fl validator.FieldLevel) bool {
	_, ok := parseLogType(fl.Field().String())
	return ok
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "loglevel":
		return "must be a defined level (0..8 or -128)"
	case "logtype":
		return "must be one of: none, console, file (or 1, 2, 3)"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Validate checks s and returns ValidationErrors describing every invalid key
func Validate(s *Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config: validate: %w", err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Key: fe.Field(), Message: validationMessage(fe)})
	}
	return out
}
