package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	glosskiterrors "github.com/alexisbeaulieu97/glosskit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	hexColorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		// Accepts #RRGGBB and #RRGGBBAA; the trailing alpha byte marks a
		// translucent fill flattened at render time.
		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on a parsed theme file.
func Validate(file *File) error {
	if file == nil {
		return glosskiterrors.NewValidationError("theme", "theme file is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(file); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) || len(fieldErrs) == 0 {
		return glosskiterrors.NewValidationError("theme", err.Error(), err)
	}

	first := fieldErrs[0]
	field := strings.TrimPrefix(first.Namespace(), "File.")
	message := "failed rule " + first.Tag()
	switch first.Tag() {
	case "required":
		message = "value is required"
	case "theme_name":
		message = "name must be lowercase letters, digits, and dashes"
	case "hex_color":
		message = "color must be #RRGGBB or #RRGGBBAA"
	}

	return glosskiterrors.NewValidationError(field, message, err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
