// Package validation wires go-playground/validator with English
// translations so request payload failures surface as readable messages.
package validation

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/wementor/mentor-directory-api/internal/apierror"
)

// Validator validates request payload structs against their validate tags.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	return &Validator{validate: validate, translator: translator}
}

// Struct validates v and reports the first failure as a BadRequest domain
// error, mirroring the API's first-issue-wins validation messages.
func (v *Validator) Struct(value any) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return apierror.BadRequest(validationErrs[0].Translate(v.translator))
	}

	return apierror.BadRequest(err.Error())
}

// Var validates a single value against the given tag expression.
func (v *Validator) Var(value any, tag string) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return apierror.BadRequest(validationErrs[0].Translate(v.translator))
	}

	return apierror.BadRequest(err.Error())
}
