package validator

import "github.com/go-playground/validator/v10"

// Validator bundles plain struct validation with the business rule validator.
type Validator struct {
	validate *validator.Validate
	business *BusinessValidator
}

// New builds a validator with every custom rule registered. The plain and
// business validators share one underlying instance so custom tags on the
// request DTOs resolve either way.
func New() *Validator {
	business := NewBusinessValidator()
	return &Validator{
		validate: business.validate,
		business: business,
	}
}

// Validate runs plain struct tag validation.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) GetBusinessValidator() *BusinessValidator {
	return v.business
}
