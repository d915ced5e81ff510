package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует все наши кастомные правила
// валидации в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone_number", isPhoneNumber); err != nil {
		return err
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

func isPhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\+?\d{7,15}$`)
	return re.MatchString(fl.Field().String())
}
