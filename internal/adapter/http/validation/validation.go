package validation

import (
	"errors"
	"time"

	"staffing_service/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// RegisterCustomValidations adds the staffing tags to v.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("iso_date", isISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("substitution_reason", isSubstitutionReason); err != nil {
		return err
	}
	if err := v.RegisterValidation("substitution_initiator", isSubstitutionInitiator); err != nil {
		return err
	}
	return nil
}

// RegisterWithGin installs the tags on gin's default binding engine.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return RegisterCustomValidations(v)
}

func isISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func isSubstitutionReason(fl validator.FieldLevel) bool {
	return entities.SubstitutionReason(fl.Field().String()).IsValid()
}

func isSubstitutionInitiator(fl validator.FieldLevel) bool {
	return entities.SubstitutionInitiator(fl.Field().String()).IsValid()
}
