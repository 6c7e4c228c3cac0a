package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// validate is the shared validator instance for all request DTOs. Closed
// string types (account type, reference type, tiers, categories) are checked
// here, once, at the boundary; services and repositories assume valid values.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	must(v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.AccountType(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("referencetype", func(fl validator.FieldLevel) bool {
		return domain.ReferenceType(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("networktier", func(fl validator.FieldLevel) bool {
		return domain.NetworkTier(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("coveragetype", func(fl validator.FieldLevel) bool {
		return domain.CoverageType(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("servicecategory", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || domain.ServiceCategory(s).Valid()
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate runs struct validation on a request DTO and maps failures to the
// application's validation error.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
