package validator

import (
	"log"

	"talentlink/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain enum rules.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("availability", validateAvailability)
	mustRegister("proposal-status", validateProposalStatus)
	mustRegister("contract-status", validateContractStatus)
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // optional; required is a separate rule
	}
	return models.Availability(value).Valid()
}

func validateProposalStatus(fl validator.FieldLevel) bool {
	return models.ProposalStatus(fl.Field().String()).Valid()
}

func validateContractStatus(fl validator.FieldLevel) bool {
	return models.ContractStatus(fl.Field().String()).Valid()
}
