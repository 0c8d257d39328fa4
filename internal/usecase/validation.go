package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validationFailure folds field errors into a single DomainError.
func validationFailure(errs []ValidationError) error {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func ValidateEmail(email string) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}

func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	} else if len(input.Title) > 200 {
		errs = append(errs, ValidationError{"title", "must not exceed 200 characters"})
	}

	if input.PriceExclusive <= 0 {
		errs = append(errs, ValidationError{"price", "must be positive"})
	}

	if input.Mileage < 0 {
		errs = append(errs, ValidationError{"mileage", "must not be negative"})
	}

	return errs
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.Brand) == "" {
		errs = append(errs, ValidationError{"brand", "is required"})
	}
	if input.PriceStandard <= 0 {
		errs = append(errs, ValidationError{"price_standard", "must be positive"})
	}
	if input.PriceExclusive <= 0 {
		errs = append(errs, ValidationError{"price_exclusive", "must be positive"})
	}
	if input.Mileage < 0 {
		errs = append(errs, ValidationError{"mileage", "must not be negative"})
	}

	return errs
}

func ValidateOfferInput(input MakeOfferInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errs = append(errs, ValidationError{"lead_id", "is required"})
	}
	if input.Amount <= 0 {
		errs = append(errs, ValidationError{"amount", "must be positive"})
	}

	return errs
}
