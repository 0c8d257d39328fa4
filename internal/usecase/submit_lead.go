package usecase

import (
	"context"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type SubmitLeadInput struct {
	Title          string  `json:"title"`
	Brand          string  `json:"brand"`
	Mileage        int     `json:"mileage"`
	PriceExclusive float64 `json:"price"`
	ImageURL       string  `json:"image_url"`
}

type SubmitLeadOutput struct {
	ID               string `json:"id"`
	Brand            string `json:"brand"`
	ModerationStatus string `json:"moderation_status"`
	Msg              string `json:"msg"`
}

// SubmitLeadUseCase handles the dealer "sell" form: the listing lands in the
// moderation queue and only reaches the catalog once an admin approves it.
type SubmitLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewSubmitLeadUseCase(leadRepo entity.LeadRepositoryInterface) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{LeadRepo: leadRepo}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	if errs := ValidateSubmitLeadInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	lead, err := entity.NewSubmittedLead(input.Title, input.Brand, input.Mileage, input.PriceExclusive, input.ImageURL)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &SubmitLeadOutput{
		ID:               lead.ID,
		Brand:            lead.Brand,
		ModerationStatus: lead.ModerationStatus,
		Msg:              "Listing submitted for review",
	}, nil
}

type CreateLeadInput struct {
	Title            string  `json:"title"`
	Brand            string  `json:"brand"`
	Mileage          int     `json:"mileage"`
	RegistrationDate string  `json:"registration_date"`
	PriceStandard    float64 `json:"price_standard"`
	PriceExclusive   float64 `json:"price_exclusive"`
	ImageURL         string  `json:"image_url"`
}

// CreateLeadUseCase is the admin form: the lead goes straight to the catalog
// with both price tiers set explicitly.
type CreateLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewCreateLeadUseCase(leadRepo entity.LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{LeadRepo: leadRepo}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	lead, err := entity.NewLead(
		input.Title,
		input.Brand,
		input.Mileage,
		input.RegistrationDate,
		input.PriceStandard,
		input.PriceExclusive,
		input.ImageURL,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return lead, nil
}
