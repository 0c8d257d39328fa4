package usecase

import (
	"context"
	"errors"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type MakeOfferInput struct {
	LeadID    string  `json:"lead_id"`
	Amount    float64 `json:"amount"`
	UserEmail string  `json:"-"`
}

type MakeOfferOutput struct {
	ID        string  `json:"id"`
	LeadID    string  `json:"lead_id"`
	LeadTitle string  `json:"lead_title"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Msg       string  `json:"msg"`
}

// MakeOfferUseCase records a buyer's proposed price. The offer is a detached
// record: submitting one never touches the lead row, and the admin inbox
// resolves it later.
type MakeOfferUseCase struct {
	OfferRepo entity.OfferRepositoryInterface
	LeadRepo  entity.LeadRepositoryInterface
}

func NewMakeOfferUseCase(offerRepo entity.OfferRepositoryInterface, leadRepo entity.LeadRepositoryInterface) *MakeOfferUseCase {
	return &MakeOfferUseCase{
		OfferRepo: offerRepo,
		LeadRepo:  leadRepo,
	}
}

func (uc *MakeOfferUseCase) Execute(ctx context.Context, input MakeOfferInput) (*MakeOfferOutput, error) {
	if errs := ValidateOfferInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, &DomainError{Code: CodeNotFound, Message: "lead not found"}
	}
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	offer, err := entity.NewOffer(lead, input.UserEmail, input.Amount)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.OfferRepo.Create(ctx, offer); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &MakeOfferOutput{
		ID:        offer.ID,
		LeadID:    offer.LeadID,
		LeadTitle: offer.LeadTitle,
		Amount:    offer.Amount,
		Status:    offer.Status,
		Msg:       "Offer submitted",
	}, nil
}

// ResolveOffer flips an offer to accepted or rejected from the admin inbox.
func (uc *MakeOfferUseCase) ResolveOffer(ctx context.Context, offerID, status string) error {
	if status != entity.OfferAccepted && status != entity.OfferRejected {
		return &DomainError{Code: CodeValidation, Message: "status must be accepted or rejected"}
	}

	err := uc.OfferRepo.UpdateStatus(ctx, offerID, status)
	if errors.Is(err, entity.ErrOfferNotFound) {
		return &DomainError{Code: CodeNotFound, Message: "offer not found"}
	}
	if err != nil {
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return nil
}
