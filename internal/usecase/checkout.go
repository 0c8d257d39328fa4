package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/queue"
)

// Purchase types. Standard buys a copy of the lead data and leaves the
// catalog untouched; exclusive removes the lead from the market permanently.
const (
	PurchaseStandard  = "standard"
	PurchaseExclusive = "exclusive"
)

type CheckoutInput struct {
	LeadID       string `json:"lead_id"`
	PurchaseType string `json:"purchase_type"`
	BuyerEmail   string `json:"-"`
}

type CheckoutOutput struct {
	LeadID       string  `json:"lead_id"`
	Title        string  `json:"title"`
	PurchaseType string  `json:"purchase_type"`
	PricePaid    float64 `json:"price_paid"`
	Status       string  `json:"status"`
	Msg          string  `json:"msg"`
}

type CheckoutUseCase struct {
	LeadRepo  entity.LeadRepositoryInterface
	Publisher EventPublisher
	Log       zerolog.Logger

	// ProcessingDelay simulates the payment provider round trip. No real
	// charge happens anywhere in this flow.
	ProcessingDelay time.Duration
}

func NewCheckoutUseCase(leadRepo entity.LeadRepositoryInterface, publisher EventPublisher, delay time.Duration, log zerolog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		LeadRepo:        leadRepo,
		Publisher:       publisher,
		ProcessingDelay: delay,
		Log:             log.With().Str("usecase", "checkout").Logger(),
	}
}

func (uc *CheckoutUseCase) Execute(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error) {
	if input.PurchaseType != PurchaseStandard && input.PurchaseType != PurchaseExclusive {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "purchase_type must be standard or exclusive",
		}
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, &DomainError{
			Code:    CodeNotFound,
			Message: "invalid checkout session",
		}
	}
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	if lead.Status != entity.LeadStatusAvailable {
		return nil, &DomainError{
			Code:    CodeAlreadySold,
			Message: "this lead has already been sold exclusively",
		}
	}

	price := lead.PriceStandard
	if input.PurchaseType == PurchaseExclusive {
		price = lead.PriceExclusive
	}

	// Simulated payment processing. Honors cancellation so an abandoned
	// request never mutates the lead afterwards.
	select {
	case <-time.After(uc.ProcessingDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if input.PurchaseType == PurchaseExclusive {
		err := uc.LeadRepo.MarkSoldExclusive(ctx, lead.ID)
		if errors.Is(err, entity.ErrLeadAlreadySold) {
			// Another confirmation won the race; the conditional update
			// guarantees the transition applied exactly once.
			return nil, &DomainError{
				Code:    CodeAlreadySold,
				Message: "this lead has already been sold exclusively",
			}
		}
		if err != nil {
			return nil, &TechnicalError{
				Code:    CodeDatabase,
				Message: "purchase failed: " + err.Error(),
			}
		}

		if uc.Publisher != nil {
			event := queue.LeadSoldPayload{
				LeadID:     lead.ID,
				Title:      lead.Title,
				BuyerEmail: input.BuyerEmail,
				Price:      price,
			}
			if err := uc.Publisher.PublishLeadSold(ctx, event); err != nil {
				// The sale is committed; the catalog feed just lags until
				// the next full fetch.
				uc.Log.Warn().Err(err).Str("lead_id", lead.ID).Msg("sold event not published")
			}
		}
	}

	uc.Log.Info().
		Str("lead_id", lead.ID).
		Str("purchase_type", input.PurchaseType).
		Float64("price", price).
		Msg("checkout completed")

	return &CheckoutOutput{
		LeadID:       lead.ID,
		Title:        lead.Title,
		PurchaseType: input.PurchaseType,
		PricePaid:    price,
		Status:       "completed",
		Msg:          "Purchase successful",
	}, nil
}
