package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

var ErrOfferNotFound = errors.New("offer not found")

// Offer is a buyer's proposed price on a lead. The lead title and image are
// snapshotted at submission time so the inbox stays readable after the lead
// is sold or deleted.
type Offer struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	LeadTitle string    `json:"lead_title"`
	LeadImage string    `json:"lead_image"`
	UserEmail string    `json:"user_email"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewOffer(lead *Lead, userEmail string, amount float64) (*Offer, error) {
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	if userEmail == "" {
		return nil, errors.New("user email is required")
	}
	if amount <= 0 {
		return nil, errors.New("offer amount must be positive")
	}

	image := lead.ImageURL
	if image == "" {
		image = "/fallback-car.png"
	}

	return &Offer{
		ID:        uuid.New().String(),
		LeadID:    lead.ID,
		LeadTitle: lead.Title,
		LeadImage: image,
		UserEmail: userEmail,
		Amount:    amount,
		Status:    OfferPending,
		CreatedAt: time.Now(),
	}, nil
}

type OfferRepositoryInterface interface {
	Create(ctx context.Context, offer *Offer) error
	FindByUserEmail(ctx context.Context, email string) ([]*Offer, error)
	FindAll(ctx context.Context) ([]*Offer, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
