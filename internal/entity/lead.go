package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead availability status.
const (
	LeadStatusAvailable     = "available"
	LeadStatusSoldExclusive = "sold_exclusive"
)

// Lead moderation status. Rows created before moderation existed carry an
// empty value, which the catalog treats as approved.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrLeadAlreadySold = errors.New("lead already sold")
)

// Lead is a vehicle sales listing offered at two price tiers. An exclusive
// purchase removes it from the public catalog permanently.
type Lead struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Brand            string    `json:"brand"`
	Mileage          int       `json:"mileage"`
	RegistrationDate string    `json:"registration_date"` // YYYY-MM-DD
	PriceStandard    float64   `json:"price_standard"`
	PriceExclusive   float64   `json:"price_exclusive"`
	Status           string    `json:"status"`
	ModerationStatus string    `json:"moderation_status"`
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewLead builds an admin-created lead: immediately visible in the catalog.
func NewLead(title, brand string, mileage int, registrationDate string, priceStandard, priceExclusive float64, imageURL string) (*Lead, error) {
	lead := &Lead{
		ID:               uuid.New().String(),
		Title:            title,
		Brand:            brand,
		Mileage:          mileage,
		RegistrationDate: registrationDate,
		PriceStandard:    priceStandard,
		PriceExclusive:   priceExclusive,
		Status:           LeadStatusAvailable,
		ModerationStatus: ModerationApproved,
		ImageURL:         imageURL,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

// NewSubmittedLead builds a dealer-submitted lead: held for moderation, with
// the standard tier priced at 20% of the exclusive asking price.
func NewSubmittedLead(title, brand string, mileage int, priceExclusive float64, imageURL string) (*Lead, error) {
	if brand == "" {
		brand = ExtractBrand(title)
	}
	if imageURL == "" {
		imageURL = "/placeholder-car.jpg"
	}

	lead := &Lead{
		ID:               uuid.New().String(),
		Title:            title,
		Brand:            brand,
		Mileage:          mileage,
		RegistrationDate: time.Now().Format("2006-01-02"),
		PriceStandard:    priceExclusive * 0.2,
		PriceExclusive:   priceExclusive,
		Status:           LeadStatusAvailable,
		ModerationStatus: ModerationPending,
		ImageURL:         imageURL,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Title == "" {
		return errors.New("title is required")
	}
	if l.PriceExclusive <= 0 {
		return errors.New("exclusive price must be positive")
	}
	if l.Mileage < 0 {
		return errors.New("mileage must not be negative")
	}
	return nil
}

// PubliclyVisible reports whether the lead belongs in the public catalog.
func (l *Lead) PubliclyVisible() bool {
	if l.Status != LeadStatusAvailable {
		return false
	}
	return l.ModerationStatus == ModerationApproved || l.ModerationStatus == ""
}

// knownBrands is the brand table the sell form extracts from when the dealer
// leaves the brand blank.
var knownBrands = []string{
	"Aston Martin", "Audi", "Bentley", "BMW", "Ferrari", "Lamborghini",
	"McLaren", "Mercedes", "Porsche", "Range Rover", "Land Rover", "Rolls-Royce",
}

// ExtractBrand guesses the brand from the listing title.
func ExtractBrand(title string) string {
	lower := strings.ToLower(title)
	for _, brand := range knownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return "Other"
}

// CatalogFilter narrows the public catalog query.
type CatalogFilter struct {
	Brands []string // set membership; empty means all
	Query  string   // case-insensitive substring on title
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAvailable(ctx context.Context, filter CatalogFilter) ([]*Lead, error)
	FindSoldExclusive(ctx context.Context) ([]*Lead, error)
	FindAll(ctx context.Context) ([]*Lead, error)
	FindRecentAvailable(ctx context.Context, since time.Time) ([]*Lead, error)
	MarkSoldExclusive(ctx context.Context, id string) error
	UpdateModerationStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
