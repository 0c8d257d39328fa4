package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type OfferRepository struct {
	DB *sql.DB
}

func NewOfferRepository(db *sql.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, lead_id, lead_title, lead_image, user_email, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		offer.ID,
		offer.LeadID,
		offer.LeadTitle,
		offer.LeadImage,
		offer.UserEmail,
		offer.Amount,
		offer.Status,
		offer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert offer: %w", err)
	}

	return nil
}

func (r *OfferRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.Offer, error) {
	query := `
		SELECT id, lead_id, lead_title, lead_image, user_email, amount, status, created_at
		FROM offers
		WHERE user_email = $1
		ORDER BY created_at DESC
	`
	return r.queryOffers(ctx, query, email)
}

func (r *OfferRepository) FindAll(ctx context.Context) ([]*entity.Offer, error) {
	query := `
		SELECT id, lead_id, lead_title, lead_image, user_email, amount, status, created_at
		FROM offers
		ORDER BY created_at DESC
	`
	return r.queryOffers(ctx, query)
}

func (r *OfferRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE offers SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrOfferNotFound
	}

	return nil
}

func (r *OfferRepository) queryOffers(ctx context.Context, query string, args ...any) ([]*entity.Offer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	offers := []*entity.Offer{}
	for rows.Next() {
		var offer entity.Offer
		err := rows.Scan(
			&offer.ID,
			&offer.LeadID,
			&offer.LeadTitle,
			&offer.LeadImage,
			&offer.UserEmail,
			&offer.Amount,
			&offer.Status,
			&offer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		offers = append(offers, &offer)
	}

	return offers, rows.Err()
}
