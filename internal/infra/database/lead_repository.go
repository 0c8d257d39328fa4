package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

const leadColumns = `id, title, brand, mileage, registration_date, price_standard,
	price_exclusive, status, moderation_status, image_url, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, title, brand, mileage, registration_date,
			price_standard, price_exclusive, status, moderation_status,
			image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Title,
		lead.Brand,
		lead.Mileage,
		lead.RegistrationDate,
		lead.PriceStandard,
		lead.PriceExclusive,
		lead.Status,
		lead.ModerationStatus,
		lead.ImageURL,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

// FindAvailable returns the public catalog: available leads that passed
// moderation (rows predating moderation carry an empty status and stay
// visible), newest first.
func (r *LeadRepository) FindAvailable(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE status = $1
		  AND (moderation_status = $2 OR moderation_status = '')
	`
	args := []any{entity.LeadStatusAvailable, entity.ModerationApproved}

	if len(filter.Brands) > 0 {
		args = append(args, pq.Array(filter.Brands))
		query += fmt.Sprintf(" AND brand = ANY($%d)", len(args))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	return r.queryLeads(ctx, query, args...)
}

func (r *LeadRepository) FindSoldExclusive(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE status = $1
		ORDER BY updated_at DESC
	`
	return r.queryLeads(ctx, query, entity.LeadStatusSoldExclusive)
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) FindRecentAvailable(ctx context.Context, since time.Time) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE status = $1 AND created_at >= $2
		ORDER BY created_at DESC
	`
	return r.queryLeads(ctx, query, entity.LeadStatusAvailable, since)
}

// MarkSoldExclusive flips an available lead to sold_exclusive. The status
// predicate makes the transition first-wins: a second confirmation, or a
// checkout racing another buyer, gets ErrLeadAlreadySold instead of a double
// apply.
func (r *LeadRepository) MarkSoldExclusive(ctx context.Context, id string) error {
	query := `
		UPDATE leads
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := r.DB.ExecContext(ctx, query, entity.LeadStatusSoldExclusive, id, entity.LeadStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to mark lead sold: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrLeadAlreadySold
	}

	return nil
}

func (r *LeadRepository) UpdateModerationStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET moderation_status = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update moderation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var regDate sql.NullTime
	var moderation sql.NullString
	var imageURL sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Title,
		&lead.Brand,
		&lead.Mileage,
		&regDate,
		&lead.PriceStandard,
		&lead.PriceExclusive,
		&lead.Status,
		&moderation,
		&imageURL,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if regDate.Valid {
		lead.RegistrationDate = regDate.Time.Format("2006-01-02")
	}
	lead.ModerationStatus = moderation.String
	lead.ImageURL = imageURL.String

	return &lead, nil
}
