package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vflorencio/radar-leads/internal/entity"
)

type BusinessRepository struct {
	DB *sql.DB
}

func NewBusinessRepository(db *sql.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

// Upsert grava o resultado da busca. A mesma empresa pode voltar em
// buscas diferentes; o place_id do Google é a chave natural por
// usuário, então conflito só atualiza o snapshot.
func (r *BusinessRepository) Upsert(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, user_id, place_id, name, address, phone, website, rating, review_count, lat, lng, in_leads, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, NOW(), NOW())
		ON CONFLICT (user_id, place_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = COALESCE(EXCLUDED.phone, businesses.phone),
			website = COALESCE(EXCLUDED.website, businesses.website),
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			updated_at = NOW()
		RETURNING id, in_leads, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		uuid.New().String(),
		business.UserID,
		business.PlaceID,
		business.Name,
		business.Address,
		nullString(business.Phone),
		nullString(business.Website),
		business.Rating,
		business.ReviewCount,
		business.Location.Lat,
		business.Location.Lng,
	).Scan(
		&business.ID,
		&business.InLeads,
		&business.CreatedAt,
		&business.UpdatedAt,
	)

	return err
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `
		SELECT id, user_id, place_id, name, address, phone, website, rating, review_count, lat, lng, in_leads, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`

	var b entity.Business
	var phone, website sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.UserID,
		&b.PlaceID,
		&b.Name,
		&b.Address,
		&phone,
		&website,
		&b.Rating,
		&b.ReviewCount,
		&b.Location.Lat,
		&b.Location.Lng,
		&b.InLeads,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrBusinessNotFound
	}
	if err != nil {
		return nil, err
	}

	b.Phone = phone.String
	b.Website = website.String
	return &b, nil
}

func (r *BusinessRepository) ListByUser(ctx context.Context, userID string) ([]entity.Business, error) {
	query := `
		SELECT id, user_id, place_id, name, address, phone, website, rating, review_count, lat, lng, in_leads, created_at, updated_at
		FROM businesses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []entity.Business
	for rows.Next() {
		var b entity.Business
		var phone, website sql.NullString

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.PlaceID,
			&b.Name,
			&b.Address,
			&phone,
			&website,
			&b.Rating,
			&b.ReviewCount,
			&b.Location.Lat,
			&b.Location.Lng,
			&b.InLeads,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		b.Phone = phone.String
		b.Website = website.String
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

func (r *BusinessRepository) MarkPromoted(ctx context.Context, id string, promoted bool) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE businesses SET in_leads = $1, updated_at = NOW() WHERE id = $2`,
		promoted, id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrBusinessNotFound
	}
	return nil
}
