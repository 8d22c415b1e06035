package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vflorencio/radar-leads/internal/entity"
)

// LeadRepository é o colaborador de persistência de leads. Ids e
// timestamps definitivos nascem aqui, nunca no núcleo.
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, business_id, user_id, name, address, phone, website, rating, review_count, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	id := uuid.New().String()

	err := r.DB.QueryRowContext(ctx, query,
		id,
		lead.BusinessRef,
		lead.UserID,
		lead.Name,
		lead.Address,
		nullString(lead.Phone),
		nullString(lead.Website),
		lead.Rating,
		lead.ReviewCount,
		string(lead.Status),
	).Scan(&lead.CreatedAt, &lead.UpdatedAt)

	if err != nil {
		return err
	}

	lead.ID = id
	return nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, leadID string, status entity.Status) error {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(ctx, query, string(status), leadID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// ListLeads hidrata a sessão: todos os leads do usuário com os
// comentários aninhados, na ordem de criação.
func (r *LeadRepository) ListLeads(ctx context.Context, userID string) ([]entity.Lead, error) {
	query := `
		SELECT id, business_id, user_id, name, address, phone, website, rating, review_count, status, created_at, updated_at
		FROM leads
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	index := make(map[string]int)

	for rows.Next() {
		var lead entity.Lead
		var phone, website sql.NullString

		err := rows.Scan(
			&lead.ID,
			&lead.BusinessRef,
			&lead.UserID,
			&lead.Name,
			&lead.Address,
			&phone,
			&website,
			&lead.Rating,
			&lead.ReviewCount,
			&lead.Status,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		lead.Phone = phone.String
		lead.Website = website.String
		lead.Comments = []entity.Comment{}

		index[lead.ID] = len(leads)
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	commentsQuery := `
		SELECT c.id, c.lead_id, c.user_id, c.content, c.created_at
		FROM comments c
		JOIN leads l ON l.id = c.lead_id
		WHERE l.user_id = $1
		ORDER BY c.created_at ASC
	`

	commentRows, err := r.DB.QueryContext(ctx, commentsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var c entity.Comment
		if err := commentRows.Scan(&c.ID, &c.LeadID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[c.LeadID]; ok {
			leads[i].Comments = append(leads[i].Comments, c)
		}
	}
	if err := commentRows.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}

func (r *LeadRepository) Delete(ctx context.Context, leadID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, leadID)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
