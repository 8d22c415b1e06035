package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vflorencio/radar-leads/internal/entity"
)

type SearchHistoryRepository struct {
	DB *sql.DB
}

func NewSearchHistoryRepository(db *sql.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{DB: db}
}

func (r *SearchHistoryRepository) Insert(ctx context.Context, userID, query string, resultsCount int) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO search_history (id, user_id, query, results_count, created_at)
		 VALUES ($1, $2, $3, $4, NOW())`,
		uuid.New().String(), userID, query, resultsCount,
	)
	return err
}

func (r *SearchHistoryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]entity.SearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, query, results_count, created_at
		 FROM search_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.SearchRecord
	for rows.Next() {
		var rec entity.SearchRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Query, &rec.ResultsCount, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
