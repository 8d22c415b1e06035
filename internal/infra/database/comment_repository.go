package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vflorencio/radar-leads/internal/entity"
)

type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

// Insert devolve o registro autoritativo: o núcleo confia no id e no
// created_at que saem daqui.
func (r *CommentRepository) Insert(ctx context.Context, leadID, authorID, content string) (*entity.Comment, error) {
	query := `
		INSERT INTO comments (id, lead_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	comment := &entity.Comment{
		ID:       uuid.New().String(),
		LeadID:   leadID,
		AuthorID: authorID,
		Content:  content,
	}

	err := r.DB.QueryRowContext(ctx, query,
		comment.ID,
		comment.LeadID,
		comment.AuthorID,
		comment.Content,
	).Scan(&comment.CreatedAt)

	if err != nil {
		return nil, err
	}

	return comment, nil
}

// Update troca só o conteúdo; created_at não é tocado de propósito.
func (r *CommentRepository) Update(ctx context.Context, commentID, content string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE comments SET content = $1 WHERE id = $2`,
		content, commentID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}
