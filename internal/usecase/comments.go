package usecase

import (
	"context"
	"strings"

	"github.com/vflorencio/radar-leads/internal/entity"
)

// CommentThreadManager cuida da thread de comentários de cada lead:
// append, edição e remoção, com mutação restrita ao autor. Toda
// validação acontece antes de qualquer escrita; a persistência roda
// antes do store local, então falha externa nunca deixa a thread em
// estado intermediário. Mutações do mesmo lead são serializadas em
// ordem de submissão.
type CommentThreadManager struct {
	store       *LeadStore
	persistence CommentPersistence
	locks       *keyedMutex
}

func NewCommentThreadManager(store *LeadStore, persistence CommentPersistence) *CommentThreadManager {
	return &CommentThreadManager{
		store:       store,
		persistence: persistence,
		locks:       newKeyedMutex(),
	}
}

// Add anexa um comentário novo. O id e o timestamp vêm do registro
// autoritativo devolvido pela persistência, nunca são gerados aqui.
func (m *CommentThreadManager) Add(ctx context.Context, leadID, authorID, content string) (*entity.Comment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, entity.ErrEmptyContent
	}

	if _, err := m.store.GetByID(leadID); err != nil {
		return nil, err
	}

	m.locks.Lock(leadID)
	defer m.locks.Unlock(leadID)

	comment, err := m.persistence.Insert(ctx, leadID, authorID, trimmed)
	if err != nil {
		return nil, &PersistenceError{Op: "insert_comment", Err: err}
	}

	if err := m.store.AppendComment(leadID, *comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Edit troca o conteúdo de um comentário do próprio autor. O
// timestamp original fica intacto: editar não reordena a thread.
func (m *CommentThreadManager) Edit(ctx context.Context, commentID, actingUserID, newContent string) error {
	trimmed := strings.TrimSpace(newContent)
	if trimmed == "" {
		return entity.ErrEmptyContent
	}

	comment, err := m.store.FindComment(commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actingUserID {
		return entity.ErrForbidden
	}

	m.locks.Lock(comment.LeadID)
	defer m.locks.Unlock(comment.LeadID)

	if err := m.persistence.Update(ctx, commentID, trimmed); err != nil {
		return &PersistenceError{Op: "update_comment", Err: err}
	}
	return m.store.ReplaceComment(commentID, trimmed)
}

// Remove apaga um comentário do próprio autor.
func (m *CommentThreadManager) Remove(ctx context.Context, commentID, actingUserID string) error {
	comment, err := m.store.FindComment(commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actingUserID {
		return entity.ErrForbidden
	}

	m.locks.Lock(comment.LeadID)
	defer m.locks.Unlock(comment.LeadID)

	if err := m.persistence.Delete(ctx, commentID); err != nil {
		return &PersistenceError{Op: "delete_comment", Err: err}
	}
	return m.store.RemoveComment(commentID)
}
