package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vflorencio/radar-leads/internal/entity"
)

func newTestComments(leads ...entity.Lead) (*CommentThreadManager, *LeadStore, *MockCommentPersistence) {
	store := NewLeadStore()
	store.Load(leads)
	persistence := new(MockCommentPersistence)
	manager := NewCommentThreadManager(store, persistence)
	return manager, store, persistence
}

// Cenário C: id e created_at vêm do registro devolvido pela
// persistência, nunca gerados localmente.
func TestCommentAdd_UsesPersistedRecord(t *testing.T) {
	manager, store, persistence := newTestComments(makeLead("l1", entity.StatusLead))

	persisted := &entity.Comment{
		ID:        "c-db-1",
		LeadID:    "l1",
		AuthorID:  "u1",
		Content:   "ligar amanhã",
		CreatedAt: time.Now(),
	}
	persistence.On("Insert", mock.Anything, "l1", "u1", "ligar amanhã").Return(persisted, nil)

	comment, err := manager.Add(context.Background(), "l1", "u1", "  ligar amanhã  ")
	assert.NoError(t, err)
	assert.Equal(t, "c-db-1", comment.ID)
	assert.Equal(t, persisted.CreatedAt, comment.CreatedAt)

	lead, _ := store.GetByID("l1")
	assert.Len(t, lead.Comments, 1)
	assert.Equal(t, "c-db-1", lead.Comments[0].ID)
	persistence.AssertExpectations(t)
}

func TestCommentAdd_EmptyContent(t *testing.T) {
	manager, store, persistence := newTestComments(makeLead("l1", entity.StatusLead))

	_, err := manager.Add(context.Background(), "l1", "u1", "   \n\t ")
	assert.ErrorIs(t, err, entity.ErrEmptyContent)

	lead, _ := store.GetByID("l1")
	assert.Empty(t, lead.Comments)
	persistence.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentAdd_UnknownLead(t *testing.T) {
	manager, _, persistence := newTestComments()

	_, err := manager.Add(context.Background(), "ghost", "u1", "oi")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	persistence.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Cenário D: persistência falha, a thread local não ganha o comentário.
func TestCommentAdd_PersistenceFailureLeavesThreadIntact(t *testing.T) {
	manager, store, persistence := newTestComments(makeLead("l1", entity.StatusLead))
	persistence.On("Insert", mock.Anything, "l1", "u1", "oi").
		Return(nil, errors.New("timeout"))

	_, err := manager.Add(context.Background(), "l1", "u1", "oi")
	assert.True(t, IsPersistenceError(err))

	lead, _ := store.GetByID("l1")
	assert.Empty(t, lead.Comments)
}

func seedComment(t *testing.T, store *LeadStore, id, leadID, authorID string) entity.Comment {
	t.Helper()
	comment := entity.Comment{
		ID:        id,
		LeadID:    leadID,
		AuthorID:  authorID,
		Content:   "primeira visita feita",
		CreatedAt: time.Now().Add(-time.Minute),
	}
	assert.NoError(t, store.AppendComment(leadID, comment))
	return comment
}

func TestCommentEdit_AuthorOnly(t *testing.T) {
	manager, store, persistence := newTestComments(makeLead("l1", entity.StatusLead))
	original := seedComment(t, store, "c1", "l1", "u1")

	// P5: outro usuário não edita, mesmo com o id em mãos.
	err := manager.Edit(context.Background(), "c1", "u2", "hackeado")
	assert.ErrorIs(t, err, entity.ErrForbidden)

	found, _ := store.FindComment("c1")
	assert.Equal(t, original.Content, found.Content)
	persistence.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)

	// O autor edita; o timestamp original fica.
	persistence.On("Update", mock.Anything, "c1", "voltou a atender").Return(nil)
	assert.NoError(t, manager.Edit(context.Background(), "c1", "u1", "voltou a atender"))

	found, _ = store.FindComment("c1")
	assert.Equal(t, "voltou a atender", found.Content)
	assert.Equal(t, original.CreatedAt, found.CreatedAt)
}

func TestCommentEdit_EmptyAndUnknown(t *testing.T) {
	manager, store, _ := newTestComments(makeLead("l1", entity.StatusLead))
	seedComment(t, store, "c1", "l1", "u1")

	assert.ErrorIs(t, manager.Edit(context.Background(), "c1", "u1", "  "), entity.ErrEmptyContent)
	assert.ErrorIs(t, manager.Edit(context.Background(), "nope", "u1", "x"), entity.ErrCommentNotFound)
}

func TestCommentEdit_PersistenceFailure(t *testing.T) {
	manager, store, persistence := newTestComments(makeLead("l1", entity.StatusLead))
	original := seedComment(t, store, "c1", "l1", "u1")

	persistence.On("Update", mock.Anything, "c1", "novo").Return(errors.New("down"))

	err := manager.Edit(context.Background(), "c1", "u1", "novo")
	assert.True(t, IsPersistenceError(err))

	found, _ := store.FindComment("c1")
	assert.Equal(t, original.Content, found.Content)
}

func TestCommentRemove(t *testing.T) {
	manager, store, persistence := newTestComments(makeLead("l1", entity.StatusLead))
	seedComment(t, store, "c1", "l1", "u1")

	// P5 também vale para remoção.
	assert.ErrorIs(t, manager.Remove(context.Background(), "c1", "u2"), entity.ErrForbidden)

	persistence.On("Delete", mock.Anything, "c1").Return(nil)
	assert.NoError(t, manager.Remove(context.Background(), "c1", "u1"))

	_, err := store.FindComment("c1")
	assert.ErrorIs(t, err, entity.ErrCommentNotFound)

	assert.ErrorIs(t, manager.Remove(context.Background(), "c1", "u1"), entity.ErrCommentNotFound)
}

func TestCommentRemove_PersistenceFailure(t *testing.T) {
	manager, store, persistence := newTestComments(makeLead("l1", entity.StatusLead))
	seedComment(t, store, "c1", "l1", "u1")

	persistence.On("Delete", mock.Anything, "c1").Return(errors.New("down"))

	err := manager.Remove(context.Background(), "c1", "u1")
	assert.True(t, IsPersistenceError(err))

	// Falha externa não apaga localmente.
	found, err := store.FindComment("c1")
	assert.NoError(t, err)
	assert.NotNil(t, found)
}
