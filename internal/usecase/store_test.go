package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vflorencio/radar-leads/internal/entity"
)

func makeLead(id string, status entity.Status) entity.Lead {
	now := time.Now().Add(-time.Hour)
	return entity.Lead{
		ID:          id,
		BusinessRef: "biz-" + id,
		UserID:      "u1",
		Name:        "Padaria " + id,
		Address:     "Rua das Flores, 100",
		Rating:      4.5,
		ReviewCount: 120,
		Status:      status,
		Comments:    []entity.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestLeadStore_LoadAndGet(t *testing.T) {
	store := NewLeadStore()
	store.Load([]entity.Lead{
		makeLead("l1", entity.StatusLead),
		makeLead("l2", entity.StatusContatado),
	})

	assert.Equal(t, 2, store.Len())

	lead, err := store.GetByID("l1")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusLead, lead.Status)

	_, err = store.GetByID("nope")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestLeadStore_SnapshotIsolation(t *testing.T) {
	store := NewLeadStore()
	store.Load([]entity.Lead{makeLead("l1", entity.StatusLead)})

	// Mexer no snapshot não pode vazar para dentro do store.
	snapshot, _ := store.GetByID("l1")
	snapshot.Status = entity.StatusPerdido
	snapshot.Comments = append(snapshot.Comments, entity.Comment{ID: "c-fake"})

	fresh, _ := store.GetByID("l1")
	assert.Equal(t, entity.StatusLead, fresh.Status)
	assert.Empty(t, fresh.Comments)
}

func TestLeadStore_ApplyStatusChange(t *testing.T) {
	store := NewLeadStore()
	store.Load([]entity.Lead{makeLead("l1", entity.StatusLead)})

	before, _ := store.GetByID("l1")

	previous, err := store.ApplyStatusChange("l1", entity.StatusFechado)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusLead, previous)

	after, _ := store.GetByID("l1")
	assert.Equal(t, entity.StatusFechado, after.Status)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestLeadStore_ApplyStatusChange_InvalidStatus(t *testing.T) {
	store := NewLeadStore()
	store.Load([]entity.Lead{makeLead("l1", entity.StatusLead)})

	_, err := store.ApplyStatusChange("l1", entity.Status("Inventado"))
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)

	// P1: o status nunca sai do conjunto fixo.
	lead, _ := store.GetByID("l1")
	assert.True(t, lead.Status.Valid())
	assert.Equal(t, entity.StatusLead, lead.Status)
}

func TestLeadStore_ApplyStatusChange_UnknownLead(t *testing.T) {
	store := NewLeadStore()

	_, err := store.ApplyStatusChange("ghost", entity.StatusFechado)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestLeadStore_Comments(t *testing.T) {
	store := NewLeadStore()
	store.Load([]entity.Lead{makeLead("l1", entity.StatusLead)})

	createdAt := time.Now().Add(-time.Minute)
	comment := entity.Comment{
		ID:        "c1",
		LeadID:    "l1",
		AuthorID:  "u1",
		Content:   "ligar amanhã",
		CreatedAt: createdAt,
	}

	assert.NoError(t, store.AppendComment("l1", comment))
	assert.ErrorIs(t, store.AppendComment("ghost", comment), entity.ErrLeadNotFound)

	found, err := store.FindComment("c1")
	assert.NoError(t, err)
	assert.Equal(t, "ligar amanhã", found.Content)

	// Editar troca só o conteúdo; o timestamp fica, a thread não reordena.
	assert.NoError(t, store.ReplaceComment("c1", "ligou, sem resposta"))
	found, _ = store.FindComment("c1")
	assert.Equal(t, "ligou, sem resposta", found.Content)
	assert.Equal(t, createdAt, found.CreatedAt)

	assert.NoError(t, store.RemoveComment("c1"))
	_, err = store.FindComment("c1")
	assert.ErrorIs(t, err, entity.ErrCommentNotFound)

	assert.ErrorIs(t, store.ReplaceComment("c1", "x"), entity.ErrCommentNotFound)
	assert.ErrorIs(t, store.RemoveComment("c1"), entity.ErrCommentNotFound)
}
