package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vflorencio/radar-leads/internal/entity"
)

func TestSessionManager_HydratesOncePerUser(t *testing.T) {
	leads := new(MockLeadPersistence)
	comments := new(MockCommentPersistence)
	leads.On("ListLeads", mock.Anything, "u1").
		Return([]entity.Lead{makeLead("l1", entity.StatusLead)}, nil).Once()

	manager := NewSessionManager(leads, comments, OpenPipelinePolicy{})

	session, err := manager.Get(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, 1, session.Store.Len())
	assert.Equal(t, []string{"l1"}, session.Sync.Column(entity.StatusLead))

	// Segunda chamada devolve a mesma sessão sem nova hidratação.
	again, err := manager.Get(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Same(t, session, again)
	leads.AssertNumberOfCalls(t, "ListLeads", 1)
}

func TestSessionManager_HydrationFailure(t *testing.T) {
	leads := new(MockLeadPersistence)
	comments := new(MockCommentPersistence)
	leads.On("ListLeads", mock.Anything, "u1").Return(nil, errors.New("down"))

	manager := NewSessionManager(leads, comments, OpenPipelinePolicy{})

	_, err := manager.Get(context.Background(), "u1")
	assert.True(t, IsPersistenceError(err))
}

func TestSessionManager_InvalidateForcesRehydration(t *testing.T) {
	leads := new(MockLeadPersistence)
	comments := new(MockCommentPersistence)
	leads.On("ListLeads", mock.Anything, "u1").Return([]entity.Lead{}, nil)

	manager := NewSessionManager(leads, comments, OpenPipelinePolicy{})

	_, err := manager.Get(context.Background(), "u1")
	assert.NoError(t, err)

	manager.Invalidate("u1")

	_, err = manager.Get(context.Background(), "u1")
	assert.NoError(t, err)
	leads.AssertNumberOfCalls(t, "ListLeads", 2)
}

func TestSessionManager_IsolatesUsers(t *testing.T) {
	leads := new(MockLeadPersistence)
	comments := new(MockCommentPersistence)
	leads.On("ListLeads", mock.Anything, "u1").
		Return([]entity.Lead{makeLead("l1", entity.StatusLead)}, nil)
	leads.On("ListLeads", mock.Anything, "u2").
		Return([]entity.Lead{}, nil)

	manager := NewSessionManager(leads, comments, OpenPipelinePolicy{})

	first, _ := manager.Get(context.Background(), "u1")
	second, _ := manager.Get(context.Background(), "u2")

	assert.Equal(t, 1, first.Store.Len())
	assert.Equal(t, 0, second.Store.Len())
}

func TestBoardSession_AddLead(t *testing.T) {
	leads := new(MockLeadPersistence)
	comments := new(MockCommentPersistence)
	leads.On("ListLeads", mock.Anything, "u1").Return([]entity.Lead{}, nil)

	manager := NewSessionManager(leads, comments, OpenPipelinePolicy{})
	session, _ := manager.Get(context.Background(), "u1")

	lead := makeLead("l-novo", entity.StatusLead)
	session.AddLead(&lead)

	assert.Equal(t, 1, session.Store.Len())
	assert.Equal(t, []string{"l-novo"}, session.Sync.Column(entity.StatusLead))
}
