package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vflorencio/radar-leads/internal/entity"
	"github.com/vflorencio/radar-leads/internal/infra/queue"
)

// MockLeadPersistence
type MockLeadPersistence struct {
	mock.Mock
}

func (m *MockLeadPersistence) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadPersistence) UpdateStatus(ctx context.Context, leadID string, status entity.Status) error {
	args := m.Called(ctx, leadID, status)
	return args.Error(0)
}

func (m *MockLeadPersistence) ListLeads(ctx context.Context, userID string) ([]entity.Lead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadPersistence) Delete(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// MockCommentPersistence
type MockCommentPersistence struct {
	mock.Mock
}

func (m *MockCommentPersistence) Insert(ctx context.Context, leadID, authorID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, leadID, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentPersistence) Update(ctx context.Context, commentID, content string) error {
	args := m.Called(ctx, commentID, content)
	return args.Error(0)
}

func (m *MockCommentPersistence) Delete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

// MockBusinessPersistence
type MockBusinessPersistence struct {
	mock.Mock
}

func (m *MockBusinessPersistence) FindByID(ctx context.Context, id string) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessPersistence) MarkPromoted(ctx context.Context, id string, promoted bool) error {
	args := m.Called(ctx, id, promoted)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
