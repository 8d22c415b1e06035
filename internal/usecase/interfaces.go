package usecase

import (
	"context"

	"github.com/vflorencio/radar-leads/internal/entity"
	"github.com/vflorencio/radar-leads/internal/infra/queue"
)

// LeadPersistence é o contrato do colaborador externo que guarda leads.
// O núcleo consome, não implementa.
type LeadPersistence interface {
	Create(ctx context.Context, lead *entity.Lead) error
	UpdateStatus(ctx context.Context, leadID string, status entity.Status) error
	ListLeads(ctx context.Context, userID string) ([]entity.Lead, error)
	Delete(ctx context.Context, leadID string) error
}

// CommentPersistence devolve o registro autoritativo no Insert:
// id e timestamp vêm sempre do store externo, nunca são gerados aqui.
type CommentPersistence interface {
	Insert(ctx context.Context, leadID, authorID, content string) (*entity.Comment, error)
	Update(ctx context.Context, commentID, content string) error
	Delete(ctx context.Context, commentID string) error
}

type BusinessPersistence interface {
	FindByID(ctx context.Context, id string) (*entity.Business, error)
	MarkPromoted(ctx context.Context, id string, promoted bool) error
}

type EventPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
