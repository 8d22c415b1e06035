package usecase

import (
	"context"
	"log"
	"time"

	"github.com/vflorencio/radar-leads/internal/entity"
	"github.com/vflorencio/radar-leads/internal/infra/queue"
)

// PromoteBusinessUseCase cria um Lead a partir de uma empresa achada
// na busca. Os campos descritivos são um snapshot copiado no momento
// da promoção; não existe re-sync automático depois.
type PromoteBusinessUseCase struct {
	Leads      LeadPersistence
	Businesses BusinessPersistence
	Queue      EventPublisherInterface
}

func NewPromoteBusinessUseCase(
	leads LeadPersistence,
	businesses BusinessPersistence,
	producer EventPublisherInterface,
) *PromoteBusinessUseCase {
	return &PromoteBusinessUseCase{
		Leads:      leads,
		Businesses: businesses,
		Queue:      producer,
	}
}

func (uc *PromoteBusinessUseCase) Execute(ctx context.Context, userID, businessID string) (*entity.Lead, error) {
	business, err := uc.Businesses.FindByID(ctx, businessID)
	if err != nil {
		return nil, entity.ErrBusinessNotFound
	}
	// Empresa de outro usuário não existe para este.
	if business.UserID != userID {
		return nil, entity.ErrBusinessNotFound
	}
	if business.InLeads {
		return nil, entity.ErrAlreadyInPipeline
	}

	lead := &entity.Lead{
		BusinessRef: business.ID,
		UserID:      userID,
		Name:        business.Name,
		Address:     business.Address,
		Phone:       business.Phone,
		Website:     business.Website,
		Rating:      business.Rating,
		ReviewCount: business.ReviewCount,
		Status:      entity.StatusLead,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	txn := NewTransaction()

	// O id definitivo do lead vem da persistência no Create.
	txn.AddOperation("create_lead", func(ctx context.Context) error {
		return uc.Leads.Create(ctx, lead)
	})
	txn.AddCompensation("delete_lead", func(ctx context.Context) error {
		return uc.Leads.Delete(ctx, lead.ID)
	})

	txn.AddOperation("mark_promoted", func(ctx context.Context) error {
		return uc.Businesses.MarkPromoted(ctx, business.ID, true)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &PersistenceError{Op: "promote_business", Err: err}
	}

	if uc.Queue != nil {
		payload := queue.LeadEventPayload{
			Event:      queue.EventLeadCreated,
			LeadID:     lead.ID,
			LeadName:   lead.Name,
			UserID:     userID,
			NewStatus:  string(lead.Status),
			OccurredAt: time.Now(),
		}
		if err := uc.Queue.PublishLeadEvent(ctx, payload); err != nil {
			// Evento é fan-out, não verdade: a promoção já foi persistida.
			log.Printf("⚠️ Falha ao publicar evento lead.created: %v", err)
		}
	}

	return lead, nil
}
