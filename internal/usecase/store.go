package usecase

import (
	"sync"
	"time"

	"github.com/vflorencio/radar-leads/internal/entity"
)

// LeadStore é a única fonte de verdade em memória para o conjunto de
// leads da sessão. Cada id mapeia para exatamente um Lead; leitores
// recebem cópias e nunca enxergam mutação parcial. Só o Board
// Synchronizer e o Comment Thread Manager escrevem aqui, sempre pelos
// pontos de entrada documentados.
type LeadStore struct {
	mu    sync.RWMutex
	leads map[string]*entity.Lead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{
		leads: make(map[string]*entity.Lead),
	}
}

// Load re-hidrata o store a partir do colaborador de persistência.
// Substitui o conjunto inteiro (reconciliação de início de sessão).
func (s *LeadStore) Load(leads []entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = make(map[string]*entity.Lead, len(leads))
	for i := range leads {
		lead := leads[i]
		s.leads[lead.ID] = lead.Clone()
	}
}

// Add insere um lead recém-criado pela persistência (promoção de empresa).
func (s *LeadStore) Add(lead *entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads[lead.ID] = lead.Clone()
}

// GetAll devolve um snapshot seguro para iterar.
func (s *LeadStore) GetAll() []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Lead, 0, len(s.leads))
	for _, lead := range s.leads {
		out = append(out, *lead.Clone())
	}
	return out
}

func (s *LeadStore) GetByID(id string) (*entity.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return lead.Clone(), nil
}

func (s *LeadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// ApplyStatusChange troca o status do lead e devolve o valor anterior
// para que o chamador consiga fazer rollback se a persistência falhar.
func (s *LeadStore) ApplyStatusChange(id string, newStatus entity.Status) (entity.Status, error) {
	if !newStatus.Valid() {
		return "", entity.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return "", entity.ErrLeadNotFound
	}

	previous := lead.Status
	lead.Status = newStatus
	lead.UpdatedAt = time.Now()
	return previous, nil
}

func (s *LeadStore) AppendComment(leadID string, comment entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[leadID]
	if !ok {
		return entity.ErrLeadNotFound
	}

	lead.Comments = append(lead.Comments, comment)
	lead.UpdatedAt = time.Now()
	return nil
}

// FindComment localiza um comentário pelo id dentro do lead dono.
func (s *LeadStore) FindComment(commentID string) (*entity.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, lead := range s.leads {
		for i := range lead.Comments {
			if lead.Comments[i].ID == commentID {
				c := lead.Comments[i]
				return &c, nil
			}
		}
	}
	return nil, entity.ErrCommentNotFound
}

// ReplaceComment troca só o conteúdo; o timestamp original é mantido
// para que a edição não reordene a thread.
func (s *LeadStore) ReplaceComment(commentID, newContent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		for i := range lead.Comments {
			if lead.Comments[i].ID == commentID {
				lead.Comments[i].Content = newContent
				lead.UpdatedAt = time.Now()
				return nil
			}
		}
	}
	return entity.ErrCommentNotFound
}

func (s *LeadStore) RemoveComment(commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		for i := range lead.Comments {
			if lead.Comments[i].ID == commentID {
				lead.Comments = append(lead.Comments[:i], lead.Comments[i+1:]...)
				lead.UpdatedAt = time.Now()
				return nil
			}
		}
	}
	return entity.ErrCommentNotFound
}
