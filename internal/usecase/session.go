package usecase

import (
	"context"
	"sync"

	"github.com/vflorencio/radar-leads/internal/entity"
)

// BoardSession amarra o núcleo de um usuário: store hidratado, board
// sincronizado e gerente de comentários. O id do usuário é sempre
// parâmetro explícito — o núcleo nunca lê sessão ambiente.
type BoardSession struct {
	UserID   string
	Store    *LeadStore
	Sync     *BoardSynchronizer
	Comments *CommentThreadManager
}

// AddLead coloca um lead recém-promovido na sessão já hidratada.
func (s *BoardSession) AddLead(lead *entity.Lead) {
	s.Store.Add(lead)
	s.Sync.AddCard(lead.ID, lead.Status)
}

// SessionManager cria e guarda uma BoardSession por usuário, hidratada
// via ListLeads na primeira vez que o usuário aparece.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*BoardSession

	leads    LeadPersistence
	comments CommentPersistence
	policy   TransitionPolicy
}

func NewSessionManager(leads LeadPersistence, comments CommentPersistence, policy TransitionPolicy) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*BoardSession),
		leads:    leads,
		comments: comments,
		policy:   policy,
	}
}

func (m *SessionManager) Get(ctx context.Context, userID string) (*BoardSession, error) {
	m.mu.Lock()
	if session, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	// Hidrata fora do lock: ListLeads é chamada externa e pode demorar.
	leads, err := m.leads.ListLeads(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "list_leads", Err: err}
	}

	store := NewLeadStore()
	store.Load(leads)

	session := &BoardSession{
		UserID:   userID,
		Store:    store,
		Sync:     NewBoardSynchronizer(store, m.policy, m.leads),
		Comments: NewCommentThreadManager(store, m.comments),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Outra goroutine pode ter hidratado enquanto a gente buscava.
	if existing, ok := m.sessions[userID]; ok {
		return existing, nil
	}
	m.sessions[userID] = session
	return session, nil
}

// Invalidate descarta a sessão do usuário; a próxima chamada re-hidrata.
func (m *SessionManager) Invalidate(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
