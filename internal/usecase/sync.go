package usecase

import (
	"context"
	"sync"

	"github.com/vflorencio/radar-leads/internal/entity"
)

// GestureState é o estado do ciclo de um gesto de drag-and-drop para
// um lead específico.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDragging
	StateCommitting
	StatePersisting
)

func (s GestureState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	case StatePersisting:
		return "persisting"
	default:
		return "idle"
	}
}

// DropResult é o resultado de um gesto, nos termos que a UI enxerga:
// coluna/índice de origem e destino, ou cancelamento (solto fora de
// qualquer coluna).
type DropResult struct {
	LeadID       string        `json:"lead_id"`
	SourceStatus entity.Status `json:"source_status"`
	DestStatus   entity.Status `json:"dest_status"`
	SourceIndex  int           `json:"source_index"`
	DestIndex    int           `json:"dest_index"`
	Cancelled    bool          `json:"cancelled"`
}

// BoardSynchronizer traduz um gesto de drag em mutação do store mais
// uma chamada de persistência, com rollback se a persistência falhar.
//
// A mutação do store acontece de forma síncrona ANTES da chamada
// externa: entre o commit e a resolução, qualquer leitor do board vê
// o estado otimista. Isso é tradeoff deliberado de responsividade,
// não corrida. Commits do mesmo lead são serializados em ordem de
// submissão; gestos concorrentes para o mesmo lead esperam na fila,
// nunca são descartados nem coalescidos.
type BoardSynchronizer struct {
	store       *LeadStore
	policy      TransitionPolicy
	persistence LeadPersistence

	mu     sync.Mutex
	board  *Board
	states map[string]GestureState

	commits *keyedMutex
}

func NewBoardSynchronizer(store *LeadStore, policy TransitionPolicy, persistence LeadPersistence) *BoardSynchronizer {
	s := &BoardSynchronizer{
		store:       store,
		policy:      policy,
		persistence: persistence,
		board:       NewBoard(),
		states:      make(map[string]GestureState),
		commits:     newKeyedMutex(),
	}
	s.Rebuild()
	return s
}

// Rebuild reconstrói as colunas a partir do snapshot atual do store.
func (s *BoardSynchronizer) Rebuild() {
	leads := s.store.GetAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Rebuild(leads)
}

// Board devolve uma cópia das colunas para renderização.
func (s *BoardSynchronizer) Board() map[entity.Status][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Columns()
}

func (s *BoardSynchronizer) Column(status entity.Status) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Column(status)
}

// AddCard anexa um lead recém-promovido ao fim da coluna dele.
func (s *BoardSynchronizer) AddCard(leadID string, status entity.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.append(status, leadID)
}

func (s *BoardSynchronizer) State(leadID string) GestureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[leadID]
}

func (s *BoardSynchronizer) setState(leadID string, state GestureState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == StateIdle {
		delete(s.states, leadID)
		return
	}
	s.states[leadID] = state
}

// StartDrag marca o começo do gesto (pointer-down no card).
// Nenhuma mutação acontece aqui.
func (s *BoardSynchronizer) StartDrag(leadID string) error {
	if _, err := s.store.GetByID(leadID); err != nil {
		return err
	}
	s.setState(leadID, StateDragging)
	return nil
}

// CancelDrag volta para Idle sem tocar em nada: o gesto cancelado é
// um no-op puro, sem passar pela validação.
func (s *BoardSynchronizer) CancelDrag(leadID string) {
	s.setState(leadID, StateIdle)
}

// Drop processa o resultado de um gesto solto sobre o board.
//
// Sequência: valida a transição, decide no-op / reordenação local /
// movimento entre colunas, aplica a mudança otimista no store e só
// então chama a persistência. Falha de persistência desfaz status e
// coluna para o último estado bom e devolve PersistenceError.
func (s *BoardSynchronizer) Drop(ctx context.Context, result DropResult) error {
	if result.Cancelled {
		s.setState(result.LeadID, StateIdle)
		return nil
	}

	// Serializa o commit inteiro por lead: um segundo gesto para o
	// mesmo id espera o primeiro resolver antes de validar/aplicar.
	s.commits.Lock(result.LeadID)
	defer s.commits.Unlock(result.LeadID)

	s.setState(result.LeadID, StateCommitting)

	lead, err := s.store.GetByID(result.LeadID)
	if err != nil {
		s.setState(result.LeadID, StateIdle)
		return err
	}

	// O status corrente vem do store, não do gesto: se o gesto chegou
	// atrasado, a verdade é o que o store diz agora.
	current := lead.Status

	if err := s.policy.Approve(current, result.DestStatus); err != nil {
		s.setState(result.LeadID, StateIdle)
		return err
	}

	if result.DestStatus == current {
		if result.DestIndex == result.SourceIndex {
			// Soltou onde pegou: no-op idempotente, nada persiste.
			s.setState(result.LeadID, StateIdle)
			return nil
		}
		// Reordenação dentro da coluna é só exibição; não muda
		// status, não bate em updated_at e não chama a persistência.
		s.mu.Lock()
		s.board.reorder(result.LeadID, current, result.DestIndex)
		s.mu.Unlock()
		s.setState(result.LeadID, StateIdle)
		return nil
	}

	previous, err := s.store.ApplyStatusChange(result.LeadID, result.DestStatus)
	if err != nil {
		s.setState(result.LeadID, StateIdle)
		return err
	}

	s.mu.Lock()
	s.board.moveCard(result.LeadID, previous, result.DestStatus, result.DestIndex)
	s.mu.Unlock()

	s.setState(result.LeadID, StatePersisting)

	if err := s.persistence.UpdateStatus(ctx, result.LeadID, result.DestStatus); err != nil {
		// Rollback da mutação otimista: status e coluna voltam para
		// o último estado conhecido como bom.
		s.store.ApplyStatusChange(result.LeadID, previous)
		s.mu.Lock()
		s.board.moveCard(result.LeadID, result.DestStatus, previous, result.SourceIndex)
		s.mu.Unlock()
		s.setState(result.LeadID, StateIdle)
		return &PersistenceError{Op: "update_status", Err: err}
	}

	s.setState(result.LeadID, StateIdle)
	return nil
}

// keyedMutex serializa seções críticas por chave (id do lead).
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	lock := k.locks[key]
	k.mu.Unlock()

	if lock != nil {
		lock.Unlock()
	}
}
