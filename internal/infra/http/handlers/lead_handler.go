package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vflorencio/radar-leads/internal/infra/http/middleware"
	"github.com/vflorencio/radar-leads/internal/infra/queue"
	"github.com/vflorencio/radar-leads/internal/usecase"
)

type LeadHandler struct {
	Sessions  *usecase.SessionManager
	PromoteUC *usecase.PromoteBusinessUseCase
	Producer  usecase.EventPublisherInterface
}

func NewLeadHandler(
	sessions *usecase.SessionManager,
	promoteUC *usecase.PromoteBusinessUseCase,
	producer usecase.EventPublisherInterface,
) *LeadHandler {
	return &LeadHandler{
		Sessions:  sessions,
		PromoteUC: promoteUC,
		Producer:  producer,
	}
}

// HandleList (GET /leads) devolve o snapshot do store da sessão.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	session, err := h.Sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session.Store.GetAll())
}

// HandleBoard (GET /leads/board) devolve as colunas derivadas.
func (h *LeadHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	session, err := h.Sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session.Sync.Board())
}

// HandleMove (POST /leads/{id}/move) é o drop do gesto de drag:
// valida, aplica otimista, persiste, e devolve o lead já atualizado
// (ou o estado revertido se a persistência falhou).
func (h *LeadHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	var input usecase.DropResult
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	if errs := usecase.ValidateDropInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	session, err := h.Sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := session.Sync.Drop(r.Context(), input); err != nil {
		if usecase.IsPersistenceError(err) {
			middleware.RecordLeadRollback()
			middleware.RecordLeadMove(string(input.DestStatus), "rollback")
		} else {
			middleware.RecordLeadMove(string(input.DestStatus), "rejected")
		}
		writeError(w, err)
		return
	}

	middleware.RecordLeadMove(string(input.DestStatus), "ok")

	lead, err := session.Store.GetByID(input.LeadID)
	if err != nil {
		writeError(w, err)
		return
	}

	// Evento de fan-out só depois da persistência confirmar.
	if h.Producer != nil && !input.Cancelled && input.SourceStatus != lead.Status {
		payload := queue.LeadEventPayload{
			Event:      queue.EventLeadStatusChanged,
			LeadID:     lead.ID,
			LeadName:   lead.Name,
			UserID:     userID,
			OldStatus:  string(input.SourceStatus),
			NewStatus:  string(lead.Status),
			OccurredAt: time.Now(),
		}
		if err := h.Producer.PublishLeadEvent(r.Context(), payload); err != nil {
			log.Printf("⚠️ Falha ao publicar lead.status_changed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, lead)
}

// HandleGet (GET /leads/{id})
func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	session, err := h.Sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	lead, err := session.Store.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type PromoteRequest struct {
	BusinessID string `json:"business_id"`
}

// HandlePromote (POST /leads) promove uma empresa da busca para o funil.
func (h *LeadHandler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	var req PromoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.BusinessID == "" {
		http.Error(w, "business_id is required", http.StatusBadRequest)
		return
	}

	lead, err := h.PromoteUC.Execute(r.Context(), userID, req.BusinessID)
	if err != nil {
		writeError(w, err)
		return
	}

	// Se a sessão já está hidratada, o card novo entra na hora.
	if session, err := h.Sessions.Get(r.Context(), userID); err == nil {
		if _, err := session.Store.GetByID(lead.ID); err != nil {
			session.AddLead(lead)
		}
	}

	writeJSON(w, http.StatusCreated, lead)
}
