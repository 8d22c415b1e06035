package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vflorencio/radar-leads/internal/entity"
	"github.com/vflorencio/radar-leads/internal/infra/database"
	"github.com/vflorencio/radar-leads/internal/usecase"
)

type SettingsHandler struct {
	Settings *database.SettingsRepository
}

func NewSettingsHandler(settings *database.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

// HandleGet (GET /settings)
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	settings, err := h.Settings.GetByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// HandleUpdate (PUT /settings)
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	var input entity.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if errs := usecase.ValidateSettingsInput(input.SearchRadiusKm, input.GoogleAPIKey); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	// O dono é sempre quem está na sessão, nunca o corpo do request.
	input.UserID = userID

	if err := h.Settings.Upsert(r.Context(), &input); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, input)
}
