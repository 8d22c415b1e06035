package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/vflorencio/radar-leads/internal/entity"
	"github.com/vflorencio/radar-leads/internal/infra/cache"
	"github.com/vflorencio/radar-leads/internal/infra/database"
	"github.com/vflorencio/radar-leads/internal/infra/http/middleware"
	"github.com/vflorencio/radar-leads/internal/infra/integration/places"
	"github.com/vflorencio/radar-leads/internal/usecase"
)

// PlacesSearcher é o que o handler precisa do client do Google.
type PlacesSearcher interface {
	Search(ctx context.Context, input places.SearchInput) ([]entity.Business, error)
}

// SearchHandler atende a busca de empresas: cache primeiro, API do
// Google depois, resultado gravado como Business e na história de
// buscas. Rate limit por IP protege a cota paga.
type SearchHandler struct {
	Places      PlacesSearcher
	Cache       *cache.SearchCache
	Businesses  *database.BusinessRepository
	Settings    *database.SettingsRepository
	History     *database.SearchHistoryRepository
	rateLimiter *RateLimiter
}

func NewSearchHandler(
	placesClient PlacesSearcher,
	searchCache *cache.SearchCache,
	businesses *database.BusinessRepository,
	settings *database.SettingsRepository,
	history *database.SearchHistoryRepository,
) *SearchHandler {
	return &SearchHandler{
		Places:      placesClient,
		Cache:       searchCache,
		Businesses:  businesses,
		Settings:    settings,
		History:     history,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 buscas/min por IP
	}
}

// HandleSearch (GET /search?query=...)
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	query := r.URL.Query().Get("query")
	if errs := usecase.ValidateSearchQuery(query); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if h.Cache != nil {
		if businesses, ok := h.Cache.Get(ctx, userID, query); ok {
			middleware.RecordPlacesSearch("cache")
			writeJSON(w, http.StatusOK, businesses)
			return
		}
	}

	settings, err := h.Settings.GetByUser(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if settings.GoogleAPIKey == "" {
		http.Error(w, "Chave da API do Google Maps não configurada", http.StatusPreconditionFailed)
		return
	}

	businesses, err := h.Places.Search(ctx, places.SearchInput{
		Query:    query,
		APIKey:   settings.GoogleAPIKey,
		Lat:      settings.DefaultLocation.Lat,
		Lng:      settings.DefaultLocation.Lng,
		RadiusKm: settings.SearchRadiusKm,
	})
	if err != nil {
		middleware.RecordIntegrationError("places")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error(), Retryable: true})
		return
	}
	middleware.RecordPlacesSearch("api")

	// Persiste o snapshot de cada empresa para permitir a promoção.
	for i := range businesses {
		businesses[i].UserID = userID
		if err := h.Businesses.Upsert(ctx, &businesses[i]); err != nil {
			log.Printf("⚠️ Falha ao salvar empresa %s: %v", businesses[i].Name, err)
		}
	}

	if h.Cache != nil {
		if err := h.Cache.Set(ctx, userID, query, businesses); err != nil {
			log.Printf("⚠️ Falha ao gravar cache de busca: %v", err)
		}
	}

	if err := h.History.Insert(ctx, userID, query, len(businesses)); err != nil {
		log.Printf("⚠️ Falha ao gravar histórico de busca: %v", err)
	}

	writeJSON(w, http.StatusOK, businesses)
}

// HandleListBusinesses (GET /businesses)
func (h *SearchHandler) HandleListBusinesses(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	businesses, err := h.Businesses.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if businesses == nil {
		businesses = []entity.Business{}
	}

	writeJSON(w, http.StatusOK, businesses)
}

// HandleHistory (GET /search/history)
func (h *SearchHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	records, err := h.History.ListRecent(r.Context(), userID, 20)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []entity.SearchRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}
