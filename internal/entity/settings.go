package entity

import "time"

// UserSettings guarda a configuração por usuário da tela de ajustes.
type UserSettings struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	GoogleAPIKey    string   `json:"google_api_key"`
	DarkMode        bool     `json:"dark_mode"`
	SearchRadiusKm  int      `json:"search_radius_km"`
	DefaultLocation Location `json:"default_location"`
}

// SearchRecord registra uma busca feita na tela de empresas.
type SearchRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Query        string    `json:"query"`
	ResultsCount int       `json:"results_count"`
	CreatedAt    time.Time `json:"created_at"`
}
