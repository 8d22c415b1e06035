package entity

import "time"

// Business é o snapshot bruto vindo da busca do Google Places.
// Vira Lead quando o usuário promove a empresa para o funil.
type Business struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Location    Location `json:"location"`
	InLeads     bool     `json:"in_leads"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
