package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vflorencio/radar-leads/internal/entity"
)

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// defaults de quem nunca salvou nada
const (
	defaultRadiusKm = 10
	defaultLat      = -23.5505 // São Paulo
	defaultLng      = -46.6333
)

func (r *SettingsRepository) GetByUser(ctx context.Context, userID string) (*entity.UserSettings, error) {
	query := `
		SELECT id, user_id, google_api_key, dark_mode, search_radius_km, default_lat, default_lng
		FROM user_settings
		WHERE user_id = $1
	`

	var s entity.UserSettings
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&s.ID,
		&s.UserID,
		&s.GoogleAPIKey,
		&s.DarkMode,
		&s.SearchRadiusKm,
		&s.DefaultLocation.Lat,
		&s.DefaultLocation.Lng,
	)
	if err == sql.ErrNoRows {
		return &entity.UserSettings{
			UserID:          userID,
			SearchRadiusKm:  defaultRadiusKm,
			DefaultLocation: entity.Location{Lat: defaultLat, Lng: defaultLng},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *entity.UserSettings) error {
	query := `
		INSERT INTO user_settings (id, user_id, google_api_key, dark_mode, search_radius_km, default_lat, default_lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id)
		DO UPDATE SET
			google_api_key = EXCLUDED.google_api_key,
			dark_mode = EXCLUDED.dark_mode,
			search_radius_km = EXCLUDED.search_radius_km,
			default_lat = EXCLUDED.default_lat,
			default_lng = EXCLUDED.default_lng
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		uuid.New().String(),
		s.UserID,
		s.GoogleAPIKey,
		s.DarkMode,
		s.SearchRadiusKm,
		s.DefaultLocation.Lat,
		s.DefaultLocation.Lng,
	).Scan(&s.ID)
}
