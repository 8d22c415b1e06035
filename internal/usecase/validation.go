package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDropInput checa a forma do gesto antes de entrar no
// sincronizador. Status fora do funil é rejeitado lá dentro pela
// TransitionPolicy; aqui é só estrutura.
func ValidateDropInput(input DropResult) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}

	if input.Cancelled {
		return errors
	}

	if strings.TrimSpace(string(input.DestStatus)) == "" {
		errors = append(errors, ValidationError{"dest_status", "is required"})
	}
	if input.DestIndex < 0 {
		errors = append(errors, ValidationError{"dest_index", "must not be negative"})
	}
	if input.SourceIndex < 0 {
		errors = append(errors, ValidationError{"source_index", "must not be negative"})
	}

	return errors
}

func ValidateSearchQuery(query string) []ValidationError {
	var errors []ValidationError

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		errors = append(errors, ValidationError{"query", "is required"})
	} else if len(trimmed) > 300 {
		errors = append(errors, ValidationError{"query", "must not exceed 300 characters"})
	}

	return errors
}

func ValidateSettingsInput(radiusKm int, apiKey string) []ValidationError {
	var errors []ValidationError

	if radiusKm < 1 || radiusKm > 100 {
		errors = append(errors, ValidationError{"search_radius_km", "must be between 1 and 100"})
	}
	if len(apiKey) > 128 {
		errors = append(errors, ValidationError{"google_api_key", "must not exceed 128 characters"})
	}

	return errors
}
