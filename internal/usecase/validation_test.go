package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vflorencio/radar-leads/internal/entity"
)

func TestValidateDropInput(t *testing.T) {
	valid := DropResult{LeadID: "l1", DestStatus: entity.StatusLead}
	assert.Empty(t, ValidateDropInput(valid))

	errs := ValidateDropInput(DropResult{DestIndex: -1, SourceIndex: -2})
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "lead_id")
	assert.Contains(t, fields, "dest_status")
	assert.Contains(t, fields, "dest_index")
	assert.Contains(t, fields, "source_index")

	// Gesto cancelado só precisa do id; destino não é checado.
	cancelled := DropResult{LeadID: "l1", Cancelled: true}
	assert.Empty(t, ValidateDropInput(cancelled))
}

func TestValidateSearchQuery(t *testing.T) {
	assert.Empty(t, ValidateSearchQuery("padaria perto de pinheiros"))
	assert.NotEmpty(t, ValidateSearchQuery("   "))
	assert.NotEmpty(t, ValidateSearchQuery(strings.Repeat("a", 301)))
}

func TestValidateSettingsInput(t *testing.T) {
	assert.Empty(t, ValidateSettingsInput(10, "chave"))
	assert.NotEmpty(t, ValidateSettingsInput(0, ""))
	assert.NotEmpty(t, ValidateSettingsInput(101, ""))
	assert.NotEmpty(t, ValidateSettingsInput(10, strings.Repeat("k", 129)))
}
