package usecase

import (
	"github.com/vflorencio/radar-leads/internal/entity"
)

// TransitionPolicy é a costura para regras de transição de etapa.
// O Board Synchronizer não conhece a política concreta, então uma
// regra mais dura (ex: proibir reabrir um lead Fechado) entra aqui
// sem mexer no resto.
type TransitionPolicy interface {
	Approve(current, requested entity.Status) error
}

// OpenPipelinePolicy aprova qualquer transição entre etapas do funil,
// inclusive para a mesma etapa (idempotente). O board deixa arrastar
// o card para qualquer coluna; a única rejeição é status fora do
// conjunto fixo.
type OpenPipelinePolicy struct{}

func (OpenPipelinePolicy) Approve(current, requested entity.Status) error {
	if !requested.Valid() {
		return entity.ErrInvalidStatus
	}
	return nil
}
