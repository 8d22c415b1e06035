package entity

import (
	"time"
)

// Status é uma etapa fixa do funil de vendas.
type Status string

const (
	StatusLead            Status = "Lead"
	StatusContatado       Status = "Contatado"
	StatusReuniaoAgendada Status = "Reunião Agendada"
	StatusPropostaEnviada Status = "Proposta Enviada"
	StatusFechado         Status = "Fechado"
	StatusPerdido         Status = "Perdido"
)

// PipelineStages define a ordem de exibição das colunas do board.
var PipelineStages = []Status{
	StatusLead,
	StatusContatado,
	StatusReuniaoAgendada,
	StatusPropostaEnviada,
	StatusFechado,
	StatusPerdido,
}

func (s Status) Valid() bool {
	for _, stage := range PipelineStages {
		if s == stage {
			return true
		}
	}
	return false
}

// ActiveStages são as etapas que ainda exigem acompanhamento
// (tudo que não é Fechado nem Perdido).
func ActiveStages() []Status {
	return []Status{StatusLead, StatusContatado, StatusReuniaoAgendada, StatusPropostaEnviada}
}

type Comment struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	AuthorID  string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Lead struct {
	ID          string    `json:"id"`
	BusinessRef string    `json:"business_id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone,omitempty"`
	Website     string    `json:"website,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Status      Status    `json:"status"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone devolve uma cópia profunda para snapshots de leitura:
// quem lê nunca pode enxergar mutação parcial do store.
func (l *Lead) Clone() *Lead {
	cp := *l
	cp.Comments = make([]Comment, len(l.Comments))
	copy(cp.Comments, l.Comments)
	return &cp
}
