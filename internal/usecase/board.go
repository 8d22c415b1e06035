package usecase

import (
	"github.com/vflorencio/radar-leads/internal/entity"
)

// Board é a visão derivada: leads particionados em colunas por status.
// É sempre reconstruível a partir do LeadStore e nunca serve de
// segunda fonte de verdade para o status — só a ordem dentro de cada
// coluna é estado próprio, mantida para estabilidade de exibição.
// Não tem lock: quem muta é o BoardSynchronizer, sob o lock dele.
type Board struct {
	columns map[entity.Status][]string
}

func NewBoard() *Board {
	b := &Board{columns: make(map[entity.Status][]string)}
	for _, stage := range entity.PipelineStages {
		b.columns[stage] = nil
	}
	return b
}

// Rebuild agrupa o snapshot do store por status, preservando a ordem
// do slice recebido dentro de cada coluna.
func (b *Board) Rebuild(leads []entity.Lead) {
	for _, stage := range entity.PipelineStages {
		b.columns[stage] = nil
	}
	for _, lead := range leads {
		b.columns[lead.Status] = append(b.columns[lead.Status], lead.ID)
	}
}

// Columns devolve uma cópia das colunas na ordem do funil.
func (b *Board) Columns() map[entity.Status][]string {
	out := make(map[entity.Status][]string, len(b.columns))
	for status, ids := range b.columns {
		column := make([]string, len(ids))
		copy(column, ids)
		out[status] = column
	}
	return out
}

func (b *Board) Column(status entity.Status) []string {
	ids := b.columns[status]
	column := make([]string, len(ids))
	copy(column, ids)
	return column
}

func (b *Board) indexOf(status entity.Status, leadID string) int {
	for i, id := range b.columns[status] {
		if id == leadID {
			return i
		}
	}
	return -1
}

func (b *Board) remove(status entity.Status, leadID string) {
	if i := b.indexOf(status, leadID); i >= 0 {
		column := b.columns[status]
		b.columns[status] = append(column[:i], column[i+1:]...)
	}
}

func (b *Board) insertAt(status entity.Status, leadID string, index int) {
	column := b.columns[status]
	if index < 0 || index > len(column) {
		index = len(column)
	}
	column = append(column, "")
	copy(column[index+1:], column[index:])
	column[index] = leadID
	b.columns[status] = column
}

// moveCard tira o card da coluna de origem e insere na posição pedida
// da coluna de destino. Nunca duplica nem perde o card no caminho.
func (b *Board) moveCard(leadID string, from, to entity.Status, toIndex int) {
	b.remove(from, leadID)
	b.insertAt(to, leadID, toIndex)
}

// reorder muda a posição do card dentro da própria coluna.
func (b *Board) reorder(leadID string, status entity.Status, toIndex int) {
	b.remove(status, leadID)
	b.insertAt(status, leadID, toIndex)
}

func (b *Board) append(status entity.Status, leadID string) {
	b.columns[status] = append(b.columns[status], leadID)
}
