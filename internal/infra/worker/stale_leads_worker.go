package worker

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/vflorencio/radar-leads/internal/infra/queue"
)

// StaleLeadsWorker varre periodicamente o funil atrás de leads em
// etapa ativa sem movimentação há mais de 14 dias e publica um evento
// lead.stale para cada um. A notificação em si é trabalho do
// consumidor da fila, não deste worker.
type StaleLeadsWorker struct {
	db           *sql.DB
	producer     *queue.RabbitMQProducer
	staleWindow  time.Duration
	tickInterval time.Duration
}

func NewStaleLeadsWorker(db *sql.DB, producer *queue.RabbitMQProducer) *StaleLeadsWorker {
	return &StaleLeadsWorker{
		db:           db,
		producer:     producer,
		staleWindow:  14 * 24 * time.Hour,
		tickInterval: 1 * time.Hour,
	}
}

func (w *StaleLeadsWorker) Start(ctx context.Context) {
	log.Println("🕒 Stale Leads Worker iniciado (janela de 14 dias)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Stale Leads Worker encerrado")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *StaleLeadsWorker) sweep(ctx context.Context) {
	// stale_notified_at evita cobrar o mesmo lead toda hora:
	// só renotifica depois de mais uma janela inteira parada.
	query := `
		UPDATE leads
		SET stale_notified_at = NOW()
		WHERE
			status IN ('Lead', 'Contatado', 'Reunião Agendada', 'Proposta Enviada')
			AND updated_at < NOW() - INTERVAL '14 days'
			AND (stale_notified_at IS NULL OR stale_notified_at < NOW() - INTERVAL '14 days')
		RETURNING id, user_id, name, status
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Erro ao buscar leads parados: %v", err)
		return
	}
	defer rows.Close()

	staleCount := 0
	for rows.Next() {
		var leadID, userID, name, status string
		if err := rows.Scan(&leadID, &userID, &name, &status); err != nil {
			log.Printf("❌ Erro no scan de lead parado: %v", err)
			continue
		}

		payload := queue.LeadEventPayload{
			Event:      queue.EventLeadStale,
			LeadID:     leadID,
			LeadName:   name,
			UserID:     userID,
			OldStatus:  status,
			NewStatus:  status,
			OccurredAt: time.Now(),
		}
		if err := w.producer.PublishLeadEvent(ctx, payload); err != nil {
			log.Printf("❌ Erro ao publicar lead.stale para %s: %v", leadID, err)
			continue
		}
		staleCount++
	}

	if staleCount > 0 {
		log.Printf("⏰ %d lead(s) parados notificados", staleCount)
	}
}
