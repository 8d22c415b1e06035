package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender define o contrato de quem avisa o usuário sobre
// eventos do funil (email hoje; WhatsApp amanhã sem mexer aqui).
type NotificationSender interface {
	SendLeadWon(userID, leadName string) error
	SendLeadStale(userID, leadName string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier NotificationSender
}

func NewWorker(ch *amqp.Channel, notifier NotificationSender) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Evento %s para lead %s", payload.Event, payload.LeadID)

			if err := w.processEvent(payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao processar evento: %s", err)
				d.Nack(false, false) // vai para a DLQ
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(payload LeadEventPayload) error {
	switch payload.Event {
	case EventLeadStatusChanged:
		// Só Fechado gera notificação; o resto do funil é silencioso.
		if payload.NewStatus == "Fechado" && w.Notifier != nil {
			return w.Notifier.SendLeadWon(payload.UserID, payload.LeadName)
		}
		return nil

	case EventLeadStale:
		if w.Notifier != nil {
			return w.Notifier.SendLeadStale(payload.UserID, payload.LeadName)
		}
		return nil

	case EventLeadCreated:
		return nil

	default:
		log.Printf("⚠️ Evento desconhecido: %s. Apenas logando.", payload.Event)
		// Ack mesmo assim: não sabemos tratar, não adianta reentregar.
		return nil
	}
}
