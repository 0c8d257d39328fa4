package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// EventSink receives decoded lead-sold events. The SSE broadcaster
// implements it.
type EventSink interface {
	Publish(payload LeadSoldPayload)
}

// Worker drains the lead-event queue and pushes each event into the sink
// that feeds connected catalog clients.
type Worker struct {
	Channel *amqp.Channel
	Sink    EventSink
	Log     zerolog.Logger
}

func NewWorker(ch *amqp.Channel, sink EventSink, log zerolog.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Sink:    sink,
		Log:     log.With().Str("component", "queue_worker").Logger(),
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatal().Err(err).Msg("failed to register queue consumer")
	}

	for d := range msgs {
		var payload LeadSoldPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Log.Error().Err(err).Msg("malformed lead event, sending to DLQ")
			// Reject without requeue so a poison message cannot wedge the queue.
			d.Nack(false, false)
			continue
		}

		w.Sink.Publish(payload)
		w.Log.Debug().Str("lead_id", payload.LeadID).Msg("lead sold event fanned out")
		d.Ack(false)
	}
}
