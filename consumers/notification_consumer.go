package consumers

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/SuryaShibin2198/Surya/config"
	"github.com/SuryaShibin2198/Surya/notifications"
)

// StartNotificationConsumer reads committed order events from the
// notification queue and hands them to the fan-out. Runs until the channel
// closes.
func StartNotificationConsumer(ch *amqp.Channel, cfg *config.Config, fanout *notifications.Fanout) {
	msgs, err := ch.Consume(
		cfg.NotificationQueue,
		"notification-fanout", // consumer tag
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("Failed to register notification consumer: %v", err)
	}

	go func() {
		for msg := range msgs {
			processNotificationMessage(msg, fanout)
		}
	}()
}

func processNotificationMessage(msg amqp.Delivery, fanout *notifications.Fanout) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Recovered from panic in notification processing: %v", r)
		}
	}()

	switch msg.Type {
	case notifications.EventOrderPlaced:
		var event notifications.OrderPlacedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			log.WithError(err).Error("Invalid order placed event payload")
			_ = msg.Nack(false, false)
			return
		}
		fanout.HandleOrderPlaced(event)

	case notifications.EventOrderCancelled:
		var event notifications.OrderCancelledEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			log.WithError(err).Error("Invalid order cancelled event payload")
			_ = msg.Nack(false, false)
			return
		}
		fanout.HandleOrderCancelled(event)

	default:
		log.WithField("type", msg.Type).Warn("Unknown event type on notification queue")
		_ = msg.Nack(false, false)
		return
	}

	if err := msg.Ack(false); err != nil {
		log.WithError(err).Error("Failed to ack notification message")
	}
}
