package kafka_fx

import (
	"os"

	"go.uber.org/fx"

	"dreamtrip/internal/events"
)

var Module = fx.Provide(provideKafkaNotifier, provideNotifier)

func provideKafkaNotifier() *events.KafkaNotifier {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		broker = "localhost:9092"
	}
	return events.NewKafkaNotifier(broker)
}

func provideNotifier(notifier *events.KafkaNotifier) events.Notifier {
	return notifier
}
