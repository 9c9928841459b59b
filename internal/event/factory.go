package event

import (
	"context"
	"fmt"

	"go-blog/pkg/config"
	"go-blog/pkg/logger"

	"go.uber.org/zap"
)

// CreatePublisher builds the publisher selected by messaging.provider.
// A channel bus is started and logs every event it delivers.
func CreatePublisher(cfg config.MessagingConfig) (Publisher, error) {
	logger.L.Info("Creating event publisher", zap.String("provider", cfg.Provider))

	switch cfg.Provider {
	case "", "log":
		return NewLogPublisher(), nil

	case "channel":
		bus := NewBus(cfg.BufferSize)
		logPub := NewLogPublisher()
		bus.Subscribe(func(e Event) { _ = logPub.Publish(context.Background(), e) })
		bus.Start()
		return bus, nil

	case "kafka":
		return NewKafkaPublisher(cfg.Kafka)

	default:
		return nil, fmt.Errorf("unsupported messaging provider %q", cfg.Provider)
	}
}
