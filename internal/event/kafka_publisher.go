package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go-blog/pkg/config"
	"go-blog/pkg/logger"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// KafkaPublisher sends each event as JSON to the topic "<prefix>_<type>",
// keyed by the acting user so one user's events stay ordered.
type KafkaPublisher struct {
	producer    sarama.SyncProducer
	topicPrefix string
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	kConfig := sarama.NewConfig()
	kConfig.Producer.RequiredAcks = sarama.WaitForAll
	kConfig.Producer.Return.Successes = true
	kConfig.Producer.Retry.Max = 3
	kConfig.Version = sarama.V2_8_0_0

	producer, err := sarama.NewSyncProducer(cfg.Brokers, kConfig)
	if err != nil {
		logger.L.Error("Failed to start Kafka producer", zap.Error(err))
		return nil, fmt.Errorf("failed to start Kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, cfg.TopicPrefix), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topicPrefix string) *KafkaPublisher {
	if topicPrefix == "" {
		topicPrefix = "blog"
	}
	return &KafkaPublisher{producer: producer, topicPrefix: topicPrefix}
}

func (p *KafkaPublisher) topic(t Type) string {
	return fmt.Sprintf("%s_%s", p.topicPrefix, t)
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic(e.Type),
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(e.ActorID), 10)),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		logger.L.Error("Failed to send event to Kafka", zap.String("topic", msg.Topic), zap.Error(err))
		return fmt.Errorf("failed to send event to Kafka: %w", err)
	}

	logger.L.Debug("Event sent to Kafka",
		zap.String("topic", msg.Topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		logger.L.Error("Failed to close Kafka producer", zap.Error(err))
		return err
	}
	return nil
}
