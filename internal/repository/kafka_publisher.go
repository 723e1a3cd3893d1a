package repository

import (
	"context"
	"fmt"

	"lottopick/internal/domain/models"
	domrepo "lottopick/internal/domain/repository"
	pkgkafka "lottopick/pkg/kafka"
)

// KafkaPublisher emits one audit event per generated combination, keyed by
// policy code so per-policy ordering is preserved under the hash balancer.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a prediction event publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) domrepo.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) PublishPrediction(ctx context.Context, e *models.PredictionEvent) error {
	if e == nil {
		return fmt.Errorf("nil prediction event")
	}
	return p.producer.Publish(ctx, p.topic, []byte(e.Policy), e)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
