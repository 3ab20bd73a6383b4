package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"apelcal/config"
	"apelcal/infras/otel"
	"apelcal/shared/constant"
)

type Message struct {
	Key   string
	Value any
}

// Producer publishes domain events for external consumers. Event delivery
// to guests (mail, external calendars) happens outside this service.
type Producer interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

type producerImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

func (p *producerImpl) Publish(ctx context.Context, msg Message) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := json.Marshal(msg.Value)
	if err != nil {
		return fmt.Errorf("failed to marshal kafka message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(msg.Key),
		Value: payload,
	})
	if err != nil {
		log.Error().Err(err).Str("key", msg.Key).Msg("failed to publish kafka message")

		return fmt.Errorf("failed to publish kafka message: %w", err)
	}

	return nil
}

func (p *producerImpl) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}

// noopProducer drops events when the broker integration is disabled.
type noopProducer struct{}

func (noopProducer) Publish(_ context.Context, _ Message) error { return nil }
func (noopProducer) Close() error                               { return nil }

func New(config *config.Config, otl otel.Otel) Producer {
	if !config.External.Kafka.Enable {
		log.Info().Msg("Kafka producer disabled, events will be dropped")

		return noopProducer{}
	}

	transport := &kafkaGo.Transport{}
	if config.External.Kafka.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.External.Kafka.Username,
			Password: config.External.Kafka.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:         kafkaGo.TCP(config.External.Kafka.Brokers...),
		Topic:        config.External.Kafka.Topic,
		Balancer:     &kafkaGo.Hash{},
		RequiredAcks: kafkaGo.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", config.External.Kafka.Brokers).
		Str("topic", config.External.Kafka.Topic).
		Msg("Kafka producer initialized")

	return &producerImpl{
		writer: writer,
		otel:   otl,
	}
}
