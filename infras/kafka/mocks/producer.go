package mocks

import (
	"context"

	"apelcal/infras/kafka"
)

type producerImpl struct {
}

// Publish implements kafka.Producer.
func (p *producerImpl) Publish(_ context.Context, _ kafka.Message) error {
	return nil
}

// Close implements kafka.Producer.
func (p *producerImpl) Close() error {
	return nil
}

func NewProducer() kafka.Producer {
	return &producerImpl{}
}
