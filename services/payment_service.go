package services

import (
	"context"
	"log/slog"
	"time"
)

// PaymentProcessor is the mocked payment step in tournament registration.
// The only real implementation waits a fixed delay and succeeds; it exists
// so the registration flow keeps its asynchronous shape.
type PaymentProcessor interface {
	Process(ctx context.Context, amount int) error
}

type mockPaymentProcessor struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewMockPaymentProcessor(delay time.Duration, logger *slog.Logger) PaymentProcessor {
	return &mockPaymentProcessor{delay: delay, logger: logger}
}

func (p *mockPaymentProcessor) Process(ctx context.Context, amount int) error {
	p.logger.Info("processing registration payment", slog.Int("amount", amount), slog.Duration("delay", p.delay))

	select {
	case <-time.After(p.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
