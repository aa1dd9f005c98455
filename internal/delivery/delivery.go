// Package delivery forwards accepted form submissions to an external channel
// (ops webhook, spreadsheet bridge, ...). The store write is authoritative:
// delivery failures are logged and swallowed so a broken channel never turns a
// recorded submission into a user-facing error.
package delivery

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/technova-labs/portal-go/pkg/metrics"
)

// Submission is the channel-neutral shape of a form submission.
type Submission struct {
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Service     string    `json:"service"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Notifier delivers one submission to one channel.
type Notifier interface {
	Notify(ctx context.Context, sub Submission) error
}

// Noop is the default strategy when no channel is configured.
type Noop struct{}

func (Noop) Notify(ctx context.Context, sub Submission) error { return nil }

// Chain tries each notifier in order and stops at the first success. When all
// fail it logs the last error and reports success anyway; that soft-fail
// behavior is the policy, not an accident.
type Chain struct {
	notifiers []Notifier
	log       *zap.Logger
}

func NewChain(log *zap.Logger, notifiers ...Notifier) *Chain {
	return &Chain{notifiers: notifiers, log: log}
}

func (c *Chain) Notify(ctx context.Context, sub Submission) error {
	var lastErr error
	for i, n := range c.notifiers {
		err := n.Notify(ctx, sub)
		metrics.RecordDeliveryAttempt(sub.Kind, err == nil)
		if err == nil {
			if i > 0 {
				c.log.Warn("submission delivered via fallback channel",
					zap.String("kind", sub.Kind), zap.Int("channel", i))
			}
			return nil
		}
		lastErr = err
		c.log.Warn("submission delivery failed, trying next channel",
			zap.String("kind", sub.Kind), zap.Int("channel", i), zap.Error(err))
	}
	if lastErr != nil {
		c.log.Error("all delivery channels failed, submission kept in store only",
			zap.String("kind", sub.Kind), zap.Error(lastErr))
	}
	return nil
}
