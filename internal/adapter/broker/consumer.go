package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// ErrDeliveriesClosed is returned by Consume when the broker closes the
// delivery channel before ctx is cancelled.
var ErrDeliveriesClosed = errors.New("broker: delivery channel closed")

// localInvalidator drops views from this instance's cache.
type localInvalidator interface {
	Invalidate(ctx context.Context, keys ...domain.ViewKey) error
}

// Consume binds an exclusive, auto-deleted queue to the exchange and applies
// every foreign invalidation to local until ctx is cancelled. A closed delivery
// channel ends consumption with ErrDeliveriesClosed.
func (b *Broker) Consume(ctx context.Context, local localInvalidator) error {
	q, err := b.ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := b.ch.QueueBind(q.Name, RoutingKey, b.exchange, false, nil); err != nil {
		return fmt.Errorf("bind %s: %w", RoutingKey, err)
	}

	deliveries, err := b.ch.ConsumeWithContext(ctx, q.Name, "", false, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	b.log.InfoContext(ctx, "consuming view invalidations", slog.String("queue", q.Name))

	return b.drain(ctx, deliveries, local)
}

func (b *Broker) drain(ctx context.Context, deliveries <-chan amqp.Delivery, local localInvalidator) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				b.log.ErrorContext(ctx, "invalidation deliveries stopped")
				return ErrDeliveriesClosed
			}
			b.handle(ctx, d, local)
		}
	}
}

func (b *Broker) handle(ctx context.Context, d amqp.Delivery, local localInvalidator) {
	var msg Message
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		b.log.WarnContext(ctx, "dropping malformed invalidation", slog.String("error", err.Error()))
		_ = d.Reject(false)
		return
	}

	if msg.Origin != b.origin {
		if err := local.Invalidate(ctx, msg.Keys()...); err != nil {
			b.log.WarnContext(ctx, "apply invalidation failed", slog.String("error", err.Error()))
		}
	}
	_ = d.Ack(false)
}
