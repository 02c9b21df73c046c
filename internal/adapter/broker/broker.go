// Package broker broadcasts view invalidations between server instances over
// an AMQP topic exchange.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// RoutingKey is the routing key of invalidation messages.
const RoutingKey = "views.invalidated"

// Message is the wire form of one invalidation.
type Message struct {
	Origin string   `json:"origin"`
	Views  []string `json:"views"`
}

// Keys returns the message's views as view keys.
func (m Message) Keys() []domain.ViewKey {
	keys := make([]domain.ViewKey, 0, len(m.Views))
	for _, v := range m.Views {
		keys = append(keys, domain.ViewKey(v))
	}
	return keys
}

// Broker owns one AMQP connection used for both publishing and consuming.
type Broker struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	origin   string
	log      *slog.Logger
}

// Dial connects and declares the durable topic exchange.
func Dial(url, exchange string, log *slog.Logger) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	origin := uuid.NewString()
	return &Broker{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		origin:   origin,
		log:      log.With("component", "broker", "origin", origin),
	}, nil
}

// Origin identifies this instance in published messages.
func (b *Broker) Origin() string { return b.origin }

// PublishInvalidation tells every other instance to drop the given views.
func (b *Broker) PublishInvalidation(ctx context.Context, keys []domain.ViewKey) error {
	msg := Message{Origin: b.origin, Views: make([]string, 0, len(keys))}
	for _, k := range keys {
		msg.Views = append(msg.Views, k.String())
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal invalidation: %w", err)
	}

	err = b.ch.PublishWithContext(ctx, b.exchange, RoutingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}
	return nil
}

// ErrClosed is returned by Ping once the connection has gone away.
var ErrClosed = errors.New("broker connection closed")

// Ping reports whether the AMQP connection and channel are still open.
func (b *Broker) Ping(_ context.Context) error {
	if b.conn == nil || b.conn.IsClosed() || b.ch == nil || b.ch.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Close closes the channel and connection.
func (b *Broker) Close() error {
	if b.ch != nil {
		_ = b.ch.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
