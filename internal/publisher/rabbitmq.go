package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"notesync/internal/domain"
)

// RabbitMQ publishes notices to a topic exchange. Each notice is routed as
// "<routing key>.<kind>", and the queue is bound to every kind.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "rabbitmq"),
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if cfg.QueueName == "" {
		return nil
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey+".#", cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// RoutingKey returns the key a notice of the given kind is published with.
func (r *RabbitMQ) RoutingKey(kind domain.NoticeKind) string {
	return r.routingKey + "." + string(kind)
}

// NoticeMessage is the wire form of a notice on the exchange.
type NoticeMessage struct {
	Kind      domain.NoticeKind `json:"kind"`
	Message   string            `json:"message"`
	Path      string            `json:"path,omitempty"`
	Stats     *StatsMessage     `json:"stats,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

type StatsMessage struct {
	Outcome    domain.SyncOutcome `json:"outcome"`
	Reason     string             `json:"reason,omitempty"`
	Pages      int                `json:"pages"`
	Succeeded  int                `json:"succeeded"`
	Failed     int                `json:"failed"`
	DurationMS int64              `json:"duration_ms"`
}

func newNoticeMessage(n domain.Notice) NoticeMessage {
	msg := NoticeMessage{
		Kind:      n.Kind,
		Message:   n.Message,
		Path:      n.Path,
		Timestamp: n.Timestamp,
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	if n.Stats != nil {
		msg.Stats = &StatsMessage{
			Outcome:    n.Stats.Outcome,
			Reason:     n.Stats.Reason,
			Pages:      n.Stats.Pages,
			Succeeded:  n.Stats.Succeeded,
			Failed:     n.Stats.Failed,
			DurationMS: n.Stats.Duration.Milliseconds(),
		}
	}
	return msg
}

// Notify publishes a notice as a persistent JSON message. The notice kind is
// carried in the message type.
func (r *RabbitMQ) Notify(ctx context.Context, notice domain.Notice) error {
	msg := newNoticeMessage(notice)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.RoutingKey(msg.Kind),
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         string(msg.Kind),
			Body:         body,
			Timestamp:    msg.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notice: %w", err)
	}

	r.logger.Debug("published notice", "kind", msg.Kind)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
