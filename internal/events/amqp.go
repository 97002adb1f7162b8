package events

import (
	"context"
	"encoding/json"
	"sync"

	"hotel/internal/pkg/errs"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// AMQPPublisher sends events to a durable topic exchange; the routing key is
// the event type.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *zap.Logger
}

func NewAMQPPublisher(url, exchange string, log *zap.Logger) (*AMQPPublisher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", exchange)
	}

	log.Info("amqp publisher ready", zap.String("exchange", exchange))
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

func (p *AMQPPublisher) Publish(_ context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		p.exchange,
		evt.Type,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    evt.OccurredAt,
			Type:         evt.Type,
			Body:         body,
		},
	)
	return errs.Wrapf(err, "publish %s", evt.Type)
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.log.Warn("close amqp channel", zap.Error(err))
	}
	return p.conn.Close()
}

// New returns an AMQP publisher when url is set and a log-only one otherwise.
func New(url, exchange string, log *zap.Logger) (Publisher, error) {
	if url == "" {
		return NewLogPublisher(log), nil
	}
	return NewAMQPPublisher(url, exchange, log)
}
