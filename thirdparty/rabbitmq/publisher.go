package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	qualityExchange   = "variant_quality_exchange"
	qualityQueue      = "variant_quality_queue"
	ambiguityRouteKey = "variant_ambiguity"
)

// QualityPublisher publishes catalog data-quality findings for cleanup.
type QualityPublisher interface {
	PublishVariantAmbiguity(msg VariantAmbiguityMessage) error
}

// publishChannel is the part of *amqp091.Channel the publisher uses.
type publishChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel publishChannel
}

// VariantAmbiguityMessage reports several variants sharing one (color, size) pair.
type VariantAmbiguityMessage struct {
	ProductID  uint64    `json:"product_id"`
	ColorID    uint64    `json:"color_id"`
	SizeID     uint64    `json:"size_id"`
	VariantIDs []uint64  `json:"variant_ids"`
	DetectedAt time.Time `json:"detected_at"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		qualityExchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		qualityQueue, // name
		true,         // durable
		false,        // auto-delete
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	err = channel.QueueBind(
		qualityQueue,      // queue name
		ambiguityRouteKey, // routing key
		qualityExchange,   // exchange
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishVariantAmbiguity(msg VariantAmbiguityMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		qualityExchange,   // exchange
		ambiguityRouteKey, // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.DetectedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
