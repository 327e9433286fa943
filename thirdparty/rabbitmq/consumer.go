package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/muhammadheryan/variant-catalog/utils/logger"
)

const (
	stockExchange    = "variant_stock_exchange"
	stockQueue       = "variant_stock_queue"
	stockChangedKey  = "variant_stock_changed"
	refreshPathFmt   = "%s/internal/v1/product/%d/variants/refresh"
	consumerIdentity = "variant-stock-consumer"
)

// StockChangedMessage is emitted by the inventory system when a product's variant stock moves.
type StockChangedMessage struct {
	ProductID uint64    `json:"product_id"`
	ChangedAt time.Time `json:"changed_at"`
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
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

	err = channel.ExchangeDeclare(stockExchange, "direct", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(stockQueue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	err = channel.QueueBind(stockQueue, stockChangedKey, stockExchange, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Start consumes stock-change events until ctx is done. Each event asks the
// catalog API to refetch the product's variant batch.
func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		stockQueue,
		consumerIdentity, // consumer tag
		false,            // auto-ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event StockChangedMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil || event.ProductID == 0 {
		logger.Error("[Consumer] drop malformed stock event", zap.ByteString("body", msg.Body))
		_ = msg.Ack(false)
		return
	}

	if err := c.refreshVariants(ctx, event.ProductID); err != nil {
		logger.Error("[Consumer] refresh variants failed", zap.Uint64("product_id", event.ProductID), zap.String("error", err.Error()))
		// Negative ack to requeue
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] variants refreshed", zap.Uint64("product_id", event.ProductID))
}

func (c *Consumer) refreshVariants(ctx context.Context, productID uint64) error {
	url := fmt.Sprintf(refreshPathFmt, c.apiURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	// internal service key
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", consumerIdentity)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx will not get better on retry
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode >= 400 {
		logger.Warn("[Consumer] refresh rejected, dropping event", zap.Uint64("product_id", productID), zap.Int("status", resp.StatusCode))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
