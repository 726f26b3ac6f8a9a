package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/interfaces"
)

const bookingExchangeType = "fanout"

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Compile-time check to ensure RabbitMQBookingPublisher implements BookingEventPublisher
var _ interfaces.BookingEventPublisher = (*RabbitMQBookingPublisher)(nil)

// RabbitMQBookingPublisher publishes booking events to a durable fanout exchange.
type RabbitMQBookingPublisher struct {
	mu           sync.Mutex // amqp каналы не потокобезопасны
	ch           channel
	logger       *zap.Logger
	exchangeName string
}

// NewRabbitMQBookingPublisher opens a channel on conn and declares the exchange.
func NewRabbitMQBookingPublisher(conn *amqp091.Connection, exchangeName string, logger *zap.Logger) (*RabbitMQBookingPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("Failed to open a channel for booking events", zap.Error(err))
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchangeName,
		bookingExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = ch.Close()
		logger.Error("Failed to declare booking events exchange", zap.String("exchange", exchangeName), zap.Error(err))
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}

	logger.Info("Booking events exchange declared", zap.String("exchange", exchangeName), zap.String("type", bookingExchangeType))
	return newPublisher(ch, exchangeName, logger), nil
}

func newPublisher(ch channel, exchangeName string, logger *zap.Logger) *RabbitMQBookingPublisher {
	return &RabbitMQBookingPublisher{
		ch:           ch,
		logger:       logger.Named("BookingEventPublisher"),
		exchangeName: exchangeName,
	}
}

// PublishBookingEvent marshals event to JSON and publishes it. The event type
// is used as the AMQP message type.
func (p *RabbitMQBookingPublisher) PublishBookingEvent(ctx context.Context, event interfaces.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		p.exchangeName,
		"",    // routing key (не используется для fanout)
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Type:         string(event.Type),
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish booking event", zap.Error(err), zap.String("type", string(event.Type)), zap.String("bookingID", event.BookingID.String()))
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	p.logger.Debug("Booking event published", zap.String("type", string(event.Type)), zap.String("bookingID", event.BookingID.String()))
	return nil
}

// Close closes the underlying channel.
func (p *RabbitMQBookingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		return p.ch.Close()
	}
	return nil
}

// Connect dials RabbitMQ, retrying maxRetries times with retryDelay between attempts.
func Connect(ctx context.Context, amqpURL string, maxRetries int, retryDelay time.Duration, logger *zap.Logger) (*amqp091.Connection, error) {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	logger.Info("Attempting to connect to RabbitMQ",
		zap.String("url", MaskURL(amqpURL)),
		zap.Int("max_retries", maxRetries),
		zap.Duration("retry_delay", retryDelay),
	)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		var conn *amqp091.Connection
		conn, err = amqp091.Dial(amqpURL)
		if err == nil {
			logger.Info("Successfully connected to RabbitMQ", zap.Int("attempt", attempt))
			go func() {
				closeErr := <-conn.NotifyClose(make(chan *amqp091.Error, 1))
				if closeErr != nil {
					logger.Error("RabbitMQ connection closed", zap.Error(closeErr))
				}
			}()
			return conn, nil
		}

		logger.Warn("Failed to connect to RabbitMQ, retrying...", zap.Int("attempt", attempt), zap.Error(err))
		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("rabbitmq connection aborted: %w", ctx.Err())
		case <-time.After(retryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", maxRetries, err)
}

// MaskURL hides the password of an AMQP url for logging.
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "invalid-url"
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
