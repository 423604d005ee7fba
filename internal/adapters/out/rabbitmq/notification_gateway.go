// Package rabbitmq provides an AMQP-backed implementation of the notification
// gateway port. SMS delivery itself is handled by a downstream worker; this
// package only publishes notification messages to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// routing key consumed by the SMS delivery worker
const smsRoutingKey = "notifications.sms"

// SMSMessage is the wire format of an outgoing SMS notification.
type SMSMessage struct {
	Sender      string `json:"sender"`
	Text        string `json:"text"`
	PhoneNumber string `json:"phoneNumber"`
}

// NotificationPublisher publishes SMS notifications to a RabbitMQ topic exchange.
// Implements ports.NotificationGateway.
type NotificationPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewNotificationPublisher connects to RabbitMQ and declares the durable
// topic exchange used for outgoing notifications.
func NewNotificationPublisher(amqpURL, exchange string) (*NotificationPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &NotificationPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Send publishes an SMS notification message to the exchange.
func (p *NotificationPublisher) Send(_ context.Context, senderName, text, phoneNumber string) error {
	body, err := json.Marshal(SMSMessage{
		Sender:      senderName,
		Text:        text,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.channel.Publish(
		p.exchange,
		smsRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Close releases the AMQP channel and connection.
func (p *NotificationPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
