package mq

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"FindrHealth/config"
)

// Exchange and queue topology for submission events.
const (
	EventsExchange         = "findr.events"
	ProviderSubmittedKey   = "provider.submitted"
	ProviderSubmittedQueue = "provider.submitted"
)

var (
	conn    *amqp.Connection
	mqOnce  sync.Once
	initErr error
)

func Init() error {
	mqOnce.Do(func() {
		conn, initErr = amqp.Dial(config.Cfg.GetRabbitMQURL())
		if initErr != nil {
			return
		}

		initErr = declareTopology()
	})

	return initErr
}

// declareTopology sets up the exchange and queues so producers and consumers
// can start in any order.
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		ProviderSubmittedQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	return ch.QueueBind(ProviderSubmittedQueue, ProviderSubmittedKey, EventsExchange, false, nil)
}

func Connection() *amqp.Connection {
	return conn
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
