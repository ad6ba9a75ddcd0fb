package mq

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	mqMessagesTotal   metric.Int64Counter
	mqMessageDuration metric.Float64Histogram
	mqInstrumentsOnce sync.Once
)

func initMQInstruments() {
	mqInstrumentsOnce.Do(func() {
		meter := otel.Meter("findrhealth-mq")

		var err error
		mqMessagesTotal, err = meter.Int64Counter(
			"mq.messages.total",
			metric.WithDescription("Total number of RabbitMQ messages"),
			metric.WithUnit("{message}"),
		)
		if err != nil {
			mqMessagesTotal = nil
		}

		mqMessageDuration, err = meter.Float64Histogram(
			"mq.message.duration",
			metric.WithDescription("Message handling duration"),
			metric.WithUnit("s"),
		)
		if err != nil {
			mqMessageDuration = nil
		}
	})
}

func recordPublish(exchange, routingKey string, err error) {
	initMQInstruments()
	if mqMessagesTotal == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}

	mqMessagesTotal.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("mq.direction", "publish"),
		attribute.String("mq.exchange", exchange),
		attribute.String("mq.routing_key", routingKey),
		attribute.String("mq.status", status),
	))
}

func recordConsume(queue string, duration time.Duration, err error) {
	initMQInstruments()

	status := "success"
	if err != nil {
		status = "error"
	}

	labels := metric.WithAttributes(
		attribute.String("mq.direction", "consume"),
		attribute.String("mq.queue", queue),
		attribute.String("mq.status", status),
	)

	if mqMessagesTotal != nil {
		mqMessagesTotal.Add(context.Background(), 1, labels)
	}
	if mqMessageDuration != nil {
		mqMessageDuration.Record(context.Background(), duration.Seconds(), labels)
	}
}
