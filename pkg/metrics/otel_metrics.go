package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter   = otel.Meter("findrhealth")
	metrics *OTelMetrics
)

// OTelMetrics holds the business counters for the onboarding flow.
type OTelMetrics struct {
	VerificationSent      metric.Int64Counter
	VerificationSucceeded metric.Int64Counter
	StepCompleted         metric.Int64Counter
	ProviderSubmitted     metric.Int64Counter
}

// InitMetrics registers the counters. Call after the meter provider is set.
func InitMetrics() error {
	m := &OTelMetrics{}
	var err error

	m.VerificationSent, err = meter.Int64Counter(
		"verification_sent_total",
		metric.WithDescription("Count of verification codes emailed"),
	)
	if err != nil {
		return fmt.Errorf("failed to create verification_sent_total counter: %w", err)
	}

	m.VerificationSucceeded, err = meter.Int64Counter(
		"verification_succeeded_total",
		metric.WithDescription("Count of successful code verifications"),
	)
	if err != nil {
		return fmt.Errorf("failed to create verification_succeeded_total counter: %w", err)
	}

	m.StepCompleted, err = meter.Int64Counter(
		"wizard_step_completed_total",
		metric.WithDescription("Count of completed wizard steps, by step"),
	)
	if err != nil {
		return fmt.Errorf("failed to create wizard_step_completed_total counter: %w", err)
	}

	m.ProviderSubmitted, err = meter.Int64Counter(
		"provider_submitted_total",
		metric.WithDescription("Count of provider applications submitted for review"),
	)
	if err != nil {
		return fmt.Errorf("failed to create provider_submitted_total counter: %w", err)
	}

	metrics = m
	return nil
}

// GetMetrics returns the registered counters, or nil before InitMetrics.
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordVerificationSent counts one verification email.
func RecordVerificationSent(ctx context.Context) {
	if metrics == nil {
		return
	}
	metrics.VerificationSent.Add(ctx, 1)
}

// RecordVerificationSucceeded counts one successful verification.
func RecordVerificationSucceeded(ctx context.Context) {
	if metrics == nil {
		return
	}
	metrics.VerificationSucceeded.Add(ctx, 1)
}

// RecordStepCompleted counts a completed wizard step.
func RecordStepCompleted(ctx context.Context, step string) {
	if metrics == nil {
		return
	}
	metrics.StepCompleted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("step", step),
	))
}

// RecordProviderSubmitted counts one submitted application.
func RecordProviderSubmitted(ctx context.Context) {
	if metrics == nil {
		return
	}
	metrics.ProviderSubmitted.Add(ctx, 1)
}
