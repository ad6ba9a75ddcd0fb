package database

import (
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var (
	dbQueriesTotal  metric.Int64Counter
	dbQueryDuration metric.Float64Histogram
)

// otelPlugin spans and counts every gorm operation against the providers
// table.
type otelPlugin struct {
	tracer      trace.Tracer
	serviceName string
	// SQL text is truncated past this length.
	maxSQLLength int
}

func newOTELPlugin(serviceName string) (*otelPlugin, error) {
	meter := otel.Meter(serviceName + "-db")

	var err error
	dbQueriesTotal, err = meter.Int64Counter(
		"db.queries.total",
		metric.WithDescription("Total number of database queries"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	dbQueryDuration, err = meter.Float64Histogram(
		"db.query.duration",
		metric.WithDescription("Database query duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &otelPlugin{
		tracer:       otel.Tracer(serviceName + ".gorm"),
		serviceName:  serviceName,
		maxSQLLength: 500,
	}, nil
}

func (p *otelPlugin) Name() string {
	return "otel_plugin"
}

func (p *otelPlugin) Initialize(db *gorm.DB) error {
	callbacks := db.Callback()

	callbacks.Query().Before("gorm:query").Register("otel:before_query", p.before)
	callbacks.Query().After("gorm:query").Register("otel:after_query", p.after)

	callbacks.Create().Before("gorm:create").Register("otel:before_create", p.before)
	callbacks.Create().After("gorm:create").Register("otel:after_create", p.after)

	callbacks.Update().Before("gorm:update").Register("otel:before_update", p.before)
	callbacks.Update().After("gorm:update").Register("otel:after_update", p.after)

	callbacks.Delete().Before("gorm:delete").Register("otel:before_delete", p.before)
	callbacks.Delete().After("gorm:delete").Register("otel:after_delete", p.after)

	callbacks.Row().Before("gorm:row").Register("otel:before_row", p.before)
	callbacks.Row().After("gorm:row").Register("otel:after_row", p.after)

	callbacks.Raw().Before("gorm:raw").Register("otel:before_raw", p.before)
	callbacks.Raw().After("gorm:raw").Register("otel:after_raw", p.after)

	return nil
}

func (p *otelPlugin) before(db *gorm.DB) {
	ctx := db.Statement.Context

	attrs := []attribute.KeyValue{
		semconv.DBSystemPostgreSQL,
		attribute.String("service.name", p.serviceName),
	}
	if table := db.Statement.Table; table != "" {
		attrs = append(attrs, attribute.String("db.table", table))
	}

	ctx, span := p.tracer.Start(ctx, p.operationName(db),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	db.InstanceSet("otel:start_time", time.Now())
	db.InstanceSet("otel:span", span)
	db.Statement.Context = ctx
}

func (p *otelPlugin) after(db *gorm.DB) {
	spanI, exists := db.InstanceGet("otel:span")
	if !exists {
		return
	}
	span, ok := spanI.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	startTimeI, exists := db.InstanceGet("otel:start_time")
	if !exists {
		return
	}
	startTime, ok := startTimeI.(time.Time)
	if !ok {
		return
	}
	duration := time.Since(startTime).Seconds()

	// Statement text only, never bind parameters; drafts carry PII.
	sql := db.Statement.SQL.String()
	if len(sql) > p.maxSQLLength {
		sql = sql[:p.maxSQLLength] + "..."
	}
	span.SetAttributes(semconv.DBStatement(sql))

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}

	switch {
	case db.Error == nil:
		span.SetStatus(codes.Ok, "Success")
	case db.Error == gorm.ErrRecordNotFound:
		span.SetStatus(codes.Ok, "Record not found")
	default:
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	status := "success"
	if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
		status = "error"
	}
	labels := []attribute.KeyValue{
		attribute.String("db.operation", p.operationName(db)),
		attribute.String("db.status", status),
	}
	dbQueriesTotal.Add(db.Statement.Context, 1, metric.WithAttributes(labels...))
	dbQueryDuration.Record(db.Statement.Context, duration, metric.WithAttributes(labels...))
}

func (p *otelPlugin) operationName(db *gorm.DB) string {
	sql := strings.ToUpper(strings.TrimSpace(db.Statement.SQL.String()))
	switch {
	case sql == "":
		return "db.unknown"
	case strings.HasPrefix(sql, "SELECT"):
		return "db.select"
	case strings.HasPrefix(sql, "INSERT"):
		return "db.insert"
	case strings.HasPrefix(sql, "UPDATE"):
		return "db.update"
	case strings.HasPrefix(sql, "DELETE"):
		return "db.delete"
	default:
		return "db.query"
	}
}
