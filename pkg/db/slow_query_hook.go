package db

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"scopeworks/pkg/metrics"
)

type ctxKey int

const (
	queryStartKey ctxKey = iota
	querySQLKey
)

// SlowQueryTracer logs queries that exceed the threshold.
type SlowQueryTracer struct {
	logger        *zap.Logger
	slowThreshold time.Duration
}

func NewSlowQueryTracer(logger *zap.Logger, slowThreshold time.Duration) *SlowQueryTracer {
	if slowThreshold == 0 {
		slowThreshold = 100 * time.Millisecond
	}
	return &SlowQueryTracer{
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

func (t *SlowQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx = context.WithValue(ctx, queryStartKey, time.Now())
	ctx = context.WithValue(ctx, querySQLKey, data.SQL)
	return ctx
}

func (t *SlowQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	startTime, ok := ctx.Value(queryStartKey).(time.Time)
	if !ok {
		return
	}

	duration := time.Since(startTime)

	// TraceQueryEndData carries no SQL in pgx v5, so it rides the context.
	sql, _ := ctx.Value(querySQLKey).(string)
	if sql == "" {
		sql = "unknown"
	}

	operation, table := classifySQL(sql)
	metrics.RecordDBQueryDuration(operation, table, duration)

	if duration <= t.slowThreshold {
		return
	}
	if len(sql) > 200 {
		sql = sql[:200] + "..."
	}

	t.logger.Warn("slow-query",
		zap.String("sql", sql),
		zap.Duration("took", duration),
		zap.String("command_tag", data.CommandTag.String()),
	)
}

// classifySQL extracts the statement verb and target table for metric labels.
func classifySQL(sql string) (operation, table string) {
	fields := strings.Fields(strings.ToLower(sql))
	if len(fields) == 0 {
		return "unknown", "unknown"
	}

	operation = fields[0]
	table = "unknown"

	marker := ""
	switch operation {
	case "select", "delete":
		marker = "from"
	case "insert":
		marker = "into"
	case "update":
		if len(fields) > 1 {
			table = strings.Trim(fields[1], `"`)
		}
		return operation, table
	default:
		return operation, table
	}

	for i, f := range fields {
		if f == marker && i+1 < len(fields) {
			table = strings.Trim(fields[i+1], `"`)
			break
		}
	}
	return operation, table
}
