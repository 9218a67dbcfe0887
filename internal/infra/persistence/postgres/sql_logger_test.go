package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"crossing/config"
	deliverycontext "crossing/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCapturedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func selectStatement() (string, int64) {
	return "SELECT * FROM pair_aggregates", 1
}

func TestSQLLogger_SlowThresholdFromConfig(t *testing.T) {
	base, buf := newCapturedLogger()
	cfg := &config.Config{SQLLog: &config.SQLLogConfig{SlowThreshold: 50 * time.Millisecond}}
	l := newSQLLogger(base, cfg)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), selectStatement, nil)
	assert.Empty(t, buf.String(), "fast statements stay quiet below Info")

	l.Trace(ctx, time.Now().Add(-time.Second), selectStatement, nil)
	assert.Contains(t, buf.String(), `"msg":"SQL slow query"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT * FROM pair_aggregates"`)
}

func TestSQLLogger_RecordNotFoundPolicy(t *testing.T) {
	base, buf := newCapturedLogger()
	ctx := context.Background()

	quiet := newSQLLogger(base, &config.Config{SQLLog: &config.SQLLogConfig{}})
	quiet.Trace(ctx, time.Now(), selectStatement, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	loud := newSQLLogger(base, &config.Config{SQLLog: &config.SQLLogConfig{LogRecordNotFound: true}})
	loud.Trace(ctx, time.Now(), selectStatement, gorm.ErrRecordNotFound)
	assert.Contains(t, buf.String(), `"msg":"SQL query failed"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestSQLLogger_UsesScopedLogger(t *testing.T) {
	base, buf := newCapturedLogger()
	l := newSQLLogger(base, &config.Config{SQLLog: &config.SQLLogConfig{}})

	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.Int64("epoch_id", 42)))
	l.Error(ctx, "insert failed: %s", "boom")

	assert.Contains(t, buf.String(), `"epoch_id":42`)
	assert.Contains(t, buf.String(), `"message":"insert failed: boom"`)
}

func TestSQLLogger_DebugLogsEveryStatement(t *testing.T) {
	base, buf := newCapturedLogger()
	cfg := &config.Config{SQLLog: &config.SQLLogConfig{}}
	cfg.Env.Debug = true
	l := newSQLLogger(base, cfg)

	l.Trace(context.Background(), time.Now(), selectStatement, nil)
	assert.Contains(t, buf.String(), `"msg":"SQL query"`)

	buf.Reset()
	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), selectStatement, nil)
	assert.Empty(t, buf.String())
}
