package database

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"addressbook/config"
	"addressbook/internal/errors"
	logs "addressbook/internal/infra/log"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed query is logged as error", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("boom"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "error=boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query is logged as warning", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT * FROM addresses", 3), nil)

		assert.Contains(t, buf.String(), "GORM slow query")
		assert.Contains(t, buf.String(), "rows=3")
	})

	t.Run("fast query only logged in debug", func(t *testing.T) {
		quiet, quietBuf := newTestGormLogger(false)
		quiet.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newTestGormLogger(true)
		verbose.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)
		assert.Contains(t, verboseBuf.String(), "GORM query")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newTestGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newTestGormLogger(false)

	var scopedBuf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&scopedBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := logs.WithLogger(context.Background(), scoped)

	l.Warn(ctx, "pool exhausted: %d", 10)

	assert.Contains(t, scopedBuf.String(), "request_id=req-1")
	assert.Contains(t, scopedBuf.String(), "pool exhausted: 10")
}
