package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"houses/config"
	deliverycontext "houses/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func query(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_FailedQueryCarriesRequestID(t *testing.T) {
	base, buf := bufferLogger()
	l := newGormLogger(base, &config.Config{})
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	l.Trace(ctx, time.Now(), query(`INSERT INTO "houses"`, 0), sql.ErrConnDone)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Query failed"`)
	assert.Contains(t, out, `"statement":"INSERT"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
}

func TestGormLogger_RecordNotFoundIsQuiet(t *testing.T) {
	base, buf := bufferLogger()
	l := newGormLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), query(`SELECT * FROM "houses"`, 0), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLogger_SlowQuery(t *testing.T) {
	base, buf := bufferLogger()
	l := newGormLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), query(`select 1`, 1), nil)

	assert.Contains(t, buf.String(), `"msg":"Slow query"`)
	assert.Contains(t, buf.String(), `"statement":"SELECT"`)
}

func TestGormLogger_InfoOnlyInDebug(t *testing.T) {
	base, buf := bufferLogger()
	l := newGormLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), query(`SELECT 1`, 1), nil)
	assert.Empty(t, buf.String())

	l.LogMode(logger.Info).Trace(context.Background(), time.Now(), query(`SELECT 1`, 1), nil)
	assert.Contains(t, buf.String(), `"msg":"Query"`)
}

func TestGormLogger_Silent(t *testing.T) {
	base, buf := bufferLogger()
	l := newGormLogger(base, &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), query(`SELECT 1`, 1), sql.ErrConnDone)
	l.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}

func TestPoolWatcher_LogsOnlyNewWaits(t *testing.T) {
	base, buf := bufferLogger()
	samples := []sql.DBStats{
		{WaitCount: 2, WaitDuration: time.Millisecond},
		{WaitCount: 2, WaitDuration: time.Millisecond},
		{WaitCount: 4, WaitDuration: 101 * time.Millisecond},
	}
	next := 0
	stats := func() sql.DBStats {
		s := samples[next]
		if next < len(samples)-1 {
			next++
		}

		return s
	}

	w := newPoolWatcher(stats, base)

	w.check(context.Background())
	assert.Empty(t, buf.String())

	w.check(context.Background())
	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"waits":2`)
	assert.Contains(t, out, `"avg_wait":50000000`)
}
