package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"foodcart/config"
	"foodcart/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func debugConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	return cfg
}

func TestConstraintHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "nil", err: nil},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{
			name:       "driver foreign key",
			err:        errors.New(`ERROR: insert or update on table "orders" violates foreign key constraint (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "driver not null",
			err:     errors.New(`ERROR: null value in column "lon" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{name: "unrelated", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failure is logged with sql", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "SELECT 1")
		assert.Contains(t, buf.String(), "component=gorm")
	})

	t.Run("slow query is logged at warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only logged in debug", func(t *testing.T) {
		var quiet, verbose bytes.Buffer
		newGormSlogLogger(newBufferLogger(&quiet), &config.Config{}).
			Trace(context.Background(), time.Now(), sqlFn, nil)
		newGormSlogLogger(newBufferLogger(&verbose), debugConfig()).
			Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Empty(t, quiet.String())
		assert.Contains(t, verbose.String(), "GORM query")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), nil).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestReportPoolWaits(t *testing.T) {
	t.Run("no new waits", func(t *testing.T) {
		var buf bytes.Buffer
		reportPoolWaits(context.Background(), newBufferLogger(&buf), sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})

		assert.Empty(t, buf.String())
	})

	t.Run("long waits warn", func(t *testing.T) {
		var buf bytes.Buffer
		reportPoolWaits(context.Background(), newBufferLogger(&buf),
			sql.DBStats{},
			sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond},
		)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "avgWait=100ms")
	})

	t.Run("short waits are debug", func(t *testing.T) {
		var buf bytes.Buffer
		reportPoolWaits(context.Background(), newBufferLogger(&buf),
			sql.DBStats{},
			sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
		)

		assert.Contains(t, buf.String(), "level=DEBUG")
	})
}
