package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		out = append(out, record)
	}

	return out
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "tasks"`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		wantMsg string
		wantLvl string
	}{
		{name: "query error", err: errors.New("syntax error"), wantMsg: "GORM query failed", wantLvl: "ERROR"},
		{name: "slow query", elapsed: time.Second, wantMsg: "GORM slow query", wantLvl: "WARN"},
		{name: "cancelled query", err: context.Canceled, wantMsg: "GORM query cancelled", wantLvl: "DEBUG"},
		{name: "fast query in debug", debug: true, wantMsg: "GORM query", wantLvl: "INFO"},
		{name: "fast query", wantMsg: ""},
		{name: "record not found", err: gorm.ErrRecordNotFound, wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			got := records(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, got)

				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantMsg, got[0]["msg"])
			assert.Equal(t, tt.wantLvl, got[0]["level"])
			assert.Equal(t, `SELECT * FROM "tasks"`, got[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UsesRequestScope(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	base := l.(*gormSlogLogger).logger

	ctx := deliverycontext.Scope(context.Background(), base, "req-9")

	l.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))

	got := records(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "req-9", got[0]["request_id"])
}

func TestGormSlogLogger_TagsActorOutsideRequest(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	ctx := deliverycontext.WithPrincipal(context.Background(), &entity.Principal{ExecID: 4, Role: entity.RoleMaster})

	l.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))

	got := records(t, buf)
	require.Len(t, got, 1)
	assert.InDelta(t, 4, got[0]["exec_id"], 0)
	assert.NotContains(t, got[0], "request_id")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.LogMode(logger.Silent).Error(context.Background(), "pool %s", "closed")

	assert.Empty(t, buf.String())
}
