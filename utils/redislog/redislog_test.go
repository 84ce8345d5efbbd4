package redislog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func entryJSON(t *testing.T, en Entry) []byte {
	t.Helper()
	b, err := json.Marshal(en)
	require.NoError(t, err)
	return b
}

func TestLogger_NilIsNoop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("x", nil) })
	assert.NotPanics(t, func() { New(nil, "", 0, 0).Error("x", nil) })
}

func TestLogger_PushTrimExpire(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	l := New(rdb, "logs:test", 100, 24*time.Hour)
	l.now = func() time.Time { return fixedNow }

	b := entryJSON(t, Entry{Level: "info", Msg: "guest saved", Time: "2025-03-14T09:30:00Z", Meta: map[string]string{"name": "Ana"}})
	rmock.ExpectTxPipeline()
	rmock.ExpectLPush("logs:test", b).SetVal(1)
	rmock.ExpectLTrim("logs:test", 0, 99).SetVal("OK")
	rmock.ExpectExpire("logs:test", 24*time.Hour).SetVal(true)
	rmock.ExpectTxPipelineExec()

	l.Info("guest saved", map[string]string{"name": "Ana"})
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestLogger_Recent(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	l := New(rdb, "logs:test", 10, 0)

	first := entryJSON(t, Entry{Level: "warn", Msg: "b", Time: "t2"})
	second := entryJSON(t, Entry{Level: "info", Msg: "a", Time: "t1"})
	rmock.ExpectLRange("logs:test", 0, 2).SetVal([]string{string(first), "garbage", string(second)})

	got, err := l.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Msg)
	assert.Equal(t, "a", got[1].Msg)
}
