package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes entries to a Redis LIST (e.g. "logs:app") and keeps only the newest max.
// A nil *Logger, or one built with a nil client, is a silent no-op.
type Logger struct {
	rdb       redis.Cmdable
	key       string        // list key, e.g. "logs:app"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	now       func() time.Time
}

// New creates a Redis logger over a LIST.
func New(rdb redis.Cmdable, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// WithClock replaces the timestamp source; tests use it to get stable entries.
func (l *Logger) WithClock(now func() time.Time) *Logger {
	l.now = now
	return l
}

// log runs LPUSH, LTRIM and EXPIRE in one MULTI so readers never see an untrimmed list.
// Logging failures are swallowed; they must not fail the request being logged.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  l.now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, err := json.Marshal(en)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _ = l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, l.key, b)
		if l.max > 0 {
			pipe.LTrim(ctx, l.key, 0, l.max-1)
		}
		if l.retention > 0 {
			pipe.Expire(ctx, l.key, l.retention)
		}
		return nil
	})
}

// Recent returns up to n newest entries, newest first. Unparseable items are skipped.
func (l *Logger) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if l == nil || l.rdb == nil || n <= 0 {
		return nil, nil
	}
	raw, err := l.rdb.LRange(ctx, l.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.key, err)
	}
	out := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var en Entry
		if json.Unmarshal([]byte(item), &en) == nil {
			out = append(out, en)
		}
	}
	return out, nil
}

func (l *Logger) Info(msg string, meta map[string]string)  { l.log("info", msg, meta) }
func (l *Logger) Warn(msg string, meta map[string]string)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }

// Formatted variants
func (l *Logger) Infof(format string, meta map[string]string, args ...any) {
	l.Info(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Warnf(format string, meta map[string]string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Errorf(format string, meta map[string]string, args ...any) {
	l.Error(fmt.Sprintf(format, args...), meta)
}
