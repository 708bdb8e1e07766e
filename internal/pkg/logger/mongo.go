package logger

import (
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

const (
	mongoSlowThreshold = 200 * time.Millisecond
	maxCommandLen      = 1000
)

// 这些命令携带文档正文，可能包含密码哈希，不记录详情
var sensitiveCommands = map[string]bool{
	"insert":        true,
	"update":        true,
	"findAndModify": true,
}

func NewMongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			log.DebugContext(ctx, "MongoDB Started",
				log.String("command", evt.CommandName),
				log.String("database", evt.DatabaseName),
				log.Int64("request_id", evt.RequestID),
				log.String("cmd_detail", commandDetail(evt)),
			)
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			fields := []any{
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.Int64("request_id", evt.RequestID),
			}

			if evt.Duration > mongoSlowThreshold {
				log.WarnContext(ctx, "MongoDB Slow", fields...)
			} else {
				log.DebugContext(ctx, "MongoDB Success", fields...)
			}
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "MongoDB Error",
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.Int64("request_id", evt.RequestID),
				log.Any("err", evt.Failure),
			)
		},
	}
}

func commandDetail(evt *event.CommandStartedEvent) string {
	if sensitiveCommands[evt.CommandName] {
		if coll, ok := evt.Command.Lookup(evt.CommandName).StringValueOK(); ok {
			return evt.CommandName + " " + coll + " [REDACTED]"
		}
		return "[REDACTED]"
	}
	cmd := evt.Command.String()
	if len(cmd) > maxCommandLen {
		cmd = cmd[:maxCommandLen] + "...[truncated]"
	}
	return cmd
}
