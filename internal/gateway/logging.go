package gateway

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestEvent is one completed transport call, recorded for auditing.
type RequestEvent struct {
	Purpose   string
	Model     string
	LatencyMs int64
	Success   bool
	Error     string
}

// EventSink persists request events.
type EventSink interface {
	AppendRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingChat is a decorator that records every transport call as an event.
type LoggingChat struct {
	inner ChatCompleter
	sink  EventSink
}

// WithLogging wraps a ChatCompleter with event logging. A nil sink
// returns the transport unchanged.
func WithLogging(c ChatCompleter, sink EventSink) ChatCompleter {
	if sink == nil {
		return c
	}
	return &LoggingChat{inner: c, sink: sink}
}

func (l *LoggingChat) Complete(ctx context.Context, req ChatRequest) (string, error) {
	start := time.Now()

	raw, err := l.inner.Complete(ctx, req)

	ev := RequestEvent{
		Purpose:   PurposeFrom(ctx),
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		ev.Error = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.sink.AppendRequest(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log request event: %v\n", logErr)
	}

	return raw, err
}

func (l *LoggingChat) ModelID() string {
	return l.inner.ModelID()
}
