package goOnboard

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

type HookEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	Name      string            `json:"name"`
	CheckID   string            `json:"check_id,omitempty"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Detail    map[string]string `json:"detail,omitempty"`
}

type HookSink interface {
	Emit(ctx context.Context, event HookEvent)
}

type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, HookEvent) {}

type ChannelSink struct {
	events chan HookEvent
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan HookEvent, buffer),
	}
}

func (s *ChannelSink) Emit(ctx context.Context, event HookEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

func (s *ChannelSink) Events() <-chan HookEvent {
	return s.events
}

type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

func (s *JSONWriterSink) Emit(ctx context.Context, event HookEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
