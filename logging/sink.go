package logging

import (
	"context"
	"io"
	"os"
	"sync"
)

// Sink echoes command output verbatim and routes warnings and errors through a Logger.
// It satisfies spawn.Sink.
type Sink struct {
	logger *Logger
	mu     sync.Mutex
	echo   io.Writer
}

// NewSink creates a sink writing echoed chunks to echo (os.Stdout when nil)
// and warnings and errors to logger (a no-op logger when nil).
func NewSink(logger *Logger, echo io.Writer) *Sink {
	if logger == nil {
		logger = NewNopLogger()
	}
	if echo == nil {
		echo = os.Stdout
	}
	return &Sink{
		logger: logger,
		echo:   echo,
	}
}

// Log writes chunk to the echo writer unchanged.
func (s *Sink) Log(ctx context.Context, chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.echo, chunk); err != nil {
		s.logger.Debug(ctx, "failed to echo output", "error", err)
	}
}

// Warning logs msg at warning level.
func (s *Sink) Warning(ctx context.Context, msg string) {
	s.logger.Warn(ctx, msg)
}

// Error logs msg at error level.
func (s *Sink) Error(ctx context.Context, msg string) {
	s.logger.Error(ctx, msg)
}
