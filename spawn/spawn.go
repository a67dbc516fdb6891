package spawn

import (
	"context"
	"log/slog"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/runner.go -pkg mocks . Runner
//go:generate go run github.com/matryer/moq@latest -out mocks/sink.go -pkg mocks . Sink

// Name is the executable name the host orchestrator registers this capability under.
const Name = "shell.spawn"

// OutputKey is the storage key the final stdout text is published under.
const OutputKey = "output"

// Runner is the main interface for running commands.
// *Spawn is the production implementation; Wrapper accepts any Runner so tests can mock it.
type Runner interface {
	// Start launches the invocation and returns immediately.
	// The returned Future is settled exactly once when the child terminates
	// or fails to launch.
	Start(ctx context.Context, inv Invocation) *Future

	// Run launches the invocation and blocks until it is settled.
	Run(ctx context.Context, inv Invocation) (*Result, error)
}

// Sink is the logging surface supplied by the host orchestrator.
type Sink interface {
	// Log echoes a chunk of command output verbatim.
	Log(ctx context.Context, chunk string)

	// Warning records an advisory message.
	Warning(ctx context.Context, msg string)

	// Error records an error message.
	Error(ctx context.Context, msg string)
}

// DisplayContext reports the host's current nesting depth.
// It is consulted for every stdout chunk, never cached.
type DisplayContext interface {
	Depth() int
}

// Result represents the outcome of a successful or muted run.
type Result struct {
	// Output is the captured standard output
	Output string

	// Stderr is the captured standard error
	Stderr string

	// ExitCode is the exit code returned by the command
	ExitCode int

	// Muted is true when the command exited non-zero and errors were muted
	Muted bool

	// Displayed is true when at least one stdout chunk was echoed to the sink
	Displayed bool

	// RunID identifies the run in log records and error context
	RunID string
}

// Option is a function that configures a Spawn.
// Environment and directory options set defaults that individual invocations override.
type Option func(*Spawn)

// WithSink sets the logging sink that receives echoed output and warnings.
func WithSink(sink Sink) Option {
	return func(s *Spawn) {
		s.sink = sink
	}
}

// WithDisplay sets the context the nesting depth is read from.
func WithDisplay(display DisplayContext) Option {
	return func(s *Spawn) {
		s.display = display
	}
}

// WithStorage sets the storage the final output is published to.
func WithStorage(storage *Storage) Option {
	return func(s *Spawn) {
		s.storage = storage
	}
}

// WithLogger sets the structured logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Spawn) {
		s.logger = logger
	}
}

// WithEnv returns an Option that sets default environment variables.
func WithEnv(env map[string]string) Option {
	return func(s *Spawn) {
		for k, v := range env {
			s.defaults.env[k] = v
		}
	}
}

// WithDir returns an Option that sets the default working directory.
func WithDir(dir string) Option {
	return func(s *Spawn) {
		s.defaults.dir = dir
	}
}

// WithInheritEnv returns an Option that merges the parent environment into explicit environments.
func WithInheritEnv() Option {
	return func(s *Spawn) {
		s.defaults.inheritEnv = true
	}
}

// WithDisableColors returns an Option that disables color output for every run.
func WithDisableColors() Option {
	return func(s *Spawn) {
		s.defaults.disableColors = true
	}
}
