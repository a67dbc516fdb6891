package spawn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	osexec "os/exec"

	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"

	"github.com/Boulangerie/starflow-shell/config"
)

// Spawn is the concrete implementation of the Runner interface.
// It runs one child process per invocation and applies the display and
// mute policies to its output.
type Spawn struct {
	settings config.Settings
	sink     Sink
	display  DisplayContext
	storage  *Storage
	logger   *slog.Logger
	defaults *defaults
}

// New creates a new Spawn with the given settings and options.
// Settings are read once here; the nesting depth is read per chunk.
func New(settings config.Settings, opts ...Option) *Spawn {
	s := &Spawn{
		settings: settings,
		sink:     nopSink{},
		display:  NewDepth(0),
		storage:  NewStorage(),
		logger:   slog.New(slog.DiscardHandler),
		defaults: newDefaults(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the executable name.
func (s *Spawn) Name() string {
	return Name
}

// Settings returns the display settings the Spawn was created with.
func (s *Spawn) Settings() config.Settings {
	return s.settings
}

// Storage returns the storage the final output is published to.
func (s *Spawn) Storage() *Storage {
	return s.storage
}

// Start launches the invocation and returns without waiting for the child.
// The context only carries logging values; cancelling it does not stop the child.
func (s *Spawn) Start(ctx context.Context, inv Invocation) *Future {
	f := newFuture()
	runID := uuid.New().String()
	logger := s.logger.With("run_id", runID, "command", inv.Cmd())

	logger.DebugContext(ctx, "spawn settings",
		"display_output", s.settings.DisplayOutput,
		"depth_limit", s.settings.DepthLimit,
		"depth", s.display.Depth(),
		"mute_errors", inv.MuteErrors(),
	)

	f.transition(StateLaunching)
	cmd, stdout, stderr, err := s.launch(inv)
	if err != nil {
		s.sink.Error(ctx, fmt.Sprintf("Are you sure %q is a valid command?", inv.Cmd()))
		logger.DebugContext(ctx, "launch failed", "error", err)
		f.settle(StateLaunchFailed, nil, &LaunchError{
			Command: inv.Cmd(),
			Args:    inv.Args(),
			RunID:   runID,
			Err:     err,
		})
		return f
	}

	f.transition(StateRunning)
	go s.supervise(ctx, f, inv, runID, logger, cmd, stdout, stderr)

	return f
}

// Run launches the invocation and waits for it to settle.
func (s *Spawn) Run(ctx context.Context, inv Invocation) (*Result, error) {
	return s.Start(ctx, inv).Wait()
}

// RunArgs runs cmd with plain arguments, default options and errors not muted.
func (s *Spawn) RunArgs(ctx context.Context, cmd string, args ...string) (*Result, error) {
	return s.Run(ctx, FromArgs(cmd, args...))
}

// launch creates and starts the child with piped stdout and stderr.
func (s *Spawn) launch(inv Invocation) (*osexec.Cmd, io.Reader, io.Reader, error) {
	if inv.Cmd() == "" {
		return nil, nil, nil, ErrEmptyCommand
	}

	cmd := osexec.Command(inv.cmd, inv.args...)

	cfg := s.defaults.resolve(inv.options)
	cmd.Dir = cfg.dir
	cmd.Env = cfg.env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, nil, err
	}

	return cmd, stdout, stderr, nil
}

// supervise drains the child's output, waits for it to exit and settles f.
func (s *Spawn) supervise(
	ctx context.Context,
	f *Future,
	inv Invocation,
	runID string,
	logger *slog.Logger,
	cmd *osexec.Cmd,
	stdout, stderr io.Reader,
) {
	acc := newAccumulator(func(chunk string) bool {
		if !canDisplay(s.settings, s.display.Depth()) {
			return false
		}
		s.sink.Log(ctx, chunk)
		return true
	})

	// Both pipes must be drained before Wait closes them.
	if err := acc.consume(stdout, stderr); err != nil {
		logger.DebugContext(ctx, "reading output failed", "error", err)
	}

	waitErr := cmd.Wait()
	exitCode := 0
	if waitErr != nil {
		var exitErr *osexec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	out := acc.stdout.String()
	errOut := acc.stderr.String()
	displayed := acc.displayed.Load()

	v := decide(completion{
		exitCode:   exitCode,
		muteErrors: inv.MuteErrors(),
		stdout:     out,
		displayed:  displayed,
	})

	logger.DebugContext(ctx, "command exited",
		"exit_code", exitCode,
		"state", v.state.String(),
		"stdout_bytes", len(out),
		"stderr_bytes", len(errOut),
	)

	if v.state == StateFailed {
		f.settle(StateFailed, nil, &ProcessFailure{
			Command:  inv.Cmd(),
			Args:     inv.Args(),
			RunID:    runID,
			ExitCode: exitCode,
			Stderr:   errOut,
			Err:      waitErr,
		})
		return
	}

	for _, w := range v.warnings {
		s.sink.Warning(ctx, w)
	}
	s.storage.Set(OutputKey, out)

	f.settle(v.state, &Result{
		Output:    out,
		Stderr:    errOut,
		ExitCode:  exitCode,
		Muted:     v.state == StateMutedFailure,
		Displayed: displayed,
		RunID:     runID,
	}, nil)
}

// nopSink discards everything.
type nopSink struct{}

func (nopSink) Log(context.Context, string)     {}
func (nopSink) Warning(context.Context, string) {}
func (nopSink) Error(context.Context, string)   {}
