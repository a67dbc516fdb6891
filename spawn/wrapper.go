package spawn

import "context"

// Wrapper binds a Runner to a single command name.
// It prepends the command name to every call, which suits tools that are
// invoked frequently with different arguments (e.g., git, docker).
type Wrapper struct {
	runner  Runner
	cmd     string
	options Options
	mute    bool
}

// NewWrapper creates a Wrapper that runs cmd through runner.
// The runner can be any Runner implementation, including mocks.
func NewWrapper(runner Runner, cmd string) *Wrapper {
	return &Wrapper{
		runner: runner,
		cmd:    cmd,
	}
}

// WithOptions returns a copy of the wrapper that passes opts on every call.
func (w *Wrapper) WithOptions(opts Options) *Wrapper {
	clone := *w
	clone.options = opts.clone()
	return &clone
}

// WithMuteErrors returns a copy of the wrapper whose calls mute non-zero exits.
func (w *Wrapper) WithMuteErrors() *Wrapper {
	clone := *w
	clone.options = w.options.clone()
	clone.mute = true
	return &clone
}

// Invocation builds the invocation a call with args would run.
func (w *Wrapper) Invocation(args ...string) Invocation {
	return FromRequest(Request{
		Cmd:        w.cmd,
		Args:       args,
		Options:    w.options,
		MuteErrors: w.mute,
	})
}

// Start launches the wrapped command with args without waiting.
func (w *Wrapper) Start(ctx context.Context, args ...string) *Future {
	return w.runner.Start(ctx, w.Invocation(args...))
}

// Run runs the wrapped command with args and waits for it to settle.
func (w *Wrapper) Run(ctx context.Context, args ...string) (*Result, error) {
	return w.runner.Run(ctx, w.Invocation(args...))
}
