// Package spawn runs an external command as a child process and resolves
// with its captured standard output.
//
// A Spawn launches one child per invocation with piped stdout and stderr.
// Both streams are read concurrently and accumulated in full. Each stdout
// chunk is echoed to the host's Sink as it arrives, but only while the
// display predicate holds:
//
//	settings.DisplayOutput && settings.DepthLimit >= display.Depth()
//
// # Basic Usage
//
//	s := spawn.New(config.Default(), spawn.WithSink(logger))
//	result, err := s.RunArgs(ctx, "cat", "README.md")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(result.Output)
//
// # Structured Requests
//
// Invocations come from one of two constructors:
//
//	inv := spawn.FromRequest(spawn.Request{
//		Cmd:        "make",
//		Args:       []string{"test"},
//		Options:    spawn.Options{Dir: "/src"},
//		MuteErrors: true,
//	})
//	inv = spawn.FromArgs("make", "test") // default options, errors not muted
//
// # Completion
//
// A zero exit resolves with the captured stdout. A non-zero exit fails with a
// *ProcessFailure whose message is the captured stderr, unless the invocation
// mutes errors; then the run resolves like a success and WarningErrorsMuted is
// logged. When stdout was produced but never echoed, WarningOutputMuted is
// logged. Successful and muted runs publish the stdout under OutputKey in the
// Spawn's Storage.
//
// A child that cannot be started fails with a *LaunchError and an error line
// naming the command.
//
// # Asynchronous Use
//
// Start returns a Future that is settled exactly once:
//
//	f := s.Start(ctx, inv)
//	// ... other work ...
//	result, err := f.Wait()
//
// There is no cancellation or timeout. Once launched, the child runs to
// natural completion; the context passed to Start only carries logging values.
//
// # Nesting
//
// The host increments a Depth around nested work so deeper invocations stop
// echoing once the depth limit is exceeded:
//
//	depth := spawn.NewDepth(0)
//	s := spawn.New(settings, spawn.WithDisplay(depth))
//	restore := depth.Push()
//	defer restore()
package spawn
