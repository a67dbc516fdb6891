package spawn_test

import (
	"context"
	"fmt"
	"os"

	"github.com/Boulangerie/starflow-shell/config"
	"github.com/Boulangerie/starflow-shell/logging"
	"github.com/Boulangerie/starflow-shell/spawn"
)

func Example() {
	sink := logging.NewSink(logging.NewNopLogger(), os.Stdout)
	s := spawn.New(config.Default(), spawn.WithSink(sink))

	result, err := s.RunArgs(context.Background(), "printf", "hello\n")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("captured: %q\n", result.Output)
	// Output:
	// hello
	// captured: "hello\n"
}

func ExampleFromRequest() {
	s := spawn.New(config.Settings{DisplayOutput: false})

	inv := spawn.FromRequest(spawn.Request{
		Cmd:        "sh",
		Args:       []string{"-c", "printf partial; exit 2"},
		MuteErrors: true,
	})

	result, err := s.Run(context.Background(), inv)
	if err != nil {
		fmt.Println(err)
		return
	}

	stored, _ := s.Storage().Get(spawn.OutputKey)
	fmt.Println(result.Output, result.ExitCode, result.Muted, stored)
	// Output: partial 2 true partial
}

func ExampleDepth() {
	depth := spawn.NewDepth(0)
	settings := config.Settings{DisplayOutput: true, DepthLimit: 0}
	sink := logging.NewSink(logging.NewNopLogger(), os.Stdout)
	s := spawn.New(settings, spawn.WithSink(sink), spawn.WithDisplay(depth))

	_, _ = s.RunArgs(context.Background(), "echo", "top level")

	restore := depth.Push()
	result, _ := s.RunArgs(context.Background(), "echo", "nested")
	restore()

	fmt.Printf("nested displayed: %v\n", result.Displayed)
	// Output:
	// top level
	// nested displayed: false
}
