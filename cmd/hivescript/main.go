package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/hivescript/internal/cli"
	"github.com/vvka-141/hivescript/pkg/hivescript"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(hivescript.ExitPanic)
		}
	}()

	if os.Getenv("HIVESCRIPT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(hivescript.ExitCodeForError(err))
	}
}
