package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS quietly. Error ignored: maxprocs.Set only fails
	// if the GOMAXPROCS env is invalid, in which case Go runtime defaults
	// apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

// run dispatches commands and maps errors to exit codes.
func run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "convert":
		if err := runConvert(ctx, args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "links":
		if err := runLinks(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version":
		fmt.Fprintf(os.Stdout, "reportgen %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], os.Stdout, os.Stderr)
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage(os.Stderr)
		return ExitUsage
	}
}
