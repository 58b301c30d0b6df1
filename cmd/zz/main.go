package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/takumi3488/zz/internal/cli"
	"github.com/takumi3488/zz/internal/timeexpr"
	"github.com/takumi3488/zz/internal/waiter"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInterrupted  = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return ExitGeneralError
	}

	if len(args) == 1 {
		switch args[0] {
		case "help", "-h", "--help":
			printUsage()
			return ExitSuccess
		}
	}

	quiet, tokens := cli.Split(args)

	now := time.Now()
	end, err := timeexpr.Parse(tokens, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitGeneralError
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := waiter.New(waiter.Options{})
	if err := w.Wait(ctx, end, quiet); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "[zz] interrupted")
			return ExitInterrupted
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitGeneralError
	}

	return ExitSuccess
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: zz [-q|--quiet] <time-expression>

Wait until the given time, showing a countdown progress bar.

Time expressions:
  zz 10                    wait 10 seconds
  zz 2h                    wait 2 hours
  zz 5m                    wait 5 minutes
  zz 30s                   wait 30 seconds
  zz 2h 5m                 wait 2 hours 5 minutes
  zz 1h 30m 45s            wait 1 hour 30 minutes 45 seconds
  zz 12:30                 until 12:30 today (tomorrow if already past)
  zz 12:30:45              until 12:30:45 today (tomorrow if already past)
  zz 20260220T123000+0900  until an ISO 8601 instant with offset
  zz 20260220T123000Z      until an ISO 8601 UTC instant

Options:
  -q, --quiet   wait silently without the progress bar`)
}
