// Command featprune recommends which highly correlated features to drop
// from a numeric feature matrix.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/featprune/internal/cli"
	ferrors "github.com/matzehuels/featprune/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps the outcome of a run to a process exit status: 130 after an
// interrupt, 2 for argument and configuration problems, 1 for any other
// failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	switch ferrors.GetCode(err) {
	case ferrors.ErrCodeInvalidArgument, ferrors.ErrCodeConfiguration, ferrors.ErrCodeMissingImportance:
		return 2
	}
	return 1
}
