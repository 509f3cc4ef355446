package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/binharry/binharry-cli/internal/cmd"
	"github.com/binharry/binharry-cli/internal/exitcode"
	"github.com/binharry/binharry-cli/internal/ux"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			exitcode.Exit(exitcode.Interrupted)
		}

		ux.RenderError(os.Stderr, err, os.Getenv("NO_COLOR") != "")
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}
