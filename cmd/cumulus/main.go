// Command cumulus is the command-line client for the Cumulus cloud API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cumulus/internal/cli"
	"cumulus/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := cli.NewEnvironment(commands.Registry())

	code := cli.Main(ctx, os.Args[1:], env)
	stop()
	os.Exit(code)
}
