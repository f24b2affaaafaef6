package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"formcheck/presentation/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	termInterface := terminal.NewTerminalInterface(os.Stdout, os.Stderr)
	err := termInterface.Run(ctx, os.Args[1:])

	termInterface.Close()
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
