package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/cli"
)

// main - is the entry point of the application. Config, logger and the game session are set up by the command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
