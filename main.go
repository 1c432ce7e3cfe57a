package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"github.com/archivetools/datforge/internal/cmd"
)

func main() {
	// Ctrl-C cancels the context; the pipeline stops between files and
	// still writes the completed prefix of the catalog.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
