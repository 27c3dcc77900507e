package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/texttable/internal/cmds"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if err := cmds.Execute(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "texttable:", err)
		cancel()
		os.Exit(1)
	}
}
