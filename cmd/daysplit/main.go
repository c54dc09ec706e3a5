package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/faizmokh/daysplit/internal/cli"
)

func main() {
	// An interrupt stops the split between lines; the open day file is still closed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Main(ctx)
}
