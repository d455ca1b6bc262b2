// Command chaosctl runs operator tasks against the Chaos Journal database.
//
// Usage:
//
//	chaosctl migrate up
//	chaosctl promote --username=megumin
//	chaosctl normalize-usernames
//	chaosctl backfill-feed [--reset]
//	chaosctl --format=json migrate status
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/chaosjournal-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cli.Open).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "chaosctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}
