// Command server runs the Chaos Journal backend: the callable HTTP API and
// the community feed mirror fed by entry change events.
//
// Configuration is read from $CONFIG_PATH (default ./config.yaml) and
// environment variables. See internal/config.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/chaosjournal-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
