// Command server runs the Tally HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables.
// At minimum DATABASE_DSN and AUTH_JWT_SECRET must be set.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/tallyapp/tally-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
