// Command server runs the CivicVoice HTTP API.
package main

import (
	"context"
	"log"

	"github.com/civicvoice/civicvoice-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
