// Command weddingctl is an interactive admin console for the photo backend.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/memorybox/backend/internal/client"
	"github.com/memorybox/backend/internal/console"
)

func main() {
	server := flag.String("server", envOr("WEDDING_API_URL", "http://localhost:5000"), "backend base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "per-request timeout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := console.NewApp(*server, os.Stdin, os.Stdout, client.WithTimeout(*timeout))
	app.Run(ctx)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
