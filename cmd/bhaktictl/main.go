// Command bhaktictl is the operator CLI for the Bhakti feed: it sweeps and
// refreshes the cache, inspects content and previews rankings against the
// same database and key/value store the server uses.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tbourn/bhakti-feed/internal/app"
	"github.com/tbourn/bhakti-feed/internal/config"
	"github.com/tbourn/bhakti-feed/internal/sysutil"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries JSON results; logs go to stderr
	sysutil.SetLogLevel(cfg.LogLevel)
	logger := sysutil.NewLogger(os.Stderr, "bhaktictl", true)

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := newCLIApp(a).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		a.Close()
		os.Exit(1)
	}
}
