// Command beliefnetd runs the beliefnet HTTP service: a store of
// Bayesian network documents with a per-node inference query endpoint.
//
// Usage:
//
//	beliefnetd [-config beliefnetd.toml]
//
// Without a config file the server listens on :8080 with an in-memory
// store and no cache, which is enough for local experimentation.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/probelab/beliefnet/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "beliefnetd:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg := server.DefaultConfig()
	if *configPath != "" {
		loaded, err := server.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer srv.Close(context.Background())

	if err := srv.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
