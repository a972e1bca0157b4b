// Package main serves the TUBE network parameters over HTTP: as JSON for
// services and as config.js for the web wallet.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cmdutils "github.com/bittube/tube-params/cmd/utils"
	"github.com/bittube/tube-params/consensus/params"
	"github.com/bittube/tube-params/consensus/utils"
	"github.com/bittube/tube-params/openalias"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type options struct {
	Listen string `long:"listen" description:"HTTP listen address" default:":8080"`
	DNS    string `long:"dns" description:"DNS server for OpenAlias lookups, host:port (default: first resolv.conf nameserver)"`
	Debug  bool   `long:"debug" description:"Enable debug logging regardless of debugMode"`

	cmdutils.SourceOptions
	cmdutils.RedisOptions
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry, source, err := loadRegistry(ctx, opts)
	if err != nil {
		utils.Fatalf("API", "%s", err)
	}
	s := registry.Get()
	utils.SetDebug(s.DebugMode || opts.Debug)

	dnsServer := opts.DNS
	if dnsServer == "" {
		dnsServer = openalias.SystemServer("1.1.1.1:53")
	}

	api, err := NewAPI(registry, source, openalias.Resolver{Server: dnsServer, Prefix: s.OpenAliasPrefix})
	if err != nil {
		utils.Fatalf("API", "%s", err)
	}

	utils.Logf("API", "TUBE parameter API")
	utils.Logf("API", "Listen: %s", opts.Listen)
	utils.Logf("API", "Parameters: %s, %s %s, explorer %s", source, s.CoinSymbol, s.NetworkType, s.ExplorerURL())
	utils.Debugf("API", "OpenAlias DNS server: %s", dnsServer)

	server := &http.Server{
		Addr:         opts.Listen,
		Handler:      api,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Logf("API", "Starting HTTP server on %s", opts.Listen)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		utils.Logf("API", "Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Fatalf("API", "HTTP server error: %s", err)
	}
	utils.Logf("API", "Shutdown complete")
}

// loadRegistry prefers published parameters in Redis, then a config file, then
// the shipped set.
func loadRegistry(ctx context.Context, opts options) (*params.Registry, string, error) {
	return cmdutils.LoadEither(ctx, opts.SourceOptions, opts.RedisOptions)
}
