// cmd/server/main.go

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/opsdash/opsdash/pkg/alerts"
	"github.com/opsdash/opsdash/pkg/api"
	"github.com/opsdash/opsdash/pkg/auth"
	"github.com/opsdash/opsdash/pkg/config"
	"github.com/opsdash/opsdash/pkg/db"
	"github.com/opsdash/opsdash/pkg/export"
	"github.com/opsdash/opsdash/pkg/lifecycle"
	"github.com/opsdash/opsdash/pkg/logs"
	"github.com/opsdash/opsdash/pkg/metrics"
	"github.com/opsdash/opsdash/pkg/upstream"
)

const cleanupInterval = time.Hour

func main() {
	configPath := flag.String("config", "/etc/opsdash/server.json", "Path to config file")
	flag.Parse()

	var cfg config.ServerConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	var sources upstream.Sources
	if cfg.UpstreamAddr != "" {
		log.Printf("Using upstream data sources at %s", cfg.UpstreamAddr)
		sources = upstream.HTTPSources(cfg.UpstreamAddr)
	} else {
		log.Printf("No upstream configured, using simulated data sources")
		sources = upstream.SimulatedSources(time.Now().UnixNano())
	}

	guard := auth.NewGuard(store, time.Duration(cfg.SessionTTL))
	engine := logs.NewEngine(sources.Logs)
	recorder := metrics.NewRecorder(sources.Metrics, cfg.MetricsHistory)
	alertMgr := alerts.NewManager(sources.Alerts, store)
	scheduler := export.NewScheduler(store, engine, recorder, cfg.ArtifactDir, cfg.ExportWorkers)
	janitor := db.NewJanitor(store, cleanupInterval, time.Duration(cfg.CleanupAge))

	limit := rate.Limit(float64(cfg.LoginPerMinute) / 60.0)

	server := api.NewServer(api.Options{
		Guard:          guard,
		Alerts:         alertMgr,
		Logs:           engine,
		Recorder:       recorder,
		Activity:       sources.Activity,
		Exports:        scheduler,
		StreamInterval: time.Duration(cfg.StreamInterval),
		LoginLimiter:   rate.NewLimiter(limit, cfg.LoginBurst),
	})

	err = lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "opsdash",
		Handler:     server,
		Services:    []lifecycle.Service{scheduler, janitor},
	})
	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
