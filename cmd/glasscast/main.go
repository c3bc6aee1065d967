package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/glasscast/glasscast/internal/api"
	"github.com/glasscast/glasscast/internal/config"
	"github.com/glasscast/glasscast/internal/geolocate"
	"github.com/glasscast/glasscast/internal/notify"
	"github.com/glasscast/glasscast/internal/session"
	"github.com/glasscast/glasscast/internal/store"
	"github.com/glasscast/glasscast/internal/weatherapi"
)

func main() {
	dbPath := flag.String("db", "", "path to SQLite database (overrides DB_PATH)")
	port := flag.String("port", "", "HTTP server port (overrides PORT)")
	noRefresh := flag.Bool("no-refresh", false, "disable background refresh (server only, for local dev)")
	once := flag.Bool("once", false, "fetch once, print the location, and exit (for testing)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *port != "" {
		cfg.Port = *port
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	client := weatherapi.New(cfg.WeatherAPIKey)
	client.SetRateLimit(cfg.UpstreamRPS, 3)

	center := notify.NewCenter()
	center.SetDefaultTTL(cfg.NotifyTTL)
	center.SetHistory(st)
	if cfg.NotifyWebhookURL != "" {
		center.SetPusher(notify.NewWebhookPusher(cfg.NotifyWebhookURL))
	}

	sess := session.New(client, geolocate.NewResolver(), cfg.DefaultLocation)
	sess.SetGeoTimeout(cfg.GeoTimeout)
	sess.SetRefreshInterval(cfg.RefreshInterval)
	sess.SetNotifier(center)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *once {
		sess.Start(ctx)
		snap, state, err := sess.View()
		if err != nil {
			log.Fatalf("fetch: %v", err)
		}
		log.Printf("state=%s location=%s, %s (%.2f°C)", state, snap.Location.Name, snap.Location.CountryCode, snap.Current.TemperatureC)
		return
	}

	if !*noRefresh {
		go sess.Run(ctx)
	} else {
		sess.Start(ctx)
		log.Println("background refresh disabled (--no-refresh)")
	}

	server := api.NewServer(sess, center, st, cfg.Port)
	log.Printf("starting server on :%s", cfg.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
