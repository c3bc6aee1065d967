package api

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glasscast/glasscast/internal/notify"
	"github.com/glasscast/glasscast/internal/session"
	"github.com/glasscast/glasscast/internal/store"
)

//go:embed templates/*
var templateFS embed.FS

type Server struct {
	session *session.Session
	center  *notify.Center
	history *store.Store
	port    string
	tmpl    *template.Template
}

// NewServer wires the dashboard HTTP surface. history may be nil when no
// database is configured; the alert history endpoint then returns an
// empty list.
func NewServer(sess *session.Session, center *notify.Center, history *store.Store, port string) *Server {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Server{
		session: sess,
		center:  center,
		history: history,
		port:    port,
		tmpl:    tmpl,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/weather", s.handleWeather)
	mux.HandleFunc("POST /api/location", s.handleSetLocation)
	mux.HandleFunc("POST /api/settings", s.handleSettings)
	mux.HandleFunc("GET /api/notifications", s.handleListNotifications)
	mux.HandleFunc("POST /api/notifications", s.handleEnqueueNotification)
	mux.HandleFunc("DELETE /api/notifications/{id}", s.handleDismissNotification)
	mux.HandleFunc("POST /api/notifications/permission", s.handleRequestPermission)
	mux.HandleFunc("GET /api/alerts/history", s.handleAlertHistory)
	return withRequestLog(mux)
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
