package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/glasscast/glasscast/internal/models"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := buildDashboardView(s.session, time.Now())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", view); err != nil {
		log.Printf("api: render index: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"state":  string(s.session.State()),
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildDashboardView(s.session, time.Now()))
}

func (s *Server) handleSetLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.session.SetLocation(r.Context(), req.Query); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, buildDashboardView(s.session, time.Now()))
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UseCelsius *bool `json:"use_celsius"`
		LightMode  *bool `json:"light_mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.UseCelsius != nil {
		s.session.SetUseCelsius(*req.UseCelsius)
	}
	if req.LightMode != nil {
		s.session.SetLightMode(*req.LightMode)
	}
	writeJSON(w, http.StatusOK, buildDashboardView(s.session, time.Now()))
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": s.center.Active(),
		"permission":    string(s.center.Permission()),
	})
}

func (s *Server) handleEnqueueNotification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Message  string `json:"message"`
		Severity string `json:"severity"`
		TTLMs    int64  `json:"ttl_ms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	sev := models.Severity(req.Severity)
	switch sev {
	case models.SeverityInfo, models.SeverityWarning, models.SeverityError:
	case "":
		sev = models.SeverityInfo
	default:
		writeError(w, http.StatusBadRequest, "unknown severity")
		return
	}

	id := s.center.Enqueue(req.Title, req.Message, sev, time.Duration(req.TTLMs)*time.Millisecond)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	s.center.Dismiss(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRequestPermission(w http.ResponseWriter, r *http.Request) {
	perm := s.center.RequestPermission(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"permission": string(perm)})
}

func (s *Server) handleAlertHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, map[string]any{"alerts": []models.Notification{}})
		return
	}

	alerts, err := s.history.ListRecentNotifications(50)
	if err != nil {
		log.Printf("api: list alert history: %v", err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	if alerts == nil {
		alerts = []models.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}
