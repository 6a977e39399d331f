// pkg/api/server.go

package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/opsdash/opsdash/pkg/alerts"
	"github.com/opsdash/opsdash/pkg/auth"
	"github.com/opsdash/opsdash/pkg/export"
	httpx "github.com/opsdash/opsdash/pkg/http"
	"github.com/opsdash/opsdash/pkg/logs"
	"github.com/opsdash/opsdash/pkg/metrics"
	"github.com/opsdash/opsdash/pkg/models"
	"github.com/opsdash/opsdash/pkg/upstream"
)

// Options configures the API facade.
type Options struct {
	Guard          *auth.Guard
	Alerts         *alerts.Manager
	Logs           *logs.Engine
	Recorder       *metrics.Recorder
	Activity       upstream.ActivitySource
	Exports        *export.Scheduler
	StreamInterval time.Duration
	LoginLimiter   *rate.Limiter
}

// Server is the single entry surface the external UI calls. It composes
// the session guard, the data providers and the export scheduler, and is
// the sole authorization enforcement point.
type Server struct {
	guard          *auth.Guard
	alerts         *alerts.Manager
	logs           *logs.Engine
	recorder       *metrics.Recorder
	activity       upstream.ActivitySource
	exports        *export.Scheduler
	streamInterval time.Duration
	loginLimiter   *rate.Limiter
	router         *mux.Router
}

// NewServer builds the facade and registers all routes.
func NewServer(opts Options) *Server {
	s := &Server{
		guard:          opts.Guard,
		alerts:         opts.Alerts,
		logs:           opts.Logs,
		recorder:       opts.Recorder,
		activity:       opts.Activity,
		exports:        opts.Exports,
		streamInterval: opts.StreamInterval,
		loginLimiter:   opts.LoginLimiter,
		router:         mux.NewRouter(),
	}
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)
	s.router.Use(httpx.LogMiddleware)

	limited := func(h http.HandlerFunc) http.HandlerFunc {
		if s.loginLimiter == nil {
			return h
		}

		return httpx.RateLimitMiddleware(s.loginLimiter, h).ServeHTTP
	}

	s.router.HandleFunc("/api/auth/login", limited(s.handleLogin)).Methods("POST")
	s.router.HandleFunc("/api/auth/register", limited(s.handleRegister)).Methods("POST")
	s.router.HandleFunc("/api/auth/logout", s.withSession(s.handleLogout)).Methods("POST")

	s.router.HandleFunc("/api/metrics", s.withSession(s.handleMetrics)).Methods("GET")
	s.router.HandleFunc("/api/metrics/history", s.withSession(s.handleMetricsHistory)).Methods("GET")
	s.router.HandleFunc("/api/metrics/stream", s.withSession(s.handleMetricsStream)).Methods("GET")
	s.router.HandleFunc("/api/activity", s.withSession(s.handleActivity)).Methods("GET")

	s.router.HandleFunc("/api/alerts", s.withSession(s.handleAlerts)).Methods("GET")
	s.router.HandleFunc("/api/alerts/{id}/dismiss", s.withSession(s.handleDismissAlert)).Methods("POST")

	s.router.HandleFunc("/api/logs", s.withSession(s.handleLogs)).Methods("GET")

	s.router.HandleFunc("/api/exports", s.withAdmin(auth.ActionSubmitExport, s.handleSubmitExport)).Methods("POST")
	s.router.HandleFunc("/api/exports", s.withAdmin(auth.ActionListExports, s.handleListExports)).Methods("GET")
	s.router.HandleFunc("/api/exports/{id}", s.withAdmin(auth.ActionListExports, s.handleExportStatus)).Methods("GET")
	s.router.HandleFunc("/api/exports/{id}/download", s.withAdmin(auth.ActionDownloadExport, s.handleDownloadExport)).Methods("GET")

	s.router.HandleFunc("/api/health", s.handleHealth).Methods("GET")
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type sessionResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Principal *models.Principal `json:"principal"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	session, principal, err := s.guard.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Principal: principal,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, principal, err := s.guard.Register(r.Context(),
		req.DisplayName, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Principal: principal,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.guard.Invalidate(r.Context(), bearerToken(r)); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snap, err := s.recorder.Sample(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleMetricsHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.recorder.History())
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	events, err := s.activity.FetchActivity(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	status := models.AlertStatus(r.URL.Query().Get("status"))

	visible, err := s.alerts.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, visible)
}

func (s *Server) handleDismissAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := s.alerts.Dismiss(r.Context(), vars["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := logs.Filter{
		TimeRange:  logs.TimeRange(q.Get("range")),
		Level:      models.LogLevel(q.Get("level")),
		Service:    q.Get("service"),
		SearchTerm: q.Get("search"),
	}

	entries, err := s.logs.Search(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

type submitExportRequest struct {
	Kind   string              `json:"kind"`
	Format string              `json:"format"`
	Params models.ExportParams `json:"params"`
}

func (s *Server) handleSubmitExport(w http.ResponseWriter, r *http.Request) {
	var req submitExportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	job, err := s.exports.Submit(r.Context(),
		models.ExportKind(req.Kind), models.ExportFormat(req.Format), req.Params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleListExports(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.exports.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleExportStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	job, err := s.exports.Status(r.Context(), vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleDownloadExport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	path, mimeType, err := s.exports.Download(r.Context(), vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	http.ServeFile(w, r, path)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
