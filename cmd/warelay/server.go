package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"warelay/internal/errors"
	"warelay/internal/middleware"
	"warelay/internal/models"
	"warelay/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Server struct {
	router *mux.Router
	logger *logrus.Logger
	relay  *service.RelayService
	cfg    models.ServerConfig
	server *http.Server
}

func NewServer(cfg models.ServerConfig, relay *service.RelayService, logger *logrus.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		logger: logger,
		relay:  relay,
		cfg:    cfg,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Observability(s.logger))

	// Health check and diagnostics
	s.router.HandleFunc("/health", s.handleHealth()).Methods(http.MethodGet)
	s.router.HandleFunc("/metrics", s.handleMetrics()).Methods(http.MethodGet)

	// Dashboard API
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/config", s.handleSetConfig()).Methods(http.MethodPost)
	api.HandleFunc("/config", s.handleGetConfig()).Methods(http.MethodGet)
	api.HandleFunc("/send-message", s.handleSendMessage()).Methods(http.MethodPost)
	api.HandleFunc("/messages/{phoneNumber}", s.handleMessages()).Methods(http.MethodGet)
	api.HandleFunc("/contacts", s.handleContacts()).Methods(http.MethodGet)
	api.HandleFunc("/contacts/{phoneNumber}/update", s.handleRenameContact()).Methods(http.MethodPost)
	api.HandleFunc("/mark-read/{phoneNumber}", s.handleMarkRead()).Methods(http.MethodPost)

	// Provider webhook
	s.router.HandleFunc("/webhook", s.handleWebhookVerify()).Methods(http.MethodGet)
	s.router.HandleFunc("/webhook", s.handleWebhook()).Methods(http.MethodPost)

	// Static dashboard assets
	if s.cfg.StaticDir != "" {
		s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.cfg.StaticDir)))
	}
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSec) * time.Second,
	}

	s.logger.Infof("Starting server on port %d", s.cfg.Port)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

// writeError maps an application error onto the API error shape. Upstream
// failures carry the provider's response verbatim in details.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	body := map[string]interface{}{
		"error": errors.GetUserMessage(err),
	}
	if details := errors.UpstreamDetails(err); details != "" {
		body["details"] = json.RawMessage(detailsJSON(details))
	}
	s.writeJSON(w, errors.HTTPStatus(err), body)
}

// detailsJSON passes provider details through as raw JSON when they are
// valid JSON, quoting them otherwise.
func detailsJSON(details string) []byte {
	if json.Valid([]byte(details)) {
		return []byte(details)
	}
	quoted, err := json.Marshal(details)
	if err != nil {
		return []byte(`""`)
	}
	return quoted
}
