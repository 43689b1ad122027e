// Package devserver serves the fixture catalog and the auth probe status
// over HTTP for the local web app.
package devserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/newbeeR2020/lockerroom_seed/internal/authprobe"
	"github.com/newbeeR2020/lockerroom_seed/internal/fixtures"
	"github.com/rs/zerolog"
)

// Prober runs one auth probe. *authprobe.Probe satisfies it.
type Prober interface {
	Run(ctx context.Context) authprobe.Report
}

type Server struct {
	Probe     Prober
	WebOrigin string
	Log       zerolog.Logger
}

// Handler returns the router wrapped in CORS for the web app origin.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "ok")
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fixtures/users", s.listUsers).Methods("GET")
	api.HandleFunc("/fixtures/reviews", s.listReviews).Methods("GET")
	api.HandleFunc("/auth/status", s.authStatus).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{s.WebOrigin}),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(r)
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, fixtures.Users())
}

func (s *Server) listReviews(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, fixtures.Reviews())
}

type authStatusResp struct {
	Key       string `json:"key"`
	Result    string `json:"result"`
	Status    string `json:"status"`
	Ambiguous bool   `json:"ambiguous"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) authStatus(w http.ResponseWriter, r *http.Request) {
	if s.Probe == nil {
		http.Error(w, "auth probe not configured", http.StatusServiceUnavailable)
		return
	}
	rep := s.Probe.Run(r.Context())
	out := authStatusResp{
		Key:       rep.Key,
		Result:    rep.Result.String(),
		Status:    rep.Status,
		Ambiguous: rep.Ambiguous,
	}
	// "not found" is the healthy outcome, not an error
	if rep.Err != nil && rep.Result != authprobe.NotFound {
		out.Error = rep.Err.Error()
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error().Err(err).Msg("encode response")
	}
}
