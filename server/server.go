package server

import (
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	"github.com/redwire/wiretalk/parser"
	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/pkg/enrich"
	"github.com/redwire/wiretalk/resources"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxRequestBytes caps how much raw log text a single parse request may carry
const maxRequestBytes = 16 << 20

type (
	// Server exposes the parser and the enrichment lookups over HTTP
	Server struct {
		address  string
		enricher *enrich.Enricher
		log      *log.Logger
		router   *mux.Router
	}

	// parseResponse carries the full analysis of one submitted log text
	parseResponse struct {
		LineCount     int                   `json:"line_count"`
		Skipped       int                   `json:"skipped"`
		Conversations *conversation.Results `json:"conversations"`
		Parties       *conversation.Parties `json:"parties,omitempty"`
	}
)

// New creates a Server bound to the configured address
func New(res *resources.Resources) *Server {
	s := &Server{
		address:  res.Config.S.Server.BindAddress,
		enricher: enrich.NewEnricher(&res.Config.S.Enrich, &res.Config.R.Enrich, res.Log),
		log:      res.Log,
	}

	s.router = mux.NewRouter()
	s.router.HandleFunc("/api/parse", s.handleParse).Methods("POST")
	s.router.HandleFunc("/api/lookup/{identifier}", s.handleLookup).Methods("GET")
	s.router.HandleFunc("/api/health", s.handleHealth).Methods("GET")

	return s
}

// Router exposes the route table, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the listener fails
func (s *Server) ListenAndServe() error {
	s.log.WithFields(log.Fields{
		"address": s.address,
	}).Info("Starting api server")

	server := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}
	return server.ListenAndServe()
}

// handleParse accepts raw log text and returns the grouped conversations
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	if len(body) == 0 {
		s.writeError(w, http.StatusBadRequest, "empty request body")
		return
	}

	results := parser.ParseText(string(body), s.log)

	resp := parseResponse{
		LineCount:     results.LineCount,
		Skipped:       results.Skipped,
		Conversations: conversation.Build(results.Messages),
		Parties:       conversation.ResolveParties(results.Messages),
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleLookup classifies and enriches a single endpoint identifier
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	results := s.enricher.Enrich([]string{identifier})
	if len(results) == 0 {
		s.writeError(w, http.StatusBadRequest, "no identifier given")
		return
	}
	s.writeJSON(w, http.StatusOK, results[0])
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("Failed to encode api response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
