// Package server exposes the chord pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chordtabs/internal/tabs"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

// Server serves fingerings from one dictionary. It holds no per-request state.
type Server struct {
	dict          *tabs.Dictionary
	logger        *zap.Logger
	allowedOrigin string
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigin sets the Access-Control-Allow-Origin value.
func WithAllowedOrigin(origin string) Option {
	return func(s *Server) { s.allowedOrigin = origin }
}

// New creates a Server for dict.
func New(dict *tabs.Dictionary, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{dict: dict, logger: logger, allowedOrigin: "*"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.health)
	mux.HandleFunc("/tabs", s.getTab)
	mux.HandleFunc("/chords/", s.getChordByName)
	mux.HandleFunc("/fingers/", s.getChordsByFingering)
	mux.HandleFunc("/types", s.listTypes)

	return s.requestID(s.cors(mux))
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestID keeps a caller supplied id or assigns a new one, and logs the request
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		s.logger.Debug("Request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

// TabResponse is the body returned for a generated fingering.
type TabResponse struct {
	Request    tabs.Request   `json:"request"`
	Fingering  tabs.Fingering `json:"fingering"`
	Pattern    string         `json:"pattern"`
	Valid      bool           `json:"valid"`
	Candidates int            `json:"candidates"`
}

// TypeInfo describes one chord type of the dictionary.
type TypeInfo struct {
	Name    tabs.ChordType `json:"name"`
	Aliases []string       `json:"aliases"`
	Shapes  []tabs.Shape   `json:"shapes"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getTab serves /tabs?root=&type=&shape=&position=&option=
func (s *Server) getTab(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := requestFromQuery(q.Get("root"), q.Get("type"), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// An unresolved request is a normal result, not an error
	s.writeJSON(w, http.StatusOK, s.tab(req))
}

func (s *Server) getChordByName(w http.ResponseWriter, r *http.Request) {
	// Extract chord name from URL
	name := strings.TrimPrefix(r.URL.Path, "/chords/")
	if strings.TrimSpace(name) == "" {
		http.Error(w, "Chord name required", http.StatusBadRequest)
		return
	}

	root, abbrev, err := tabs.ParseChordName(name)
	if err != nil {
		http.Error(w, "Chord not found", http.StatusNotFound)
		return
	}

	req, err := requestFromQuery(root, abbrev, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := s.tab(req)
	if !resp.Valid {
		http.Error(w, "Chord not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getChordsByFingering(w http.ResponseWriter, r *http.Request) {
	// Extract fingering pattern from URL
	fingering := strings.TrimPrefix(r.URL.Path, "/fingers/")
	if fingering == "" {
		http.Error(w, "Fingering pattern required", http.StatusBadRequest)
		return
	}

	pattern, err := tabs.ParsePattern(fingering)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matches := s.dict.Identify(pattern)
	if len(matches) == 0 {
		http.Error(w, "No chords found with this fingering", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, matches)
}

func (s *Server) listTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]TypeInfo, 0, len(s.dict.Types()))
	for _, typ := range s.dict.Types() {
		types = append(types, TypeInfo{
			Name:    typ,
			Aliases: s.dict.Aliases(typ),
			Shapes:  s.dict.Shapes(typ),
		})
	}
	s.writeJSON(w, http.StatusOK, types)
}

func (s *Server) tab(req tabs.Request) TabResponse {
	candidates := s.dict.Candidates(req)
	f := tabs.Select(candidates, req.Option)
	return TabResponse{
		Request:    req,
		Fingering:  f,
		Pattern:    f.Pattern(),
		Valid:      f.Valid(),
		Candidates: len(candidates),
	}
}

// requestFromQuery builds a request from query parameters. option must be an
// integer when present.
func requestFromQuery(root, abbrev string, q map[string][]string) (tabs.Request, error) {
	get := func(key string) string {
		if v := q[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	req := tabs.Request{
		Root:     root,
		Type:     abbrev,
		Shape:    get("shape"),
		Position: get("position"),
	}
	if opt := get("option"); opt != "" {
		n, err := strconv.Atoi(opt)
		if err != nil {
			return req, errors.New("option must be an integer")
		}
		req.Option = n
	}
	return req, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Error encoding response", zap.Error(err))
	}
}
