package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/charmbracelet/log"

	"pathshadow/internal/diag"
	"pathshadow/internal/locate"
	"pathshadow/internal/model"
	"pathshadow/internal/scan"
	"pathshadow/internal/shadow"
	"pathshadow/internal/validate"
)

// Server answers the three path inspections over HTTP as JSON.
type Server struct {
	lookup scan.LookupFunc
	logger *log.Logger
}

// NewServer creates a Server reading the default search path through lookup.
func NewServer(lookup scan.LookupFunc, logger *log.Logger) *Server {
	return &Server{lookup: lookup, logger: logger}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/shadows", s.handleShadows)
	mux.HandleFunc("GET /api/where", s.handleWhere)
	mux.HandleFunc("GET /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/version", s.handleVersion)
	return mux
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("Starting pathshadow web server", "address", "http://"+addr)
	return http.ListenAndServe(addr, s.Handler())
}

// searchPath resolves ?path= or falls back to the server's environment.
func (s *Server) searchPath(r *http.Request) (string, error) {
	q := r.URL.Query()
	return scan.Resolve(q.Get("path"), q.Has("path"), s.lookup)
}

func (s *Server) handleShadows(w http.ResponseWriter, r *http.Request) {
	vis, err := model.ParseVisibility(r.URL.Query().Get("show_same"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	raw, err := s.searchPath(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	diags := &diag.Collector{}
	det := shadow.NewDetector(nil, diags)
	events := slices.Collect(shadow.Filter(det.Detect(scan.NewScanner(diags).Scan(scan.Split(raw))), vis))
	if events == nil {
		events = []model.ShadowEvent{}
	}

	s.writeJSON(w, struct {
		Events      []model.ShadowEvent `json:"events"`
		Diagnostics []string            `json:"diagnostics"`
	}{events, messages(diags)})
}

func (s *Server) handleWhere(w http.ResponseWriter, r *http.Request) {
	names := r.URL.Query()["name"]
	if len(names) == 0 {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	raw, err := s.searchPath(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	diags := &diag.Collector{}
	res := locate.New(scan.NewScanner(diags), diags).Locate(scan.Split(raw), names, nil)
	if res.Matches == nil {
		res.Matches = []model.Match{}
	}
	missing := res.Missing()
	if missing == nil {
		missing = []string{}
	}

	s.writeJSON(w, struct {
		locate.Result
		Missing     []string `json:"missing"`
		Diagnostics []string `json:"diagnostics"`
	}{res, missing, messages(diags)})
}

type issueJSON struct {
	model.Issue
	Message string `json:"message"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, err := s.searchPath(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	issues := []issueJSON{}
	for _, is := range validate.New(nil).Validate(raw) {
		issues = append(issues, issueJSON{Issue: is, Message: validate.Message(is)})
	}
	s.writeJSON(w, struct {
		Issues []issueJSON `json:"issues"`
	}{issues})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": model.Version})
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, diag.ErrSourceUnavailable) {
		status = http.StatusServiceUnavailable
	}
	s.logger.Error("request failed", "err", err)
	http.Error(w, err.Error(), status)
}

func messages(c *diag.Collector) []string {
	out := []string{}
	for _, d := range c.Items() {
		out = append(out, d.Error())
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}
