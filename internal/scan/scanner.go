package scan

import (
	"iter"

	"github.com/charmbracelet/log"

	"pathshadow/internal/diag"
	"pathshadow/internal/model"
)

// Scanner drives the ordered walk over a search path.
type Scanner struct {
	lister *Lister
	logger *log.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithOpen replaces the function used to open directories.
func WithOpen(open OpenFunc) Option {
	return func(s *Scanner) {
		s.lister.open = open
	}
}

// WithLogger logs each directory at debug level as it is scanned.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner that reports unreadable directories and entries to sink.
func NewScanner(sink diag.Sink, opts ...Option) *Scanner {
	s := &Scanner{lister: NewLister(nil, sink)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan yields every non-directory entry of every search path directory,
// strictly in search path order. The sequence is single pass.
func (s *Scanner) Scan(sp SearchPath) iter.Seq[model.Entry] {
	dirs := append(SearchPath(nil), sp...)
	return func(yield func(model.Entry) bool) {
		for i, dir := range dirs {
			if s.logger != nil {
				s.logger.Debug("scanning directory", "index", i, "dir", dir)
			}
			for e := range s.lister.List(i, dir) {
				if !yield(e) {
					return
				}
			}
		}
	}
}
