package diag

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr logger used for diagnostics.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "pathshadow",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
