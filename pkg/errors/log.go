package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs failures to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// Handle logs a KeelError to stderr.
func (h *LogHandler) Handle(err *KeelError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[keel %s] %s %s: %v\n",
			err.Kind, err.Timestamp.Format("15:04:05.000"), err.Op, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[keel %s] %s: %v\n", err.Kind, err.Op, err.Err)
	}
}
