// Package logging provides structured logging for the nacm engine and
// its command-line host.
package logging

import "github.com/google/uuid"

// GenerateRequestID generates a unique request ID for correlating the
// log lines of a single evaluate_rpc/evaluate_write/evaluate_read call.
func GenerateRequestID() string {
	return uuid.NewString()
}
