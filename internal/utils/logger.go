package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per domain event. Messages stay short
// summaries; raw payloads never go to the log.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
