package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line for a domain action, tagged so it can be joined
// with the HTTP request log. Message is a short summary; never put passenger
// documents or other identifying payload in it.
func LogEvent(requestID, module, action, message string) {
	rid := strings.TrimSpace(requestID)
	if rid == "" {
		rid = "-"
	}
	log.Printf("[%s] request_id=%s action=%s %s", strings.ToUpper(module), rid, action, message)
}
