// Package redact scrubs sensitive fragments from error strings before they
// are logged. Errors that cross the persistence or auth boundary can embed
// connection strings, tokens, or email addresses; log sinks should never
// receive them raw.
package redact

import "regexp"

// Redaction placeholders
const (
	credentialPlaceholder = "[REDACTED_CREDENTIAL]"
	tokenPlaceholder      = "[REDACTED_TOKEN]"
	emailPlaceholder      = "[REDACTED_EMAIL]"
)

var (
	// Database connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Three-part base64url JWT tokens
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String scrubs sensitive fragments from s.
func String(s string) string {
	s = dbConnRegex.ReplaceAllString(s, credentialPlaceholder+"@")
	s = jwtTokenRegex.ReplaceAllString(s, tokenPlaceholder)
	s = emailRegex.ReplaceAllString(s, emailPlaceholder)
	return s
}

// Error scrubs the error's message; returns "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
