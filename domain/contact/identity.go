package contact

import (
	"net/http"
	"strings"
)

// UnknownIdentity keys every caller that sent no origin headers. Those
// callers share one rate-limit bucket.
const UnknownIdentity = "unknown"

// ResolveIdentity returns the raw X-Forwarded-For value, else X-Real-IP,
// else UnknownIdentity. Repeated header lines are joined with ", ".
func ResolveIdentity(header http.Header) string {
	if forwarded := joinedHeader(header, "X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := joinedHeader(header, "X-Real-IP"); realIP != "" {
		return realIP
	}
	return UnknownIdentity
}

func joinedHeader(header http.Header, name string) string {
	return strings.Join(header.Values(name), ", ")
}
