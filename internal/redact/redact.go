// Package redact scrubs credential-shaped tokens from log lines before they
// are persisted. App logs routinely leak OAuth bearer tokens, API keys, and
// basic-auth URLs; a triage session log must not become a secondary copy of
// those secrets.
package redact

import "regexp"

var sensitivePatterns = []*regexp.Regexp{
	// Bearer tokens in HTTP client logs (OkHttp, Volley, cronet)
	regexp.MustCompile(`(?i)(authorization:\s*)?bearer\s+[A-Za-z0-9._-]{20,}`),

	// Generic key/token assignments dumped by verbose app logging
	regexp.MustCompile(`(?i)(api_key|apikey|api-key|access_token|auth_token|refresh_token|client_secret)\s*[=:]\s*['"]?[A-Za-z0-9._-]{16,}['"]?`),

	// Basic auth embedded in URLs
	regexp.MustCompile(`https?://[^:/\s]+:[^@\s]+@`),

	// Google API keys (common in Android app logs)
	regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`),

	// Private key material pasted into a crash report
	regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`),

	// Password assignments
	regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`),
}

const redactedPlaceholder = "[REDACTED]"

// Redact replaces every credential-shaped token in the input with a
// placeholder. The input is returned unchanged when nothing matches.
func Redact(input string) string {
	result := input
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, redactedPlaceholder)
	}
	return result
}

// RedactLines redacts a batch of lines, preserving order and length.
func RedactLines(lines []string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = Redact(line)
	}
	return result
}
