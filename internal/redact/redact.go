// Package redact scrubs connection strings, credentials, SQL text, host names
// and file paths from error messages before they are written to the logs.
// Database driver errors routinely echo the DSN or the failing statement;
// neither should reach a log aggregator verbatim.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	HostPlaceholder       = "[REDACTED_HOST]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order. DSNs go first so the host rule does not split
// them, and paths precede host names so file names are not taken for hosts.
var rules = []rule{
	{
		// scheme://user:pass@ in any connection URL
		regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^\s/@]+@`),
		CredentialPlaceholder,
	},
	{
		// key=value passwords in libpq-style DSNs
		regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*'?[^'\s&]+'?`),
		CredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|WITH)\b[\s\S]*?\b(FROM|INTO|SET)\b[^;:\n]*`),
		SQLPlaceholder,
	},
	{
		regexp.MustCompile(`(?:/[\w.-]+){2,}`),
		PathPlaceholder,
	},
	{
		regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`),
		HostPlaceholder,
	},
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		HostPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
