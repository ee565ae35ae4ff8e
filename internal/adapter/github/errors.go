package github

import "errors"

// Collector error taxonomy. Only the metadata lookup can produce a fatal
// error; the remaining lookups degrade their field to empty.
var (
	// ErrInvalidURL means the input did not match host/owner/name.
	ErrInvalidURL = errors.New("invalid GitHub repository URL")

	// ErrRepositoryNotFound maps HTTP 404 on the metadata lookup.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrAccessDenied maps HTTP 403 on the metadata lookup.
	ErrAccessDenied = errors.New("access denied")

	// ErrUpstreamUnavailable covers every other metadata failure.
	ErrUpstreamUnavailable = errors.New("github upstream unavailable")

	// ErrMissingToken means no GITHUB_TOKEN was configured.
	ErrMissingToken = errors.New("github token not configured")
)
