package domain

import "encoding/json"

// RepositoryRecord is the consolidated result of the repository data
// collection. Info must be present for the record to be valid; the
// remaining fields degrade independently to empty on partial failure.
type RepositoryRecord struct {
	Readme       string            `json:"readme"`
	Info         map[string]any    `json:"repoInfo"`
	Contributors []json.RawMessage `json:"contributors"`
	Commits      []json.RawMessage `json:"commits"`
	Issues       []json.RawMessage `json:"issues"`
}

// Valid reports whether the record carries repository metadata.
func (r *RepositoryRecord) Valid() bool {
	return r != nil && len(r.Info) > 0
}

// InfoString returns a string metadata field, or fallback when absent.
func (r *RepositoryRecord) InfoString(key, fallback string) string {
	if r == nil {
		return fallback
	}
	if v, ok := r.Info[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// InfoInt returns a numeric metadata field, or 0 when absent. GitHub
// counts arrive as JSON numbers, which decode to float64.
func (r *RepositoryRecord) InfoInt(key string) int {
	if r == nil {
		return 0
	}
	switch v := r.Info[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Name returns the repository name, or a generic placeholder.
func (r *RepositoryRecord) Name() string {
	return r.InfoString("name", "GitHub Project")
}

// Description returns the repository description, or a generic placeholder.
func (r *RepositoryRecord) Description() string {
	return r.InfoString("description", "An innovative software project")
}

// Language returns the primary language, or "Unknown".
func (r *RepositoryRecord) Language() string {
	return r.InfoString("language", "Unknown")
}

// Stars returns the stargazer count.
func (r *RepositoryRecord) Stars() int {
	return r.InfoInt("stargazers_count")
}

// Forks returns the fork count.
func (r *RepositoryRecord) Forks() int {
	return r.InfoInt("forks_count")
}
