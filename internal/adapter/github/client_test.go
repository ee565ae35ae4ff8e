package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{"plain URL", "https://github.com/acme/widget", "acme", "widget", false},
		{"trailing slash", "https://github.com/acme/widget/", "acme", "widget", false},
		{"query string", "https://github.com/acme/widget?tab=readme", "acme", "widget", false},
		{"fragment", "https://github.com/acme/widget#readme", "acme", "widget", false},
		{"deep path", "https://github.com/acme/widget/tree/main", "acme", "widget", false},
		{"no owner", "https://github.com/acme", "", "", true},
		{"not github", "https://gitlab.com/acme/widget", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := ParseRepoURL(tt.url)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("ParseRepoURL() error = %v, want ErrInvalidURL", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseRepoURL() unexpected error = %v", err)
			}
			if owner != tt.wantOwner || name != tt.wantName {
				t.Errorf("ParseRepoURL() = %q/%q, want %q/%q", owner, name, tt.wantOwner, tt.wantName)
			}
		})
	}
}

// collectServer builds a fake GitHub API where each endpoint's behavior is
// set per test case.
func collectServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

const repoInfoBody = `{"name":"widget","description":"A widget maker","stargazers_count":42,"forks_count":7,"language":"Go"}`

func TestClient_Collect_Success(t *testing.T) {
	readme := base64.StdEncoding.EncodeToString([]byte("# Widget\n\nMakes widgets."))
	srv := collectServer(t, map[string]http.HandlerFunc{
		"/repos/acme/widget":              jsonHandler(200, repoInfoBody),
		"/repos/acme/widget/readme":       jsonHandler(200, fmt.Sprintf(`{"content":%q}`, readme)),
		"/repos/acme/widget/contributors": jsonHandler(200, `[{"login":"a"},{"login":"b"}]`),
		"/repos/acme/widget/commits":      jsonHandler(200, `[{"sha":"1"}]`),
		"/repos/acme/widget/issues":       jsonHandler(200, `[{"number":1},{"number":2},{"number":3}]`),
	})

	client := NewClient("tok", ClientConfig{BaseURL: srv.URL}, nil)
	record, err := client.Collect(context.Background(), "https://github.com/acme/widget")
	if err != nil {
		t.Fatalf("Collect() unexpected error = %v", err)
	}

	if !record.Valid() {
		t.Fatal("Collect() returned invalid record")
	}
	if record.Name() != "widget" {
		t.Errorf("record name = %q, want %q", record.Name(), "widget")
	}
	if record.Readme != "# Widget\n\nMakes widgets." {
		t.Errorf("readme = %q, want decoded content", record.Readme)
	}
	if len(record.Contributors) != 2 {
		t.Errorf("contributors = %d, want 2", len(record.Contributors))
	}
	if len(record.Commits) != 1 {
		t.Errorf("commits = %d, want 1", len(record.Commits))
	}
	if len(record.Issues) != 3 {
		t.Errorf("issues = %d, want 3", len(record.Issues))
	}
}

func TestClient_Collect_PartialFailureDegrades(t *testing.T) {
	srv := collectServer(t, map[string]http.HandlerFunc{
		"/repos/acme/widget":              jsonHandler(200, repoInfoBody),
		"/repos/acme/widget/readme":       jsonHandler(404, `{}`),
		"/repos/acme/widget/contributors": jsonHandler(500, `boom`),
		"/repos/acme/widget/commits":      jsonHandler(200, `not json`),
		"/repos/acme/widget/issues":       jsonHandler(200, `[]`),
	})

	client := NewClient("tok", ClientConfig{BaseURL: srv.URL}, nil)
	record, err := client.Collect(context.Background(), "https://github.com/acme/widget")
	if err != nil {
		t.Fatalf("Collect() unexpected error = %v", err)
	}

	if !record.Valid() {
		t.Fatal("record invalid despite metadata success")
	}
	if record.Readme != "" {
		t.Errorf("readme = %q, want empty after 404", record.Readme)
	}
	if len(record.Contributors) != 0 {
		t.Errorf("contributors = %d, want 0 after 500", len(record.Contributors))
	}
	if len(record.Commits) != 0 {
		t.Errorf("commits = %d, want 0 after unreadable payload", len(record.Commits))
	}
}

func TestClient_Collect_ReadmeDecodeFailureDegrades(t *testing.T) {
	srv := collectServer(t, map[string]http.HandlerFunc{
		"/repos/acme/widget":              jsonHandler(200, repoInfoBody),
		"/repos/acme/widget/readme":       jsonHandler(200, `{"content":"%%% not base64 %%%"}`),
		"/repos/acme/widget/contributors": jsonHandler(200, `[]`),
		"/repos/acme/widget/commits":      jsonHandler(200, `[]`),
		"/repos/acme/widget/issues":       jsonHandler(200, `[]`),
	})

	client := NewClient("tok", ClientConfig{BaseURL: srv.URL}, nil)
	record, err := client.Collect(context.Background(), "https://github.com/acme/widget")
	if err != nil {
		t.Fatalf("Collect() unexpected error = %v", err)
	}
	if record.Readme != "" {
		t.Errorf("readme = %q, want empty after decode failure", record.Readme)
	}
}

func TestClient_Collect_MetadataErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"404 maps to not found", 404, ErrRepositoryNotFound},
		{"403 maps to access denied", 403, ErrAccessDenied},
		{"500 maps to upstream unavailable", 500, ErrUpstreamUnavailable},
		{"502 maps to upstream unavailable", 502, ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := collectServer(t, map[string]http.HandlerFunc{
				"/repos/acme/widget": jsonHandler(tt.status, `{"message":"nope"}`),
				"/": jsonHandler(200, `[]`),
			})

			client := NewClient("tok", ClientConfig{BaseURL: srv.URL}, nil)
			record, err := client.Collect(context.Background(), "https://github.com/acme/widget")

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Collect() error = %v, want %v", err, tt.wantErr)
			}
			if record != nil {
				t.Error("Collect() returned record alongside fatal error")
			}
		})
	}
}

func TestClient_Collect_MissingToken(t *testing.T) {
	client := NewClient("", ClientConfig{}, nil)
	_, err := client.Collect(context.Background(), "https://github.com/acme/widget")
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("Collect() error = %v, want ErrMissingToken", err)
	}
}

func TestClient_Collect_InvalidURL(t *testing.T) {
	client := NewClient("tok", ClientConfig{}, nil)
	_, err := client.Collect(context.Background(), "https://example.com/acme/widget")
	if !errors.Is(err, ErrInvalidURL) {
		t.Errorf("Collect() error = %v, want ErrInvalidURL", err)
	}
}
