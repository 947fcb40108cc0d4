package hosting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.BaseURL = server.URL

	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestCreateTokenSendsBasicAuth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/authorizations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		username, password, ok := r.BasicAuth()
		if !ok || username != "octocat" || password != "hunter2" {
			t.Errorf("basic auth = (%q, %q, %v), want octocat credentials", username, password, ok)
		}

		var body struct {
			Scopes      []string `json:"scopes"`
			Note        string   `json:"note"`
			Fingerprint string   `json:"fingerprint"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body.Note == "" || body.Fingerprint == "" {
			t.Errorf("request missing note/fingerprint: %+v", body)
		}

		writeJSON(w, http.StatusCreated, map[string]string{"token": "tok_abc123"})
	})

	client.AuthenticateBasic("octocat", "hunter2")
	token, err := client.CreateToken(context.Background(), []string{"repo"}, "test note", "test/fingerprint")
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}
	if token != "tok_abc123" {
		t.Fatalf("CreateToken = %q, want %q", token, "tok_abc123")
	}
}

func TestCreateTokenErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   AuthErrorKind
	}{
		{name: "bad credentials", status: http.StatusUnauthorized, want: AuthUnauthorized},
		{name: "fingerprint taken", status: http.StatusUnprocessableEntity, want: AuthTokenExists},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, map[string]string{"message": tc.name})
			})

			client.AuthenticateBasic("octocat", "wrong")
			_, err := client.CreateToken(context.Background(), []string{"repo"}, "note", "fp")

			var authErr *AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("CreateToken error = %v, want *AuthError", err)
			}
			if authErr.Kind != tc.want {
				t.Fatalf("AuthError.Kind = %v, want %v", authErr.Kind, tc.want)
			}
		})
	}
}

func TestVerifySendsToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "token tok_abc123" {
			t.Errorf("Authorization = %q, want token header", got)
		}
		writeJSON(w, http.StatusOK, map[string]string{"login": "octocat"})
	})

	client.AuthenticateToken("tok_abc123")
	if err := client.Verify(context.Background()); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
}

func TestVerifyRejectsStaleToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
	})

	client.AuthenticateToken("stale")
	err := client.Verify(context.Background())

	var repoErr *RepoError
	if !errors.As(err, &repoErr) || repoErr.Kind != RepoUnauthorized {
		t.Fatalf("Verify error = %v, want an Unauthorized RepoError", err)
	}
}

func TestCreateRepositoryReturnsSSHURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/repos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Private     bool   `json:"private"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body.Name != "myrepo" || !body.Private {
			t.Errorf("request body = %+v, want private myrepo", body)
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"ssh_url":   "git@github.com:octocat/myrepo.git",
			"clone_url": "https://github.com/octocat/myrepo.git",
		})
	})

	client.AuthenticateToken("tok")
	url, err := client.CreateRepository(context.Background(), Descriptor{Name: "myrepo", Private: true})
	if err != nil {
		t.Fatalf("CreateRepository returned error: %v", err)
	}
	if url != "git@github.com:octocat/myrepo.git" {
		t.Fatalf("CreateRepository = %q, want ssh url", url)
	}
}

func TestCreateRepositoryErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   RepoErrorKind
	}{
		{name: "name conflict", status: http.StatusUnprocessableEntity, want: RepoNameConflict},
		{name: "expired token", status: http.StatusUnauthorized, want: RepoUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: RepoUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, map[string]string{"message": tc.name})
			})

			client.AuthenticateToken("tok")
			_, err := client.CreateRepository(context.Background(), Descriptor{Name: "myrepo"})

			var repoErr *RepoError
			if !errors.As(err, &repoErr) {
				t.Fatalf("CreateRepository error = %v, want *RepoError", err)
			}
			if repoErr.Kind != tc.want {
				t.Fatalf("RepoError.Kind = %v, want %v", repoErr.Kind, tc.want)
			}
		})
	}
}
