package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"readhelper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL)
	require.NoError(t, err)
	return client, server
}

func TestAnnotate(t *testing.T) {
	passage := domain.Passage{
		{{Word: "The"}, {Word: "scheduler", Explanation: "assigns work"}},
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/get_keywords/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "The scheduler", body["passage"])

		json.NewEncoder(w).Encode(map[string]any{"keywords_with_explanations": passage})
	}))

	got, err := client.Annotate(context.Background(), "The scheduler")

	assert.NoError(t, err)
	assert.Equal(t, passage, got)
}

func TestAnnotateEmptyPassageBlockedBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := client.Annotate(context.Background(), "   \n ")

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, int64(0), calls.Load())
}

func TestAuthExpiredSurfacedDistinctly(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := client.SavedPassages(context.Background())

			var authErr *AuthExpiredError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, "Please log in again to continue.", err.Error())
		})
	}
}

func TestServerErrorBecomesTransportError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.NewKeyword(context.Background(), domain.Passage{}, "mutex")

	var terr *TransportError
	assert.ErrorAs(t, err, &terr)
}

func TestLoginWrongPasswordIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Invalid username or password",
		})
	}))

	resp, err := client.Login(context.Background(), "reader", "wrong")

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid username or password", resp.Message)
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	})
	mux.HandleFunc("/profile/", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "ok",
			"user":    domain.User{ID: 1, Username: "reader"},
		})
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Login(context.Background(), "reader", "secret123")
	require.NoError(t, err)

	resp, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "reader", resp.User.Username)
}

func TestChangePasswordValidation(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		field   string
	}{
		{
			name:    "too short",
			current: "oldpass",
			next:    "abc",
			confirm: "abc",
			field:   "new_password",
		},
		{
			name:    "mismatch",
			current: "oldpass",
			next:    "abcdefg",
			confirm: "abcdefh",
			field:   "new_password",
		},
		{
			name:    "missing current",
			current: "",
			next:    "abcdefg",
			confirm: "abcdefg",
			field:   "current_password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int64
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
			}))

			_, err := client.ChangePassword(context.Background(), tt.current, tt.next, tt.confirm)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, int64(0), calls.Load(), "no network call expected")
		})
	}
}

func TestUpdateProfileRejectsDuplicateKeywords(t *testing.T) {
	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := client.UpdateProfile(context.Background(), ProfileUpdate{
		Email:         "reader@example.com",
		KnownKeywords: []string{"API", "api"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "known_keywords", verr.Field)
	assert.Equal(t, int64(0), calls.Load())
}

func TestUpdateProfileNormalizesKeywords(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body ProfileUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"api", "mutex"}, body.KnownKeywords)

		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))

	resp, err := client.UpdateProfile(context.Background(), ProfileUpdate{
		Email:         "reader@example.com",
		KnownKeywords: []string{" API ", "Mutex"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestDeletePassageNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "passage not found"})
	}))

	err := client.DeletePassage(context.Background(), 42)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "passage not found", nf.Message)
}

func TestClearKeywordHistoryBodies(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		check    func(t *testing.T, body map[string]any)
	}{
		{
			name:     "clear all",
			keywords: nil,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["clear_all"])
				assert.NotContains(t, body, "keywords")
			},
		},
		{
			name:     "clear subset",
			keywords: []string{"api", "mutex"},
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, []any{"api", "mutex"}, body["keywords"])
				assert.NotContains(t, body, "clear_all")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				tt.check(t, body)

				json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "cleared"})
			}))

			resp, err := client.ClearKeywordHistory(context.Background(), tt.keywords)

			require.NoError(t, err)
			assert.True(t, resp.Success)
		})
	}
}

func TestTransportErrorOnUnreachableServer(t *testing.T) {
	client, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = client.Profile(context.Background())

	var terr *TransportError
	assert.True(t, errors.As(err, &terr))
}
