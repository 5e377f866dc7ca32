// Package apiclient is the HTTP adapter for the reading-helper backend.
// Session credentials travel in cookies held by the client's jar; every
// call returns either a decoded response or one of the typed errors in
// errors.go.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"readhelper/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the shortest accepted new password.
const MinPasswordLength = 6

// Client talks to one backend base URL on behalf of one user session.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g.
// "http://127.0.0.1:8000/api".
func New(baseURL string) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// AuthResponse is the envelope of login, signup, logout and profile
// operations.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

// StatusResponse is the envelope of simple success/failure operations.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type passageResponse struct {
	Keywords domain.Passage `json:"keywords_with_explanations"`
}

type savedPassagesResponse struct {
	Passages []domain.SavedPassage `json:"passages"`
}

// do performs one JSON round trip. Unauthorized statuses map to
// AuthExpiredError; everything else unexpected becomes TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthExpiredError{}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Message: decodeMessage(resp, "not found")}
	case resp.StatusCode == http.StatusConflict:
		return &ConflictError{Message: decodeMessage(resp, "already exists")}
	case resp.StatusCode >= 400:
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// doPublic is like do but for login/signup, where an error status still
// carries a meaningful {success,message} body (wrong password is a
// normal outcome there, not an expired session).
func (c *Client) doPublic(ctx context.Context, path string, body any) (*AuthResponse, error) {
	op := "POST " + path

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.String()+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &out, nil
}

func decodeMessage(resp *http.Response, fallback string) string {
	var body StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return fallback
}

// Annotate submits a raw passage for keyword extraction and explanation.
func (c *Client) Annotate(ctx context.Context, passage string) (domain.Passage, error) {
	if strings.TrimSpace(passage) == "" {
		return nil, &ValidationError{Field: "passage", Message: "passage must not be empty"}
	}

	var out passageResponse
	err := c.do(ctx, http.MethodPost, "/get_keywords/", map[string]string{"passage": passage}, &out)
	if err != nil {
		return nil, err
	}
	return out.Keywords, nil
}

// NewKeyword requests an explanation for one word of the passage. The
// backend answers with a full replacement passage.
func (c *Client) NewKeyword(ctx context.Context, passage domain.Passage, word string) (domain.Passage, error) {
	if strings.TrimSpace(word) == "" {
		return nil, &ValidationError{Field: "requested_word", Message: "word must not be empty"}
	}

	var out passageResponse
	err := c.do(ctx, http.MethodPost, "/new_keyword/", map[string]any{
		"keywords_with_explanations": passage,
		"requested_word":             word,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Keywords, nil
}

// AddKnownWord marks a word of the passage as already known. The backend
// clears its explanation and answers with a full replacement passage.
func (c *Client) AddKnownWord(ctx context.Context, passage domain.Passage, word string) (domain.Passage, error) {
	if strings.TrimSpace(word) == "" {
		return nil, &ValidationError{Field: "word", Message: "word must not be empty"}
	}

	var out passageResponse
	err := c.do(ctx, http.MethodPost, "/add_known_word_to_passage/", map[string]any{
		"keywords_with_explanations": passage,
		"word":                       word,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Keywords, nil
}

// SavePassage persists the annotated passage to the user's history.
func (c *Client) SavePassage(ctx context.Context, passage domain.Passage) error {
	if len(passage) == 0 {
		return &ValidationError{Field: "passage", Message: "nothing to save"}
	}

	var out StatusResponse
	err := c.do(ctx, http.MethodPost, "/save_passage/", map[string]any{
		"keywords_with_explanations": passage,
	}, &out)
	if err != nil {
		return err
	}
	if !out.Success {
		return &TransportError{Op: "POST /save_passage/", Err: fmt.Errorf("server refused: %s", out.Message)}
	}
	return nil
}

// SavedPassages lists the user's saved passages, newest first.
func (c *Client) SavedPassages(ctx context.Context) ([]domain.SavedPassage, error) {
	var out savedPassagesResponse
	if err := c.do(ctx, http.MethodGet, "/get_all_saved_passages/", nil, &out); err != nil {
		return nil, err
	}
	return out.Passages, nil
}

// DeletePassage removes one saved passage by id.
func (c *Client) DeletePassage(ctx context.Context, passageID int64) error {
	var out StatusResponse
	err := c.do(ctx, http.MethodPost, "/delete_saved_passage/", map[string]int64{
		"passage_id": passageID,
	}, &out)
	if err != nil {
		return err
	}
	if !out.Success {
		return &NotFoundError{Message: out.Message}
	}
	return nil
}

// Login authenticates with username and password. A wrong password is
// reported in the response, not as an error.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "username and password are required"}
	}
	return c.doPublic(ctx, "/login/", map[string]string{
		"username": username,
		"password": password,
	})
}

// Signup registers a new account and logs it in.
func (c *Client) Signup(ctx context.Context, username, email, password, bio string) (*AuthResponse, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "username and password are required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	if len(password) < MinPasswordLength {
		return nil, &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters long", MinPasswordLength)}
	}
	return c.doPublic(ctx, "/signup/", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"bio":      bio,
	})
}

// Logout ends the current session. Safe to call when not logged in.
func (c *Client) Logout(ctx context.Context) error {
	var out StatusResponse
	return c.do(ctx, http.MethodPost, "/logout/", nil, &out)
}

// Profile fetches the current user.
func (c *Client) Profile(ctx context.Context) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodGet, "/profile/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Email         string   `json:"email"`
	Bio           string   `json:"bio"`
	KnownKeywords []string `json:"known_keywords"`
}

// UpdateProfile replaces the profile fields. Known keywords are
// normalized and checked for duplicates before the call.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*AuthResponse, error) {
	if !emailPattern.MatchString(update.Email) {
		return nil, &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}

	var normalized []string
	for _, kw := range update.KnownKeywords {
		next, added := domain.AppendKnownKeyword(normalized, kw)
		if !added {
			return nil, &ValidationError{Field: "known_keywords", Message: fmt.Sprintf("keyword already exists: %s", domain.NormalizeKeyword(kw))}
		}
		normalized = next
	}
	update.KnownKeywords = normalized

	var out AuthResponse
	if err := c.do(ctx, http.MethodPut, "/profile/", update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword verifies the rules client-side, then asks the backend
// to change the password. Never retry this after an ambiguous failure:
// the change may have been applied without an acknowledgment, and a
// retry would submit a now-wrong current password.
func (c *Client) ChangePassword(ctx context.Context, current, newPassword, confirm string) (*AuthResponse, error) {
	if newPassword != confirm {
		return nil, &ValidationError{Field: "new_password", Message: "new passwords do not match"}
	}
	if len(newPassword) < MinPasswordLength {
		return nil, &ValidationError{Field: "new_password", Message: fmt.Sprintf("new password must be at least %d characters long", MinPasswordLength)}
	}
	if current == "" {
		return nil, &ValidationError{Field: "current_password", Message: "current password is required"}
	}

	var out AuthResponse
	err := c.do(ctx, http.MethodPut, "/profile/", map[string]string{
		"current_password": current,
		"new_password":     newPassword,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearKeywordHistory removes keyword history records: all of them when
// keywords is empty, otherwise only the named ones.
func (c *Client) ClearKeywordHistory(ctx context.Context, keywords []string) (*StatusResponse, error) {
	body := map[string]any{"clear_all": true}
	if len(keywords) > 0 {
		body = map[string]any{"keywords": keywords}
	}

	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/clear_user_keyword_history/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
