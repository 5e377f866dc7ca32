package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTP calls a remote explanation model over JSON. The upstream accepts
// {"terms": [...], "passage": "..."} and answers
// {"explanations": {"term": {"explanation": "...", "reason": "..."}}}.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP creates an explainer for the given upstream URL.
func NewHTTP(url string) *HTTP {
	return &HTTP{
		url: url,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type httpRequest struct {
	Terms   []string `json:"terms"`
	Passage string   `json:"passage"`
}

type httpResponse struct {
	Explanations map[string]Explanation `json:"explanations"`
}

// Explain forwards the terms to the upstream model.
func (h *HTTP) Explain(ctx context.Context, terms []string, passage string) (map[string]Explanation, error) {
	if len(terms) == 0 {
		return map[string]Explanation{}, nil
	}

	encoded, err := json.Marshal(httpRequest{Terms: terms, Passage: passage})
	if err != nil {
		return nil, fmt.Errorf("encode explain request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build explain request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call explainer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explainer returned status %d", resp.StatusCode)
	}

	var out httpResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode explain response: %w", err)
	}
	if out.Explanations == nil {
		out.Explanations = map[string]Explanation{}
	}
	return out.Explanations, nil
}
