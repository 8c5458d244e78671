package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-dialogue-be/pkg/parser"
	"ai-dialogue-be/pkg/semantics"
)

// Provider calls an external dependency-parser sidecar over HTTP. The
// sidecar owns the NLP model lifecycle; this client only speaks its JSON
// contract.
type Provider struct {
	BaseURL string
	Client  *http.Client
}

var _ parser.Provider = &Provider{}

func NewProvider(baseURL string) *Provider {
	return &Provider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

func (p *Provider) Parse(ctx context.Context, text string) (*semantics.Thought, error) {
	payloadBytes, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := p.BaseURL + "/parse"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	thought := semantics.NewThought(text)
	if err := json.Unmarshal(bodyBytes, thought); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if thought.InputText == "" {
		thought.InputText = text
	}
	return thought, nil
}
