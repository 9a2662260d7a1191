// Package llm asks the Anthropic API for short English glosses of Hawaiian
// words.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	anthropicAPIURL = "https://api.anthropic.com/v1/messages"
	defaultModel    = "claude-sonnet-4-20250514"
)

// ErrNoAPIKey is returned by NewClient when ANTHROPIC_API_KEY is unset.
var ErrNoAPIKey = errors.New("ANTHROPIC_API_KEY environment variable not set")

// Client is an Anthropic API client.
type Client struct {
	apiKey     string
	httpClient *http.Client
	model      string
	url        string
}

// GlossRequest describes the word to gloss.
type GlossRequest struct {
	Word          string // Hawaiian word as written
	Pronunciation string // English-phonetic spelling
	Meaning       string // Known meaning, if any, to refine
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a client from the ANTHROPIC_API_KEY environment variable.
func NewClient() (*Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return newClient(apiKey, anthropicAPIURL), nil
}

func newClient(apiKey, url string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		model: defaultModel,
		url:   url,
	}
}

// Gloss returns a one or two sentence English explanation of a word.
func (c *Client) Gloss(ctx context.Context, g GlossRequest) (string, error) {
	req := request{
		Model:     c.model,
		MaxTokens: 200,
		Messages: []message{
			{Role: "user", Content: buildPrompt(g)},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response (status %d): %w", resp.StatusCode, err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return strings.TrimSpace(apiResp.Content[0].Text), nil
}

func buildPrompt(g GlossRequest) string {
	var sb strings.Builder

	sb.WriteString("You are helping an English speaker learn Hawaiian vocabulary.\n\n")
	fmt.Fprintf(&sb, "Word: %s\n", g.Word)
	if g.Pronunciation != "" {
		fmt.Fprintf(&sb, "Pronunciation: %s\n", g.Pronunciation)
	}
	if g.Meaning != "" {
		fmt.Fprintf(&sb, "Known meaning: %s\n", g.Meaning)
	}
	sb.WriteString("\nGive the English meaning of the word in one or two short sentences. ")
	sb.WriteString("If the word is a name or phrase, say so. ")
	sb.WriteString("If it is not Hawaiian, say that instead. Output only the gloss.")

	return sb.String()
}
