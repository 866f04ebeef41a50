// Package ai implements the optional advisory service: description
// refinement, subtask suggestion and the daily briefing. Results are
// purely additive; a missing key or failed call degrades to an empty
// result and never affects core behavior.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ezytask/ezytask/internal/config"
)

// Schema describes the JSON shape a structured generation call must
// return. It mirrors the subset of JSON Schema the endpoint accepts.
type Schema struct {
	Type       string             `json:"type"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// Client is a minimal HTTP client for a Gemini-style text/JSON
// generation endpoint. One request per call; no retries.
type Client struct {
	cfg    config.AIConfig
	client *http.Client
}

// NewClient creates a generation client from the given configuration.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Available reports whether the client has an API key configured.
func (c *Client) Available() bool {
	return c.cfg.APIKey != ""
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends a prompt and returns the response text. When schema is
// non-nil the endpoint is asked for JSON matching it.
func (c *Client) Generate(ctx context.Context, prompt string, schema *Schema) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("no API key configured")
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if schema != nil {
		req.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		}
	} else {
		req.GenerationConfig = &generationConfig{Temperature: 0.7}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if json.Unmarshal(respBody, &ae) == nil && ae.Error.Message != "" {
			return "", fmt.Errorf("generation failed (%d): %s", resp.StatusCode, ae.Error.Message)
		}
		return "", fmt.Errorf("generation failed with status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}
