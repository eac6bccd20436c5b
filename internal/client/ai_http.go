package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
)

const defaultAITimeout = 60 * time.Second

// AIConfig points at the requirements-extraction / content-generation
// service.
type AIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// AIClient talks JSON to the external AI service. It implements both
// port.Extractor and port.Generator; empty output from the service is
// reported as ErrGeneration so the orchestrator aborts without mutating
// anything.
type AIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAIClient(cfg AIConfig) *AIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	return &AIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *AIClient) post(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// Extract turns raw email text into structured project requirements.
func (c *AIClient) Extract(ctx context.Context, emailBody string) (*domain.ExtractedRequirements, error) {
	var out domain.ExtractedRequirements
	err := c.post(ctx, "/v1/extract", map[string]string{"email_body": emailBody}, &out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	if out.ProjectName == "" && out.Description == "" {
		return nil, fmt.Errorf("%w: extractor returned empty requirements", domain.ErrGeneration)
	}
	return &out, nil
}

type generateResponse struct {
	Content string `json:"content"`
}

// Generate produces proposal content for the extracted requirements.
func (c *AIClient) Generate(ctx context.Context, req domain.ExtractedRequirements) (string, error) {
	var out generateResponse
	if err := c.post(ctx, "/v1/generate", req, &out); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	if strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("%w: generator returned empty content", domain.ErrGeneration)
	}
	return out.Content, nil
}

// Improve revises current content according to reviewer feedback.
func (c *AIClient) Improve(ctx context.Context, feedback, currentContent string) (string, error) {
	var out generateResponse
	payload := map[string]string{"feedback": feedback, "content": currentContent}
	if err := c.post(ctx, "/v1/improve", payload, &out); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	if strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("%w: improver returned empty content", domain.ErrGeneration)
	}
	return out.Content, nil
}

// Review scores proposal content.
func (c *AIClient) Review(ctx context.Context, content string) (*port.ContentReview, error) {
	var out port.ContentReview
	if err := c.post(ctx, "/v1/review", map[string]string{"content": content}, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	return &out, nil
}
