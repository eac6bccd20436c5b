package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

func TestAIClientExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/extract", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "build us a shop", req["email_body"])

		json.NewEncoder(w).Encode(domain.ExtractedRequirements{
			ProjectName: "Webshop",
			Description: "E-commerce build",
			Features:    []string{"catalog", "checkout"},
		})
	}))
	defer srv.Close()

	c := NewAIClient(AIConfig{BaseURL: srv.URL, APIKey: "test-key"})

	req, err := c.Extract(context.Background(), "build us a shop")

	require.NoError(t, err)
	assert.Equal(t, "Webshop", req.ProjectName)
	assert.Len(t, req.Features, 2)
}

func TestAIClientExtractEmptyResultIsGenerationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.ExtractedRequirements{})
	}))
	defer srv.Close()

	c := NewAIClient(AIConfig{BaseURL: srv.URL})

	_, err := c.Extract(context.Background(), "gibberish")

	assert.ErrorIs(t, err, domain.ErrGeneration)
}

func TestAIClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"content": "Dear client, ..."})
	}))
	defer srv.Close()

	c := NewAIClient(AIConfig{BaseURL: srv.URL})

	content, err := c.Generate(context.Background(), domain.ExtractedRequirements{ProjectName: "Webshop"})

	require.NoError(t, err)
	assert.Equal(t, "Dear client, ...", content)
}

func TestAIClientGenerateEmptyContentIsGenerationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"content": "   "})
	}))
	defer srv.Close()

	c := NewAIClient(AIConfig{BaseURL: srv.URL})

	_, err := c.Generate(context.Background(), domain.ExtractedRequirements{})

	assert.ErrorIs(t, err, domain.ErrGeneration)
}

func TestAIClientUpstreamFailureIsGenerationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewAIClient(AIConfig{BaseURL: srv.URL})

	_, err := c.Extract(context.Background(), "body")

	assert.ErrorIs(t, err, domain.ErrGeneration)
	assert.Contains(t, err.Error(), "model overloaded")
}
