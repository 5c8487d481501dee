package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const searchPromptTemplate = `You are a search engine for a gaming social media platform called VORT-X.
Your task is to find relevant results for the user's search query from the available data.
The data includes gamers, groups, and content.
Analyze the user's query and return a JSON object of the form
{"results": [{"id": "...", "title": "...", "description": "...", "type": "gamer|group|content"}]}
with the items most relevant to the query. The title is the name for gamers and groups.
Respond with the JSON object only.

User Query: %s

Available Data (JSON format):
%s`

type CompletionSearcherConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// CompletionSearcher asks a chat-completion endpoint to rank the dataset
// against the query. The model's reply is expected to be the results JSON.
type CompletionSearcher struct {
	client   *http.Client
	endpoint string
	apiKey   string
	model    string
	dataset  Dataset
}

func NewCompletionSearcher(cfg CompletionSearcherConfig, dataset Dataset) (*CompletionSearcher, error) {
	if cfg.Endpoint == "" || cfg.APIKey == "" || cfg.Model == "" {
		return nil, fmt.Errorf("invalid completion searcher configuration: endpoint, api key and model are required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CompletionSearcher{
		client:   &http.Client{Timeout: timeout},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		dataset:  dataset,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *CompletionSearcher) Search(ctx context.Context, query string) ([]Result, error) {
	datasetJSON, err := json.Marshal(s.dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search dataset: %w", err)
	}

	payload, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(searchPromptTemplate, query, datasetJSON)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search completion call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search completion call returned status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode search completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("search completion response contained no choices")
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	// Models occasionally fence the JSON despite the instruction.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var parsed struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search results from completion: %w", err)
	}
	if parsed.Results == nil {
		parsed.Results = []Result{}
	}
	return parsed.Results, nil
}
