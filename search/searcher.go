package search

import "context"

// ResultType classifies a search hit.
type ResultType string

const (
	TypeGamer   ResultType = "gamer"
	TypeGroup   ResultType = "group"
	TypeContent ResultType = "content"
)

// Result is one platform-wide search hit.
type Result struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        ResultType `json:"type"`
}

// Searcher matches a free-text query against the platform dataset.
// Implementations may call out to a completion model; callers treat any
// error as "zero results".
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
