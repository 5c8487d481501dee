package search

import (
	"context"
	"strings"
)

// StaticSearcher is the fallback used when no completion endpoint is
// configured: case-insensitive substring matching over the dataset.
type StaticSearcher struct {
	dataset Dataset
}

func NewStaticSearcher(dataset Dataset) *StaticSearcher {
	return &StaticSearcher{dataset: dataset}
}

func (s *StaticSearcher) Search(_ context.Context, query string) ([]Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Result{}, nil
	}

	results := []Result{}
	collect := func(entries []Entry, t ResultType) {
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Name), q) ||
				strings.Contains(strings.ToLower(e.Description), q) {
				results = append(results, Result{
					ID:          e.ID,
					Title:       e.Name,
					Description: e.Description,
					Type:        t,
				})
			}
		}
	}
	collect(s.dataset.Gamers, TypeGamer)
	collect(s.dataset.Groups, TypeGroup)
	collect(s.dataset.Content, TypeContent)
	return results, nil
}
