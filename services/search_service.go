package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vort-x/platform/search"
)

type SearchService interface {
	// Search never returns an error to the caller: a failing collaborator
	// degrades to zero results.
	Search(ctx context.Context, query string) []search.Result
}

type searchService struct {
	searcher search.Searcher
	logger   *slog.Logger
}

func NewSearchService(searcher search.Searcher, logger *slog.Logger) SearchService {
	return &searchService{searcher: searcher, logger: logger}
}

func (s *searchService) Search(ctx context.Context, query string) []search.Result {
	if strings.TrimSpace(query) == "" {
		return []search.Result{}
	}

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.Warn("search failed, returning empty results",
			slog.String("query", query),
			slog.Any("error", err))
		return []search.Result{}
	}
	if results == nil {
		return []search.Result{}
	}
	return results
}
