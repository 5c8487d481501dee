package repositories

import (
	"context"
	"sync"

	"github.com/vort-x/platform/models"
)

type FeedRepository interface {
	CreatePost(ctx context.Context, post *models.FeedItem) error
	GetPost(ctx context.Context, id int) (*models.FeedItem, error)
	ListPosts(ctx context.Context) ([]models.FeedItem, error)
	UpdatePost(ctx context.Context, post *models.FeedItem) error

	CreateStory(ctx context.Context, story *models.Story) error
	ListStories(ctx context.Context) ([]models.Story, error)
}

type memoryFeedRepository struct {
	mu      sync.RWMutex
	ids     *IDGenerator
	posts   []*models.FeedItem // newest first
	stories []models.Story
}

func NewMemoryFeedRepository(ids *IDGenerator) FeedRepository {
	return &memoryFeedRepository{ids: ids}
}

func (r *memoryFeedRepository) CreatePost(_ context.Context, p *models.FeedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.ids.Next()
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	r.posts = append([]*models.FeedItem{cloneFeedItem(p)}, r.posts...)
	return nil
}

func (r *memoryFeedRepository) GetPost(_ context.Context, id int) (*models.FeedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			return cloneFeedItem(p), nil
		}
	}
	return nil, ErrPostNotFound
}

func (r *memoryFeedRepository) ListPosts(_ context.Context) ([]models.FeedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.FeedItem, 0, len(r.posts))
	for _, p := range r.posts {
		result = append(result, *cloneFeedItem(p))
	}
	return result, nil
}

func (r *memoryFeedRepository) UpdatePost(_ context.Context, p *models.FeedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.posts {
		if existing.ID == p.ID {
			r.posts[i] = cloneFeedItem(p)
			return nil
		}
	}
	return ErrPostNotFound
}

func (r *memoryFeedRepository) CreateStory(_ context.Context, s *models.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.ids.Next()
	r.stories = append(r.stories, *s)
	return nil
}

func (r *memoryFeedRepository) ListStories(_ context.Context) ([]models.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Story(nil), r.stories...), nil
}
