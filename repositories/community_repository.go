package repositories

import (
	"context"
	"sync"

	"github.com/vort-x/platform/models"
)

type CommunityRepository interface {
	// Create assigns an id and prepends. Returns ErrCommunityNameConflict
	// when a community with the exact same name already exists.
	Create(ctx context.Context, community *models.Community) error
	GetByName(ctx context.Context, name string) (*models.Community, error)
	List(ctx context.Context) ([]models.Community, error)
	Update(ctx context.Context, community *models.Community) error
}

type memoryCommunityRepository struct {
	mu          sync.RWMutex
	ids         *IDGenerator
	communities []*models.Community // newest first
}

func NewMemoryCommunityRepository(ids *IDGenerator) CommunityRepository {
	return &memoryCommunityRepository{ids: ids}
}

func (r *memoryCommunityRepository) Create(_ context.Context, c *models.Community) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.communities {
		if existing.Name == c.Name {
			return ErrCommunityNameConflict
		}
	}

	c.ID = r.ids.Next()
	if c.Channels == nil {
		c.Channels = map[string][]models.Message{}
	}
	r.communities = append([]*models.Community{cloneCommunity(c)}, r.communities...)
	return nil
}

func (r *memoryCommunityRepository) GetByName(_ context.Context, name string) (*models.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.communities {
		if c.Name == name {
			return cloneCommunity(c), nil
		}
	}
	return nil, ErrCommunityNotFound
}

func (r *memoryCommunityRepository) List(_ context.Context) ([]models.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Community, 0, len(r.communities))
	for _, c := range r.communities {
		result = append(result, *cloneCommunity(c))
	}
	return result, nil
}

func (r *memoryCommunityRepository) Update(_ context.Context, c *models.Community) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.communities {
		if existing.ID == c.ID {
			r.communities[i] = cloneCommunity(c)
			return nil
		}
	}
	return ErrCommunityNotFound
}
