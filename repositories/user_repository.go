package repositories

import (
	"context"
	"sync"

	"github.com/vort-x/platform/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	ids   *IDGenerator
	users []*models.User
}

func NewMemoryUserRepository(ids *IDGenerator) UserRepository {
	return &memoryUserRepository{ids: ids}
}

func (r *memoryUserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == 0 {
		u.ID = r.ids.Next()
	}
	copied := *u
	r.users = append(r.users, &copied)
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryUserRepository) GetByName(_ context.Context, name string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Name == name {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryUserRepository) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.users {
		if existing.ID == u.ID {
			copied := *u
			r.users[i] = &copied
			return nil
		}
	}
	return ErrUserNotFound
}
