package repositories

import (
	"context"
	"sync"

	"github.com/vort-x/platform/models"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *models.Conversation) error
	GetByID(ctx context.Context, id int) (*models.Conversation, error)
	List(ctx context.Context) ([]models.Conversation, error)
	Update(ctx context.Context, conversation *models.Conversation) error
}

type memoryConversationRepository struct {
	mu            sync.RWMutex
	ids           *IDGenerator
	conversations []*models.Conversation
}

func NewMemoryConversationRepository(ids *IDGenerator) ConversationRepository {
	return &memoryConversationRepository{ids: ids}
}

func (r *memoryConversationRepository) Create(_ context.Context, c *models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.ids.Next()
	if c.Messages == nil {
		c.Messages = []models.DirectMessage{}
	}
	r.conversations = append(r.conversations, cloneConversation(c))
	return nil
}

func (r *memoryConversationRepository) GetByID(_ context.Context, id int) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.conversations {
		if c.ID == id {
			return cloneConversation(c), nil
		}
	}
	return nil, ErrConversationNotFound
}

func (r *memoryConversationRepository) List(_ context.Context) ([]models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Conversation, 0, len(r.conversations))
	for _, c := range r.conversations {
		result = append(result, *cloneConversation(c))
	}
	return result, nil
}

func (r *memoryConversationRepository) Update(_ context.Context, c *models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.conversations {
		if existing.ID == c.ID {
			r.conversations[i] = cloneConversation(c)
			return nil
		}
	}
	return ErrConversationNotFound
}
