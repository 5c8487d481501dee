package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

type DMService interface {
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	GetConversation(ctx context.Context, id int) (*models.Conversation, error)
	SendMessage(ctx context.Context, actor models.User, conversationID int, content string) (*models.DirectMessage, error)
	MarkRead(ctx context.Context, conversationID int) error
}

type dmService struct {
	conversationRepo repositories.ConversationRepository
	ids              *repositories.IDGenerator
}

func NewDMService(conversationRepo repositories.ConversationRepository, ids *repositories.IDGenerator) DMService {
	return &dmService{conversationRepo: conversationRepo, ids: ids}
}

func (s *dmService) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	return s.conversationRepo.List(ctx)
}

func (s *dmService) GetConversation(ctx context.Context, id int) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation %d: %w", id, err)
	}
	return conversation, nil
}

// SendMessage appends to the thread and refreshes the denormalized
// last-message preview.
func (s *dmService) SendMessage(ctx context.Context, actor models.User, conversationID int, content string) (*models.DirectMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	conversation, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	message := models.DirectMessage{
		ID:       s.ids.Next(),
		SenderID: actor.ID,
		Sender:   actor.Name,
		Content:  content,
		SentAt:   time.Now().UTC(),
	}
	conversation.Messages = append(conversation.Messages, message)
	conversation.LastMessage = content
	conversation.LastMessageAt = message.SentAt

	if err := s.conversationRepo.Update(ctx, conversation); err != nil {
		return nil, fmt.Errorf("failed to store message in conversation %d: %w", conversationID, err)
	}
	return &message, nil
}

func (s *dmService) MarkRead(ctx context.Context, conversationID int) error {
	conversation, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conversation.UnreadCount == 0 {
		return nil
	}
	conversation.UnreadCount = 0

	if err := s.conversationRepo.Update(ctx, conversation); err != nil {
		return fmt.Errorf("failed to mark conversation %d read: %w", conversationID, err)
	}
	return nil
}
