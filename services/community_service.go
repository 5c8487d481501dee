package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

const (
	// DefaultChannel is where bot messages land and the first channel of
	// every new community.
	DefaultChannel = "general-chat"

	botAuthor     = "VORT-X Bot"
	botAvatar     = "https://placehold.co/40x40.png"
	botAvatarHint = "bot avatar"
)

type CreateCommunityInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
	ImageHint   string               `json:"image_hint"`
	Type        models.CommunityType `json:"type"`
}

type CommunityService interface {
	CreateCommunity(ctx context.Context, input CreateCommunityInput) (*models.Community, error)
	// EnsureCommunity creates the community or, when one with the same
	// name already exists, returns the existing one. Used for the
	// companion community spawned by tournament creation.
	EnsureCommunity(ctx context.Context, input CreateCommunityInput) (*models.Community, error)
	ListCommunities(ctx context.Context) ([]models.Community, error)
	GetCommunityByName(ctx context.Context, name string) (*models.Community, error)
	GetMessages(ctx context.Context, communityName, channelName string) ([]models.Message, error)
	PostMessage(ctx context.Context, actor models.User, communityName, channelName, content string) (*models.Message, error)
	PostBotMessage(ctx context.Context, communityName, content string) error
}

type communityService struct {
	communityRepo repositories.CommunityRepository
	ids           *repositories.IDGenerator
}

func NewCommunityService(communityRepo repositories.CommunityRepository, ids *repositories.IDGenerator) CommunityService {
	return &communityService{
		communityRepo: communityRepo,
		ids:           ids,
	}
}

func (s *communityService) CreateCommunity(ctx context.Context, input CreateCommunityInput) (*models.Community, error) {
	community, err := s.buildCommunity(input)
	if err != nil {
		return nil, err
	}
	if err := s.communityRepo.Create(ctx, community); err != nil {
		if errors.Is(err, repositories.ErrCommunityNameConflict) {
			return nil, ErrCommunityNameConflict
		}
		return nil, fmt.Errorf("failed to create community %q: %w", input.Name, err)
	}
	return community, nil
}

func (s *communityService) EnsureCommunity(ctx context.Context, input CreateCommunityInput) (*models.Community, error) {
	community, err := s.CreateCommunity(ctx, input)
	if err == nil {
		return community, nil
	}
	if errors.Is(err, ErrCommunityNameConflict) {
		return s.GetCommunityByName(ctx, strings.TrimSpace(input.Name))
	}
	return nil, err
}

func (s *communityService) buildCommunity(input CreateCommunityInput) (*models.Community, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCommunityNameRequired
	}
	communityType := input.Type
	if communityType == "" {
		communityType = models.CommunityPermanent
	}
	return &models.Community{
		Name:        name,
		Description: input.Description,
		Members:     "1", // starts with the creator
		Image:       input.Image,
		ImageHint:   input.ImageHint,
		Type:        communityType,
		Channels: map[string][]models.Message{
			DefaultChannel: {},
		},
	}, nil
}

func (s *communityService) ListCommunities(ctx context.Context) ([]models.Community, error) {
	return s.communityRepo.List(ctx)
}

func (s *communityService) GetCommunityByName(ctx context.Context, name string) (*models.Community, error) {
	community, err := s.communityRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrCommunityNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to get community %q: %w", name, err)
	}
	return community, nil
}

// GetMessages is a pure lookup: an absent community or channel yields an
// empty list rather than an error.
func (s *communityService) GetMessages(ctx context.Context, communityName, channelName string) ([]models.Message, error) {
	community, err := s.communityRepo.GetByName(ctx, communityName)
	if err != nil {
		if errors.Is(err, repositories.ErrCommunityNotFound) {
			return []models.Message{}, nil
		}
		return nil, fmt.Errorf("failed to get community %q: %w", communityName, err)
	}
	messages, ok := community.Channels[normalizeChannel(channelName)]
	if !ok {
		return []models.Message{}, nil
	}
	return messages, nil
}

func (s *communityService) PostMessage(ctx context.Context, actor models.User, communityName, channelName, content string) (*models.Message, error) {
	message := models.Message{
		AuthorID:      actor.ID,
		Author:        actor.Name,
		Avatar:        actor.Avatar,
		AvatarHint:    actor.AvatarHint,
		Content:       content,
		IsCurrentUser: true, // the posting actor is the requester
	}
	return s.appendMessage(ctx, communityName, channelName, message)
}

func (s *communityService) PostBotMessage(ctx context.Context, communityName, content string) error {
	message := models.Message{
		Author:        botAuthor,
		Avatar:        botAvatar,
		AvatarHint:    botAvatarHint,
		Content:       content,
		IsCurrentUser: false,
	}
	_, err := s.appendMessage(ctx, communityName, DefaultChannel, message)
	return err
}

func (s *communityService) appendMessage(ctx context.Context, communityName, channelName string, message models.Message) (*models.Message, error) {
	if strings.TrimSpace(message.Content) == "" {
		return nil, ErrEmptyContent
	}
	channel := normalizeChannel(channelName)
	if channel == "" {
		return nil, ErrChannelNameRequired
	}

	community, err := s.communityRepo.GetByName(ctx, communityName)
	if err != nil {
		if errors.Is(err, repositories.ErrCommunityNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to get community %q: %w", communityName, err)
	}

	message.ID = s.ids.Next()
	if community.Channels == nil {
		community.Channels = map[string][]models.Message{}
	}
	// Channels are created lazily on first write.
	community.Channels[channel] = append(community.Channels[channel], message)

	if err := s.communityRepo.Update(ctx, community); err != nil {
		return nil, fmt.Errorf("failed to store message in %q/%q: %w", communityName, channel, err)
	}
	return &message, nil
}

// normalizeChannel slugs a channel name so "General Chat" and
// "general-chat" address the same message list.
func normalizeChannel(name string) string {
	return slug.Make(name)
}
