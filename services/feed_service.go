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

type FeedService interface {
	ListPosts(ctx context.Context) ([]models.FeedItem, error)
	ListStories(ctx context.Context) ([]models.Story, error)
	GetPost(ctx context.Context, id int) (*models.FeedItem, error)
	ToggleLike(ctx context.Context, id int) (*models.FeedItem, error)
	ToggleSave(ctx context.Context, id int) (*models.FeedItem, error)
	AddComment(ctx context.Context, actor models.User, postID int, content string) (*models.Comment, error)
	AddPost(ctx context.Context, actor models.User, caption string) (*models.FeedItem, error)
}

type feedService struct {
	feedRepo repositories.FeedRepository
	ids      *repositories.IDGenerator
}

func NewFeedService(feedRepo repositories.FeedRepository, ids *repositories.IDGenerator) FeedService {
	return &feedService{feedRepo: feedRepo, ids: ids}
}

func (s *feedService) ListPosts(ctx context.Context) ([]models.FeedItem, error) {
	return s.feedRepo.ListPosts(ctx)
}

func (s *feedService) ListStories(ctx context.Context) ([]models.Story, error) {
	return s.feedRepo.ListStories(ctx)
}

func (s *feedService) GetPost(ctx context.Context, id int) (*models.FeedItem, error) {
	post, err := s.feedRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return post, nil
}

// ToggleLike flips the liked flag and moves the like counter in the same
// write, so the flag and the count can never drift apart.
func (s *feedService) ToggleLike(ctx context.Context, id int) (*models.FeedItem, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Social.Liked = !post.Social.Liked
	if post.Social.Liked {
		post.Engagement.Likes++
	} else {
		post.Engagement.Likes--
	}

	if err := s.feedRepo.UpdatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to toggle like on post %d: %w", id, err)
	}
	return post, nil
}

func (s *feedService) ToggleSave(ctx context.Context, id int) (*models.FeedItem, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Social.Bookmarked = !post.Social.Bookmarked

	if err := s.feedRepo.UpdatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to toggle save on post %d: %w", id, err)
	}
	return post, nil
}

// AddComment prepends the comment and bumps the comment counter in the
// same write.
func (s *feedService) AddComment(ctx context.Context, actor models.User, postID int, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:       s.ids.Next(),
		AuthorID: actor.ID,
		Author:   actor.Name,
		Avatar:   actor.Avatar,
		Content:  content,
		Time:     time.Now().UTC(),
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)
	post.Engagement.Comments++

	if err := s.feedRepo.UpdatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to store comment on post %d: %w", postID, err)
	}
	return &comment, nil
}

// AddPost creates a general text post. The sentinel promo title tells the
// rendering layer to use the simplified layout.
func (s *feedService) AddPost(ctx context.Context, actor models.User, caption string) (*models.FeedItem, error) {
	if strings.TrimSpace(caption) == "" {
		return nil, ErrEmptyContent
	}

	post := &models.FeedItem{
		User: models.FeedUser{
			Username:   actor.Name,
			Verified:   actor.Verified,
			Avatar:     actor.Avatar,
			AvatarHint: actor.AvatarHint,
		},
		Tournament: models.TournamentPromo{
			Title:        models.GeneralPostTitle,
			Game:         "Discussion",
			Prize:        "0",
			Participants: "0",
			Status:       models.PromoCompleted,
		},
		Caption:    caption,
		Engagement: models.Engagement{},
		Social:     models.Social{},
		Comments:   []models.Comment{},
	}
	if err := s.feedRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}
