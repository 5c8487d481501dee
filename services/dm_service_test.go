package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

func newDMFixture(t *testing.T) (DMService, *models.Conversation) {
	t.Helper()
	ids := repositories.NewIDGenerator()
	repo := repositories.NewMemoryConversationRepository(ids)
	svc := NewDMService(repo, ids)

	conversation := &models.Conversation{
		Participant: models.User{ID: 2, Name: "PixelPioneer"},
		Messages: []models.DirectMessage{
			{ID: 1, SenderID: 2, Sender: "PixelPioneer", Content: "Hey!", SentAt: time.Now().Add(-time.Hour)},
		},
		LastMessage:   "Hey!",
		LastMessageAt: time.Now().Add(-time.Hour),
		UnreadCount:   2,
	}
	require.NoError(t, repo.Create(context.Background(), conversation))
	return svc, conversation
}

func TestSendMessageRefreshesPreview(t *testing.T) {
	svc, conversation := newDMFixture(t)
	ctx := context.Background()
	actor := models.User{ID: 1, Name: "YUV-X"}

	message, err := svc.SendMessage(ctx, actor, conversation.ID, "On my way!")
	require.NoError(t, err)
	assert.Equal(t, actor.ID, message.SenderID)
	assert.Equal(t, actor.Name, message.Sender)

	stored, err := svc.GetConversation(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, "On my way!", stored.LastMessage)
	assert.Equal(t, message.SentAt, stored.LastMessageAt)
}

func TestSendMessageValidation(t *testing.T) {
	svc, conversation := newDMFixture(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, models.User{ID: 1}, conversation.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = svc.SendMessage(ctx, models.User{ID: 1}, 999999, "hello")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestMarkReadClearsUnreadCount(t *testing.T) {
	svc, conversation := newDMFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkRead(ctx, conversation.ID))

	stored, err := svc.GetConversation(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.UnreadCount)

	// Idempotent on an already-read thread.
	require.NoError(t, svc.MarkRead(ctx, conversation.ID))
}
