package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

func newDeps(extras bool) Dependencies {
	ids := repositories.NewIDGenerator()
	return Dependencies{
		Users:         repositories.NewMemoryUserRepository(ids),
		Tournaments:   repositories.NewMemoryTournamentRepository(ids),
		Communities:   repositories.NewMemoryCommunityRepository(ids),
		Feed:          repositories.NewMemoryFeedRepository(ids),
		Conversations: repositories.NewMemoryConversationRepository(ids),
		Extras:        extras,
	}
}

func TestRunPopulatesDemoData(t *testing.T) {
	deps := newDeps(false)
	ctx := context.Background()
	require.NoError(t, Run(ctx, deps))

	defaultUser, err := deps.Users.GetByID(ctx, DefaultUserID)
	require.NoError(t, err)
	assert.Equal(t, "YUV-X", defaultUser.Name)

	tournaments, err := deps.Tournaments.List(ctx, repositories.ListTournamentsFilter{})
	require.NoError(t, err)
	require.Len(t, tournaments, 5)
	assert.Equal(t, "Valorant Champions Tour: EMEA", tournaments[0].Name)
	require.Len(t, tournaments[0].KickRequests, 1)
	assert.Equal(t, models.KickPending, tournaments[0].KickRequests[0].Status)
	require.Len(t, tournaments[0].Announcements, 1)

	communities, err := deps.Communities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, communities, 5)
	for _, c := range communities {
		assert.Equal(t, models.CommunityPermanent, c.Type)
	}

	posts, err := deps.Feed.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "VCT", posts[0].User.Username)

	stories, err := deps.Feed.ListStories(ctx)
	require.NoError(t, err)
	assert.Len(t, stories, 8)

	conversations, err := deps.Conversations.List(ctx)
	require.NoError(t, err)
	assert.Len(t, conversations, 3)
}

func TestRunSeedsFinishedTournamentFeedback(t *testing.T) {
	deps := newDeps(false)
	ctx := context.Background()
	require.NoError(t, Run(ctx, deps))

	status := models.StatusFinished
	finished, err := deps.Tournaments.List(ctx, repositories.ListTournamentsFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.Len(t, finished[0].Feedback, 2)
	require.Len(t, finished[0].Registrations, 1)
	require.NotNil(t, finished[0].Registrations[0].Rank)
	assert.Equal(t, "3rd", *finished[0].Registrations[0].Rank)
}

func TestRunWithExtrasAddsFillerPosts(t *testing.T) {
	deps := newDeps(true)
	require.NoError(t, Run(context.Background(), deps))

	posts, err := deps.Feed.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Greater(t, len(posts), 2)

	filler := 0
	for _, p := range posts {
		if p.Tournament.Title == models.GeneralPostTitle {
			filler++
		}
	}
	assert.Equal(t, 5, filler)
}
