package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vort-x/platform/models"
)

func TestIDGeneratorStrictlyIncreasing(t *testing.T) {
	g := NewIDGenerator()

	prev := 0
	for i := 0; i < 1000; i++ {
		id := g.Next()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestIDGeneratorConcurrentUniqueness(t *testing.T) {
	g := NewIDGenerator()

	const goroutines = 8
	const perGoroutine = 200
	ids := make(chan int, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				ids <- g.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestTournamentRepositoryHandsOutCopies(t *testing.T) {
	repo := NewMemoryTournamentRepository(NewIDGenerator())
	ctx := context.Background()

	tournament := &models.Tournament{Name: "Cup", Game: "Valorant", MaxParticipants: 8, Status: models.StatusOpen}
	require.NoError(t, repo.Create(ctx, tournament))

	got, err := repo.GetByID(ctx, tournament.ID)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	got.Name = "Mutated"
	got.Registrations = append(got.Registrations, models.Registration{ID: 1, TeamName: "Sneaky"})

	fresh, err := repo.GetByID(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cup", fresh.Name)
	assert.Empty(t, fresh.Registrations)
}

func TestTournamentRepositoryInitializesCollections(t *testing.T) {
	repo := NewMemoryTournamentRepository(NewIDGenerator())

	tournament := &models.Tournament{Name: "Cup", Game: "Valorant", MaxParticipants: 8, Status: models.StatusOpen}
	require.NoError(t, repo.Create(context.Background(), tournament))

	assert.NotNil(t, tournament.Registrations)
	assert.NotNil(t, tournament.Feedback)
	assert.NotNil(t, tournament.KickRequests)
	assert.NotNil(t, tournament.Announcements)
}

func TestCommunityRepositoryNameConflict(t *testing.T) {
	repo := NewMemoryCommunityRepository(NewIDGenerator())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Community{Name: "Valorant", Type: models.CommunityPermanent}))

	err := repo.Create(ctx, &models.Community{Name: "Valorant", Type: models.CommunityTournament})
	assert.ErrorIs(t, err, ErrCommunityNameConflict)

	// Different name is fine.
	require.NoError(t, repo.Create(ctx, &models.Community{Name: "Valorant EU", Type: models.CommunityPermanent}))
}

func TestUserRepositoryPreservesSeededIDs(t *testing.T) {
	repo := NewMemoryUserRepository(NewIDGenerator())
	ctx := context.Background()

	seeded := &models.User{ID: 1, Name: "YUV-X"}
	require.NoError(t, repo.Create(ctx, seeded))
	assert.Equal(t, 1, seeded.ID)

	generated := &models.User{Name: "Anonymous"}
	require.NoError(t, repo.Create(ctx, generated))
	assert.NotZero(t, generated.ID)
	assert.NotEqual(t, 1, generated.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "YUV-X", got.Name)

	_, err = repo.GetByID(ctx, 424242)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
