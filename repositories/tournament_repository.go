package repositories

import (
	"context"
	"sync"

	"github.com/vort-x/platform/models"
)

type ListTournamentsFilter struct {
	Game   *string
	HostID *int
	Status *models.TournamentStatus
}

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	Update(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, id int) error
}

type memoryTournamentRepository struct {
	mu          sync.RWMutex
	ids         *IDGenerator
	tournaments []*models.Tournament // newest first
}

func NewMemoryTournamentRepository(ids *IDGenerator) TournamentRepository {
	return &memoryTournamentRepository{ids: ids}
}

// Create assigns an id, initializes the owned collections and prepends the
// tournament so listings come back newest first.
func (r *memoryTournamentRepository) Create(_ context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.ids.Next()
	if t.Registrations == nil {
		t.Registrations = []models.Registration{}
	}
	if t.Feedback == nil {
		t.Feedback = []models.Feedback{}
	}
	if t.KickRequests == nil {
		t.KickRequests = []models.KickRequest{}
	}
	if t.Announcements == nil {
		t.Announcements = []models.Announcement{}
	}
	r.tournaments = append([]*models.Tournament{cloneTournament(t)}, r.tournaments...)
	return nil
}

func (r *memoryTournamentRepository) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tournaments {
		if t.ID == id {
			return cloneTournament(t), nil
		}
	}
	return nil, ErrTournamentNotFound
}

func (r *memoryTournamentRepository) List(_ context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		if filter.Game != nil && t.Game != *filter.Game {
			continue
		}
		if filter.HostID != nil && t.HostID != *filter.HostID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		result = append(result, *cloneTournament(t))
	}
	return result, nil
}

func (r *memoryTournamentRepository) Update(_ context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.tournaments {
		if existing.ID == t.ID {
			r.tournaments[i] = cloneTournament(t)
			return nil
		}
	}
	return ErrTournamentNotFound
}

func (r *memoryTournamentRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tournaments {
		if t.ID == id {
			r.tournaments = append(r.tournaments[:i], r.tournaments[i+1:]...)
			return nil
		}
	}
	return ErrTournamentNotFound
}
