package services

import (
	"context"
	"fmt"

	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

// Reward points are a display-only gamification figure.
const (
	pointsPerHosted     = 250
	pointsPerRegistered = 100
)

type DashboardService interface {
	Summary(ctx context.Context, user models.User) (*models.DashboardSummary, error)
}

type dashboardService struct {
	tournamentRepo repositories.TournamentRepository
}

func NewDashboardService(tournamentRepo repositories.TournamentRepository) DashboardService {
	return &dashboardService{tournamentRepo: tournamentRepo}
}

func (s *dashboardService) Summary(ctx context.Context, user models.User) (*models.DashboardSummary, error) {
	all, err := s.tournamentRepo.List(ctx, repositories.ListTournamentsFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments for dashboard: %w", err)
	}

	summary := &models.DashboardSummary{
		Hosted:     []models.Tournament{},
		Registered: []models.Tournament{},
	}
	for _, t := range all {
		if t.HostID == user.ID {
			summary.Hosted = append(summary.Hosted, t)
		}
		for _, reg := range t.Registrations {
			if reg.HasMember(user.ID) {
				summary.Registered = append(summary.Registered, t)
				break
			}
		}
	}
	summary.HostedCount = len(summary.Hosted)
	summary.RegisteredCount = len(summary.Registered)
	summary.RewardPoints = summary.HostedCount*pointsPerHosted + summary.RegisteredCount*pointsPerRegistered
	return summary, nil
}
