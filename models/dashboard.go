package models

// DashboardSummary aggregates the current user's tournaments for the
// dashboard cards.
type DashboardSummary struct {
	Hosted          []Tournament `json:"hosted"`
	Registered      []Tournament `json:"registered"`
	HostedCount     int          `json:"hosted_count"`
	RegisteredCount int          `json:"registered_count"`
	RewardPoints    int          `json:"reward_points"`
}
