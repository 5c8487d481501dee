package models

import "time"

// TournamentStatus mirrors the statuses shown on tournament cards.
// Statuses are host-driven; there is no enforced transition table.
type TournamentStatus string

const (
	StatusOpen       TournamentStatus = "Open"
	StatusInProgress TournamentStatus = "In Progress"
	StatusFinished   TournamentStatus = "Finished"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

// KickRequestStatus tracks the moderation outcome of a kick request.
// Resolved requests stay in the collection as an audit trail.
type KickRequestStatus string

const (
	KickPending  KickRequestStatus = "pending"
	KickApproved KickRequestStatus = "approved"
	KickRejected KickRequestStatus = "rejected"
)

// TeamMember is one roster slot on a registration. UserID links the slot
// to a platform account; ownership checks compare ids, never names.
type TeamMember struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

// Registration is a team's enrollment record for one tournament.
type Registration struct {
	ID                int          `json:"id"`
	TeamName          string       `json:"team_name"`
	ContactEmail      string       `json:"contact_email"`
	Members           []TeamMember `json:"members"`
	Date              time.Time    `json:"date"`
	FeedbackSubmitted bool         `json:"feedback_submitted"`
	Rank              *string      `json:"rank,omitempty"`
}

// HasMember reports whether the given user is on this registration's roster.
func (r Registration) HasMember(userID int) bool {
	for _, m := range r.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// Feedback is a participant's rating of a finished tournament. Append-only.
type Feedback struct {
	ParticipantID   int    `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
}

// KickRequest is a participant's request to remove another player.
type KickRequest struct {
	ID               int               `json:"id"`
	RequestingPlayer string            `json:"requesting_player"`
	PlayerToKick     string            `json:"player_to_kick"`
	Reason           string            `json:"reason"`
	Status           KickRequestStatus `json:"status"`
	ResolvedAt       *time.Time        `json:"resolved_at,omitempty"`
}

// Announcement is an official host message, newest first.
type Announcement struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Tournament represents a hosted competitive event. All child collections
// are exclusively owned by the tournament.
type Tournament struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Game            string           `json:"game"`
	Date            time.Time        `json:"date"`
	Prize           int              `json:"prize"`
	MaxParticipants int              `json:"max_participants"`
	Status          TournamentStatus `json:"status"`
	Rules           string           `json:"rules"`
	HostID          int              `json:"host_id"`
	Host            string           `json:"host"`
	BannerImage     *string          `json:"banner_image,omitempty"`
	BannerImageHint string           `json:"banner_image_hint,omitempty"`
	LogoImage       *string          `json:"logo_image,omitempty"`
	LogoImageHint   string           `json:"logo_image_hint,omitempty"`
	GameID          string           `json:"game_id,omitempty"`
	GamePassword    string           `json:"game_password,omitempty"`
	RequireFullTeam bool             `json:"require_full_team"`

	Registrations []Registration `json:"registrations"`
	Feedback      []Feedback     `json:"feedback"`
	KickRequests  []KickRequest  `json:"kick_requests"`
	Announcements []Announcement `json:"announcements"`
}
