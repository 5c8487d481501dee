package models

// CommunityType distinguishes user-created hubs from the temporary
// channels spawned for a hosted tournament.
type CommunityType string

const (
	CommunityPermanent  CommunityType = "permanent"
	CommunityTournament CommunityType = "tournament"
)

// Message is one entry in a community channel. IsCurrentUser is derived
// from the posting actor at creation time and not recomputed.
type Message struct {
	ID            int    `json:"id"`
	AuthorID      int    `json:"author_id"`
	Author        string `json:"author"`
	Avatar        string `json:"avatar"`
	AvatarHint    string `json:"avatar_hint,omitempty"`
	Content       string `json:"content"`
	IsCurrentUser bool   `json:"is_current_user"`
}

// Community is a named discussion space. Channels map a slugged channel
// name to its ordered, append-only message list.
type Community struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Members     string        `json:"members"`
	Image       string        `json:"image"`
	ImageHint   string        `json:"image_hint,omitempty"`
	Type        CommunityType `json:"type"`

	Channels map[string][]Message `json:"channels,omitempty"`
}
