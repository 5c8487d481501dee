package models

import "time"

// PromoStatus is the live state shown on a tournament promo card.
type PromoStatus string

const (
	PromoLive      PromoStatus = "live"
	PromoUpcoming  PromoStatus = "upcoming"
	PromoCompleted PromoStatus = "completed"
)

// GeneralPostTitle marks a plain text post; the rendering layer picks a
// simplified layout when it sees this title.
const GeneralPostTitle = "Just a General Post"

// FeedUser is the denormalized author block embedded in a feed post.
type FeedUser struct {
	Username   string `json:"username"`
	Verified   bool   `json:"verified"`
	Avatar     string `json:"avatar"`
	AvatarHint string `json:"avatar_hint,omitempty"`
}

// TournamentPromo is the promo sub-object rendered inside a feed post.
type TournamentPromo struct {
	Title        string      `json:"title"`
	Game         string      `json:"game"`
	Prize        string      `json:"prize"`
	Participants string      `json:"participants"`
	Status       PromoStatus `json:"status"`
}

// Engagement holds the public counters of a post. Likes moves in lockstep
// with Social.Liked; comments with the comment list.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// Social holds the current user's flags on a post.
type Social struct {
	Liked      bool `json:"liked"`
	Bookmarked bool `json:"bookmarked"`
}

// Comment is a reply on a feed post, newest first.
type Comment struct {
	ID       int       `json:"id"`
	AuthorID int       `json:"author_id"`
	Author   string    `json:"author"`
	Avatar   string    `json:"avatar"`
	Content  string    `json:"content"`
	Time     time.Time `json:"time"`
}

// FeedItem is a social-timeline entry, either a tournament promo or a
// general text post. Posts are never deleted.
type FeedItem struct {
	ID         int             `json:"id"`
	User       FeedUser        `json:"user"`
	Tournament TournamentPromo `json:"tournament"`
	Image      *string         `json:"image,omitempty"`
	ImageHint  string          `json:"image_hint,omitempty"`
	Caption    string          `json:"caption"`
	Engagement Engagement      `json:"engagement"`
	Social     Social          `json:"social"`
	Comments   []Comment       `json:"comments"`
}

// Story is an entry in the stories rail at the top of the feed.
type Story struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	AvatarHint string `json:"avatar_hint,omitempty"`
	Live       bool   `json:"live,omitempty"`
}
