package repositories

import "errors"

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrCommunityNotFound      = errors.New("community not found")
	ErrCommunityNameConflict  = errors.New("community name already exists")
	ErrPostNotFound           = errors.New("post not found")
	ErrConversationNotFound   = errors.New("conversation not found")
	ErrUserNotFound           = errors.New("user not found")
)
