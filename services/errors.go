package services

import "errors"

// Shared sentinel errors, mapped to HTTP statuses in the handlers package.
var (
	// Not found
	ErrTournamentNotFound   = errors.New("tournament not found")
	ErrCommunityNotFound    = errors.New("community not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrKickRequestNotFound  = errors.New("kick request not found")

	// Validation and business rules
	ErrValidationFailed          = errors.New("validation failed")
	ErrTournamentNameRequired    = errors.New("tournament name is required")
	ErrTournamentGameRequired    = errors.New("tournament game is required")
	ErrTournamentInvalidCapacity = errors.New("tournament max participants must be positive")
	ErrTournamentInvalidStatus   = errors.New("invalid tournament status provided")
	ErrTournamentFull            = errors.New("tournament registration is full")
	ErrTeamNameRequired          = errors.New("team name is required")
	ErrIncompleteRoster          = errors.New("a full team roster is required for this tournament")
	ErrInvalidRating             = errors.New("rating must be between 1 and 5")
	ErrEmptyContent              = errors.New("content must not be empty")
	ErrInvalidKickResolution     = errors.New("kick request resolution must be approved or rejected")
	ErrKickRequestResolved       = errors.New("kick request is already resolved")
	ErrInvalidTheme              = errors.New("theme must be dark or light")
	ErrChannelNameRequired       = errors.New("channel name is required")
	ErrCommunityNameRequired     = errors.New("community name is required")

	// Conflicts
	ErrCommunityNameConflict = errors.New("community name already exists")

	// Authorization
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")
	ErrHostActionOnly     = errors.New("only the tournament host can perform this action")
)
