package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
	"github.com/vort-x/platform/storage"
)

// fullRosterSize is the roster length a registration must reach when the
// tournament requires a full team.
const fullRosterSize = 5

const registrationFee = 0 // entry is free; the payment step is kept for flow parity

type CreateTournamentInput struct {
	Name            string                  `json:"name"`
	Game            string                  `json:"game"`
	Date            time.Time               `json:"date"`
	Prize           int                     `json:"prize"`
	MaxParticipants int                     `json:"max_participants"`
	Status          models.TournamentStatus `json:"status"`
	Rules           string                  `json:"rules"`
	BannerImage     *string                 `json:"banner_image"`
	BannerImageHint string                  `json:"banner_image_hint"`
	LogoImage       *string                 `json:"logo_image"`
	LogoImageHint   string                  `json:"logo_image_hint"`
	RequireFullTeam bool                    `json:"require_full_team"`
}

type RegistrationInput struct {
	TeamName     string              `json:"team_name"`
	ContactEmail string              `json:"contact_email"`
	Members      []models.TeamMember `json:"members"`
}

type FeedbackInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type KickRequestInput struct {
	PlayerToKick string `json:"player_to_kick"`
	Reason       string `json:"reason"`
}

type MediaInput struct {
	Logo   *string `json:"logo"`
	Banner *string `json:"banner"`
}

type ListTournamentsFilter = repositories.ListTournamentsFilter

type TournamentService interface {
	CreateTournament(ctx context.Context, host models.User, input CreateTournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	DeleteTournament(ctx context.Context, actor models.User, id int) error
	Register(ctx context.Context, actor models.User, tournamentID int, input RegistrationInput) (*models.Registration, error)
	AddFeedback(ctx context.Context, actor models.User, tournamentID int, input FeedbackInput) error
	AddKickRequest(ctx context.Context, actor models.User, tournamentID int, input KickRequestInput) (*models.KickRequest, error)
	ResolveKickRequest(ctx context.Context, actor models.User, tournamentID, requestID int, resolution models.KickRequestStatus) (*models.KickRequest, error)
	UpdateMedia(ctx context.Context, actor models.User, tournamentID int, media MediaInput) (*models.Tournament, error)
	UploadMedia(ctx context.Context, actor models.User, tournamentID int, kind, contentType string, file io.Reader) (*models.Tournament, error)
	AddAnnouncement(ctx context.Context, actor models.User, tournamentID int, content string) (*models.Announcement, error)
	SendCredentials(ctx context.Context, actor models.User, tournamentID int, gameID, gamePassword string) error
	AddNotice(ctx context.Context, actor models.User, tournamentID int, notice string) error
	AutoUpdateStatusesByDates(ctx context.Context) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	communities    CommunityService
	payments       PaymentProcessor
	uploader       storage.FileUploader
	ids            *repositories.IDGenerator
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	communities CommunityService,
	payments PaymentProcessor,
	uploader storage.FileUploader,
	ids *repositories.IDGenerator,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		communities:    communities,
		payments:       payments,
		uploader:       uploader,
		ids:            ids,
		logger:         logger,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, host models.User, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if strings.TrimSpace(input.Game) == "" {
		return nil, ErrTournamentGameRequired
	}
	if input.MaxParticipants <= 0 {
		return nil, ErrTournamentInvalidCapacity
	}
	status := input.Status
	if status == "" {
		status = models.StatusOpen
	}
	if !status.Valid() {
		return nil, ErrTournamentInvalidStatus
	}

	tournament := &models.Tournament{
		Name:            name,
		Game:            input.Game,
		Date:            input.Date,
		Prize:           input.Prize,
		MaxParticipants: input.MaxParticipants,
		Status:          status,
		Rules:           input.Rules,
		HostID:          host.ID,
		Host:            host.Name,
		BannerImage:     input.BannerImage,
		BannerImageHint: input.BannerImageHint,
		LogoImage:       input.LogoImage,
		LogoImageHint:   input.LogoImageHint,
		RequireFullTeam: input.RequireFullTeam,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament %q: %w", name, err)
	}

	// Every tournament gets a companion community hub. Creation is
	// idempotent by name: a pre-existing community is reused.
	image := "https://placehold.co/300x150.png"
	if tournament.LogoImage != nil && *tournament.LogoImage != "" {
		image = *tournament.LogoImage
	}
	imageHint := tournament.LogoImageHint
	if imageHint == "" {
		imageHint = fmt.Sprintf("%s tournament", tournament.Game)
	}
	if _, err := s.communities.EnsureCommunity(ctx, CreateCommunityInput{
		Name:        tournament.Name,
		Description: fmt.Sprintf("A temporary hub for the %s tournament.", tournament.Name),
		Image:       image,
		ImageHint:   imageHint,
		Type:        models.CommunityTournament,
	}); err != nil {
		s.logger.Warn("failed to ensure companion community",
			slog.Int("tournament_id", tournament.ID),
			slog.String("name", tournament.Name),
			slog.Any("error", err))
	}

	s.logger.Info("tournament created",
		slog.Int("tournament_id", tournament.ID),
		slog.String("name", tournament.Name),
		slog.Int("host_id", host.ID))
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	return s.tournamentRepo.List(ctx, filter)
}

// DeleteTournament removes the tournament only. Its companion community
// stays up so the discussion history survives the event.
func (s *tournamentService) DeleteTournament(ctx context.Context, actor models.User, id int) error {
	tournament, err := s.GetTournamentByID(ctx, id)
	if err != nil {
		return err
	}
	if tournament.HostID != actor.ID {
		return ErrHostActionOnly
	}
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	s.logger.Info("tournament deleted", slog.Int("tournament_id", id), slog.String("name", tournament.Name))
	return nil
}

func (s *tournamentService) Register(ctx context.Context, actor models.User, tournamentID int, input RegistrationInput) (*models.Registration, error) {
	if strings.TrimSpace(input.TeamName) == "" {
		return nil, ErrTeamNameRequired
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(tournament.Registrations) >= tournament.MaxParticipants {
		return nil, ErrTournamentFull
	}
	if tournament.RequireFullTeam && len(input.Members) < fullRosterSize {
		return nil, ErrIncompleteRoster
	}

	// The payment step is a fixed-delay mock; it cannot fail, only be
	// cancelled through the context.
	if err := s.payments.Process(ctx, registrationFee); err != nil {
		return nil, fmt.Errorf("registration payment interrupted: %w", err)
	}

	// Re-read after the payment delay so a racing registration that won
	// the last slot is still rejected.
	tournament, err = s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(tournament.Registrations) >= tournament.MaxParticipants {
		return nil, ErrTournamentFull
	}

	members := input.Members
	if members == nil {
		members = []models.TeamMember{}
	}
	registration := models.Registration{
		ID:           s.ids.Next(),
		TeamName:     input.TeamName,
		ContactEmail: input.ContactEmail,
		Members:      members,
		Date:         time.Now().UTC(),
	}
	tournament.Registrations = append(tournament.Registrations, registration)

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to store registration for tournament %d: %w", tournamentID, err)
	}

	s.logger.Info("team registered",
		slog.Int("tournament_id", tournamentID),
		slog.String("team", input.TeamName),
		slog.Int("actor_id", actor.ID))
	return &registration, nil
}

// AddFeedback appends the entry and flags every registration whose roster
// contains the author. Membership is matched by user id.
func (s *tournamentService) AddFeedback(ctx context.Context, actor models.User, tournamentID int, input FeedbackInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return ErrInvalidRating
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return err
	}

	tournament.Feedback = append(tournament.Feedback, models.Feedback{
		ParticipantID:   actor.ID,
		ParticipantName: actor.Name,
		Rating:          input.Rating,
		Comment:         input.Comment,
	})
	for i := range tournament.Registrations {
		if tournament.Registrations[i].HasMember(actor.ID) {
			tournament.Registrations[i].FeedbackSubmitted = true
		}
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return fmt.Errorf("failed to store feedback for tournament %d: %w", tournamentID, err)
	}
	return nil
}

func (s *tournamentService) AddKickRequest(ctx context.Context, actor models.User, tournamentID int, input KickRequestInput) (*models.KickRequest, error) {
	if strings.TrimSpace(input.PlayerToKick) == "" || strings.TrimSpace(input.Reason) == "" {
		return nil, ErrValidationFailed
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	request := models.KickRequest{
		ID:               s.ids.Next(),
		RequestingPlayer: actor.Name,
		PlayerToKick:     input.PlayerToKick,
		Reason:           input.Reason,
		Status:           models.KickPending,
	}
	tournament.KickRequests = append(tournament.KickRequests, request)

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to store kick request for tournament %d: %w", tournamentID, err)
	}
	return &request, nil
}

// ResolveKickRequest records the outcome in place. Resolved requests are
// kept with a timestamp so the moderation trail is auditable.
func (s *tournamentService) ResolveKickRequest(ctx context.Context, actor models.User, tournamentID, requestID int, resolution models.KickRequestStatus) (*models.KickRequest, error) {
	if resolution != models.KickApproved && resolution != models.KickRejected {
		return nil, ErrInvalidKickResolution
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.HostID != actor.ID {
		return nil, ErrHostActionOnly
	}

	for i := range tournament.KickRequests {
		if tournament.KickRequests[i].ID != requestID {
			continue
		}
		if tournament.KickRequests[i].Status != models.KickPending {
			return nil, ErrKickRequestResolved
		}
		now := time.Now().UTC()
		tournament.KickRequests[i].Status = resolution
		tournament.KickRequests[i].ResolvedAt = &now

		if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
			return nil, fmt.Errorf("failed to resolve kick request %d: %w", requestID, err)
		}
		resolved := tournament.KickRequests[i]
		return &resolved, nil
	}
	return nil, ErrKickRequestNotFound
}

// UpdateMedia replaces both image references wholesale; nil clears a slot.
func (s *tournamentService) UpdateMedia(ctx context.Context, actor models.User, tournamentID int, media MediaInput) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.HostID != actor.ID {
		return nil, ErrHostActionOnly
	}

	tournament.LogoImage = media.Logo
	tournament.BannerImage = media.Banner

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to update media for tournament %d: %w", tournamentID, err)
	}
	return tournament, nil
}

// UploadMedia stores the file through the configured uploader and points
// the requested slot ("logo" or "banner") at its public URL.
func (s *tournamentService) UploadMedia(ctx context.Context, actor models.User, tournamentID int, kind, contentType string, file io.Reader) (*models.Tournament, error) {
	if kind != "logo" && kind != "banner" {
		return nil, fmt.Errorf("%w: media kind must be logo or banner", ErrValidationFailed)
	}
	ext, err := extensionForContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.HostID != actor.ID {
		return nil, ErrHostActionOnly
	}

	key := fmt.Sprintf("tournaments/%d/%s/%s%s", tournamentID, kind, uuid.NewString(), ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload tournament %s: %w", kind, err)
	}

	if kind == "logo" {
		tournament.LogoImage = &result.Location
	} else {
		tournament.BannerImage = &result.Location
	}
	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to update media for tournament %d: %w", tournamentID, err)
	}

	s.logger.Info("tournament media uploaded",
		slog.Int("tournament_id", tournamentID),
		slog.String("kind", kind),
		slog.String("key", result.Key))
	return tournament, nil
}

// AddAnnouncement prepends the announcement (newest first) and cross-posts
// a bot message into the companion community's default channel.
func (s *tournamentService) AddAnnouncement(ctx context.Context, actor models.User, tournamentID int, content string) (*models.Announcement, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.HostID != actor.ID {
		return nil, ErrHostActionOnly
	}

	announcement := models.Announcement{
		ID:        s.ids.Next(),
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	tournament.Announcements = append([]models.Announcement{announcement}, tournament.Announcements...)

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to store announcement for tournament %d: %w", tournamentID, err)
	}

	botMessage := fmt.Sprintf("**ANNOUNCEMENT:** %s. [View Tournament](/tournaments/%d)", content, tournamentID)
	if err := s.communities.PostBotMessage(ctx, tournament.Name, botMessage); err != nil {
		// The announcement itself has landed; a missing companion
		// community only loses the cross-post.
		s.logger.Warn("failed to cross-post announcement",
			slog.Int("tournament_id", tournamentID),
			slog.String("community", tournament.Name),
			slog.Any("error", err))
	}
	return &announcement, nil
}

// SendCredentials stores the lobby credentials and posts a bot notice that
// deliberately does not contain them.
func (s *tournamentService) SendCredentials(ctx context.Context, actor models.User, tournamentID int, gameID, gamePassword string) error {
	if strings.TrimSpace(gameID) == "" || strings.TrimSpace(gamePassword) == "" {
		return ErrValidationFailed
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return err
	}
	if tournament.HostID != actor.ID {
		return ErrHostActionOnly
	}

	tournament.GameID = gameID
	tournament.GamePassword = gamePassword

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return fmt.Errorf("failed to store credentials for tournament %d: %w", tournamentID, err)
	}

	botMessage := "**GAME CREDENTIALS SENT:**\nLobby details for the tournament have been sent out. Please check your dashboard for the ID and password."
	if err := s.communities.PostBotMessage(ctx, tournament.Name, botMessage); err != nil {
		s.logger.Warn("failed to post credentials notice",
			slog.Int("tournament_id", tournamentID),
			slog.String("community", tournament.Name),
			slog.Any("error", err))
	}
	return nil
}

// AddNotice confirms a host notice to participants. Delivery is out of
// scope; the notice is only logged.
func (s *tournamentService) AddNotice(ctx context.Context, actor models.User, tournamentID int, notice string) error {
	if strings.TrimSpace(notice) == "" {
		return ErrEmptyContent
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return err
	}
	if tournament.HostID != actor.ID {
		return ErrHostActionOnly
	}

	s.logger.Info("notice sent to participants",
		slog.Int("tournament_id", tournamentID),
		slog.String("name", tournament.Name),
		slog.String("notice", notice))
	return nil
}

// AutoUpdateStatusesByDates flips Open tournaments whose start time has
// passed to In Progress. Run periodically by the scheduler.
func (s *tournamentService) AutoUpdateStatusesByDates(ctx context.Context) error {
	open := models.StatusOpen
	tournaments, err := s.tournamentRepo.List(ctx, ListTournamentsFilter{Status: &open})
	if err != nil {
		return fmt.Errorf("failed to list open tournaments: %w", err)
	}

	now := time.Now()
	updated := 0
	for i := range tournaments {
		t := tournaments[i]
		if t.Date.IsZero() || t.Date.After(now) {
			continue
		}
		t.Status = models.StatusInProgress
		if err := s.tournamentRepo.Update(ctx, &t); err != nil {
			s.logger.Error("failed to auto-update tournament status",
				slog.Int("tournament_id", t.ID), slog.Any("error", err))
			continue
		}
		updated++
	}
	if updated > 0 {
		s.logger.Info("tournament statuses auto-updated", slog.Int("count", updated))
	}
	return nil
}

func extensionForContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("unsupported image content type %q", contentType)
	}
}
