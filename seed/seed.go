// Package seed populates the in-memory repositories with the demo
// dataset. State lives only for the lifetime of the process, so this runs
// on every boot.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
	"github.com/vort-x/platform/services"
)

// DefaultUserID is the demo account the session middleware falls back to.
const DefaultUserID = 1

const (
	avatarSmall  = "https://placehold.co/40x40.png"
	avatarLarge  = "https://placehold.co/128x128.png"
	bannerLarge  = "https://placehold.co/1200x300.png"
	communityImg = "https://placehold.co/300x150.png"
	postImage    = "https://placehold.co/600x600.png"
)

type Dependencies struct {
	Users         repositories.UserRepository
	Tournaments   repositories.TournamentRepository
	Communities   repositories.CommunityRepository
	Feed          repositories.FeedRepository
	Conversations repositories.ConversationRepository

	// Extras adds generated filler posts on top of the fixed set.
	Extras bool
}

func Run(ctx context.Context, deps Dependencies) error {
	if err := seedUsers(ctx, deps.Users); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := seedCommunities(ctx, deps.Communities); err != nil {
		return fmt.Errorf("failed to seed communities: %w", err)
	}
	if err := seedTournaments(ctx, deps.Tournaments); err != nil {
		return fmt.Errorf("failed to seed tournaments: %w", err)
	}
	if err := seedFeed(ctx, deps.Feed, deps.Extras); err != nil {
		return fmt.Errorf("failed to seed feed: %w", err)
	}
	if err := seedConversations(ctx, deps.Conversations); err != nil {
		return fmt.Errorf("failed to seed conversations: %w", err)
	}
	return nil
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(fmt.Sprintf("seed: bad timestamp %q: %v", value, err))
	}
	return t
}

func strPtr(s string) *string { return &s }

func seedUsers(ctx context.Context, users repositories.UserRepository) error {
	fixed := []models.User{
		{ID: DefaultUserID, Name: "YUV-X", Avatar: avatarLarge, AvatarHint: "esports player avatar", Verified: true, Online: true, Theme: models.ThemeDark},
		{ID: 2, Name: "PixelPioneer", Avatar: avatarSmall, AvatarHint: "gamer avatar", Online: true},
		{ID: 3, Name: "GlitchHunter", Avatar: avatarSmall, AvatarHint: "gamer avatar"},
		{ID: 4, Name: "ValorantViper", Avatar: avatarSmall, AvatarHint: "gamer avatar", Online: true},
		{ID: 5, Name: "Riot Games", Avatar: avatarSmall, AvatarHint: "riot games logo", Verified: true, Online: true},
		{ID: 6, Name: "Community", Avatar: avatarSmall, AvatarHint: "community logo", Online: true},
		{ID: 7, Name: "PlayerOne", Avatar: avatarSmall, AvatarHint: "gamer avatar"},
		{ID: 8, Name: "PlayerTwo", Avatar: avatarSmall, AvatarHint: "gamer avatar"},
		{ID: 9, Name: "ToxicPlayer123", Avatar: avatarSmall, AvatarHint: "gamer avatar"},
		{ID: 10, Name: "Teammate1", Avatar: avatarSmall, AvatarHint: "gamer avatar"},
	}
	for i := range fixed {
		if err := users.Create(ctx, &fixed[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedCommunities(ctx context.Context, communities repositories.CommunityRepository) error {
	fixed := []models.Community{
		{Name: "Apex Legends", Description: "For fans of the battle royale.", Members: "125K", Image: communityImg, ImageHint: "apex legends characters", Type: models.CommunityPermanent},
		{Name: "Valorant", Description: "Tactical shooter community.", Members: "88K", Image: communityImg, ImageHint: "valorant game art", Type: models.CommunityPermanent},
		{Name: "League of Legends", Description: "Discuss the latest meta.", Members: "210K", Image: communityImg, ImageHint: "league of legends champions", Type: models.CommunityPermanent},
		{Name: "Counter-Strike 2", Description: "The premier tactical shooter hub.", Members: "150K", Image: communityImg, ImageHint: "counter strike soldier", Type: models.CommunityPermanent},
		{Name: "Fortnite", Description: "Build, battle, and create.", Members: "300K", Image: communityImg, ImageHint: "fortnite characters", Type: models.CommunityPermanent},
	}
	for i := range fixed {
		fixed[i].Channels = map[string][]models.Message{services.DefaultChannel: {}}
		if err := communities.Create(ctx, &fixed[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedTournaments(ctx context.Context, tournaments repositories.TournamentRepository) error {
	fixed := []models.Tournament{
		{
			Name: "Valorant Champions Tour: EMEA", Game: "Valorant",
			Date: mustTime("2024-08-15T18:00:00Z"), Prize: 5000, MaxParticipants: 16,
			Status: models.StatusOpen,
			Rules:  "Standard VCT rules apply. All matches are best-of-3 until the finals (best-of-5).",
			HostID: DefaultUserID, Host: "YUV-X",
			BannerImage: strPtr(bannerLarge), BannerImageHint: "valorant tournament banner",
			LogoImage: strPtr(avatarLarge), LogoImageHint: "valorant tournament logo",
			RequireFullTeam: true,
			Registrations: []models.Registration{
				{ID: 3, TeamName: "The Warlocks", ContactEmail: "pro@gamer.com",
					Members: []models.TeamMember{{UserID: DefaultUserID, Name: "YUV-X"}},
					Date:    mustTime("2024-07-22T10:00:00Z")},
			},
			KickRequests: []models.KickRequest{
				{ID: 1, RequestingPlayer: "YUV-X", PlayerToKick: "ToxicPlayer123",
					Reason: "Using abusive language in chat.", Status: models.KickPending},
			},
			Announcements: []models.Announcement{
				{ID: 1, Content: "Welcome to the tournament! Brackets will be finalized 1 hour before the start time.",
					Timestamp: mustTime("2024-07-28T10:00:00Z")},
			},
		},
		{
			Name: "Spike Rush Weekly #23", Game: "Valorant",
			Date: mustTime("2024-07-30T20:00:00Z"), Prize: 500, MaxParticipants: 32,
			Status: models.StatusInProgress,
			Rules:  "Single elimination bracket. Fun first!",
			HostID: 6, Host: "Community",
			BannerImage: strPtr(bannerLarge), BannerImageHint: "valorant tournament banner",
			LogoImage: strPtr(avatarLarge), LogoImageHint: "valorant tournament logo",
			RequireFullTeam: true,
			Registrations: []models.Registration{
				{ID: 2, TeamName: "The Brawlers", ContactEmail: "pro@gamer.com",
					Members: []models.TeamMember{{UserID: DefaultUserID, Name: "YUV-X"}, {UserID: 10, Name: "Teammate1"}},
					Date:    mustTime("2024-07-21T10:00:00Z")},
			},
		},
		{
			Name: "Community Clash: Valorant", Game: "Valorant",
			Date: mustTime("2024-08-05T19:00:00Z"), Prize: 1000, MaxParticipants: 64,
			Status: models.StatusFinished,
			Rules:  "Standard rules.",
			HostID: DefaultUserID, Host: "YUV-X",
			BannerImage: strPtr(bannerLarge), BannerImageHint: "valorant tournament banner",
			LogoImage: strPtr(avatarLarge), LogoImageHint: "valorant tournament logo",
			RequireFullTeam: true,
			Registrations: []models.Registration{
				{ID: 1, TeamName: "The Champs", ContactEmail: "pro@gamer.com",
					Members: []models.TeamMember{{UserID: DefaultUserID, Name: "YUV-X"}},
					Date:    mustTime("2024-07-20T10:00:00Z"), Rank: strPtr("3rd")},
			},
			Feedback: []models.Feedback{
				{ParticipantID: 7, ParticipantName: "PlayerOne", Rating: 5, Comment: "Great tournament, well organized!"},
				{ParticipantID: 8, ParticipantName: "PlayerTwo", Rating: 4, Comment: "Was fun, but some matches started late."},
			},
		},
		{
			Name: "LCS Summer Split", Game: "League of Legends",
			Date: mustTime("2024-08-20T17:00:00Z"), Prize: 200000, MaxParticipants: 8,
			Status: models.StatusOpen,
			Rules:  "Official LCS rules.",
			HostID: 5, Host: "Riot Games",
			BannerImage: strPtr(bannerLarge), BannerImageHint: "league of legends tournament banner",
			LogoImage: strPtr(avatarLarge), LogoImageHint: "league of legends tournament logo",
			RequireFullTeam: true,
		},
		{
			Name: "Clash of Summoners", Game: "League of Legends",
			Date: mustTime("2024-08-01T12:00:00Z"), Prize: 1000, MaxParticipants: 128,
			Status: models.StatusOpen,
			Rules:  "Community tournament rules.",
			HostID: DefaultUserID, Host: "YUV-X",
			BannerImage: strPtr(bannerLarge), BannerImageHint: "league of legends tournament banner",
			LogoImage: strPtr(avatarLarge), LogoImageHint: "league of legends tournament logo",
		},
	}
	// Create in reverse so listings (newest first) match the fixed order.
	for i := len(fixed) - 1; i >= 0; i-- {
		if err := tournaments.Create(ctx, &fixed[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedFeed(ctx context.Context, feed repositories.FeedRepository, extras bool) error {
	stories := []models.Story{
		{Username: "Your Story", Avatar: avatarLarge, AvatarHint: "your avatar"},
		{Username: "ESL_CSGO", Avatar: avatarLarge, AvatarHint: "esl logo", Live: true},
		{Username: "RiotGames", Avatar: avatarLarge, AvatarHint: "riot games logo"},
		{Username: "TheScoreEsports", Avatar: avatarLarge, AvatarHint: "thescore logo"},
		{Username: "FaZeClan", Avatar: avatarLarge, AvatarHint: "faze clan logo", Live: true},
		{Username: "Sentinels", Avatar: avatarLarge, AvatarHint: "sentinels logo"},
		{Username: "T1", Avatar: avatarLarge, AvatarHint: "t1 logo"},
		{Username: "G2Esports", Avatar: avatarLarge, AvatarHint: "g2 esports logo"},
	}
	for i := range stories {
		if err := feed.CreateStory(ctx, &stories[i]); err != nil {
			return err
		}
	}

	posts := []models.FeedItem{
		{
			User: models.FeedUser{Username: "ESL_CSGO", Verified: true, Avatar: avatarLarge, AvatarHint: "esl logo"},
			Tournament: models.TournamentPromo{Title: "IEM Katowice Playoffs", Game: "Counter-Strike 2",
				Prize: "500K", Participants: "8 Teams", Status: models.PromoUpcoming},
			Image: strPtr(postImage), ImageHint: "counter strike tournament",
			Caption:    "The playoffs are set! Which team has what it takes to lift the trophy in Katowice? #CS2 #IEM #Esports",
			Engagement: models.Engagement{Likes: 88000, Comments: 1023, Shares: 450},
			Social:     models.Social{Liked: true},
		},
		{
			User: models.FeedUser{Username: "VCT", Verified: true, Avatar: avatarLarge, AvatarHint: "vct logo"},
			Tournament: models.TournamentPromo{Title: "Champions Grand Final", Game: "Valorant",
				Prize: "1M", Participants: "16 Teams", Status: models.PromoLive},
			Image: strPtr(postImage), ImageHint: "valorant championship stage",
			Caption:    "The grand final is LIVE! Who will take home the trophy? #VCT #Valorant #Esports",
			Engagement: models.Engagement{Likes: 124000, Comments: 3056, Shares: 987},
			Social:     models.Social{Bookmarked: true},
		},
	}
	for i := range posts {
		if err := feed.CreatePost(ctx, &posts[i]); err != nil {
			return err
		}
	}

	if extras {
		gofakeit.Seed(42)
		for i := 0; i < 5; i++ {
			post := models.FeedItem{
				User: models.FeedUser{Username: gofakeit.Gamertag(), Avatar: avatarLarge, AvatarHint: "gamer avatar"},
				Tournament: models.TournamentPromo{Title: models.GeneralPostTitle, Game: "Discussion",
					Prize: "0", Participants: "0", Status: models.PromoCompleted},
				Caption:    gofakeit.Sentence(12),
				Engagement: models.Engagement{Likes: gofakeit.Number(0, 5000), Comments: 0, Shares: gofakeit.Number(0, 200)},
			}
			if err := feed.CreatePost(ctx, &post); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedConversations(ctx context.Context, conversations repositories.ConversationRepository) error {
	fixed := []models.Conversation{
		{
			Participant: models.User{ID: 2, Name: "PixelPioneer", Avatar: avatarSmall, Online: true},
			Messages: []models.DirectMessage{
				{ID: 1, SenderID: 2, Sender: "PixelPioneer", Content: "Hey! Saw your platinum trophy for Cosmic Odyssey, that's awesome!", SentAt: mustTime("2024-07-28T10:30:00Z")},
				{ID: 2, SenderID: DefaultUserID, Sender: "YUV-X", Content: "Thanks! It was a real grind but totally worth it. You should give it a try.", SentAt: mustTime("2024-07-28T10:31:00Z")},
				{ID: 3, SenderID: 2, Sender: "PixelPioneer", Content: "Definitely on my list. Need to finish up Neon Racer first. Found a bug that sends your car to space haha.", SentAt: mustTime("2024-07-28T10:32:00Z")},
			},
			LastMessage:   "Definitely on my list. Need to finish up Neon Racer first. Found a bug that sends your car to space haha.",
			LastMessageAt: mustTime("2024-07-28T10:32:00Z"),
			UnreadCount:   2,
		},
		{
			Participant: models.User{ID: 3, Name: "GlitchHunter", Avatar: avatarSmall},
			Messages: []models.DirectMessage{
				{ID: 1, SenderID: 3, Sender: "GlitchHunter", Content: "Are you online for some Valorant later?", SentAt: mustTime("2024-07-27T18:00:00Z")},
				{ID: 2, SenderID: DefaultUserID, Sender: "YUV-X", Content: "For sure, I'll be on around 8 PM. Let's get some ranks!", SentAt: mustTime("2024-07-27T18:05:00Z")},
			},
			LastMessage:   "For sure, I'll be on around 8 PM. Let's get some ranks!",
			LastMessageAt: mustTime("2024-07-27T18:05:00Z"),
		},
		{
			Participant: models.User{ID: 4, Name: "ValorantViper", Avatar: avatarSmall, Online: true},
			Messages: []models.DirectMessage{
				{ID: 1, SenderID: 4, Sender: "ValorantViper", Content: "That 1v5 clutch was insane!", SentAt: mustTime("2024-07-26T21:00:00Z")},
			},
			LastMessage:   "That 1v5 clutch was insane!",
			LastMessageAt: mustTime("2024-07-26T21:00:00Z"),
		},
	}
	for i := range fixed {
		if err := conversations.Create(ctx, &fixed[i]); err != nil {
			return err
		}
	}
	return nil
}
