package repositories

import "github.com/vort-x/platform/models"

// The memory repositories hand out deep copies so callers can mutate a
// snapshot and write it back through Update without aliasing stored state.

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTournament(t *models.Tournament) *models.Tournament {
	if t == nil {
		return nil
	}
	c := *t
	c.BannerImage = cloneStringPtr(t.BannerImage)
	c.LogoImage = cloneStringPtr(t.LogoImage)

	c.Registrations = make([]models.Registration, len(t.Registrations))
	for i, reg := range t.Registrations {
		r := reg
		r.Members = append([]models.TeamMember(nil), reg.Members...)
		r.Rank = cloneStringPtr(reg.Rank)
		c.Registrations[i] = r
	}
	c.Feedback = append([]models.Feedback(nil), t.Feedback...)

	c.KickRequests = make([]models.KickRequest, len(t.KickRequests))
	for i, kr := range t.KickRequests {
		k := kr
		if kr.ResolvedAt != nil {
			ts := *kr.ResolvedAt
			k.ResolvedAt = &ts
		}
		c.KickRequests[i] = k
	}
	c.Announcements = append([]models.Announcement(nil), t.Announcements...)
	return &c
}

func cloneCommunity(cm *models.Community) *models.Community {
	if cm == nil {
		return nil
	}
	c := *cm
	if cm.Channels != nil {
		c.Channels = make(map[string][]models.Message, len(cm.Channels))
		for name, msgs := range cm.Channels {
			c.Channels[name] = append([]models.Message(nil), msgs...)
		}
	}
	return &c
}

func cloneFeedItem(p *models.FeedItem) *models.FeedItem {
	if p == nil {
		return nil
	}
	c := *p
	c.Image = cloneStringPtr(p.Image)
	c.Comments = append([]models.Comment(nil), p.Comments...)
	return &c
}

func cloneConversation(cv *models.Conversation) *models.Conversation {
	if cv == nil {
		return nil
	}
	c := *cv
	c.Messages = append([]models.DirectMessage(nil), cv.Messages...)
	return &c
}
