package search

// Entry is one searchable record in the fixed dataset.
type Entry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Dataset is the small in-memory corpus the search collaborator works
// over. In a real deployment this would come from a database.
type Dataset struct {
	Gamers  []Entry `json:"gamers"`
	Groups  []Entry `json:"groups"`
	Content []Entry `json:"content"`
}

// DefaultDataset returns the demo corpus.
func DefaultDataset() Dataset {
	return Dataset{
		Gamers: []Entry{
			{ID: "1", Name: "PixelPioneer", Description: "Loves Sci-Fi RPGs and exploring vast galaxies."},
			{ID: "2", Name: "GlitchHunter", Description: "Enjoys finding bugs in arcade racing games."},
			{ID: "3", Name: "ValorantViper", Description: "Top-ranked Valorant player, streams on weekends."},
			{ID: "4", Name: "CyberSamurai", Description: "Cyberpunk 2077 enthusiast and modder."},
		},
		Groups: []Entry{
			{ID: "1", Name: "Apex Legends Pros", Description: "A community for competitive Apex Legends players."},
			{ID: "2", Name: "Indie Game Cult", Description: "Discover and discuss hidden indie gems."},
			{ID: "3", Name: "Valorant Champions", Description: "Group for Valorant players aiming for the top."},
		},
		Content: []Entry{
			{ID: "1", Name: "Cosmic Odyssey Platinum Guide", Description: "A detailed guide to getting the platinum trophy."},
			{ID: "2", Name: "Funny Moments in Neon Racer", Description: "A compilation of hilarious bugs and glitches."},
			{ID: "3", Name: "My Valorant Agent Tier List", Description: "Ranking all agents for the current patch."},
		},
	}
}
