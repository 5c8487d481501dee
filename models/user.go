package models

// ThemePreference is the UI theme a user selected in settings.
type ThemePreference string

const (
	ThemeDark  ThemePreference = "dark"
	ThemeLight ThemePreference = "light"
)

// User represents a platform account. There is no authentication layer;
// identity is resolved by the session middleware from a seeded user.
type User struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Avatar     string          `json:"avatar"`
	AvatarHint string          `json:"avatar_hint,omitempty"`
	Verified   bool            `json:"verified"`
	Online     bool            `json:"online"`
	Theme      ThemePreference `json:"theme,omitempty"`
}
