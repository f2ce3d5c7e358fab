package models

// Dark mode settings
const (
	DarkModeAuto  = "auto"
	DarkModeLight = "light"
	DarkModeDark  = "dark"
)

// Preferences holds the user's local settings.
type Preferences struct {
	AllowAIChat bool   `json:"allowAIChat"` // Share results with the assistant
	DarkMode    string `json:"darkMode"`    // "auto", "light" or "dark"
}

// DefaultPreferences returns the preferences used when none are stored.
func DefaultPreferences() Preferences {
	return Preferences{
		AllowAIChat: false,
		DarkMode:    DarkModeAuto,
	}
}

// ValidDarkMode reports whether mode is an accepted dark mode setting.
func ValidDarkMode(mode string) bool {
	switch mode {
	case DarkModeAuto, DarkModeLight, DarkModeDark:
		return true
	}
	return false
}
