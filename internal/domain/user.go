package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole controls access to administrative callables.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

// IsAdmin reports whether the role grants admin access.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// AuthTypeUsername marks principals created through username-only sign-up.
const AuthTypeUsername = "username"

// User is a registered principal and its public profile.
//
// UsernameLower is empty for legacy rows created before the normalized
// column existed; the normalize-usernames job fills it in.
type User struct {
	ID             uuid.UUID
	Username       string
	UsernameLower  string
	DisplayName    string
	AuthType       string
	Role           UserRole
	Bio            string
	Email          *string
	FavoriteChar   string
	FavoriteQuote  string
	ProfilePicture *string
	ProfileVersion int
	PartyRole      string
	ChaosLevel     int
	Stats          UserStats
	Achievements   []string
	IsActive       bool
	IsAnonymous    bool
	Settings       UserSettings

	CreatedAt     time.Time
	JoinDate      time.Time
	LastActiveAt  time.Time
	LastLogin     time.Time
	LastLoginDate time.Time
}

// UserStats holds activity, streak and social counters.
type UserStats struct {
	ChaosEntries    int
	TotalEntries    int
	DayStreak       int
	LongestStreak   int
	SupportGiven    int
	SupportReceived int
}

// UserSettings is persisted as a JSON document on the profile row.
type UserSettings struct {
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	QuotesEnabled        bool   `json:"konoSubaQuotesEnabled"`
	AnonymousMode        bool   `json:"anonymousMode"`
	ReminderTime         string `json:"reminderTime"`
	ShareByDefault       bool   `json:"shareByDefault"`
	Theme                string `json:"theme"`
	ShowChaosLevel       bool   `json:"showChaosLevel"`
}

// DefaultUserSettings returns the settings every new profile starts with.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		NotificationsEnabled: true,
		QuotesEnabled:        true,
		AnonymousMode:        false,
		ReminderTime:         "20:00",
		ShareByDefault:       false,
		Theme:                "system",
		ShowChaosLevel:       true,
	}
}

// NewUser builds a freshly registered profile with default field values.
// displayName falls back to username when empty.
func NewUser(id uuid.UUID, username, displayName string, now time.Time) User {
	if displayName == "" {
		displayName = username
	}
	return User{
		ID:             id,
		Username:       username,
		UsernameLower:  NormalizeUsername(username),
		DisplayName:    displayName,
		AuthType:       AuthTypeUsername,
		Role:           UserRoleUser,
		ProfileVersion: 1,
		PartyRole:      "Newbie Adventurer",
		ChaosLevel:     1,
		Achievements:   []string{},
		IsActive:       true,
		Settings:       DefaultUserSettings(),
		CreatedAt:      now,
		JoinDate:       now,
		LastActiveAt:   now,
		LastLogin:      now,
		LastLoginDate:  now,
	}
}
