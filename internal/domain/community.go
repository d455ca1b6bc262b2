package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultMood is stored on posts whose entry has no mood.
	DefaultMood = "unknown"
	// AnonymousUsername is the fallback real username when the owner profile is missing or has none.
	AnonymousUsername = "Anonymous"
	// AnonymousAdventurer is the public alias used when the owner profile is missing.
	AnonymousAdventurer = "Anonymous Adventurer"
)

// CommunityPost is the public, anonymized projection of a shared Entry.
// ID always equals the source entry ID.
//
// UserID and Username are kept for moderation only and must never be
// rendered to other users.
type CommunityPost struct {
	ID                uuid.UUID
	ChaosEntryID      uuid.UUID
	UserID            uuid.UUID
	Username          string
	AnonymousUsername string
	Title             string
	Content           string
	Description       string
	ChaosLevel        int
	Mood              string
	Tags              []string
	MiniWins          []string
	IsAnonymous       bool
	CreatedAt         time.Time
	SupportCount      int
	TwinCount         int
	ViewCount         int
	IsReported        bool
	IsModerated       bool
}
