package feed

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

const (
	anonymousBase   = "Adventurer"
	anonymousSuffix = 9999
)

// Projector builds community posts from entries. It is shared by the live
// mirror and the backfill job so both produce identical posts.
type Projector struct {
	intn func(n int) int
}

// NewProjector returns a Projector drawing anonymous suffixes from math/rand/v2.
func NewProjector() *Projector {
	return &Projector{intn: rand.IntN}
}

// NewProjectorWithRand returns a Projector using intn for anonymous suffixes.
func NewProjectorWithRand(intn func(n int) int) *Projector {
	return &Projector{intn: intn}
}

// Build projects entry into its community post. owner may be nil when the
// profile no longer exists.
func (p *Projector) Build(entry domain.Entry, owner *domain.User) domain.CommunityPost {
	username := domain.AnonymousUsername
	anonymous := domain.AnonymousAdventurer
	if owner != nil {
		if owner.Username != "" {
			username = owner.Username
		}
		anonymous = AnonymousUsername(owner.DisplayName, owner.Username, p.intn)
	}

	mood := domain.DefaultMood
	if entry.Mood != nil && *entry.Mood != "" {
		mood = *entry.Mood
	}

	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}
	miniWins := entry.MiniWins
	if miniWins == nil {
		miniWins = []string{}
	}

	return domain.CommunityPost{
		ID:                entry.ID,
		ChaosEntryID:      entry.ID,
		UserID:            entry.UserID,
		Username:          username,
		AnonymousUsername: anonymous,
		Title:             entry.Title,
		Content:           entry.Content,
		Description:       entry.Content,
		ChaosLevel:        entry.ChaosLevel,
		Mood:              mood,
		Tags:              tags,
		MiniWins:          miniWins,
		IsAnonymous:       true,
		CreatedAt:         entry.CreatedAt,
	}
}

// AnonymousUsername derives "<base>_<n>" with n in [0, 9999). base is the
// first "_" segment of displayName, else username, else "Adventurer", so an
// already anonymised name does not grow a second suffix.
func AnonymousUsername(displayName, username string, intn func(n int) int) string {
	base := displayName
	if base == "" {
		base = username
	}
	if base == "" {
		base = anonymousBase
	}
	base, _, _ = strings.Cut(base, "_")

	return base + "_" + strconv.Itoa(intn(anonymousSuffix))
}
