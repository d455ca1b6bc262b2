package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// UniqueUsername returns a username that will not collide across parallel tests.
func UniqueUsername(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}

// SeedUser inserts a fully normalised user (username_lower set, claim row
// present) with profile defaults.
func SeedUser(t *testing.T, pool *pgxpool.Pool, username string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.NewUser(uuid.New(), username, "", now)
	insertUser(t, pool, u, true)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO username_claims (username_lower, user_id) VALUES ($1, $2)`,
		u.UsernameLower, u.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert claim: %v", err)
	}

	return u
}

// SeedLegacyUser inserts a user created before username_lower existed:
// the column is NULL and no claim row exists.
func SeedLegacyUser(t *testing.T, pool *pgxpool.Pool, username string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.NewUser(uuid.New(), username, "", now)
	u.UsernameLower = ""
	insertUser(t, pool, u, false)

	return u
}

func insertUser(t *testing.T, pool *pgxpool.Pool, u domain.User, withLower bool) {
	t.Helper()

	settings, err := json.Marshal(u.Settings)
	if err != nil {
		t.Fatalf("testhelper: marshal settings: %v", err)
	}

	var lower *string
	if withLower {
		lower = &u.UsernameLower
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO users (id, username, username_lower, display_name, role, settings,
		                    created_at, join_date, last_active_at, last_login, last_login_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $7, $7, $7)`,
		u.ID, u.Username, lower, u.DisplayName, string(u.Role), settings, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert user %q: %v", u.Username, err)
	}
}

// SeedEntry inserts a chaos entry owned by userID. The insert fires the
// entry_events trigger like any other write.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, share bool) domain.Entry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	mood := "chaotic"
	e := domain.Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Lost my keys again",
		Content:     "Found them in the fridge.",
		ChaosLevel:  7,
		Mood:        &mood,
		Tags:        []string{"keys", "fridge"},
		MiniWins:    []string{"found them"},
		ShareToFeed: share,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO chaos_entries (id, user_id, title, content, chaos_level, mood, tags, mini_wins,
		                            share_to_feed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.UserID, e.Title, e.Content, e.ChaosLevel, e.Mood, e.Tags, e.MiniWins,
		e.ShareToFeed, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return e
}
