package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a private chaos journal entry owned by exactly one user.
// JSON tags match the column names so row snapshots produced by the
// database decode directly into an Entry.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ChaosLevel  int       `json:"chaos_level"`
	Mood        *string   `json:"mood"`
	Tags        []string  `json:"tags"`
	MiniWins    []string  `json:"mini_wins"`
	ShareToFeed bool      `json:"share_to_feed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntryEventKind is the lifecycle transition an EntryEvent reports.
type EntryEventKind string

const (
	EntryCreated EntryEventKind = "created"
	EntryUpdated EntryEventKind = "updated"
	EntryDeleted EntryEventKind = "deleted"
)

// EntryEvent is a change notification for one entry. Before is nil for
// created events, After is nil for deleted events.
type EntryEvent struct {
	ID         string         `json:"id"`
	Kind       EntryEventKind `json:"kind"`
	UserID     uuid.UUID      `json:"user_id"`
	EntryID    uuid.UUID      `json:"entry_id"`
	Before     *Entry         `json:"before,omitempty"`
	After      *Entry         `json:"after,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
