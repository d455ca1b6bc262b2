package domain

import (
	"time"

	"github.com/google/uuid"
)

// UsernameUpdate stages username_lower for one legacy user row.
type UsernameUpdate struct {
	UserID        uuid.UUID
	Username      string
	UsernameLower string
}

// JobCheckpoint is the last fully processed key of a resumable job plus its
// running totals.
type JobCheckpoint struct {
	Job       string
	CursorID  uuid.UUID
	Processed int
	Shared    int
	UpdatedAt time.Time
}
