// Package user implements principal profile persistence using PostgreSQL.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/chaosjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// Repo provides user and username-claim persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var userColumns = []string{
	"id", "username", "COALESCE(username_lower, '')", "display_name", "auth_type", "role", "bio",
	"email", "favorite_character", "favorite_quote", "profile_picture", "profile_version",
	"party_role", "chaos_level", "chaos_entries_count", "total_entries", "day_streak",
	"longest_streak", "support_given", "support_received", "achievements", "is_active",
	"is_anonymous", "settings", "created_at", "join_date", "last_active_at", "last_login",
	"last_login_date",
}

func selectUsers() sq.SelectBuilder {
	return postgres.Builder().Select(userColumns...).From("users")
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := selectUsers().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByUsernameLower returns the oldest user whose username_lower matches.
// Rows not yet normalised are invisible to this lookup.
func (r *Repo) GetByUsernameLower(ctx context.Context, usernameLower string) (*domain.User, error) {
	query, args, err := selectUsers().
		Where(sq.Eq{"username_lower": usernameLower}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "username", usernameLower)
	}
	return u, nil
}

// ListPage returns up to limit users with id greater than after, ordered by id.
func (r *Repo) ListPage(ctx context.Context, after uuid.UUID, limit int) ([]domain.User, error) {
	query, args, err := selectUsers().
		Where(sq.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new profile row.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	settings, err := json.Marshal(u.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	var usernameLower *string
	if u.UsernameLower != "" {
		usernameLower = &u.UsernameLower
	}

	achievements := u.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	query, args, err := postgres.Builder().
		Insert("users").
		Columns(
			"id", "username", "username_lower", "display_name", "auth_type", "role", "bio",
			"email", "favorite_character", "favorite_quote", "profile_picture", "profile_version",
			"party_role", "chaos_level", "chaos_entries_count", "total_entries", "day_streak",
			"longest_streak", "support_given", "support_received", "achievements", "is_active",
			"is_anonymous", "settings", "created_at", "join_date", "last_active_at", "last_login",
			"last_login_date",
		).
		Values(
			u.ID, u.Username, usernameLower, u.DisplayName, u.AuthType, string(u.Role), u.Bio,
			u.Email, u.FavoriteChar, u.FavoriteQuote, u.ProfilePicture, u.ProfileVersion,
			u.PartyRole, u.ChaosLevel, u.Stats.ChaosEntries, u.Stats.TotalEntries, u.Stats.DayStreak,
			u.Stats.LongestStreak, u.Stats.SupportGiven, u.Stats.SupportReceived, achievements, u.IsActive,
			u.IsAnonymous, string(settings), u.CreatedAt, u.JoinDate, u.LastActiveAt, u.LastLogin,
			u.LastLoginDate,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", u.ID.String())
	}
	return nil
}

// ClaimUsername records that usernameLower belongs to userID. A second claim
// of the same name fails with domain.ErrAlreadyExists.
func (r *Repo) ClaimUsername(ctx context.Context, usernameLower string, userID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Insert("username_claims").
		Columns("username_lower", "user_id").
		Values(usernameLower, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "username", usernameLower)
	}
	return nil
}

// TouchLogin sets last_active_at, last_login and last_login_date to at.
func (r *Repo) TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := postgres.Builder().
		Update("users").
		Set("last_active_at", at).
		Set("last_login", at).
		Set("last_login_date", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id.String())
	}
	return nil
}

// SetRole changes the user's role. It reports false when the user already
// had that role.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (bool, error) {
	query, args, err := postgres.Builder().
		Update("users").
		Set("role", string(role)).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"role": string(role)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "user", id.String())
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Username normalisation
// ---------------------------------------------------------------------------

// ListMissingUsernameLower returns up to limit users after the cursor that
// have a username but no username_lower.
func (r *Repo) ListMissingUsernameLower(ctx context.Context, after uuid.UUID, limit int) ([]domain.UsernameUpdate, error) {
	query, args, err := postgres.Builder().
		Select("id", "username").
		From("users").
		Where(sq.Eq{"username_lower": nil}).
		Where(sq.NotEq{"username": ""}).
		Where(sq.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list legacy users: %w", err)
	}
	defer rows.Close()

	var out []domain.UsernameUpdate
	for rows.Next() {
		var u domain.UsernameUpdate
		if err := rows.Scan(&u.UserID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan legacy user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacy users: %w", err)
	}

	return out, nil
}

// ApplyUsernameLower writes username_lower and a claim row for every update
// in one pgx.Batch. Rows normalised concurrently are left alone and not
// counted. It returns the number of users updated and the updates whose name
// was already claimed by another principal.
func (r *Repo) ApplyUsernameLower(ctx context.Context, updates []domain.UsernameUpdate) (int, []domain.UsernameUpdate, error) {
	if len(updates) == 0 {
		return 0, nil, nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(
			`UPDATE users SET username_lower = $2 WHERE id = $1 AND username_lower IS NULL`,
			u.UserID, u.UsernameLower,
		)
		batch.Queue(
			`INSERT INTO username_claims (username_lower, user_id) VALUES ($1, $2)
			 ON CONFLICT (username_lower) DO NOTHING`,
			u.UsernameLower, u.UserID,
		)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	var (
		updated   int
		conflicts []domain.UsernameUpdate
	)
	for _, u := range updates {
		userTag, err := br.Exec()
		if err != nil {
			return 0, nil, postgres.MapError(err, "user", u.UserID.String())
		}
		claimTag, err := br.Exec()
		if err != nil {
			return 0, nil, postgres.MapError(err, "username", u.UsernameLower)
		}
		if userTag.RowsAffected() == 0 {
			continue
		}
		updated++
		if claimTag.RowsAffected() == 0 {
			conflicts = append(conflicts, u)
		}
	}

	if err := br.Close(); err != nil {
		return 0, nil, fmt.Errorf("close batch: %w", err)
	}
	return updated, conflicts, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u        domain.User
		role     string
		settings []byte
	)

	err := row.Scan(
		&u.ID, &u.Username, &u.UsernameLower, &u.DisplayName, &u.AuthType, &role, &u.Bio,
		&u.Email, &u.FavoriteChar, &u.FavoriteQuote, &u.ProfilePicture, &u.ProfileVersion,
		&u.PartyRole, &u.ChaosLevel, &u.Stats.ChaosEntries, &u.Stats.TotalEntries, &u.Stats.DayStreak,
		&u.Stats.LongestStreak, &u.Stats.SupportGiven, &u.Stats.SupportReceived, &u.Achievements, &u.IsActive,
		&u.IsAnonymous, &settings, &u.CreatedAt, &u.JoinDate, &u.LastActiveAt, &u.LastLogin,
		&u.LastLoginDate,
	)
	if err != nil {
		return nil, err
	}

	u.Role = domain.UserRole(role)
	u.Settings = domain.DefaultUserSettings()
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &u.Settings); err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
	}

	return &u, nil
}
