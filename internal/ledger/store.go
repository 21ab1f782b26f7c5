// Package ledger keeps a SQLite record of played rounds: the transcript
// that was proven and the verdict the prover returned.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"zikzakzoo/game"
	"zikzakzoo/internal/ledger/migrations"
)

var (
	ErrNotFound      = errors.New("round not found")
	ErrAlreadyExists = errors.New("round already exists")
)

// Round is one ledger row.
type Round struct {
	ID         string
	Seed       uint64
	Transcript string
	Verdict    bool
	Backend    string
	CreatedAt  time.Time
}

// Store persists rounds in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the ledger at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts r. A blank ID is replaced with a new UUID and a zero
// CreatedAt with the current time; the stored values are returned.
func (s *Store) Record(ctx context.Context, r Round) (Round, error) {
	if err := ctx.Err(); err != nil {
		return Round{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Round{}, fmt.Errorf("storage is not configured")
	}
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = time.UnixMilli(r.CreatedAt.UnixMilli()).UTC()
	if strings.TrimSpace(r.Backend) == "" {
		return Round{}, fmt.Errorf("backend is required")
	}
	t, err := game.ParseTranscript(r.Transcript)
	if err != nil {
		return Round{}, fmt.Errorf("transcript: %w", err)
	}
	if t.Seed != r.Seed {
		return Round{}, fmt.Errorf("transcript seed %d does not match round seed %d", t.Seed, r.Seed)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO rounds (id, seed, transcript, verdict, backend, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID,
		strconv.FormatUint(r.Seed, 10),
		r.Transcript,
		r.Verdict,
		r.Backend,
		r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Round{}, ErrAlreadyExists
		}
		return Round{}, fmt.Errorf("record round: %w", err)
	}
	return r, nil
}

// Get returns the round with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Round, error) {
	if err := ctx.Err(); err != nil {
		return Round{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Round{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, seed, transcript, verdict, backend, created_at
		   FROM rounds
		  WHERE id = ?`,
		strings.TrimSpace(id),
	)
	r, err := scanRound(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Round{}, ErrNotFound
		}
		return Round{}, fmt.Errorf("get round: %w", err)
	}
	return r, nil
}

// List returns up to limit rounds, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, seed, transcript, verdict, backend, created_at
		   FROM rounds
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (Round, error) {
	var (
		r         Round
		seed      string
		createdAt int64
	)
	if err := row.Scan(&r.ID, &seed, &r.Transcript, &r.Verdict, &r.Backend, &createdAt); err != nil {
		return Round{}, err
	}
	v, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return Round{}, fmt.Errorf("parse seed %q: %w", seed, err)
	}
	r.Seed = v
	r.CreatedAt = time.UnixMilli(createdAt).UTC()
	return r, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
