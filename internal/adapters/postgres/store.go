package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/devfolio/internal/logging"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const defaultTable = "portfolios"

// DB is the part of *pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements ports.DocumentStore on PostgreSQL, one JSONB row per document.
type Store struct {
	db     DB
	close  func()
	table  string
	logger *slog.Logger
}

type Option func(*Store)

// WithTable overrides the table name. The name is used verbatim in SQL and
// must come from trusted configuration.
func WithTable(table string) Option {
	return func(s *Store) {
		s.table = table
	}
}

// WithLogger sets the logger used for migrations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Connect opens a pool for dsn and runs the migrations.
func Connect(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	store := NewFromPool(pool, opts...)
	if err := store.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// NewFromPool creates a store on an existing pool. It does not migrate.
// Close closes the pool.
func NewFromPool(pool *pgxpool.Pool, opts ...Option) *Store {
	s := New(pool, opts...)
	s.close = pool.Close
	return s
}

// New creates a store on db. It does not migrate, and Close leaves db open.
func New(db DB, opts ...Option) *Store {
	s := &Store{
		db:     db,
		table:  defaultTable,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migration is one idempotent schema change.
type Migration struct {
	Name string
	Up   func(ctx context.Context, s *Store) error
}

func (s *Store) migrations() []Migration {
	return []Migration{
		{
			Name: "create_portfolios",
			Up: func(ctx context.Context, s *Store) error {
				_, err := s.db.Exec(ctx, fmt.Sprintf(`
					CREATE TABLE IF NOT EXISTS %s (
						id         TEXT PRIMARY KEY,
						document   JSONB NOT NULL,
						created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
						updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
					)`, s.table))
				return err
			},
		},
		{
			Name: "add_visibility",
			Up: func(ctx context.Context, s *Store) error {
				_, err := s.db.Exec(ctx, fmt.Sprintf(`
					ALTER TABLE %s
					ADD COLUMN IF NOT EXISTS visibility TEXT
					GENERATED ALWAYS AS (document->'meta'->>'visibility') STORED`, s.table))
				return err
			},
		},
	}
}

// Migrate applies every migration in order.
func (s *Store) Migrate(ctx context.Context) error {
	for _, m := range s.migrations() {
		if err := m.Up(ctx, s); err != nil {
			s.logger.Error("Migration failed", "name", m.Name, "error", err)
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		s.logger.Debug("Migration completed", "name", m.Name)
	}
	return nil
}

// Save upserts the document.
func (s *Store) Save(ctx context.Context, id string, doc *domain.Document) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = s.db.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (id, document) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`, s.table),
		id, data)
	if err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}

// Load retrieves the document.
func (s *Store) Load(ctx context.Context, id string) (*domain.Document, error) {
	var data []byte
	err := s.db.QueryRow(ctx, fmt.Sprintf(`SELECT document FROM %s WHERE id = $1`, s.table), id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio: %w", err)
	}
	return &doc, nil
}

// Delete removes the row.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table), id); err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	return nil
}

// List returns all IDs in order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, fmt.Sprintf(`SELECT id FROM %s ORDER BY id`, s.table))
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close releases the pool opened by Connect or NewFromPool.
func (s *Store) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
