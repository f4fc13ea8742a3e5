package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/domain/model"
	"github.com/polkiloo/opsdash/internal/domain/repository"
)

const defaultQueryTimeout = 5 * time.Second

// pgxPool abstracts pgxpool.Pool so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool         pgxPool
	logger       *slog.Logger
	queryTimeout time.Duration
}

type accountRepository struct {
	storage *Storage
}

type salesRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, queryTimeout time.Duration, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	storage := &Storage{pool: pool, logger: logger, queryTimeout: queryTimeout}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Sales() repository.SalesRepository {
	return &salesRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            username TEXT PRIMARY KEY,
            display_name TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            avatar BYTEA,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS sales (
            year INTEGER PRIMARY KEY,
            target DOUBLE PRECISION NOT NULL,
            january DOUBLE PRECISION,
            february DOUBLE PRECISION,
            march DOUBLE PRECISION,
            april DOUBLE PRECISION,
            may DOUBLE PRECISION,
            june DOUBLE PRECISION,
            july DOUBLE PRECISION,
            august DOUBLE PRECISION,
            september DOUBLE PRECISION,
            october DOUBLE PRECISION,
            november DOUBLE PRECISION,
            december DOUBLE PRECISION
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// queryCtx bounds a storage call so no operation can hang past the
// configured timeout.
func (s *Storage) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.queryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// --- AccountRepository implementation ---

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	ctx, cancel := r.storage.queryCtx(ctx)
	defer cancel()

	const query = `SELECT username, display_name, password_hash, avatar, created_at, updated_at
                   FROM accounts WHERE username=$1`
	var a model.Account
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(
		&a.Username, &a.DisplayName, &a.PasswordHash, &a.Avatar, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, username, newHash string, verify func(currentHash string) error) error {
	ctx, cancel := r.storage.queryCtx(ctx)
	defer cancel()

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT password_hash FROM accounts WHERE username=$1 FOR UPDATE`
		var currentHash string
		if err := tx.QueryRow(ctx, selectQuery, username).Scan(&currentHash); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if verify != nil {
			if err := verify(currentHash); err != nil {
				return err
			}
		}

		const updateQuery = `UPDATE accounts SET password_hash=$1, updated_at=NOW() WHERE username=$2`
		if _, err := tx.Exec(ctx, updateQuery, newHash, username); err != nil {
			return err
		}
		return nil
	})
}

func (r *accountRepository) UpdateAvatar(ctx context.Context, username string, avatar []byte) error {
	ctx, cancel := r.storage.queryCtx(ctx)
	defer cancel()

	const query = `UPDATE accounts SET avatar=$1, updated_at=NOW() WHERE username=$2`
	tag, err := r.storage.pool.Exec(ctx, query, avatar, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *accountRepository) ClearAvatar(ctx context.Context, username string) error {
	ctx, cancel := r.storage.queryCtx(ctx)
	defer cancel()

	const query = `UPDATE accounts SET avatar=NULL, updated_at=NOW() WHERE username=$1`
	tag, err := r.storage.pool.Exec(ctx, query, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SalesRepository implementation ---

func (r *salesRepository) MaxYear(ctx context.Context) (int, error) {
	ctx, cancel := r.storage.queryCtx(ctx)
	defer cancel()

	const query = `SELECT year FROM sales ORDER BY year DESC LIMIT 1`
	var year int
	err := r.storage.pool.QueryRow(ctx, query).Scan(&year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	return year, nil
}

func (r *salesRepository) GetByYear(ctx context.Context, year int) (*model.SalesRecord, error) {
	ctx, cancel := r.storage.queryCtx(ctx)
	defer cancel()

	// NULL months read as 0 so a sparsely filled row never fails a report.
	const query = `SELECT year, target,
                       COALESCE(january, 0), COALESCE(february, 0), COALESCE(march, 0),
                       COALESCE(april, 0), COALESCE(may, 0), COALESCE(june, 0),
                       COALESCE(july, 0), COALESCE(august, 0), COALESCE(september, 0),
                       COALESCE(october, 0), COALESCE(november, 0), COALESCE(december, 0)
                   FROM sales WHERE year=$1`
	var rec model.SalesRecord
	err := r.storage.pool.QueryRow(ctx, query, year).Scan(
		&rec.Year, &rec.Target,
		&rec.January, &rec.February, &rec.March,
		&rec.April, &rec.May, &rec.June,
		&rec.July, &rec.August, &rec.September,
		&rec.October, &rec.November, &rec.December,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
