// Package sqlstore persists tasks in a single relational table. Postgres,
// MySQL and SQLite are supported; queries are written once with "?" binds
// and rebound for the dialect in use.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"task-manager/internal/model"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type Config struct {
	Driver string
	DSN    string
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

// Open connects to the database and verifies it with a ping. The returned
// Store owns the connection pool until Close.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	dialect, driverName, dsn, err := resolve(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == SQLite {
		// one writer at a time; avoids SQLITE_BUSY between pooled conns
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	return &Store{db: db, dialect: dialect}, nil
}

// New wraps an already opened handle.
func New(db *sqlx.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func resolve(cfg Config) (Dialect, string, string, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return "", "", "", errors.New("store dsn is required")
	}

	switch Dialect(strings.ToLower(cfg.Driver)) {
	case Postgres:
		return Postgres, "pgx", cfg.DSN, nil
	case MySQL:
		mc, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", "", "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		mc.ParseTime = true
		mc.Loc = time.UTC
		return MySQL, "mysql", mc.FormatDSN(), nil
	case SQLite:
		dsn := cfg.DSN
		if !strings.Contains(dsn, "_time_format=") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_time_format=sqlite&_pragma=busy_timeout(5000)"
		}
		return SQLite, "sqlite", dsn, nil
	default:
		return "", "", "", fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

const taskColumns = `id, title, description, priority, completed, due_date, created_at, updated_at`

func (s *Store) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	var (
		where []string
		args  []any
	)
	if filter.Completed != nil {
		where = append(where, "completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.Priority != "" {
		where = append(where, "priority = ?")
		args = append(args, filter.Priority)
	}

	q := `SELECT ` + taskColumns + ` FROM tasks`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at DESC, id DESC`

	tasks := []model.Task{}
	if err := s.db.SelectContext(ctx, &tasks, s.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	for i := range tasks {
		normalize(&tasks[i])
	}
	return tasks, nil
}

func (s *Store) Create(ctx context.Context, t model.Task) (model.Task, error) {
	const q = `
INSERT INTO tasks (title, description, priority, completed, due_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	args := []any{t.Title, t.Description, string(t.Priority), t.Completed, nullTime(t.DueDate), t.CreatedAt.UTC(), t.UpdatedAt.UTC()}

	if s.dialect == Postgres {
		if err := s.db.QueryRowxContext(ctx, s.db.Rebind(q+` RETURNING id`), args...).Scan(&t.ID); err != nil {
			return model.Task{}, err
		}
		return t, nil
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(q), args...)
	if err != nil {
		return model.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	t.ID = id
	return t, nil
}

// Mutate runs fn against the current row inside a transaction. On postgres
// and mysql the row is locked for the duration; the last commit wins.
func (s *Store) Mutate(ctx context.Context, id int64, fn func(*model.Task) error) (model.Task, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	if s.dialect != SQLite {
		q += ` FOR UPDATE`
	}

	var t model.Task
	if err := tx.GetContext(ctx, &t, tx.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, err
	}
	normalize(&t)

	if err := fn(&t); err != nil {
		return model.Task{}, err
	}
	t.ID = id

	const updateQ = `
UPDATE tasks
SET title = ?,
    description = ?,
    priority = ?,
    completed = ?,
    due_date = ?,
    updated_at = ?
WHERE id = ?`
	if _, err := tx.ExecContext(ctx, tx.Rebind(updateQ),
		t.Title, t.Description, string(t.Priority), t.Completed, nullTime(t.DueDate), t.UpdatedAt.UTC(), id,
	); err != nil {
		return model.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func normalize(t *model.Task) {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	t.DueDate = utcPtr(t.DueDate)
}

// nullTime binds an optional timestamp as NULL or a UTC time.Time.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
