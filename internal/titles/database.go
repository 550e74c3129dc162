package titles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"savescout/internal/logging"
)

// ErrImportLocked is returned when another process is importing into the
// same database.
var ErrImportLocked = errors.New("title import already in progress")

// Database is a Finder backed by a SQLite file of canonical titles.
type Database struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the title database at path.
func Open(path string, logger *slog.Logger) (*Database, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("title database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create title database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	d := &Database{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "titles"),
	}
	if err := d.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Path returns the database file location.
func (d *Database) Path() string { return d.path }

// Import stores titles, skipping blanks and duplicates. With replace set the
// previous contents are dropped in the same transaction. It returns the
// number of titles newly added.
func (d *Database) Import(ctx context.Context, titles []string, replace bool) (int, error) {
	lock := flock.New(d.path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire import lock: %w", err)
	}
	if !locked {
		return 0, fmt.Errorf("%w: %s", ErrImportLocked, lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if replace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM titles"); err != nil {
			return 0, fmt.Errorf("clear titles: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO titles (title, normalized) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, title, Normalize(title))
		if err != nil {
			return 0, fmt.Errorf("insert title %q: %w", title, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	d.logger.Info("imported titles",
		logging.Int("added", added),
		logging.Int("submitted", len(titles)),
		logging.Bool("replace", replace),
		logging.String(logging.FieldPath, d.path))
	return added, nil
}

// Count returns the number of stored titles.
func (d *Database) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM titles").Scan(&n); err != nil {
		return 0, fmt.Errorf("count titles: %w", err)
	}
	return n, nil
}

// List returns stored titles in alphabetical order.
func (d *Database) List(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT title FROM titles ORDER BY title COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		out = append(out, title)
	}
	return out, rows.Err()
}

// FindOne implements Finder. Lookup failures are logged and treated as no
// match so a broken database never aborts a scan.
func (d *Database) FindOne(query Query) (string, bool) {
	ctx := context.Background()
	for _, name := range query.Names {
		var title string
		err := d.db.QueryRowContext(ctx, "SELECT title FROM titles WHERE title = ?", name).Scan(&title)
		switch {
		case err == nil:
			return title, true
		case errors.Is(err, sql.ErrNoRows):
		default:
			d.logLookupFailure(name, err)
			return "", false
		}
	}
	if !query.Normalized {
		return "", false
	}
	for _, name := range query.Names {
		candidates, err := d.normalizedCandidates(ctx, Normalize(name))
		if err != nil {
			d.logLookupFailure(name, err)
			return "", false
		}
		if len(candidates) == 1 {
			return candidates[0], true
		}
	}
	return "", false
}

func (d *Database) normalizedCandidates(ctx context.Context, key string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT title FROM titles WHERE normalized = ? LIMIT 2", key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		out = append(out, title)
	}
	return out, rows.Err()
}

func (d *Database) logLookupFailure(name string, err error) {
	logging.WarnWithContext(d.logger, "title lookup failed", "title_lookup_failed",
		logging.String(logging.FieldTitle, name),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "re-create the title database with 'savescout titles import --replace'"),
		logging.String(logging.FieldImpact, "game treated as unrecognized"))
}
