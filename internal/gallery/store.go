package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/five82/pixday/internal/canvas"
)

// ErrNotFound is returned when a gallery entry does not exist.
var ErrNotFound = errors.New("gallery entry not found")

const schema = `
	CREATE TABLE IF NOT EXISTS gallery (
		id TEXT PRIMARY KEY NOT NULL,
		image BLOB NOT NULL,
		grid_size INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS gallery_created_idx ON gallery (created_at DESC);

	CREATE TABLE IF NOT EXISTS calendar (
		date_key TEXT PRIMARY KEY NOT NULL,
		gallery_id TEXT NOT NULL,
		FOREIGN KEY (gallery_id) REFERENCES gallery(id) ON DELETE CASCADE
	);
`

// Entry is one saved artwork.
type Entry struct {
	ID        string    `db:"id"`
	Image     []byte    `db:"image"`
	GridSize  int       `db:"grid_size"`
	CreatedAt time.Time `db:"created_at"`
}

// Day is a calendar binding.
type Day struct {
	DateKey   string `db:"date_key"`
	GalleryID string `db:"gallery_id"`
}

// Store is the SQLite-backed gallery and calendar.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database at path, creating the file, its directory
// and the schema when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	v := url.Values{}
	v.Add("_fk", "on")
	v.Add("_journal_mode", "WAL")
	v.Add("_busy_timeout", "5000")
	dsn := fmt.Sprintf("file:%s?%s", path, v.Encode())

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open gallery db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create gallery schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add rasterizes the snapshot and stores it as a new entry.
func (s *Store) Add(ctx context.Context, snap canvas.Snapshot, now time.Time) (Entry, error) {
	data, err := EncodePNG(snap)
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{
		ID:        uuid.NewString(),
		Image:     data,
		GridSize:  snap.Size(),
		CreatedAt: now.UTC(),
	}
	_, err = s.db.NamedExecContext(ctx,
		`INSERT INTO gallery (id, image, grid_size, created_at) VALUES (:id, :image, :grid_size, :created_at)`,
		entry)
	if err != nil {
		return Entry{}, fmt.Errorf("insert gallery entry: %w", err)
	}
	return entry, nil
}

// List returns every entry, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := s.db.SelectContext(ctx, &entries,
		`SELECT id, image, grid_size, created_at FROM gallery ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return entries, nil
}

// Get loads a single entry.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	var entry Entry
	err := s.db.GetContext(ctx, &entry,
		`SELECT id, image, grid_size, created_at FROM gallery WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get gallery entry %s: %w", id, err)
	}
	return entry, nil
}

// Delete removes an entry and any calendar days bound to it.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM gallery WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete gallery entry %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete gallery entry %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDay binds dateKey to the entry, replacing any earlier binding.
func (s *Store) SetDay(ctx context.Context, dateKey, id string) error {
	if _, err := ParseDateKey(dateKey); err != nil {
		return err
	}
	var exists int
	err := s.db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM gallery WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("bind %s: %w", dateKey, err)
	}
	if exists == 0 {
		return ErrNotFound
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO calendar (date_key, gallery_id) VALUES (?, ?)
		 ON CONFLICT(date_key) DO UPDATE SET gallery_id = excluded.gallery_id`,
		dateKey, id)
	if err != nil {
		return fmt.Errorf("bind %s: %w", dateKey, err)
	}
	return nil
}

// UnsetDay removes the binding for dateKey. Unbound days are not an error.
func (s *Store) UnsetDay(ctx context.Context, dateKey string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM calendar WHERE date_key = ?`, dateKey); err != nil {
		return fmt.Errorf("unbind %s: %w", dateKey, err)
	}
	return nil
}

// Calendar returns every binding as date key → gallery id.
func (s *Store) Calendar(ctx context.Context) (map[string]string, error) {
	var days []Day
	if err := s.db.SelectContext(ctx, &days, `SELECT date_key, gallery_id FROM calendar`); err != nil {
		return nil, fmt.Errorf("load calendar: %w", err)
	}
	out := make(map[string]string, len(days))
	for _, d := range days {
		out[d.DateKey] = d.GalleryID
	}
	return out, nil
}

// Load reads the entries and calendar together, as the refresher consumes them.
func (s *Store) Load(ctx context.Context) ([]Entry, map[string]string, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	days, err := s.Calendar(ctx)
	if err != nil {
		return nil, nil, err
	}
	return entries, days, nil
}
