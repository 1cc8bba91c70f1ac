// Package backup snapshots the sqlite database and keeps the copies in a
// filesystem directory or an S3 bucket.
package backup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/donation_tracker/internal/platform/logging"
	"github.com/SscSPs/donation_tracker/pkg/database"
)

// ErrUnsupported is returned for databases that cannot be snapshotted here.
var ErrUnsupported = errors.New("backup not supported for this database driver")

// baseName prefixes every backup file name.
const baseName = "databaseBackup-"

const (
	timestampLayout = "2006-01-02T15-04-05Z"
	backupExt       = ".sqlite"
)

// Info describes one stored backup.
type Info struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Target stores backup files.
type Target interface {
	Name() string
	// Put stores r under key. It fails when key already exists.
	Put(ctx context.Context, key string, r io.Reader, size int64) (Info, error)
	// List returns the stored keys starting with prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]Info, error)
}

// Manager takes backups of one database.
type Manager struct {
	db     *sql.DB
	driver database.Driver
	target Target
	prefix string
	now    func() time.Time
	logging.Helper
}

func NewManager(db *sql.DB, driver database.Driver, target Target, prefix string) *Manager {
	return &Manager{db: db, driver: driver, target: target, prefix: prefix, now: time.Now}
}

// Key returns the object key used for a backup taken at t.
func (m *Manager) Key(t time.Time) string {
	return m.prefix + baseName + t.UTC().Format(timestampLayout) + backupExt
}

// Backup writes a consistent copy of the database with VACUUM INTO and
// hands it to the target.
func (m *Manager) Backup(ctx context.Context) (Info, error) {
	if m.driver != database.DriverSQLite {
		return Info{}, ErrUnsupported
	}

	dir, err := os.MkdirTemp("", "donation-backup-*")
	if err != nil {
		return Info{}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	snapshot := filepath.Join(dir, "snapshot.sqlite")
	if _, err := m.db.ExecContext(ctx, "VACUUM INTO ?", snapshot); err != nil {
		return Info{}, fmt.Errorf("failed to snapshot database: %w", err)
	}

	f, err := os.Open(snapshot)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat snapshot: %w", err)
	}

	key := m.Key(m.now())
	info, err := m.target.Put(ctx, key, f, st.Size())
	if err != nil {
		m.LogError(ctx, err, "Backup upload failed", slog.String("target", m.target.Name()), slog.String("key", key))
		return Info{}, fmt.Errorf("failed to store backup %s: %w", key, err)
	}
	m.LogInfo(ctx, "Database backup stored",
		slog.String("target", m.target.Name()),
		slog.String("key", info.Key),
		slog.Int64("size", info.Size))
	return info, nil
}

// List returns the stored backups, oldest first. Keys that do not follow
// the Key format, such as sqlite -wal/-shm sidecars left next to a copy
// that was opened in place, are skipped.
func (m *Manager) List(ctx context.Context) ([]Info, error) {
	infos, err := m.target.List(ctx, m.prefix+baseName)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	return slices.DeleteFunc(infos, func(i Info) bool {
		return !strings.HasSuffix(i.Key, backupExt)
	}), nil
}
