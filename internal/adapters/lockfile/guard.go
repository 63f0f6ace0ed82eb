// Package lockfile guards a lock file across commands that rewrite it.
package lockfile

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Guard holds the original contents of a lock file and restores them exactly once.
type Guard struct {
	logger     ports.Logger
	lockPath   string
	backupPath string
	original   []byte
	digest     uint64
	mode       fs.FileMode
	restored   bool
}

// Acquire reads the lock file at path and writes its backup next to it.
func Acquire(path string, logger ports.Logger) (*Guard, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileRead.Error()), "path", path)
	}

	// #nosec G304 -- path is the workspace lock file
	original, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileRead.Error()), "path", path)
	}

	g := &Guard{
		logger:     logger,
		lockPath:   path,
		backupPath: path + domain.BackupSuffix,
		original:   original,
		digest:     xxhash.Sum64(original),
		mode:       info.Mode().Perm(),
	}

	if err := os.WriteFile(g.backupPath, original, g.mode); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileBackup.Error()), "path", g.backupPath)
	}

	return g, nil
}

// Path returns the guarded lock file path.
func (g *Guard) Path() string { return g.lockPath }

// BackupPath returns the path of the backup copy.
func (g *Guard) BackupPath() string { return g.backupPath }

// Digest returns the xxhash64 of the captured lock contents.
func (g *Guard) Digest() uint64 { return g.digest }

// Restore writes the captured contents back to the lock file and removes the backup.
// Only the first call has an effect.
func (g *Guard) Restore() error {
	if g.restored {
		return nil
	}
	g.restored = true

	if err := os.WriteFile(g.lockPath, g.original, g.mode); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrLockfileRestore.Error()), "path", g.lockPath)
		return zerr.With(err, "backup", g.backupPath)
	}

	// #nosec G304 -- path is the workspace lock file
	written, err := os.ReadFile(g.lockPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileRestore.Error()), "path", g.lockPath)
	}
	if xxhash.Sum64(written) != g.digest {
		err := zerr.With(domain.ErrLockfileRestore, "path", g.lockPath)
		return zerr.With(err, "backup", g.backupPath)
	}

	if err := os.Remove(g.backupPath); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileRestore.Error()), "path", g.backupPath)
	}

	return nil
}

// Close restores the lock file if that has not happened yet. A failure is
// logged, with the backup left in place for manual recovery.
func (g *Guard) Close() {
	if g.restored {
		return
	}
	if err := g.Restore(); err != nil {
		g.logger.Error(err)
		g.logger.Warn(fmt.Sprintf("original lock file is kept at %s", g.backupPath))
	}
}

// Manager implements ports.LockManager.
type Manager struct {
	logger ports.Logger
}

// NewManager creates a Manager logging restore failures to logger.
func NewManager(logger ports.Logger) *Manager {
	return &Manager{logger: logger}
}

// Acquire captures the lock file at path.
func (m *Manager) Acquire(path string) (ports.LockGuard, error) {
	g, err := Acquire(path, m.logger)
	if err != nil {
		return nil, err
	}
	return g, nil
}
