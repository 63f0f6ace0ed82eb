package ports

// LockGuard protects a lock file while a destructive command rewrites it.
type LockGuard interface {
	// Restore writes the captured lock contents back and removes the backup.
	// Calls after the first are no-ops.
	Restore() error

	// Close restores the lock file if Restore has not run yet, logging any failure.
	Close()
}

// LockManager captures lock files.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type LockManager interface {
	// Acquire captures the lock file at path and writes its backup.
	Acquire(path string) (LockGuard, error)
}
