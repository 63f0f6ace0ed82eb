// Package fs provides filesystem adapters.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/otiai10/copy"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copier implements ports.Copier using otiai10/copy.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// CopyDir recursively copies src to dst. Symlinks are copied as links.
// dst must not exist yet.
func (c *Copier) CopyDir(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return zerr.With(domain.ErrDestinationExists, "path", dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "source", src)
	}
	if !info.IsDir() {
		return zerr.With(zerr.With(domain.ErrCopyFailed, "source", src), "reason", "not a directory")
	}

	opts := copy.Options{
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Shallow
		},
		PreserveTimes: true,
	}
	if err := copy.Copy(src, dst, opts); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "source", src)
		return zerr.With(err, "path", dst)
	}

	return nil
}
