// Package platform wraps the symlink primitives the installer builds on.
// The installer's idempotency contract probes link-ness with Lstat, so these
// helpers always create real symlinks; on Windows that requires developer
// mode or elevation, and the error is surfaced rather than worked around.
package platform

import (
	"os"

	"github.com/pkg/errors"
)

// CreateSymlink creates a symbolic link at link pointing to target.
func CreateSymlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		return errors.Wrapf(err, "creating symlink %s -> %s", link, target)
	}
	return nil
}

// RemoveSymlink removes a symlink without following it.
func RemoveSymlink(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, "removing symlink %s", path)
	}
	return nil
}

// ReadSymlinkTarget returns the target of a symlink.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading symlink %s", path)
	}
	return target, nil
}

// IsSymlink reports whether path exists and is a symlink. The probe uses
// Lstat so a dangling link still counts.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Exists reports whether path exists at all (file, directory, or link).
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
