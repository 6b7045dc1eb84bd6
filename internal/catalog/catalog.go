// Package catalog manages the cached checkout of the remote skills
// repository. It is a thin git wrapper: shallow clone into a temp directory
// with an atomic rename, depth-1 pull on update, and a freshness marker so
// the CLI can nudge users toward stale-catalog updates. The resolver never
// talks to the network; it only ever sees the checkout through a Source.
package catalog

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/skilldock/skilldock/internal/config"
)

const (
	// freshnessFile is the name of the timestamp marker file.
	freshnessFile = ".catalog-updated"

	// DefaultMaxAge is the default staleness threshold.
	DefaultMaxAge = 7 * 24 * time.Hour

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"
)

// Clone performs a shallow clone of the skills repository into targetDir.
// It attempts a sparse checkout of only the skills/ subtree and falls back
// to a full shallow clone on older git. The clone is atomic: it writes to a
// .tmp directory first and renames on success.
func Clone(targetDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	repoURL := config.CatalogRepoURL()
	if repoURL == "" {
		return errors.New("no catalog_repo configured; run `skilldock config set catalog_repo <url>`")
	}

	tmpDir := targetDir + tmpSuffix
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), 0o755); err != nil {
		return errors.Wrap(err, "creating parent directory")
	}

	if err := trySparseClone(tmpDir, repoURL); err != nil {
		_ = os.RemoveAll(tmpDir)
		if err := fullShallowClone(tmpDir, repoURL); err != nil {
			_ = os.RemoveAll(tmpDir)
			return errors.Wrap(err, "cloning catalog")
		}
	}

	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return errors.Wrap(err, "removing existing catalog dir")
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return errors.Wrap(err, "finalizing catalog clone")
	}

	WriteFreshnessMarker(targetDir)
	return nil
}

// Update pulls the latest changes in the checkout, cloning when it does not
// exist yet.
func Update(repoDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	gitDir := filepath.Join(repoDir, ".git")
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		return Clone(repoDir)
	}

	cmd := exec.Command("git", "pull", "--depth=1", "--rebase")
	cmd.Dir = repoDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "pulling catalog updates: %s", strings.TrimSpace(string(output)))
	}

	WriteFreshnessMarker(repoDir)
	return nil
}

// WriteFreshnessMarker writes the current Unix timestamp to the marker file.
func WriteFreshnessMarker(repoDir string) {
	markerPath := filepath.Join(repoDir, freshnessFile)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	_ = os.WriteFile(markerPath, []byte(ts), 0o644)
}

// ReadFreshnessMarker reads the timestamp from the marker file, returning
// zero time if the file is missing or unparseable.
func ReadFreshnessMarker(repoDir string) time.Time {
	data, err := os.ReadFile(filepath.Join(repoDir, freshnessFile))
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale reports whether the checkout was last updated more than maxAge
// ago. A missing marker counts as stale.
func IsStale(repoDir string, maxAge time.Duration) bool {
	lastUpdated := ReadFreshnessMarker(repoDir)
	if lastUpdated.IsZero() {
		return true
	}
	return time.Since(lastUpdated) > maxAge
}

// trySparseClone attempts a sparse shallow clone of only skills/.
func trySparseClone(targetDir, repoURL string) error {
	cmd := exec.Command("git", "clone", "--depth=1", "--sparse", "--no-checkout", repoURL, targetDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "sparse clone: %s", strings.TrimSpace(string(output)))
	}

	cmd = exec.Command("git", "sparse-checkout", "set", "skills/")
	cmd.Dir = targetDir
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "sparse-checkout set: %s", strings.TrimSpace(string(output)))
	}

	cmd = exec.Command("git", "checkout")
	cmd.Dir = targetDir
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "checkout: %s", strings.TrimSpace(string(output)))
	}

	return nil
}

// fullShallowClone performs a regular depth-1 clone for older git.
func fullShallowClone(targetDir, repoURL string) error {
	cmd := exec.Command("git", "clone", "--depth=1", repoURL, targetDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "shallow clone: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.New("git is required but not found in PATH")
	}
	return nil
}
