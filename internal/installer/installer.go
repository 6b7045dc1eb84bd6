package installer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/skilldock/skilldock/internal/logger"
	"github.com/skilldock/skilldock/internal/platform"
	"github.com/skilldock/skilldock/internal/source"
)

// Mode selects how a skill reaches its target.
type Mode string

const (
	// ModeLocal installs as a symlink cascade through the staging area.
	ModeLocal Mode = "local"
	// ModeExternal installs as a recursive copy, an independent snapshot
	// with no shared-source semantics.
	ModeExternal Mode = "external"
)

// State is the per-skill, per-target installation outcome.
type State string

const (
	StateInstalled  State = "installed"
	StateSkipped    State = "skipped"
	StateFailed     State = "failed"
	StateRolledBack State = "rolled-back"
)

// Result reports a successful batch for caller display.
type Result struct {
	Installed int
	Skipped   int
	Log       *Log
}

// Installer installs skills from one source into model target directories.
type Installer struct {
	src        source.Source
	stagingDir string
	dryRun     bool
}

// Option configures an Installer.
type Option func(*Installer)

// WithDryRun makes every mutating operation log its intended action and
// return without touching the filesystem or the transaction log.
func WithDryRun(dryRun bool) Option {
	return func(i *Installer) { i.dryRun = dryRun }
}

// New returns an Installer linking skills from src through stagingDir.
func New(src source.Source, stagingDir string, opts ...Option) *Installer {
	inst := &Installer{src: src, stagingDir: stagingDir}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// InstallAll installs names into modelDir strictly in the given order. No
// skill starts before the previous one completed or was confirmed skipped,
// because later skills may share a staging link an earlier one created. On
// any failure the whole batch is rolled back and the original error is
// returned wrapped in a *BatchError carrying the rollback report.
func (i *Installer) InstallAll(ctx context.Context, names []string, modelDir string, mode Mode) (*Result, error) {
	log := NewLog()
	res := &Result{Log: log}

	for _, name := range names {
		state, err := i.installSkill(ctx, name, modelDir, mode, log)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("skill", name).Error("install failed, rolling back batch")
			report := Rollback(ctx, log)
			return nil, &BatchError{Cause: err, Report: report}
		}
		switch state {
		case StateInstalled:
			res.Installed++
		case StateSkipped:
			res.Skipped++
		}
	}
	return res, nil
}

// installSkill installs one skill into modelDir. In local mode the target is
// a symlink to the staging link, never directly to the source, so the
// canonical source can be re-resolved without touching installed links.
func (i *Installer) installSkill(ctx context.Context, name, modelDir string, mode Mode, log *Log) (State, error) {
	targetPath := filepath.Join(modelDir, "skills", name)
	sourcePath := i.src.SkillPath(name)
	lg := logger.G(ctx).WithFields(map[string]interface{}{
		"skill":  name,
		"target": targetPath,
		"mode":   string(mode),
	})

	if !i.src.Exists(name) {
		return StateFailed, errors.Errorf("skill %q is not present in the source", name)
	}

	// Idempotency contract: an existing symlink target means the skill is
	// already current. Links reference the canonical source, not a
	// snapshot, so the target is never re-read or re-validated.
	if platform.IsSymlink(targetPath) {
		lg.Debug("target is already a symlink, skipping")
		return StateSkipped, nil
	}

	if i.dryRun {
		lg.WithField("source", sourcePath).Info("dry-run: would install skill")
		return StateInstalled, nil
	}

	if mode == ModeLocal {
		if err := i.ensureStagingLink(ctx, name, sourcePath, log); err != nil {
			return StateFailed, err
		}
	}

	tx := log.begin(name, targetPath, ActionInstall)

	// A non-symlink occupant is always stale: replace it.
	if platform.Exists(targetPath) {
		lg.Warn("target exists but is not a symlink, replacing")
		if err := os.RemoveAll(targetPath); err != nil {
			return StateFailed, &FileSystemError{Op: "removing stale target", Path: targetPath, Err: err}
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return StateFailed, &FileSystemError{Op: "creating target directory", Path: filepath.Dir(targetPath), Err: err}
	}

	switch mode {
	case ModeLocal:
		stagingLink := filepath.Join(i.stagingDir, name)
		if err := platform.CreateSymlink(stagingLink, targetPath); err != nil {
			return StateFailed, &FileSystemError{Op: "linking target", Path: targetPath, Err: err}
		}
	case ModeExternal:
		if err := copyDir(sourcePath, targetPath); err != nil {
			return StateFailed, &FileSystemError{Op: "copying skill", Path: targetPath, Err: err}
		}
	default:
		return StateFailed, errors.Errorf("unknown install mode %q", mode)
	}

	tx.Completed = true
	lg.Info("skill installed")
	return StateInstalled, nil
}

// ensureStagingLink creates the shared staging link for a skill once; every
// model target reuses it.
func (i *Installer) ensureStagingLink(ctx context.Context, name, sourcePath string, log *Log) error {
	stagingLink := filepath.Join(i.stagingDir, name)
	if platform.IsSymlink(stagingLink) {
		return nil
	}

	tx := log.begin(name, stagingLink, ActionInstall)

	if err := os.MkdirAll(i.stagingDir, 0o755); err != nil {
		return &FileSystemError{Op: "creating staging directory", Path: i.stagingDir, Err: err}
	}
	if platform.Exists(stagingLink) {
		if err := os.RemoveAll(stagingLink); err != nil {
			return &FileSystemError{Op: "removing stale staging entry", Path: stagingLink, Err: err}
		}
	}
	if err := platform.CreateSymlink(sourcePath, stagingLink); err != nil {
		return &FileSystemError{Op: "linking staging entry", Path: stagingLink, Err: err}
	}

	tx.Completed = true
	logger.G(ctx).WithFields(map[string]interface{}{
		"skill":   name,
		"staging": stagingLink,
	}).Debug("staging link created")
	return nil
}

// Uninstall removes one skill's target path, logging and no-oping when it is
// absent. The removal is transaction-logged, but rollback cannot restore it.
func (i *Installer) Uninstall(ctx context.Context, name, modelDir string, log *Log) error {
	targetPath := filepath.Join(modelDir, "skills", name)
	lg := logger.G(ctx).WithFields(map[string]interface{}{
		"skill":  name,
		"target": targetPath,
	})

	if !platform.Exists(targetPath) {
		lg.Info("skill not installed, nothing to remove")
		return nil
	}

	if i.dryRun {
		lg.Info("dry-run: would remove skill")
		return nil
	}

	tx := log.begin(name, targetPath, ActionRemove)
	if err := os.RemoveAll(targetPath); err != nil {
		return &FileSystemError{Op: "removing target", Path: targetPath, Err: err}
	}
	tx.Completed = true
	lg.Info("skill removed")
	return nil
}
