package installer

import (
	"context"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/skilldock/skilldock/internal/logger"
	"github.com/skilldock/skilldock/internal/platform"
)

// RollbackReport records what a rollback managed to undo. Unrestorable holds
// completed remove transactions: removal keeps no backup, so rollback cannot
// bring the data back. Only installs are reversible.
type RollbackReport struct {
	Reverted     []Transaction
	Failed       []Transaction
	Unrestorable []Transaction
	Errs         error
}

// Rollback replays the transaction log in reverse order, undoing every
// completed install by removing its target path if it still exists.
// Incomplete transactions never mutated anything and are skipped.
func Rollback(ctx context.Context, log *Log) *RollbackReport {
	report := &RollbackReport{}
	lg := logger.G(ctx)

	entries := log.Transactions()
	for idx := len(entries) - 1; idx >= 0; idx-- {
		tx := entries[idx]
		if !tx.Completed {
			continue
		}

		switch tx.Action {
		case ActionInstall:
			if !platform.Exists(tx.TargetPath) {
				report.Reverted = append(report.Reverted, tx)
				continue
			}
			if err := os.RemoveAll(tx.TargetPath); err != nil {
				lg.WithError(err).WithField("target", tx.TargetPath).Error("failed to revert install")
				report.Failed = append(report.Failed, tx)
				report.Errs = multierror.Append(report.Errs,
					&FileSystemError{Op: "reverting install", Path: tx.TargetPath, Err: err})
				continue
			}
			lg.WithField("target", tx.TargetPath).Info("reverted install")
			report.Reverted = append(report.Reverted, tx)

		case ActionRemove:
			// No backup is kept, so a completed remove cannot be undone.
			lg.WithFields(map[string]interface{}{
				"skill":  tx.Skill,
				"target": tx.TargetPath,
			}).Warn("cannot restore removed skill during rollback")
			report.Unrestorable = append(report.Unrestorable, tx)
		}
	}
	return report
}
