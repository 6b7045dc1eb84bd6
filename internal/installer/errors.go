package installer

import "fmt"

// FileSystemError reports a failed symlink, copy, or remove. It is fatal for
// the current batch and triggers rollback.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// BatchError wraps the error that aborted a batch together with the outcome
// of the rollback that already ran, so operators can reconcile the rare case
// where rollback itself partially failed.
type BatchError struct {
	Cause  error
	Report *RollbackReport
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch install failed (%d transactions reverted, %d failed to revert): %v",
		len(e.Report.Reverted), len(e.Report.Failed), e.Cause)
}

func (e *BatchError) Unwrap() error { return e.Cause }
