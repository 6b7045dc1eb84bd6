// Package installer applies a resolved installation order to the
// filesystem. In local mode each skill is a two-hop symlink cascade: a
// shared staging link points at the canonical source directory, and every
// model target links at the staging link rather than the source. In
// external mode the skill directory is copied as an independent snapshot.
//
// Every non-skipped mutation is recorded in an append-only transaction log
// created fresh per batch; on any failure the whole batch is rolled back in
// reverse order and the original error is returned. Removes are not
// reversible (no backup is kept); the rollback report calls them out as
// unrestorable rather than hiding them.
//
// All work is strictly sequential within one batch. Concurrent Installers
// pointed at the same target tree are not guarded against; there is no
// file locking.
package installer
