package installer

// Action is the kind of filesystem mutation a transaction records.
type Action string

const (
	ActionInstall Action = "install"
	ActionRemove  Action = "remove"
)

// Transaction records one attempted filesystem mutation. Completed is set
// only after the mutation fully succeeds; an incomplete transaction is never
// replayed by rollback.
type Transaction struct {
	Skill      string
	TargetPath string
	Action     Action
	Completed  bool
}

// Log is the append-only transaction record for one batch. It is created
// fresh per batch and passed explicitly to Rollback rather than held on the
// installer, so batches never leak into each other. Logs are never
// persisted: installed state is always re-derived by probing the
// filesystem.
type Log struct {
	entries []*Transaction
}

// NewLog returns an empty transaction log.
func NewLog() *Log {
	return &Log{}
}

// begin appends a pending transaction and returns it so the caller can mark
// completion after the mutation succeeds.
func (l *Log) begin(skill, targetPath string, action Action) *Transaction {
	tx := &Transaction{Skill: skill, TargetPath: targetPath, Action: action}
	l.entries = append(l.entries, tx)
	return tx
}

// Transactions returns a snapshot of the log for inspection.
func (l *Log) Transactions() []Transaction {
	out := make([]Transaction, len(l.entries))
	for i, tx := range l.entries {
		out[i] = *tx
	}
	return out
}

// Len returns the number of recorded transactions.
func (l *Log) Len() int {
	return len(l.entries)
}
