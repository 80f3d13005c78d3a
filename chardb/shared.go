package chardb

import (
	"sync"

	"github.com/hanzikit/radicalgebra/dataset"
)

// Process-scoped shared instance. Construction over a full dataset is the
// dominant cost in this module, so the database is built lazily once and
// reused by every caller; a constructed Database is read-only and safe to
// share without further locking.
var (
	sharedMu sync.Mutex
	shared   *Database
)

// Shared returns the process-wide Database over the embedded dataset,
// building it on first use. Subsequent calls return the same instance.
func Shared() *Database {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		shared = New(dataset.Load())
	}

	return shared
}

// ResetShared discards the built shared instance; the next Shared call
// rebuilds it. Intended for tests that measure construction cost or need
// a cold process state.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = nil
}
