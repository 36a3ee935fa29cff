package report

import (
	"sync"

	"github.com/sw33tLie/bocheck/pkg/logging"
)

// Board is the results panel: every finished run adds a table to it until
// it is cleared.
type Board struct {
	Log logging.Logger

	mu     sync.Mutex
	tables []Table
}

// Show adds t and restyles every table on the board with t's threshold.
func (b *Board) Show(t Table) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tables = append(b.tables, t)
	for i := range b.tables {
		b.tables[i] = b.tables[i].Restyle(t.Threshold)
	}
}

// Clear removes every table. The Clear control is hidden afterwards.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.tables) == 0 {
		logging.OrNop(b.Log).Debugf("clearTable: nothing to clear")
		return
	}
	b.tables = nil
}

func (b *Board) Tables() []Table {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Table(nil), b.tables...)
}

// ClearVisible reports whether the Clear control should be shown.
func (b *Board) ClearVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tables) > 0
}
