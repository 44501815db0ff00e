package ioprofile

import (
	"sync"
	"time"

	"github.com/safebite/safebite/pkg/profile"
)

// undoBuffer holds the most recently deleted profile entry per user,
// in memory only, restorable within a bounded window. It is never
// persisted; a process restart forfeits pending undos.
type undoBuffer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]undoEntry
	now     func() time.Time
}

type undoEntry struct {
	ingredientID string
	entry        profile.Entry
	deletedAt    time.Time
}

func newUndoBuffer(window time.Duration) *undoBuffer {
	return &undoBuffer{
		window:  window,
		pending: make(map[string]undoEntry),
		now:     time.Now,
	}
}

// remember stashes a deleted entry, replacing any earlier pending undo
// for the same user.
func (b *undoBuffer) remember(userID, ingredientID string, e profile.Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[userID] = undoEntry{
		ingredientID: ingredientID,
		entry:        e,
		deletedAt:    b.now(),
	}
}

// take removes and returns the pending undo for a user. False when
// nothing is pending or the window has expired.
func (b *undoBuffer) take(userID string) (string, profile.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ue, ok := b.pending[userID]
	if !ok {
		return "", profile.Entry{}, false
	}
	delete(b.pending, userID)
	if b.now().Sub(ue.deletedAt) > b.window {
		return "", profile.Entry{}, false
	}
	return ue.ingredientID, ue.entry, true
}
