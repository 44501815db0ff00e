package ioprofile

import (
	"testing"
	"time"

	"github.com/safebite/safebite/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoBufferTake(t *testing.T) {
	b := newUndoBuffer(30 * time.Second)

	_, _, ok := b.take("alice")
	assert.False(t, ok)

	b.remember("alice", "milk", profile.Entry{Selected: true, Name: "Milk"})

	id, e, ok := b.take("alice")
	require.True(t, ok)
	assert.Equal(t, "milk", id)
	assert.Equal(t, "Milk", e.Name)

	// Undo is one-shot.
	_, _, ok = b.take("alice")
	assert.False(t, ok)
}

func TestUndoBufferWindowExpiry(t *testing.T) {
	b := newUndoBuffer(30 * time.Second)
	current := time.Now()
	b.now = func() time.Time { return current }

	b.remember("alice", "milk", profile.Entry{Selected: true})

	current = current.Add(31 * time.Second)
	_, _, ok := b.take("alice")
	assert.False(t, ok)

	// An expired undo is gone for good, not retryable.
	current = current.Add(-31 * time.Second)
	_, _, ok = b.take("alice")
	assert.False(t, ok)
}

func TestUndoBufferReplacesPending(t *testing.T) {
	b := newUndoBuffer(30 * time.Second)

	b.remember("alice", "milk", profile.Entry{Selected: true})
	b.remember("alice", "sugar", profile.Entry{Selected: true})

	id, _, ok := b.take("alice")
	require.True(t, ok)
	assert.Equal(t, "sugar", id)
}

func TestUndoBufferPerUser(t *testing.T) {
	b := newUndoBuffer(30 * time.Second)

	b.remember("alice", "milk", profile.Entry{Selected: true})
	b.remember("bob", "sugar", profile.Entry{Selected: true})

	id, _, ok := b.take("bob")
	require.True(t, ok)
	assert.Equal(t, "sugar", id)

	id, _, ok = b.take("alice")
	require.True(t, ok)
	assert.Equal(t, "milk", id)
}
