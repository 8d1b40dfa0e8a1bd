package notification

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/vinylshelf/internal/app/session/state"
)

func TestManager_Broadcast(t *testing.T) {
	m := NewManager()

	var order []string
	var got []Transition
	m.Subscribe(ListenerFunc(func(tr Transition) error {
		order = append(order, "first")
		got = append(got, tr)
		return errors.New("listener failure")
	}))
	id := m.Subscribe(ListenerFunc(func(tr Transition) error {
		order = append(order, "second")
		return nil
	}))
	require.Equal(t, 2, m.SubscriberCount())

	sent := m.Broadcast(Transition{Cause: "hashchange", From: state.ViewArtists, To: state.ViewAlbums})
	assert.Equal(t, uint64(1), sent.SequenceNo)
	assert.Equal(t, []string{"first", "second"}, order, "a failing listener does not stop delivery")
	require.Len(t, got, 1)
	assert.Equal(t, state.ViewAlbums, got[0].To)

	m.Unsubscribe(id)
	sent = m.Broadcast(Transition{Cause: "popstate"})
	assert.Equal(t, uint64(2), sent.SequenceNo)
	assert.Equal(t, []string{"first", "second", "first"}, order)

	m.Close()
	assert.Equal(t, 0, m.SubscriberCount())
}
