package presence

import (
	"sync"
	"testing"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSession(userID string) domain.Session {
	return domain.Session{
		ConnectionID:  domain.ConnectionID(uuid.NewString()),
		UserID:        domain.UserID(userID),
		EstablishedAt: time.Now().UTC(),
	}
}

func TestRegistry_First_Session_Goes_Online(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	s := newSession("alice")

	// Given nobody is connected
	req.False(registry.IsOnline(s.UserID))

	// When the first session registers
	transition, err := registry.AddSession(s)

	// Then exactly one online transition is reported
	req.NoError(err)
	req.Equal(contract.TransitionOnline, transition)
	req.True(registry.IsOnline(s.UserID))
	req.Len(registry.ActiveSessionsOf(s.UserID), 1)
}

func TestRegistry_Second_Device_Is_Silent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first := newSession("alice")
	second := newSession("alice")

	_, err := registry.AddSession(first)
	req.NoError(err)

	// When a second device connects
	transition, err := registry.AddSession(second)

	// Then no new transition is emitted
	req.NoError(err)
	req.Equal(contract.TransitionNone, transition)
	req.Len(registry.ActiveSessionsOf("alice"), 2)

	// And only the last removal reports offline
	_, transition, err = registry.RemoveSession(first.ConnectionID)
	req.NoError(err)
	req.Equal(contract.TransitionNone, transition)
	req.True(registry.IsOnline("alice"))

	_, transition, err = registry.RemoveSession(second.ConnectionID)
	req.NoError(err)
	req.Equal(contract.TransitionOffline, transition)
	req.False(registry.IsOnline("alice"))
}

func TestRegistry_Duplicate_Connection_Rejected(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	s := newSession("alice")

	_, err := registry.AddSession(s)
	req.NoError(err)

	_, err = registry.AddSession(s)
	req.Error(err)
}

func TestRegistry_Remove_Unknown_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	_, transition, err := registry.RemoveSession("nope")
	req.Error(err)
	req.Equal(contract.TransitionNone, transition)
}

// Two devices of the same user connect and disconnect in rapid
// interleaving: exactly one offline transition must be observed once the
// last session closes, never more than one per genuine boundary.
func TestRegistry_Concurrent_Bursts_Single_Transition(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := domain.UserID("alice")

	const rounds = 200
	var wg sync.WaitGroup
	var mu sync.Mutex
	online, offline := 0, 0

	record := func(tr contract.Transition) {
		mu.Lock()
		defer mu.Unlock()
		switch tr {
		case contract.TransitionOnline:
			online++
		case contract.TransitionOffline:
			offline++
		}
	}

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				s := newSession(string(userID))
				tr, err := registry.AddSession(s)
				require.NoError(t, err)
				record(tr)
				_, tr, err = registry.RemoveSession(s.ConnectionID)
				require.NoError(t, err)
				record(tr)
			}
		}()
	}
	wg.Wait()

	// Every online boundary is matched by exactly one offline boundary
	req.Equal(online, offline)
	req.False(registry.IsOnline(userID))
	req.Empty(registry.ActiveSessionsOf(userID))
}

func TestRegistry_IsOnline_Iff_Sessions_Exist(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	sessions := []domain.Session{newSession("bob"), newSession("bob"), newSession("bob")}
	for _, s := range sessions {
		_, err := registry.AddSession(s)
		req.NoError(err)
		req.Equal(registry.IsOnline("bob"), len(registry.ActiveSessionsOf("bob")) > 0)
	}
	for _, s := range sessions {
		_, _, err := registry.RemoveSession(s.ConnectionID)
		req.NoError(err)
		req.Equal(registry.IsOnline("bob"), len(registry.ActiveSessionsOf("bob")) > 0)
	}
}
