package repositories

import (
	"log/slog"
	"sync"
	"testing"

	"chat-relay/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func collect(t *testing.T, log *MessageLog, p domain.Partition, after uint64) []domain.Message {
	t.Helper()
	var out []domain.Message
	require.NoError(t, log.Replay(p, after, func(m domain.Message) error {
		out = append(out, m)
		return nil
	}))
	return out
}

func TestMessageLog_Sequences_Are_Gapless(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog(openTestDB(t), slog.Default())
	partition := domain.PrivatePartition("bob")

	// When three messages are appended
	for i, content := range []string{"one", "two", "three"} {
		message, err := log.Append(partition, "alice", content)
		req.NoError(err)
		req.Equal(uint64(i+1), message.Sequence)
	}

	// Then replay observes strictly increasing sequences with no gaps
	messages := collect(t, log, partition, 0)
	req.Len(messages, 3)
	for i, m := range messages {
		req.Equal(uint64(i+1), m.Sequence)
		req.Equal(domain.UserID("alice"), m.SenderID)
	}
}

func TestMessageLog_Replay_From_Cursor(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog(openTestDB(t), slog.Default())
	partition := domain.GroupPartition("g1")

	for range [5]struct{}{} {
		_, err := log.Append(partition, "alice", "hi")
		req.NoError(err)
	}

	// Replay after sequence 3 yields exactly 4 and 5
	messages := collect(t, log, partition, 3)
	req.Len(messages, 2)
	req.Equal(uint64(4), messages[0].Sequence)
	req.Equal(uint64(5), messages[1].Sequence)

	// Replay is restartable: same cursor, same stream
	again := collect(t, log, partition, 3)
	req.Equal(messages, again)

	// A cursor at the head yields nothing
	req.Empty(collect(t, log, partition, 5))
}

func TestMessageLog_Partitions_Are_Independent(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog(openTestDB(t), slog.Default())
	private := domain.PrivatePartition("bob")
	group := domain.GroupPartition("g1")

	_, err := log.Append(private, "alice", "private")
	req.NoError(err)
	message, err := log.Append(group, "alice", "group")
	req.NoError(err)

	// Each partition starts its own sequence at 1
	req.Equal(uint64(1), message.Sequence)
	req.Len(collect(t, log, private, 0), 1)
	req.Len(collect(t, log, group, 0), 1)
}

func TestMessageLog_Sequence_Survives_Reopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	partition := domain.PrivatePartition("bob")

	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	log := NewMessageLog(db, slog.Default())
	for range [3]struct{}{} {
		_, err = log.Append(partition, "alice", "persisted")
		req.NoError(err)
	}
	req.NoError(db.Close())

	// When the store is reopened, the counter resumes from disk
	db, err = badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	log = NewMessageLog(db, slog.Default())
	last, err := log.LastSequence(partition)
	req.NoError(err)
	req.Equal(uint64(3), last)

	message, err := log.Append(partition, "alice", "after reopen")
	req.NoError(err)
	req.Equal(uint64(4), message.Sequence)
}

// Concurrent appends across partitions must each stay gapless and
// duplicate-free inside their own partition.
func TestMessageLog_Concurrent_Appends(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog(openTestDB(t), slog.Default())

	partitions := []domain.Partition{
		domain.PrivatePartition("bob"),
		domain.PrivatePartition("carol"),
		domain.GroupPartition("g1"),
		domain.GroupPartition("g2"),
	}

	const perPartition = 50
	var wg sync.WaitGroup
	for _, p := range partitions {
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func(p domain.Partition) {
				defer wg.Done()
				for i := 0; i < perPartition/4; i++ {
					_, err := log.Append(p, "alice", "burst")
					require.NoError(t, err)
				}
			}(p)
		}
	}
	wg.Wait()

	for _, p := range partitions {
		messages := collect(t, log, p, 0)
		req.Len(messages, perPartition)
		seen := make(map[uint64]struct{}, perPartition)
		for i, m := range messages {
			req.Equal(uint64(i+1), m.Sequence)
			_, dup := seen[m.Sequence]
			req.False(dup)
			seen[m.Sequence] = struct{}{}
		}
	}
}
