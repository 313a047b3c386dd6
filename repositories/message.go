//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_log.go -package=mocks
package repositories

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	pb "chat-relay/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

// maxSequenceKey sorts after any zero-padded sequence in the same partition.
const maxSequenceKey = "9999999999999999999"

// MessageLog persists messages in BadgerDB, partitioned by (chatType, targetId).
// The key is formatted as "msg:{chat_type}:{target_id}:{sequence_padded}" to:
//  1. Ensure replay order using 19-digit zero padding (lexicographical order).
//  2. Make the sequence number, not the wall clock, the ordering authority.
//
// Appends to one partition are strictly serialized behind that partition's
// mutex; different partitions append concurrently. A sequence is assigned
// exactly once: the in-memory counter only advances after the write
// transaction committed, so a failed append leaves no gap behind.
type MessageLog struct {
	db  *badger.DB
	log *slog.Logger

	mu         sync.Mutex
	partitions map[string]*partitionState
}

type partitionState struct {
	mu     sync.Mutex
	next   uint64
	loaded bool
}

var _ contract.IMessageLog = (*MessageLog)(nil)

func NewMessageLog(db *badger.DB, log *slog.Logger) *MessageLog {
	return &MessageLog{
		db:         db,
		log:        log,
		partitions: make(map[string]*partitionState),
	}
}

func messageKey(p domain.Partition, sequence uint64) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d", p.Key(), sequence))
}

func partitionPrefix(p domain.Partition) []byte {
	return []byte(fmt.Sprintf("msg:%s:", p.Key()))
}

// Append assigns the next sequence number for the partition and persists
// the message synchronously before returning. Either the message is
// durably assigned a sequence or it does not exist.
func (m *MessageLog) Append(p domain.Partition, senderID domain.UserID, content string) (domain.Message, error) {
	state := m.state(p)
	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.loaded {
		last, err := m.lastSequenceFromDisk(p)
		if err != nil {
			return domain.Message{}, err
		}
		state.next = last + 1
		state.loaded = true
	}

	message := domain.Message{
		ID:        uuid.New(),
		SenderID:  senderID,
		ChatType:  p.ChatType,
		TargetID:  p.TargetID,
		Content:   content,
		Sequence:  state.next,
		CreatedAt: time.Now().UTC(),
	}

	bytes, err := proto.Marshal(lo.ToPtr(fromMessage(message)))
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: marshal: %v", errors.ErrStorage, err)
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(p, message.Sequence), bytes)
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: append %s: %v", errors.ErrStorage, p.Key(), err)
	}

	// Only advance once the transaction committed, keeping sequences gapless
	state.next++
	return message, nil
}

// Replay streams persisted messages with sequence > afterSequence in
// ascending order, invoking fn for each one. The iteration is lazy and
// restartable: calling again with the same cursor yields the same stream.
func (m *MessageLog) Replay(p domain.Partition, afterSequence uint64, fn func(domain.Message) error) error {
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := partitionPrefix(p)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(messageKey(p, afterSequence+1)); it.ValidForPrefix(prefix); it.Next() {
			var raw []byte
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw[:0], value...)
				return nil
			})
			if err != nil {
				return err
			}

			var messagePb pb.Message
			if err = proto.Unmarshal(raw, &messagePb); err != nil {
				return err
			}
			message, err := toMessage(&messagePb)
			if err != nil {
				return err
			}
			if err = fn(message); err != nil {
				return err
			}
		}
		return nil
	})
	if goerrors.Is(err, errors.ErrStopReplay) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: replay %s after %d: %v", errors.ErrStorage, p.Key(), afterSequence, err)
	}
	return nil
}

// LastSequence reports the highest sequence currently assigned for the
// partition, 0 when it is empty.
func (m *MessageLog) LastSequence(p domain.Partition) (uint64, error) {
	state := m.state(p)
	state.mu.Lock()
	defer state.mu.Unlock()

	if state.loaded {
		return state.next - 1, nil
	}
	return m.lastSequenceFromDisk(p)
}

func (m *MessageLog) state(p domain.Partition) *partitionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := p.Key()
	state, ok := m.partitions[key]
	if !ok {
		state = &partitionState{}
		m.partitions[key] = state
	}
	return state
}

// lastSequenceFromDisk seeks backwards from the highest possible key of
// the partition to find the most recent entry.
func (m *MessageLog) lastSequenceFromDisk(p domain.Partition) (uint64, error) {
	var last uint64
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := partitionPrefix(p)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		it.Seek(append(append([]byte{}, prefix...), []byte(maxSequenceKey)...))
		if !it.ValidForPrefix(prefix) {
			return nil
		}

		key := it.Item().Key()
		_, err := fmt.Sscanf(string(key[len(prefix):]), "%d", &last)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%w: scan %s: %v", errors.ErrStorage, p.Key(), err)
	}
	return last, nil
}

func fromMessage(message domain.Message) pb.Message {
	return pb.Message{
		Id:       message.ID.String(),
		ChatType: string(message.ChatType),
		TargetId: message.TargetID,
		Sender:   string(message.SenderID),
		Content:  message.Content,
		Sequence: message.Sequence,
		At:       message.CreatedAt.UnixNano(),
	}
}

func toMessage(messagePb *pb.Message) (domain.Message, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        parsedID,
		SenderID:  domain.UserID(messagePb.Sender),
		ChatType:  domain.ChatType(messagePb.ChatType),
		TargetID:  messagePb.TargetId,
		Content:   messagePb.Content,
		Sequence:  messagePb.Sequence,
		CreatedAt: time.Unix(0, messagePb.At).UTC(),
	}, nil
}
