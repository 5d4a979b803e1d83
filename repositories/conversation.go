package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"chat-relay/domain"
	relayerrors "chat-relay/errors"
)

// conversationPrefix namespaces conversation records. One record per
// conversation id, rewritten wholesale on every append; enumeration is a
// plain prefix scan, there is no further indexing.
const conversationPrefix = "conv:"

// ConversationRepository persists append-only conversation logs. Appends
// to the same conversation id are serialized with a per-id mutex so two
// interleaved read-modify-rewrite cycles cannot silently lose a message.
type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:    db,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *ConversationRepository) lockFor(conversationID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[conversationID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[conversationID] = l
	}
	return l
}

// Get returns the stored conversation, or a new empty one if none exists.
// Absence is a valid state, never an error.
func (r *ConversationRepository) Get(conversationID string) (domain.Conversation, error) {
	conversation := domain.NewConversation(conversationID)
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(conversationID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &conversation)
		})
	})
	if err != nil {
		return domain.NewConversation(conversationID), fmt.Errorf("%w: loading conversation %q: %v", relayerrors.ErrPersistence, conversationID, err)
	}
	return conversation, nil
}

// AppendMessage loads the target conversation, appends the message and
// rewrites the durable record in full, all under the conversation's lock.
// Arrival order at the relay therefore equals log order.
func (r *ConversationRepository) AppendMessage(message domain.Message) error {
	lock := r.lockFor(message.ConversationID)
	lock.Lock()
	defer lock.Unlock()

	conversation, err := r.Get(message.ConversationID)
	if err != nil {
		return err
	}
	conversation.Append(message)

	raw, err := json.Marshal(conversation)
	if err != nil {
		return fmt.Errorf("%w: encoding conversation %q: %v", relayerrors.ErrPersistence, conversation.ID, err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(conversation.ID), raw)
	})
	if err != nil {
		return fmt.Errorf("%w: writing conversation %q: %v", relayerrors.ErrPersistence, conversation.ID, err)
	}
	return nil
}

// ListAll enumerates every persisted conversation. Lazily scans the
// store; nothing is cached.
func (r *ConversationRepository) ListAll() ([]domain.Conversation, error) {
	var raws [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(conversationPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				raws = append(raws, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scanning conversations: %v", relayerrors.ErrPersistence, err)
	}

	conversations := make([]domain.Conversation, 0, len(raws))
	for _, raw := range raws {
		var conversation domain.Conversation
		if err := json.Unmarshal(raw, &conversation); err != nil {
			return nil, fmt.Errorf("%w: decoding conversation record: %v", relayerrors.ErrPersistence, err)
		}
		conversations = append(conversations, conversation)
	}
	return conversations, nil
}

// SummariesFor maps every conversation involving the contact to a digest
// of its newest message. Order is deterministic for a given store state:
// preview timestamp descending, conversation id as tiebreak.
func (r *ConversationRepository) SummariesFor(contact domain.Contact) ([]domain.ConversationSummary, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}

	relevant := lo.Filter(all, func(c domain.Conversation, _ int) bool {
		return c.Involves(contact)
	})
	summaries := lo.Map(relevant, func(c domain.Conversation, _ int) domain.ConversationSummary {
		return domain.SummarizeFor(c, contact)
	})

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].PreviewSentAt.Equal(summaries[j].PreviewSentAt) {
			return summaries[i].PreviewSentAt.After(summaries[j].PreviewSentAt)
		}
		return summaries[i].ConversationID < summaries[j].ConversationID
	})
	return summaries, nil
}

func recordKey(conversationID string) []byte {
	return []byte(conversationPrefix + conversationID)
}
