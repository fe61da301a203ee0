package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"speech-x-text/domain"
	"speech-x-text/errors"

	"github.com/dgraph-io/badger/v4"
)

const messagePrefix = "msg:"

// BadgerMessageRepository stores messages in an in-memory BadgerDB.
// Nothing is written to disk: the database lives as long as the process.
type BadgerMessageRepository struct {
	mu     sync.Mutex
	db     *badger.DB
	log    *slog.Logger
	limit  int
	lastID int
	now    func() time.Time
}

type diskMessage struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func OpenBadgerMessageRepository(log *slog.Logger, limit int) (*BadgerMessageRepository, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("in-memory badger opening failed: %w", err)
	}
	return &BadgerMessageRepository{
		db:    db,
		log:   log,
		limit: limit,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

func (b *BadgerMessageRepository) Close() error {
	return b.db.Close()
}

// messageKey pads the id to 19 digits so the lexicographical key order
// is the id order, which is also the insertion order.
func messageKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%019d", messagePrefix, id))
}

func (b *BadgerMessageRepository) Create(text string) (domain.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	message := domain.Message{ID: b.lastID + 1, Text: text, CreatedAt: b.now()}
	bytes, err := json.Marshal(fromMessage(message))
	if err != nil {
		return domain.Message{}, err
	}
	if err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message.ID), bytes)
	}); err != nil {
		return domain.Message{}, fmt.Errorf("store message %d: %w", message.ID, err)
	}
	b.lastID = message.ID

	if err = b.evict(); err != nil {
		return domain.Message{}, fmt.Errorf("evict messages: %w", err)
	}
	return message, nil
}

// evict drops the oldest keys until at most limit messages remain.
func (b *BadgerMessageRepository) evict() error {
	return b.db.Update(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)

		var keys [][]byte
		prefix := []byte(messagePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		overflow := len(keys) - b.limit
		if overflow <= 0 {
			return nil
		}
		b.log.Debug(fmt.Sprintf("Maximum of %d messages reached, evicting %d", b.limit, overflow))
		for _, key := range keys[:overflow] {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BadgerMessageRepository) List() ([]domain.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	messages := make([]domain.Message, 0, b.limit)
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(messagePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var dm diskMessage
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &dm)
			}); err != nil {
				return err
			}
			messages = append(messages, toMessage(dm))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (b *BadgerMessageRepository) Get(id int) (domain.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var message domain.Message
	err := b.db.View(func(txn *badger.Txn) error {
		dm, err := readMessage(txn, id)
		message = toMessage(dm)
		return err
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (b *BadgerMessageRepository) Update(id int, text string) (domain.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var message domain.Message
	err := b.db.Update(func(txn *badger.Txn) error {
		dm, err := readMessage(txn, id)
		if err != nil {
			return err
		}
		dm.Text = text
		bytes, err := json.Marshal(dm)
		if err != nil {
			return err
		}
		message = toMessage(dm)
		return txn.Set(messageKey(id), bytes)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (b *BadgerMessageRepository) Delete(id int) (domain.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var message domain.Message
	err := b.db.Update(func(txn *badger.Txn) error {
		dm, err := readMessage(txn, id)
		if err != nil {
			return err
		}
		message = toMessage(dm)
		return txn.Delete(messageKey(id))
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func readMessage(txn *badger.Txn, id int) (diskMessage, error) {
	var dm diskMessage
	item, err := txn.Get(messageKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return dm, fmt.Errorf("message %d: %w", id, errors.ErrNotFound)
	}
	if err != nil {
		return dm, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &dm)
	})
	return dm, err
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{ID: message.ID, Text: message.Text, CreatedAt: message.CreatedAt}
}

func toMessage(dm diskMessage) domain.Message {
	return domain.Message{ID: dm.ID, Text: dm.Text, CreatedAt: dm.CreatedAt.UTC()}
}
