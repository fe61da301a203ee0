//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"speech-x-text/domain"
	"speech-x-text/errors"
)

// DefaultLimit is how many messages a store keeps when no limit is configured.
const DefaultLimit = 10

// IMessageRepository is the message store contract.
// Implementations keep insertion order, never reuse ids and evict the oldest
// entries once more than their limit are stored.
type IMessageRepository interface {
	Create(text string) (domain.Message, error)
	List() ([]domain.Message, error)
	Get(id int) (domain.Message, error)
	Update(id int, text string) (domain.Message, error)
	Delete(id int) (domain.Message, error)
}

// MessageRepository is the default in-memory store backed by a slice.
type MessageRepository struct {
	mu       sync.RWMutex
	log      *slog.Logger
	limit    int
	lastID   int
	messages []domain.Message
	now      func() time.Time
}

func NewMessageRepository(log *slog.Logger, limit int) *MessageRepository {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MessageRepository{
		log:   log,
		limit: limit,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create appends a message with the next id and evicts the oldest ones
// until the store is back under its limit.
func (m *MessageRepository) Create(text string) (domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	message := domain.Message{ID: m.lastID, Text: text, CreatedAt: m.now()}
	m.messages = append(m.messages, message)

	if overflow := len(m.messages) - m.limit; overflow > 0 {
		m.log.Debug(fmt.Sprintf("Maximum of %d messages reached, evicting %d", m.limit, overflow))
		m.messages = slices.Delete(m.messages, 0, overflow)
	}
	return message, nil
}

func (m *MessageRepository) List() ([]domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make([]domain.Message, len(m.messages))
	copy(snapshot, m.messages)
	return snapshot, nil
}

func (m *MessageRepository) Get(id int) (domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(id)
	if idx == -1 {
		return domain.Message{}, fmt.Errorf("message %d: %w", id, errors.ErrNotFound)
	}
	return m.messages[idx], nil
}

// Update replaces the text in place. ID and CreatedAt are kept.
func (m *MessageRepository) Update(id int, text string) (domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx == -1 {
		return domain.Message{}, fmt.Errorf("message %d: %w", id, errors.ErrNotFound)
	}
	m.messages[idx].Text = text
	return m.messages[idx], nil
}

func (m *MessageRepository) Delete(id int) (domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx == -1 {
		return domain.Message{}, fmt.Errorf("message %d: %w", id, errors.ErrNotFound)
	}
	deleted := m.messages[idx]
	m.messages = slices.Delete(m.messages, idx, idx+1)
	return deleted, nil
}

func (m *MessageRepository) indexOf(id int) int {
	return slices.IndexFunc(m.messages, func(msg domain.Message) bool {
		return msg.ID == id
	})
}
