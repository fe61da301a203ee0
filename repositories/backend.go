package repositories

import (
	"fmt"
	"log/slog"

	"speech-x-text/errors"
)

const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Open builds the message store for the configured backend.
// The returned close function releases backend resources and is never nil.
func Open(backend string, log *slog.Logger, limit int) (IMessageRepository, func() error, error) {
	switch backend {
	case "", BackendMemory:
		return NewMessageRepository(log, limit), func() error { return nil }, nil
	case BackendBadger:
		repository, err := OpenBadgerMessageRepository(log, limit)
		if err != nil {
			return nil, nil, err
		}
		return repository, repository.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, backend)
	}
}
