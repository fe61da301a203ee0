// Package domain contains core concepts of the voice chat.
// This file defines the stored Message.
package domain

import "time"

// Message is a user-submitted text kept by the message store.
// Only Text may change after creation.
type Message struct {
	ID        int
	Text      string
	CreatedAt time.Time
}
