// Package history provides read access to archived messages so newly
// registered places can be backfilled into the idiom store. Sources
// return messages newest-first; the backfill replays them in that
// retrieval order, which keeps the most recent vocabulary dominant
// under tracker aging.
package history

import (
	"context"
	"time"
)

// Message is one archived message.
type Message struct {
	ID     string    // archive identifier
	Place  string    // place the message was posted in
	Person string    // author
	Text   string    // raw message text
	SentAt time.Time // original send time
}

// Source yields archived messages for a place.
type Source interface {
	// Messages returns up to limit messages for place, newest first.
	// A limit of zero or less means no cap.
	Messages(ctx context.Context, place string, limit int) ([]Message, error)

	// Close releases source resources.
	Close(ctx context.Context) error
}
