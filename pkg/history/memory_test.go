package history

import (
	"context"
	"testing"
	"time"
)

func archiveOf(t *testing.T) *MemorySource {
	t.Helper()
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemorySource()
	s.Add(
		Message{ID: "1", Place: "lobby", Person: "ada", Text: "hello there", SentAt: base},
		Message{ID: "2", Place: "lobby", Person: "bob", Text: "general greeting", SentAt: base.Add(time.Minute)},
		Message{ID: "3", Place: "den", Person: "ada", Text: "different place", SentAt: base.Add(2 * time.Minute)},
		Message{ID: "4", Place: "lobby", Person: "ada", Text: "latest word", SentAt: base.Add(3 * time.Minute)},
	)
	return s
}

func TestMemorySourceNewestFirst(t *testing.T) {
	s := archiveOf(t)
	msgs, err := s.Messages(context.Background(), "lobby", 0)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	want := []string{"4", "2", "1"}
	for i, id := range want {
		if msgs[i].ID != id {
			t.Errorf("msgs[%d].ID = %s, want %s", i, msgs[i].ID, id)
		}
	}
}

func TestMemorySourceLimit(t *testing.T) {
	s := archiveOf(t)
	msgs, err := s.Messages(context.Background(), "lobby", 2)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].ID != "4" || msgs[1].ID != "2" {
		t.Errorf("limit should keep the newest messages, got %v", msgs)
	}
}

func TestMemorySourceUnknownPlace(t *testing.T) {
	s := archiveOf(t)
	msgs, err := s.Messages(context.Background(), "nowhere", 0)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("len = %d, want 0", len(msgs))
	}
}

func TestMemorySourceCancelledContext(t *testing.T) {
	s := archiveOf(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Messages(ctx, "lobby", 0); err == nil {
		t.Error("Messages should fail on a cancelled context")
	}
}
