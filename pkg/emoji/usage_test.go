package emoji

import (
	"strings"
	"testing"
)

func TestRankingSortsByShare(t *testing.T) {
	counts := map[string]int{"a": 6, "b": 3, "c": 1}
	got := Ranking(counts, []string{"a", "b", "c"})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Emoji != "a" || got[1].Emoji != "b" || got[2].Emoji != "c" {
		t.Errorf("order = %v, want a, b, c", got)
	}
	if got[0].Share != 0.6 || got[1].Share != 0.3 || got[2].Share != 0.1 {
		t.Errorf("shares = %v, want 0.6, 0.3, 0.1", got)
	}
}

func TestRankingIncludesUnseenKnown(t *testing.T) {
	counts := map[string]int{"a": 4}
	got := Ranking(counts, []string{"a", "b", "c"})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[1].Share != 0 || got[2].Share != 0 {
		t.Errorf("unseen emoji should carry share 0: %v", got)
	}
}

func TestRankingEmptyWindow(t *testing.T) {
	got := Ranking(nil, []string{"a", "b"})
	for _, u := range got {
		if u.Share != 0 {
			t.Errorf("Share = %v, want 0 with no sightings", u.Share)
		}
	}
}

func TestFormatRankingEmpty(t *testing.T) {
	if got := FormatRanking(nil); got != "No entries :(" {
		t.Errorf("FormatRanking(nil) = %q", got)
	}
}

func TestFormatRankingSimple(t *testing.T) {
	ranking := []Usage{
		{Emoji: "🥇", Share: 0.5},
		{Emoji: "🥈", Share: 0.3},
		{Emoji: "🥉", Share: 0.2},
	}
	got := FormatRanking(ranking)
	want := "1. 🥇: 50%\n2. 🥈: 30%\n3. 🥉: 20%"
	if got != want {
		t.Errorf("FormatRanking = %q, want %q", got, want)
	}
}

func TestFormatRankingGroupsTies(t *testing.T) {
	ranking := []Usage{
		{Emoji: "a", Share: 0.4},
		{Emoji: "b", Share: 0.3},
		{Emoji: "c", Share: 0.3},
	}
	got := FormatRanking(ranking)
	want := "1. a: 40%\n2. bc: 30%"
	if got != want {
		t.Errorf("FormatRanking = %q, want %q", got, want)
	}
}

func TestFormatRankingNumbersGroupsDensely(t *testing.T) {
	ranking := []Usage{
		{Emoji: "a", Share: 0.4},
		{Emoji: "b", Share: 0.2},
		{Emoji: "c", Share: 0.2},
		{Emoji: "d", Share: 0.2},
		{Emoji: "e", Share: 0.1},
	}
	got := FormatRanking(ranking)
	want := "1. a: 40%\n2. bcd: 20%\n3. e: 10%"
	if got != want {
		t.Errorf("FormatRanking = %q, want %q", got, want)
	}
}

func TestFormatRankingElidesMiddleRanks(t *testing.T) {
	var ranking []Usage
	for i := range 10 {
		ranking = append(ranking, Usage{Emoji: string(rune('a' + i)), Share: float64(10-i) / 100})
	}
	got := FormatRanking(ranking)
	lines := strings.Split(got, "\n")
	// First five ranks, an ellipsis line, then the last rank.
	if len(lines) != 7 {
		t.Fatalf("lines = %d, want 7:\n%s", len(lines), got)
	}
	if lines[5] != "..." {
		t.Errorf("line 6 = %q, want ellipsis", lines[5])
	}
	if !strings.HasPrefix(lines[6], "10. j") {
		t.Errorf("last line = %q, want rank 10", lines[6])
	}
}

func TestFormatRankingTruncatesHugeTieGroup(t *testing.T) {
	var ranking []Usage
	for range 20 {
		ranking = append(ranking, Usage{Emoji: "x", Share: 0})
	}
	got := FormatRanking(ranking)
	if !strings.Contains(got, "… ") {
		t.Errorf("oversized tie group should be truncated with an ellipsis: %q", got)
	}
	if strings.Count(got, "x") != maxGroup {
		t.Errorf("shown emoji = %d, want %d", strings.Count(got, "x"), maxGroup)
	}
}
