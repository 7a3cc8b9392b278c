package emoji

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// topRanks is how many leading ranks the leaderboard message shows
	// before skipping to the last one.
	topRanks = 5

	// maxGroup caps the emoji rendered for one rank so the message stays
	// readable when many emoji tie.
	maxGroup = 15
)

// Usage is one emoji with its share of recent sightings.
type Usage struct {
	Emoji string  // render form (name or platform markup)
	Share float64 // fraction of all sightings in the window, 0..1
}

// Ranking converts a sighting multiset into usages sorted by descending
// share. Emoji from the known set that were never seen are included with
// share 0, so the bottom of the board shows what nobody uses.
func Ranking(counts map[string]int, known []string) []Usage {
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make([]Usage, 0, len(known))
	for _, e := range known {
		share := 0.0
		if total > 0 {
			share = float64(counts[e]) / float64(total)
		}
		out = append(out, Usage{Emoji: e, Share: share})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Share > out[j].Share })
	return out
}

// FormatRanking renders a ranking as a leaderboard message. Usages with
// equal shares share one rank line and the numbering is dense: the group
// after a tie takes the next integer. Only the first topRanks ranks and
// the final rank are shown, with an ellipsis line in between.
func FormatRanking(ranking []Usage) string {
	if len(ranking) == 0 {
		return "No entries :("
	}

	// Group consecutive equal shares into rank entries.
	type group struct {
		share  float64
		emojis []string
	}
	var groups []group
	for _, u := range ranking {
		if len(groups) > 0 && groups[len(groups)-1].share == u.Share {
			g := &groups[len(groups)-1]
			g.emojis = append(g.emojis, u.Emoji)
			continue
		}
		groups = append(groups, group{share: u.Share, emojis: []string{u.Emoji}})
	}

	var lines []string
	for i, g := range groups {
		last := i == len(groups)-1
		if i >= topRanks && !last {
			if i == topRanks {
				lines = append(lines, "...")
			}
			continue
		}
		lines = append(lines, formatEntry(i+1, g.share, g.emojis))
	}
	return strings.Join(lines, "\n")
}

// formatEntry renders one rank line, truncating oversized tie groups.
func formatEntry(rank int, share float64, emojis []string) string {
	ellipsis := ""
	if len(emojis) > maxGroup {
		emojis = emojis[:maxGroup]
		ellipsis = "… "
	}
	return fmt.Sprintf("%d. %s%s: %.0f%%", rank, strings.Join(emojis, ""), ellipsis, share*100)
}
