package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// transcriptPlace is the place ID used when profiling a local transcript.
const transcriptPlace = "transcript"

// transcriptLine is one attributed message from a transcript file.
type transcriptLine struct {
	Person string
	Text   string
}

// readTranscript parses a transcript file of "person: text" lines. Blank
// lines are skipped; a line without a separator continues the previous
// speaker's message as a new line of their own.
func readTranscript(path string) ([]transcriptLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return parseTranscript(f)
}

func parseTranscript(r io.Reader) ([]transcriptLine, error) {
	var lines []transcriptLine
	var lastPerson string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		person, text, found := strings.Cut(raw, ": ")
		if !found || person == "" || strings.ContainsRune(person, ' ') {
			if lastPerson == "" {
				continue // preamble before the first attributed line
			}
			lines = append(lines, transcriptLine{Person: lastPerson, Text: raw})
			continue
		}
		lastPerson = person
		lines = append(lines, transcriptLine{Person: person, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return lines, nil
}

// people returns the distinct speakers in first-seen order with their
// message counts.
func people(lines []transcriptLine) ([]string, map[string]int) {
	var order []string
	counts := make(map[string]int)
	for _, l := range lines {
		if counts[l.Person] == 0 {
			order = append(order, l.Person)
		}
		counts[l.Person]++
	}
	return order, counts
}
