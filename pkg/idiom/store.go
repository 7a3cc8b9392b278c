package idiom

import (
	"errors"
	"math"
	"sync"
)

// Profile capacities. A place tracks a wider vocabulary than a person
// because it aggregates everyone posting there.
const (
	PlaceVocabularySize  = 500
	PersonVocabularySize = 200
)

// ErrUnregisteredPlace is returned by Update when the place has never been
// registered. The update is a no-op; callers log and move on.
var ErrUnregisteredPlace = errors.New("place is not registered")

// TokenWeight is one (token, salience) pair from a person's idiom.
type TokenWeight struct {
	Token  string
	Weight float32
}

// profile pairs a tracker with its own lock so updates to different scopes
// never contend with each other.
type profile struct {
	mu      sync.Mutex
	tracker *Tracker[int]
}

// tokenTable is the bijective string <-> index interning table shared by
// all profiles. Index 0 is reserved for the empty token. Entries are never
// removed or mutated; the table grows for the lifetime of the process.
type tokenTable struct {
	mu      sync.RWMutex
	byText  map[string]int
	byIndex []string
}

func newTokenTable() *tokenTable {
	return &tokenTable{
		byText:  map[string]int{"": 0},
		byIndex: []string{""},
	}
}

// intern returns the index for text, assigning the next free index on first
// sight.
func (t *tokenTable) intern(text string) int {
	t.mu.RLock()
	idx, ok := t.byText[text]
	t.mu.RUnlock()
	if ok {
		return idx
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx, ok := t.byText[text]; ok {
		return idx
	}
	idx = len(t.byIndex)
	t.byText[text] = idx
	t.byIndex = append(t.byIndex, text)
	return idx
}

// lookup resolves an index back to its token text.
func (t *tokenTable) lookup(idx int) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if idx < 0 || idx >= len(t.byIndex) {
		return "", false
	}
	return t.byIndex[idx], true
}

// Store owns one place profile per registered place, one person profile per
// seen person, and the shared token table.
//
// Locking is per scope: the maps themselves sit behind a RWMutex, but every
// profile carries its own mutex, so concurrent updates to different places
// or people proceed without blocking each other. When both a place and a
// person profile are touched by one update, the place lock is taken first.
type Store[P comparable, U comparable] struct {
	mu     sync.RWMutex
	places map[P]*profile
	people map[U]*profile
	tokens *tokenTable
}

// NewStore creates an empty store.
func NewStore[P comparable, U comparable]() *Store[P, U] {
	return &Store[P, U]{
		places: make(map[P]*profile),
		people: make(map[U]*profile),
		tokens: newTokenTable(),
	}
}

// Register creates an empty profile for place. It returns true when the
// place was newly registered and false when it already existed, so callers
// can skip a redundant history backfill.
func (s *Store[P, U]) Register(place P) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.places[place]; ok {
		return false
	}
	s.places[place] = &profile{tracker: NewTracker[int](PlaceVocabularySize)}
	return true
}

// Registered reports whether place has a profile.
func (s *Store[P, U]) Registered(place P) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.places[place]
	return ok
}

// Update feeds one message's tokens into both scopes. The place profile
// accumulates raw occurrence counts; the person profile accumulates a
// context-normalized salience exp(-p)*100, where p is the place's current
// value for the token. Tokens common in the place therefore contribute
// little to the person, while tokens rare for the place but recurring for
// the person accumulate fast. That skew is what makes the person's top
// list an idiom instead of a frequency table.
//
// Updating an unregistered place is a no-op returning ErrUnregisteredPlace.
// A person profile is created on first update.
func (s *Store[P, U]) Update(place P, person U, tokens []string) error {
	s.mu.RLock()
	placeProf := s.places[place]
	personProf := s.people[person]
	s.mu.RUnlock()

	if placeProf == nil {
		return ErrUnregisteredPlace
	}
	if personProf == nil {
		s.mu.Lock()
		if personProf = s.people[person]; personProf == nil {
			personProf = &profile{tracker: NewTracker[int](PersonVocabularySize)}
			s.people[person] = personProf
		}
		s.mu.Unlock()
	}

	// Multiset count local to this one call.
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	placeProf.mu.Lock()
	defer placeProf.mu.Unlock()
	personProf.mu.Lock()
	defer personProf.mu.Unlock()

	for text, c := range counts {
		idx := s.tokens.intern(text)
		placeProf.tracker.Add(idx, float32(c))
		p := placeProf.tracker.Get(idx)
		salience := float32(math.Exp(-float64(p)) * 100)
		personProf.tracker.Add(idx, salience)
	}
	return nil
}

// Idiom returns every resident token of the person's profile with its
// salience, excluding the empty-token sentinel. The result is an owned
// copy in no particular order; ranking is the caller's concern. An unknown
// person yields an empty slice.
func (s *Store[P, U]) Idiom(person U) []TokenWeight {
	s.mu.RLock()
	prof := s.people[person]
	s.mu.RUnlock()
	if prof == nil {
		return nil
	}

	prof.mu.Lock()
	entries := prof.tracker.Entries()
	prof.mu.Unlock()

	out := make([]TokenWeight, 0, len(entries))
	for _, e := range entries {
		text, ok := s.tokens.lookup(e.Key)
		if !ok {
			continue
		}
		out = append(out, TokenWeight{Token: text, Weight: e.Value})
	}
	return out
}
