// Package service wires the idiom store, word-cloud renderer, emoji
// tracking, and history backfill into one orchestrator behind the API
// and CLI surfaces.
package service

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"

	"github.com/matzehuels/lexicloud/pkg/cloud"
	"github.com/matzehuels/lexicloud/pkg/emoji"
	"github.com/matzehuels/lexicloud/pkg/errors"
	"github.com/matzehuels/lexicloud/pkg/fonts"
	"github.com/matzehuels/lexicloud/pkg/history"
	"github.com/matzehuels/lexicloud/pkg/idiom"
	"github.com/matzehuels/lexicloud/pkg/imagecache"
	"github.com/matzehuels/lexicloud/pkg/observability"
)

// backfillTimeout bounds one detached history replay.
const backfillTimeout = 5 * time.Minute

// placeEmoji tracks custom-emoji usage for one place: the recent-sighting
// window plus every distinct emoji ever referenced there.
type placeEmoji struct {
	ring  *emoji.Ring[string]
	known map[string]struct{}
}

// Service owns the engine state and exposes the operations the API and
// CLI surfaces call.
type Service struct {
	cfg     Config
	store   *idiom.Store[string, string]
	fetcher *emoji.Fetcher
	source  history.Source
	font    *truetype.Font
	logger  *log.Logger

	emojiMu sync.Mutex
	emojis  map[string]*placeEmoji

	wg sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithHistory sets the message archive used to backfill newly registered
// places. Without one, registration skips backfill.
func WithHistory(src history.Source) Option {
	return func(s *Service) { s.source = src }
}

// WithFont overrides the discovered system font.
func WithFont(fnt *truetype.Font) Option {
	return func(s *Service) { s.font = fnt }
}

// WithFetcher overrides the emoji fetcher, mainly for tests.
func WithFetcher(f *emoji.Fetcher) Option {
	return func(s *Service) { s.fetcher = f }
}

// New builds a service from cfg. The font comes from cfg.Font.Path or
// system discovery; the emoji fetcher uses the configured cache backend.
func New(cfg Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:    cfg,
		store:  idiom.NewStore[string, string](),
		logger: log.Default(),
		emojis: make(map[string]*placeEmoji),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.font == nil {
		var err error
		if cfg.Font.Path != "" {
			s.font, err = fonts.Load(cfg.Font.Path)
		} else {
			s.font, err = fonts.Default()
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "loading rasterizer font")
		}
	}

	if s.fetcher == nil && cfg.Emoji.BaseURL != "" {
		cache, err := newCache(cfg.Cache)
		if err != nil {
			return nil, err
		}
		s.fetcher = emoji.NewFetcher(cfg.Emoji.BaseURL, cache)
	}
	return s, nil
}

// newCache builds the configured image cache backend. The file backend
// without an explicit dir lands in the user cache directory, the same
// place the CLI's cache command manages.
func newCache(cfg CacheConfig) (imagecache.Cache, error) {
	switch cfg.Backend {
	case "", "memory":
		return imagecache.NewMemoryCache(), nil
	case "file":
		dir := cfg.Dir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "resolving default cache dir")
			}
			dir = filepath.Join(base, "lexicloud")
		}
		return imagecache.NewFileCache(dir)
	case "redis":
		return imagecache.NewRedisCache(context.Background(), imagecache.RedisConfig{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	case "null":
		return imagecache.NewNullCache(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", cfg.Backend)
	}
}

// RegisterPlace registers a place for profiling. On first registration
// with an archive configured, it launches a detached history replay and
// reports that a backfill started.
func (s *Service) RegisterPlace(ctx context.Context, place string) (backfilling bool, err error) {
	if err := errors.ValidateScopeID(place); err != nil {
		return false, err
	}
	if !s.store.Register(place) {
		s.logger.Debug("place already registered", "place", place)
		return false, nil
	}
	s.logger.Info("registered place", "place", place)

	if s.source == nil {
		return false, nil
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.backfill(place)
	}()
	return true, nil
}

// backfill replays archived messages for place in retrieval order, so
// the newest vocabulary enters last and decays least.
func (s *Service) backfill(place string) {
	ctx, cancel := context.WithTimeout(context.Background(), backfillTimeout)
	defer cancel()

	observability.Ingest().OnBackfillStart(place)
	start := time.Now()

	msgs, err := s.source.Messages(ctx, place, s.cfg.History.Limit)
	if err != nil {
		observability.Ingest().OnBackfillComplete(place, 0, time.Since(start), err)
		s.logger.Error("backfill failed", "place", place, "err", err)
		return
	}
	for _, m := range msgs {
		s.ingest(place, m.Person, m.Text)
	}

	observability.Ingest().OnBackfillComplete(place, len(msgs), time.Since(start), nil)
	s.logger.Info("backfill complete", "place", place, "messages", len(msgs), "took", time.Since(start))
}

// IngestMessage feeds one message into the place and person profiles and
// records any custom-emoji references.
func (s *Service) IngestMessage(ctx context.Context, place, person, text string) error {
	if err := errors.ValidateScopeID(place); err != nil {
		return err
	}
	if err := errors.ValidateScopeID(person); err != nil {
		return err
	}
	if !s.store.Registered(place) {
		return errors.New(errors.ErrCodePlaceNotFound, "place %s is not registered", place)
	}
	return s.ingest(place, person, text)
}

func (s *Service) ingest(place, person, text string) error {
	tokens := idiom.Tokenize(text)
	s.recordEmojis(place, tokens)
	if err := s.store.Update(place, person, tokens); err != nil {
		return errors.Wrap(errors.ErrCodePlaceNotFound, err, "updating profiles for %s", place)
	}
	observability.Ingest().OnMessage(place, person, len(tokens))
	return nil
}

// recordEmojis pushes custom-emoji tokens into the place's sighting ring.
// Repeats within one message count once, so a single spammy message can't
// flood the window.
func (s *Service) recordEmojis(place string, tokens []string) {
	seen := make(map[string]struct{})
	var refs []string
	for _, tok := range tokens {
		if _, ok := emoji.ParseRef(tok); !ok {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		refs = append(refs, tok)
	}
	if len(refs) == 0 {
		return
	}

	s.emojiMu.Lock()
	pe := s.emojis[place]
	if pe == nil {
		pe = &placeEmoji{ring: emoji.NewRing[string](emoji.DefaultRingSize), known: make(map[string]struct{})}
		s.emojis[place] = pe
	}
	for _, r := range refs {
		pe.known[r] = struct{}{}
	}
	s.emojiMu.Unlock()

	for _, r := range refs {
		pe.ring.Push(r)
	}
}

// CloudPNG renders the person's idiom as a word-cloud PNG. The accent
// is an optional "#rrggbb" color; empty or malformed accents keep the
// neutral palette instead of failing the render.
func (s *Service) CloudPNG(ctx context.Context, person, accent string) ([]byte, error) {
	if err := errors.ValidateScopeID(person); err != nil {
		return nil, err
	}
	idm := s.store.Idiom(person)
	if len(idm) == 0 {
		return nil, errors.New(errors.ErrCodePersonNotFound, "no profile for %s", person)
	}

	opts := []cloud.Option{
		cloud.WithSize(s.cfg.Canvas.Width, s.cfg.Canvas.Height),
		cloud.WithLogger(s.logger),
	}
	if accent != "" {
		if r, g, b, err := errors.ParseHexColor(accent); err == nil {
			opts = append(opts, cloud.WithAccent(color.RGBA{R: r, G: g, B: b, A: 255}))
		} else {
			s.logger.Warn("ignoring malformed accent color", "accent", accent)
		}
	}

	img, err := cloud.Render(s.items(ctx, idm), opts...)
	if err != nil {
		return nil, err
	}
	return cloud.EncodePNG(img)
}

// items turns idiom tokens into drawables. Custom-emoji references become
// image drawables when the asset resolves; otherwise they degrade to
// their text name.
func (s *Service) items(ctx context.Context, idm []idiom.TokenWeight) []cloud.Item {
	items := make([]cloud.Item, 0, len(idm))
	for _, tw := range idm {
		items = append(items, cloud.Item{Drawable: s.drawable(ctx, tw.Token), Weight: tw.Weight})
	}
	return items
}

func (s *Service) drawable(ctx context.Context, token string) cloud.Drawable {
	ref, ok := emoji.ParseRef(token)
	if !ok {
		return cloud.NewText(token, s.font)
	}
	if s.fetcher != nil {
		if img, err := s.fetcher.Get(ctx, ref.ID); err == nil {
			return cloud.NewImage(ref.Name, img)
		}
		s.logger.Debug("emoji fetch failed, degrading to text", "emoji", ref.Name)
	}
	return cloud.NewText(ref.Name, s.font)
}

// EmojiRanking returns the formatted emoji-usage leaderboard for a place.
func (s *Service) EmojiRanking(place string) (string, error) {
	if err := errors.ValidateScopeID(place); err != nil {
		return "", err
	}
	if !s.store.Registered(place) {
		return "", errors.New(errors.ErrCodePlaceNotFound, "place %s is not registered", place)
	}

	s.emojiMu.Lock()
	pe := s.emojis[place]
	var known []string
	if pe != nil {
		known = make([]string, 0, len(pe.known))
		for e := range pe.known {
			known = append(known, e)
		}
	}
	s.emojiMu.Unlock()

	if pe == nil {
		return emoji.FormatRanking(nil), nil
	}
	return emoji.FormatRanking(emoji.Ranking(pe.ring.Counts(), known)), nil
}

// Idiom exposes the person's raw idiom for inspection surfaces.
func (s *Service) Idiom(person string) ([]idiom.TokenWeight, error) {
	if err := errors.ValidateScopeID(person); err != nil {
		return nil, err
	}
	return s.store.Idiom(person), nil
}

// Close waits for in-flight backfills and releases the archive.
func (s *Service) Close(ctx context.Context) error {
	s.wg.Wait()
	if s.source != nil {
		return s.source.Close(ctx)
	}
	return nil
}
