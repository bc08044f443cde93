// Package coordinator owns the search dialog's state: the query text, the
// local fuzzy results, the natural-language classification, and the
// debounced AI request lifecycle. All transitions happen on discrete events
// (keystroke, timer fire, response arrival, user click); a mutex keeps the
// timer and network callbacks safe alongside the caller.
package coordinator

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/learnhubhq/docsearch/internal/search"
	"github.com/rs/zerolog"
)

const (
	// DefaultDebounce is the quiet period a query must survive before an AI
	// request is issued.
	DefaultDebounce = 500 * time.Millisecond
	// DefaultMinQueryLength is the shortest query that may trigger an AI
	// request.
	DefaultMinQueryLength = 5

	eventBufferSize = 16
)

// SearchClient issues AI search requests on behalf of the coordinator.
type SearchClient interface {
	AISearch(ctx context.Context, query string) (*domain.AISearchPayload, error)
}

// AuthState reports whether the current session is authenticated. It is
// injected so the coordinator never reaches into a global session object.
type AuthState interface {
	IsAuthenticated() bool
}

// Config tunes coordinator behavior. Zero values fall back to defaults.
type Config struct {
	Debounce       time.Duration
	MinQueryLength int
	Logger         zerolog.Logger
}

// Snapshot is a point-in-time copy of the dialog state.
type Snapshot struct {
	Open            bool
	Query           string
	NaturalLanguage bool
	AIMode          bool
	Loading         bool
	Authenticated   bool
	FuzzyMatches    []search.Match
	AIPayload       *domain.AISearchPayload
}

// Coordinator is the hybrid search dialog state machine.
type Coordinator struct {
	index  *search.Index
	client SearchClient
	auth   AuthState
	log    zerolog.Logger

	debounce  time.Duration
	minLength int

	events chan Event

	mu       sync.Mutex
	open     bool
	query    string
	natural  bool
	aiMode   bool
	loading  bool
	payload  *domain.AISearchPayload
	fuzzy    []search.Match
	timer    *time.Timer
	seq      uint64
	inflight context.CancelFunc
}

// New creates a coordinator over the given fuzzy index, AI client and auth
// state provider.
func New(index *search.Index, client SearchClient, auth AuthState, cfg Config) *Coordinator {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = DefaultMinQueryLength
	}
	return &Coordinator{
		index:     index,
		client:    client,
		auth:      auth,
		log:       cfg.Logger,
		debounce:  cfg.Debounce,
		minLength: cfg.MinQueryLength,
		events:    make(chan Event, eventBufferSize),
	}
}

// Events returns the coordinator's event stream. Delivery is best-effort:
// an event is dropped (and logged) if the host is not draining the channel.
func (c *Coordinator) Events() <-chan Event {
	return c.events
}

// Open activates the dialog with a clean state. A non-empty initialQuery is
// applied as if typed.
func (c *Coordinator) Open(initialQuery string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	c.open = true
	if initialQuery != "" {
		c.setQueryLocked(initialQuery)
	}
}

// SetQuery updates the raw query text. The local fuzzy result set and the
// natural-language classification are recomputed synchronously; if the
// query qualifies, the AI debounce timer is re-armed. A no-op while closed.
func (c *Coordinator) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	c.setQueryLocked(text)
}

func (c *Coordinator) setQueryLocked(text string) {
	c.query = text
	c.natural = search.IsNaturalLanguage(text)
	c.fuzzy = c.index.Search(text)

	// The query changed: any in-flight response is now stale, and a stale
	// payload must never remain visible.
	c.invalidateLocked()
	c.payload = nil

	if c.shouldRequestLocked() {
		c.armTimerLocked()
	}
}

// SetAIMode toggles AI-assisted search. Without an authenticated session
// the call is a no-op that signals EventAuthRequired instead.
func (c *Coordinator) SetAIMode(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	if enabled && !c.auth.IsAuthenticated() {
		c.emitLocked(Event{Kind: EventAuthRequired})
		return
	}

	c.aiMode = enabled
	c.invalidateLocked()
	c.payload = nil

	if c.shouldRequestLocked() {
		c.armTimerLocked()
	}
}

// Select emits a navigation event for the chosen path, then resets all
// query state and closes the dialog.
func (c *Coordinator) Select(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	c.emitLocked(Event{Kind: EventNavigate, Path: path})
	c.resetLocked()
}

// Close resets all query state regardless of in-flight requests; their
// responses are discarded on arrival.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
}

// Snapshot returns a copy of the current dialog state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	fuzzy := make([]search.Match, len(c.fuzzy))
	copy(fuzzy, c.fuzzy)

	return Snapshot{
		Open:            c.open,
		Query:           c.query,
		NaturalLanguage: c.natural,
		AIMode:          c.aiMode,
		Loading:         c.loading,
		Authenticated:   c.auth.IsAuthenticated(),
		FuzzyMatches:    fuzzy,
		AIPayload:       c.payload,
	}
}

// shouldRequestLocked gates outbound AI requests: AI mode on, non-empty
// query, and at least the minimum length in runes.
func (c *Coordinator) shouldRequestLocked() bool {
	if !c.aiMode {
		return false
	}
	q := strings.TrimSpace(c.query)
	return q != "" && utf8.RuneCountInString(q) >= c.minLength
}

// armTimerLocked (re)starts the debounce timer. At most one timer is ever
// pending; the previous one is always stopped first.
func (c *Coordinator) armTimerLocked() {
	c.stopTimerLocked()
	c.timer = time.AfterFunc(c.debounce, c.onDebounce)
}

func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// onDebounce fires when the query survived the quiet period uncancelled.
func (c *Coordinator) onDebounce() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timer = nil
	if !c.open || !c.shouldRequestLocked() {
		return
	}
	c.startRequestLocked()
}

// startRequestLocked issues an AI request for the current query. The
// previous payload is cleared now, not when the response resolves, so a
// stale result is never shown. The sequence number captured here is
// compared at resolution: only the newest request may apply its result.
func (c *Coordinator) startRequestLocked() {
	if c.inflight != nil {
		c.inflight()
	}

	c.seq++
	captured := c.seq
	c.loading = true
	c.payload = nil

	ctx, cancel := context.WithCancel(context.Background())
	c.inflight = cancel

	query := c.query
	go func() {
		payload, err := c.client.AISearch(ctx, query)
		c.resolve(captured, payload, err)
	}()
}

// resolve applies a request outcome, unless a newer request has started or
// the dialog has since closed.
func (c *Coordinator) resolve(captured uint64, payload *domain.AISearchPayload, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if captured != c.seq || !c.open {
		return
	}

	c.loading = false
	c.inflight = nil

	if err != nil {
		c.log.Warn().Err(err).Msg("ai search failed, falling back to fuzzy results")
		c.emitLocked(Event{Kind: EventSearchFailed, Err: err})
		return
	}
	c.payload = payload
}

// invalidateLocked discards the pending timer and the in-flight request, if
// any. The response of a cancelled request is ignored via the sequence.
func (c *Coordinator) invalidateLocked() {
	c.stopTimerLocked()
	if c.inflight != nil {
		c.inflight()
		c.inflight = nil
	}
	c.seq++
	c.loading = false
}

// resetLocked returns the coordinator to the idle, closed state.
func (c *Coordinator) resetLocked() {
	c.invalidateLocked()
	c.open = false
	c.query = ""
	c.natural = false
	c.aiMode = false
	c.payload = nil
	c.fuzzy = nil
}

func (c *Coordinator) emitLocked(ev Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Warn().Str("kind", string(ev.Kind)).Msg("event dropped, channel full")
	}
}
