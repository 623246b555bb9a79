package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"ge-flipper/internal/flip"
)

// minRefreshInterval is the floor applied to the configured refresh rate
// so a misconfigured setting cannot hammer the price API.
const minRefreshInterval = 15 * time.Second

// SnapshotSource supplies market snapshots. A failed refresh is reported
// but the cached snapshot, when present, keeps the engine going.
type SnapshotSource interface {
	Refresh() error
	Snapshot() (*flip.Snapshot, bool)
}

// GoldSource supplies the gold to consider for a refresh.
type GoldSource interface {
	Available() int64
	ReportWallet(coins int64)
}

// Sink receives the outcome of every completed refresh.
type Sink interface {
	Publish(Result)
}

// Result is one refresh outcome handed to the presentation side.
type Result struct {
	Candidates     []flip.Candidate `json:"candidates"`
	GoldConsidered int64            `json:"gold_considered"`
	OpenSlots      int              `json:"open_slots"`
	RefreshedAt    time.Time        `json:"refreshed_at"`
}

// Engine drives the periodic refresh cycle and owns the tracker. Slot
// updates from the companion are applied here, synchronously and in
// delivery order, and mark the suggestion list stale so the next tick
// re-evaluates immediately.
type Engine struct {
	prices   SnapshotSource
	gold     GoldSource
	tracker  *flip.OfferTracker
	settings *SettingsStore
	sinks    []Sink

	mu          sync.Mutex
	latest      Result
	lastRefresh time.Time
}

func New(prices SnapshotSource, gold GoldSource, tracker *flip.OfferTracker, settings *SettingsStore, sinks ...Sink) *Engine {
	return &Engine{
		prices:   prices,
		gold:     gold,
		tracker:  tracker,
		settings: settings,
		sinks:    sinks,
	}
}

func (e *Engine) Tracker() *flip.OfferTracker { return e.tracker }

func (e *Engine) Settings() *SettingsStore { return e.settings }

// Latest returns the most recent refresh result.
func (e *Engine) Latest() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest
}

// HandleSlotUpdate applies one observed slot transition and marks the
// suggestions stale.
func (e *Engine) HandleSlotUpdate(ev flip.SlotUpdate) {
	e.tracker.Apply(ev)
	e.MarkStale()
}

// HandleWallet records a wallet amount reported by the companion.
func (e *Engine) HandleWallet(coins int64) {
	e.gold.ReportWallet(coins)
}

// MarkStale forces a refresh on the next tick.
func (e *Engine) MarkStale() {
	e.mu.Lock()
	e.lastRefresh = time.Time{}
	e.mu.Unlock()
}

// Run ticks once a second and refreshes whenever the configured interval
// has elapsed (or the state was marked stale). Blocks until ctx is done.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Flip engine stopped")
			return
		case <-ticker.C:
			e.mu.Lock()
			due := time.Since(e.lastRefresh) >= e.interval()
			e.mu.Unlock()
			if due {
				e.RefreshOnce()
			}
		}
	}
}

func (e *Engine) interval() time.Duration {
	d := time.Duration(e.settings.Get().RefreshSeconds) * time.Second
	if d < minRefreshInterval {
		d = minRefreshInterval
	}
	return d
}

// RefreshOnce runs a single refresh cycle. Nothing in here may take the
// host loop down: errors degrade to fewer or zero candidates and panics
// are caught at this boundary. Every attempt, successful or not, counts
// against the refresh interval so a broken upstream is not hammered on
// every tick.
func (e *Engine) RefreshOnce() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Refresh cycle panicked: %v", r)
		}
	}()
	defer func() {
		e.mu.Lock()
		e.lastRefresh = time.Now()
		e.mu.Unlock()
	}()

	cfg := e.settings.Get()

	if err := e.prices.Refresh(); err != nil {
		log.Printf("Price refresh failed, using cached snapshot: %v", err)
	}
	snapshot, ok := e.prices.Snapshot()
	if !ok {
		log.Println("No market snapshot available, skipping refresh")
		return
	}

	gp := e.gold.Available()

	openSlots := flip.GESlots - e.tracker.FilledSlotCount()
	if openSlots < 0 {
		openSlots = 0
	}
	if openSlots > flip.GESlots {
		openSlots = flip.GESlots
	}

	picks := flip.Suggest(snapshot, gp, openSlots, cfg, e.tracker)

	result := Result{
		Candidates:     picks,
		GoldConsidered: gp,
		OpenSlots:      openSlots,
		RefreshedAt:    time.Now(),
	}

	e.mu.Lock()
	e.latest = result
	e.mu.Unlock()

	for _, sink := range e.sinks {
		sink.Publish(result)
	}
}
