package engine

import (
	"errors"
	"testing"
	"time"

	"ge-flipper/internal/flip"
)

type fakePrices struct {
	snap       *flip.Snapshot
	refreshErr error
	refreshes  int
}

func (f *fakePrices) Refresh() error {
	f.refreshes++
	return f.refreshErr
}

func (f *fakePrices) Snapshot() (*flip.Snapshot, bool) {
	return f.snap, f.snap != nil
}

type fakeGold struct{ coins int64 }

func (f *fakeGold) Available() int64         { return f.coins }
func (f *fakeGold) ReportWallet(coins int64) { f.coins = coins }

type captureSink struct {
	results []Result
}

func (c *captureSink) Publish(r Result) { c.results = append(c.results, r) }

func permissive() flip.Settings {
	cfg := flip.DefaultSettings()
	cfg.ExcludeLowVolume = false
	return cfg
}

func testSnapshot() *flip.Snapshot {
	return &flip.Snapshot{Items: []flip.ItemPrice{
		{ItemID: 1, Name: "A", LatestLow: 10, LatestHigh: 20, BuyLimit: 100},
		{ItemID: 2, Name: "B", LatestLow: 50, LatestHigh: 52, BuyLimit: 10},
	}}
}

func TestRefreshOncePublishesRankedResult(t *testing.T) {
	prices := &fakePrices{snap: testSnapshot()}
	gold := &fakeGold{coins: 1000}
	sink := &captureSink{}
	e := New(prices, gold, flip.NewOfferTracker(), NewSettingsStore(permissive()), sink)

	e.RefreshOnce()

	if len(sink.results) != 1 {
		t.Fatalf("expected 1 published result, got %d", len(sink.results))
	}
	r := sink.results[0]
	if r.GoldConsidered != 1000 || r.OpenSlots != flip.GESlots {
		t.Errorf("unexpected result header: gp=%d slots=%d", r.GoldConsidered, r.OpenSlots)
	}
	if len(r.Candidates) != 2 || r.Candidates[0].Name != "A" {
		t.Errorf("unexpected candidates: %+v", r.Candidates)
	}
	if e.Latest().RefreshedAt.IsZero() {
		t.Error("latest result must be retained")
	}
}

func TestRefreshOnceSkipsWithoutSnapshot(t *testing.T) {
	prices := &fakePrices{refreshErr: errors.New("api down")}
	sink := &captureSink{}
	e := New(prices, &fakeGold{}, flip.NewOfferTracker(), NewSettingsStore(permissive()), sink)

	e.RefreshOnce()

	if len(sink.results) != 0 {
		t.Error("no snapshot at all must skip the refresh entirely")
	}
}

func TestRefreshOnceUsesCachedSnapshotOnFetchError(t *testing.T) {
	prices := &fakePrices{snap: testSnapshot(), refreshErr: errors.New("api down")}
	sink := &captureSink{}
	e := New(prices, &fakeGold{coins: 1000}, flip.NewOfferTracker(), NewSettingsStore(permissive()), sink)

	e.RefreshOnce()

	if len(sink.results) != 1 {
		t.Fatal("cached snapshot must still produce a result")
	}
}

func TestRefreshOnceWithAllSlotsFilled(t *testing.T) {
	tracker := flip.NewOfferTracker()
	for slot := 0; slot < flip.GESlots; slot++ {
		tracker.Apply(flip.SlotUpdate{Slot: slot, ItemID: 100 + slot, State: flip.StateBuying, QuantityTotal: 1, PriceEach: 1})
	}

	prices := &fakePrices{snap: testSnapshot()}
	sink := &captureSink{}
	e := New(prices, &fakeGold{coins: 1000}, tracker, NewSettingsStore(permissive()), sink)

	e.RefreshOnce()

	if len(sink.results) != 1 {
		t.Fatal("the sink still hears about a zero-slot refresh")
	}
	r := sink.results[0]
	if r.OpenSlots != 0 || len(r.Candidates) != 0 {
		t.Errorf("expected empty result with 0 open slots, got slots=%d candidates=%d", r.OpenSlots, len(r.Candidates))
	}
}

func TestHandleSlotUpdateMarksStale(t *testing.T) {
	prices := &fakePrices{snap: testSnapshot()}
	e := New(prices, &fakeGold{}, flip.NewOfferTracker(), NewSettingsStore(permissive()))

	e.RefreshOnce()
	e.HandleSlotUpdate(flip.SlotUpdate{Slot: 0, ItemID: 1, State: flip.StateBuying, QuantityTotal: 5, PriceEach: 10})

	e.mu.Lock()
	stale := e.lastRefresh.IsZero()
	e.mu.Unlock()
	if !stale {
		t.Error("a slot update must mark the suggestions stale")
	}
	if !e.Tracker().InActiveOffer(1) {
		t.Error("the update must reach the tracker")
	}
}

func TestRefreshSurvivesPanic(t *testing.T) {
	e := New(&panickyPrices{}, &fakeGold{}, flip.NewOfferTracker(), NewSettingsStore(permissive()))

	// Must not propagate.
	e.RefreshOnce()
}

func TestFailedRefreshStillThrottles(t *testing.T) {
	// No snapshot at all: the cycle is skipped, but the attempt must
	// still count against the interval or Run would retry the price
	// fetch on every 1s tick.
	prices := &fakePrices{refreshErr: errors.New("api down")}
	e := New(prices, &fakeGold{}, flip.NewOfferTracker(), NewSettingsStore(permissive()))

	e.RefreshOnce()

	e.mu.Lock()
	last := e.lastRefresh
	e.mu.Unlock()
	if last.IsZero() {
		t.Error("a skipped refresh must still advance lastRefresh")
	}
}

func TestPanickedRefreshStillThrottles(t *testing.T) {
	e := New(&panickyPrices{}, &fakeGold{}, flip.NewOfferTracker(), NewSettingsStore(permissive()))

	e.RefreshOnce()

	e.mu.Lock()
	last := e.lastRefresh
	e.mu.Unlock()
	if last.IsZero() {
		t.Error("a panicked refresh must still advance lastRefresh")
	}
}

func TestIntervalClampsToMinimum(t *testing.T) {
	cfg := permissive()
	cfg.RefreshSeconds = 1
	e := New(&fakePrices{}, &fakeGold{}, flip.NewOfferTracker(), NewSettingsStore(cfg))

	if got := e.interval(); got != minRefreshInterval {
		t.Errorf("expected interval clamped to %v, got %v", minRefreshInterval, got)
	}

	cfg.RefreshSeconds = 60
	e.Settings().Update(cfg)
	if got := e.interval(); got != 60*time.Second {
		t.Errorf("expected 60s interval, got %v", got)
	}
}

type panickyPrices struct{}

func (p *panickyPrices) Refresh() error                   { panic("boom") }
func (p *panickyPrices) Snapshot() (*flip.Snapshot, bool) { return nil, false }
