package flip

import "testing"

func testItem() *ItemPrice {
	return &ItemPrice{
		ItemID:        4151,
		Name:          "Abyssal whip",
		LatestLow:     94,
		LatestHigh:    100,
		DailyVolume:   5000,
		BuyLimit:      70,
		VolatilityPct: 10.0,
	}
}

func TestPassesRejectsNilItem(t *testing.T) {
	if Passes(nil, DefaultSettings(), NewOfferTracker()) {
		t.Error("nil item must be rejected")
	}
}

func TestPassesRejectsUnusablePrices(t *testing.T) {
	cfg := DefaultSettings()
	tracker := NewOfferTracker()

	cases := []struct {
		name      string
		low, high int64
	}{
		{"zero high", 10, 0},
		{"zero low", 0, 10},
		{"negative high", 10, -1},
		{"negative low", -1, 10},
		{"both zero", 0, 0},
	}
	for _, tc := range cases {
		info := testItem()
		info.LatestLow = tc.low
		info.LatestHigh = tc.high
		if Passes(info, cfg, tracker) {
			t.Errorf("%s: expected rejection (low=%d high=%d)", tc.name, tc.low, tc.high)
		}
	}
}

func TestPassesMarginThresholdIsExact(t *testing.T) {
	tracker := NewOfferTracker()

	// high=100, low=94 -> margin is exactly 6.0%
	info := testItem()

	cfg := DefaultSettings()
	cfg.MinMarginPct = 6.0
	if !Passes(info, cfg, tracker) {
		t.Error("margin 6.0%% must pass a 6.0 threshold")
	}

	cfg.MinMarginPct = 6.1
	if Passes(info, cfg, tracker) {
		t.Error("margin 6.0%% must fail a 6.1 threshold")
	}
}

func TestPassesVolumeGateOnlyWhenEnabled(t *testing.T) {
	tracker := NewOfferTracker()
	info := testItem()
	info.DailyVolume = 10

	cfg := DefaultSettings()
	cfg.MinDailyVolume = 1000
	cfg.ExcludeLowVolume = true
	if Passes(info, cfg, tracker) {
		t.Error("low-volume item must be rejected when the gate is on")
	}

	cfg.ExcludeLowVolume = false
	if !Passes(info, cfg, tracker) {
		t.Error("volume gate must not apply when disabled")
	}
}

func TestPassesVolatilityCeiling(t *testing.T) {
	tracker := NewOfferTracker()
	info := testItem()
	info.VolatilityPct = 25.0

	cfg := DefaultSettings()
	cfg.MaxVolatilityPct = 20.0
	if Passes(info, cfg, tracker) {
		t.Error("item above the volatility ceiling must be rejected")
	}

	info.VolatilityPct = 20.0
	if !Passes(info, cfg, tracker) {
		t.Error("item at the volatility ceiling must pass")
	}
}

func TestPassesBuyLimitEnforcement(t *testing.T) {
	info := testItem()
	info.BuyLimit = 5

	tracker := NewOfferTracker()
	tracker.Apply(SlotUpdate{Slot: 0, ItemID: info.ItemID, State: StateBought, QuantityTraded: 5, QuantityTotal: 5, PriceEach: 94})

	cfg := DefaultSettings()
	cfg.RespectBuyLimits = true
	if Passes(info, cfg, tracker) {
		t.Error("item at its rolling buy limit must be rejected")
	}

	cfg.RespectBuyLimits = false
	if !Passes(info, cfg, tracker) {
		t.Error("buy limit must not apply when disabled")
	}
}

func TestPassesExcludesActiveOffers(t *testing.T) {
	info := testItem()

	tracker := NewOfferTracker()
	tracker.Apply(SlotUpdate{Slot: 2, ItemID: info.ItemID, State: StateSelling, QuantityTotal: 10, PriceEach: 100})

	if Passes(info, DefaultSettings(), tracker) {
		t.Error("item in an active offer must be rejected")
	}

	// A completed offer frees the item again.
	tracker.Apply(SlotUpdate{Slot: 2, ItemID: info.ItemID, State: StateSold, QuantityTraded: 10, QuantityTotal: 10, PriceEach: 100})
	if !Passes(info, DefaultSettings(), tracker) {
		t.Error("item with only a completed offer must pass")
	}
}
