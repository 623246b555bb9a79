package flip

import (
	"sync"
	"time"
)

// OfferTracker owns the exchange-slot state and the rolling per-item buy
// counts. Slot updates arrive from the companion connection while the
// refresh loop reads concurrently, so all state sits behind one mutex.
type OfferTracker struct {
	mu      sync.Mutex
	bySlot  map[int]OfferRecord
	rolling map[int]rollingBuy // itemID -> buys inside the window

	now func() time.Time // test hook
}

func NewOfferTracker() *OfferTracker {
	return &OfferTracker{
		bySlot:  make(map[int]OfferRecord),
		rolling: make(map[int]rollingBuy),
		now:     time.Now,
	}
}

// Apply records one observed slot transition. The new record replaces the
// slot wholesale; BUYING/BOUGHT progress accumulates into the rolling buy
// count for the item. Expired rolling entries are swept here and only
// here, so a stale entry can linger until the next event arrives.
func (t *OfferTracker) Apply(ev SlotUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.bySlot[ev.Slot] = OfferRecord{
		Slot:           ev.Slot,
		ItemID:         ev.ItemID,
		State:          ev.State,
		QuantityTraded: ev.QuantityTraded,
		QuantityTotal:  ev.QuantityTotal,
		PriceEach:      ev.PriceEach,
		UpdatedAt:      now,
	}

	if (ev.State == StateBought || ev.State == StateBuying) && ev.QuantityTraded > 0 {
		rb := t.rolling[ev.ItemID]
		t.rolling[ev.ItemID] = rollingBuy{qty: rb.qty + ev.QuantityTraded, lastUpdate: now}
	}

	for id, rb := range t.rolling {
		if now.Sub(rb.lastUpdate) > BuyWindow {
			delete(t.rolling, id)
		}
	}
}

// BoughtInWindow returns the quantity bought inside the rolling window,
// or 0 when nothing was recorded or the record has expired.
func (t *OfferTracker) BoughtInWindow(itemID int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	rb, ok := t.rolling[itemID]
	if !ok || t.now().Sub(rb.lastUpdate) > BuyWindow {
		return 0
	}
	return rb.qty
}

// InActiveOffer reports whether the item currently occupies a BUYING or
// SELLING slot.
func (t *OfferTracker) InActiveOffer(itemID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.bySlot {
		if r.ItemID == itemID && r.State.active() {
			return true
		}
	}
	return false
}

// FilledSlotCount counts slots holding an in-flight offer. Completed and
// cancelled offers free their slot.
func (t *OfferTracker) FilledSlotCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := 0
	for _, r := range t.bySlot {
		if r.State.active() {
			c++
		}
	}
	return c
}

// CurrentOffers returns a copy of all known slot records.
func (t *OfferTracker) CurrentOffers() map[int]OfferRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[int]OfferRecord, len(t.bySlot))
	for slot, r := range t.bySlot {
		out[slot] = r
	}
	return out
}

// Reset drops all slot and rolling state.
func (t *OfferTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bySlot = make(map[int]OfferRecord)
	t.rolling = make(map[int]rollingBuy)
}
