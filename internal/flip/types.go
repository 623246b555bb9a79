package flip

import "time"

// GESlots is the number of concurrent exchange slots a player has.
const GESlots = 8

// BuyWindow is the rolling window over which per-item buy limits apply.
const BuyWindow = 4 * time.Hour

// OfferState is the lifecycle state of one exchange slot.
type OfferState string

const (
	StateEmpty     OfferState = "EMPTY"
	StateBuying    OfferState = "BUYING"
	StateBought    OfferState = "BOUGHT"
	StateSelling   OfferState = "SELLING"
	StateSold      OfferState = "SOLD"
	StateCancelled OfferState = "CANCELLED"
)

// active reports whether the state occupies a slot (an in-flight offer).
func (s OfferState) active() bool {
	return s == StateBuying || s == StateSelling
}

// ItemPrice is the market view of a single item at snapshot time.
// Produced by the price service each refresh; never mutated afterwards.
type ItemPrice struct {
	ItemID        int     `json:"item_id"`
	Name          string  `json:"name"`
	LatestLow     int64   `json:"latest_low"`
	LatestHigh    int64   `json:"latest_high"`
	DailyVolume   int     `json:"daily_volume"`
	BuyLimit      int     `json:"buy_limit"`
	VolatilityPct float64 `json:"volatility_pct"`
}

// Snapshot is an ordered set of item prices valid at one point in time.
type Snapshot struct {
	Items     []ItemPrice `json:"items"`
	FetchedAt time.Time   `json:"fetched_at"`
}

// Candidate is a fully priced flip suggestion for one item.
type Candidate struct {
	ItemID         int     `json:"item_id"`
	Name           string  `json:"name"`
	BuyPrice       int64   `json:"buy_price"`
	SellPrice      int64   `json:"sell_price"`
	Quantity       int     `json:"quantity"`
	ExpectedProfit int64   `json:"expected_profit"`
	DailyVolume    int     `json:"daily_volume"`
	BuyLimit       int     `json:"buy_limit"`
	VolatilityPct  float64 `json:"volatility_pct"`
}

// SlotUpdate is one observed change to an exchange slot, as delivered by
// the companion client. One event per slot transition.
type SlotUpdate struct {
	Slot           int        `json:"slot"`
	ItemID         int        `json:"item_id"`
	State          OfferState `json:"state"`
	QuantityTraded int        `json:"quantity_traded"`
	QuantityTotal  int        `json:"quantity_total"`
	PriceEach      int64      `json:"price_each"`
}

// OfferRecord is the tracker's view of one slot.
type OfferRecord struct {
	Slot           int        `json:"slot"`
	ItemID         int        `json:"item_id"`
	State          OfferState `json:"state"`
	QuantityTraded int        `json:"quantity_traded"`
	QuantityTotal  int        `json:"quantity_total"`
	PriceEach      int64      `json:"price_each"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type rollingBuy struct {
	qty        int
	lastUpdate time.Time
}
