package flip

import "math"

// MakeCandidate prices a flip for one item against a per-slot budget.
// Returns false when no viable trade exists (no margin, no budget, or a
// zero quantity after the buy limit is applied).
func MakeCandidate(info *ItemPrice, perSlotBudget int64, cfg Settings) (Candidate, bool) {
	if info == nil {
		return Candidate{}, false
	}

	buyPrice := info.LatestLow   // buy at the current low
	sellPrice := info.LatestHigh // sell at the current high
	if sellPrice <= buyPrice {
		return Candidate{}, false
	}

	var affordable int64
	if perSlotBudget > 0 {
		unit := buyPrice
		if unit < 1 {
			unit = 1
		}
		affordable = perSlotBudget / unit
	}
	if affordable <= 0 {
		return Candidate{}, false
	}
	// Quantities are bounded to the int32 range; never wrap.
	if affordable > math.MaxInt32 {
		affordable = math.MaxInt32
	}

	qty := int(affordable)
	if info.BuyLimit < qty {
		qty = info.BuyLimit
	}
	if qty <= 0 {
		return Candidate{}, false
	}

	expectedProfit := (sellPrice - buyPrice) * int64(qty)

	return Candidate{
		ItemID:         info.ItemID,
		Name:           info.Name,
		BuyPrice:       buyPrice,
		SellPrice:      sellPrice,
		Quantity:       qty,
		ExpectedProfit: expectedProfit,
		DailyVolume:    info.DailyVolume,
		BuyLimit:       info.BuyLimit,
		VolatilityPct:  info.VolatilityPct,
	}, true
}
