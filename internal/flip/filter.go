package flip

// Passes decides whether an item is a viable flip candidate at all.
// Every check is independent; the order only short-circuits.
func Passes(info *ItemPrice, cfg Settings, tracker *OfferTracker) bool {
	if info == nil {
		return false
	}
	if info.LatestHigh <= 0 || info.LatestLow <= 0 {
		return false
	}

	// Margin must be above threshold. max(1, high) guards the division.
	divisor := float64(info.LatestHigh)
	if divisor < 1 {
		divisor = 1
	}
	marginPct := 100.0 * float64(info.LatestHigh-info.LatestLow) / divisor
	if marginPct < cfg.MinMarginPct {
		return false
	}

	if cfg.ExcludeLowVolume && info.DailyVolume < cfg.MinDailyVolume {
		return false
	}

	if info.VolatilityPct > cfg.MaxVolatilityPct {
		return false
	}

	// Respect buy limits against the rolling 4h progress.
	if cfg.RespectBuyLimits {
		if tracker.BoughtInWindow(info.ItemID) >= info.BuyLimit {
			return false
		}
	}

	// Never recommend an item that already occupies an active offer.
	if tracker.InActiveOffer(info.ItemID) {
		return false
	}

	return true
}
