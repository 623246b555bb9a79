package models

import "time"

// RefreshRun records one completed refresh cycle.
type RefreshRun struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	GoldConsidered int64     `json:"gold_considered"`
	OpenSlots      int       `json:"open_slots"`
	CandidateCount int       `json:"candidate_count"`
	RefreshedAt    time.Time `json:"refreshed_at" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
}

// FlipSuggestion is one recommended candidate from a refresh, kept for
// history and later review of how recommendations played out.
type FlipSuggestion struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	RunID          uint       `json:"run_id" gorm:"index;not null"`
	Run            RefreshRun `json:"-" gorm:"foreignKey:RunID"`
	Rank           int        `json:"rank"`
	ItemID         int        `json:"item_id" gorm:"index;not null"`
	Name           string     `json:"name"`
	BuyPrice       int64      `json:"buy_price"`
	SellPrice      int64      `json:"sell_price"`
	Quantity       int        `json:"quantity"`
	ExpectedProfit int64      `json:"expected_profit"`
	DailyVolume    int        `json:"daily_volume"`
	BuyLimit       int        `json:"buy_limit"`
	VolatilityPct  float64    `json:"volatility_pct"`
	CreatedAt      time.Time  `json:"created_at"`
}
