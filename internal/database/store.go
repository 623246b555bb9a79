package database

import (
	"log"

	"ge-flipper/internal/engine"
	"ge-flipper/internal/models"

	"gorm.io/gorm"
)

// Store persists refresh results. It is wired to the engine as a sink,
// so every completed cycle leaves a history trail in MySQL.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Publish implements engine.Sink. Persistence failures are logged and
// swallowed: history is best effort, the refresh loop must not care.
func (s *Store) Publish(r engine.Result) {
	run := models.RefreshRun{
		GoldConsidered: r.GoldConsidered,
		OpenSlots:      r.OpenSlots,
		CandidateCount: len(r.Candidates),
		RefreshedAt:    r.RefreshedAt,
	}
	if err := s.db.Create(&run).Error; err != nil {
		log.Printf("Failed to save refresh run: %v", err)
		return
	}

	if len(r.Candidates) == 0 {
		return
	}

	rows := make([]models.FlipSuggestion, 0, len(r.Candidates))
	for i, c := range r.Candidates {
		rows = append(rows, models.FlipSuggestion{
			RunID:          run.ID,
			Rank:           i + 1,
			ItemID:         c.ItemID,
			Name:           c.Name,
			BuyPrice:       c.BuyPrice,
			SellPrice:      c.SellPrice,
			Quantity:       c.Quantity,
			ExpectedProfit: c.ExpectedProfit,
			DailyVolume:    c.DailyVolume,
			BuyLimit:       c.BuyLimit,
			VolatilityPct:  c.VolatilityPct,
		})
	}
	if err := s.db.Create(&rows).Error; err != nil {
		log.Printf("Failed to save %d suggestions: %v", len(rows), err)
	}
}

// RecentSuggestions returns the newest persisted suggestions, most
// recent run first.
func (s *Store) RecentSuggestions(limit int) ([]models.FlipSuggestion, error) {
	if limit <= 0 {
		limit = 50
	}
	// Rows are inserted in rank order, so id order within a run is rank order.
	var rows []models.FlipSuggestion
	err := s.db.Order("run_id DESC, id ASC").Limit(limit).Find(&rows).Error
	return rows, err
}
