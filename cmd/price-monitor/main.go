package main

import (
	"flag"
	"log"

	"ge-flipper/internal/flip"
	"ge-flipper/internal/services/prices"

	"github.com/joho/godotenv"
)

var (
	apiURL    = flag.String("api", "https://prices.runescape.wiki/api/v1/osrs", "price API base URL")
	userAgent = flag.String("ua", "ge-flipper/1.0 price-monitor", "User-Agent for the price API")
	top       = flag.Int("top", 20, "number of candidates to print")
	gp        = flag.Int64("gp", 10_000_000, "gold to allocate")
	minMargin = flag.Float64("min-margin", 1.0, "minimum margin percent")
	minVolume = flag.Int("min-volume", 1000, "minimum daily volume")
)

// Fetches one snapshot and prints the best flips for the given bankroll.
// A quick way to eyeball the market without running the full service.
func main() {
	flag.Parse()
	_ = godotenv.Load()

	svc := prices.NewService(*apiURL, *userAgent)
	if err := svc.Refresh(); err != nil {
		log.Fatalf("Failed to fetch prices: %v", err)
	}
	snapshot, _ := svc.Snapshot()

	cfg := flip.DefaultSettings()
	cfg.MinMarginPct = *minMargin
	cfg.MinDailyVolume = *minVolume

	picks := flip.Suggest(snapshot, *gp, *top, cfg, flip.NewOfferTracker())

	log.Printf("Top %d flips for %d gp across %d items:", len(picks), *gp, len(snapshot.Items))
	for i, c := range picks {
		log.Printf("%2d. %s (ID %d): buy %d x %d -> sell %d | est. profit %d | vol %d/day | limit %d",
			i+1, c.Name, c.ItemID, c.BuyPrice, c.Quantity, c.SellPrice, c.ExpectedProfit, c.DailyVolume, c.BuyLimit)
	}
}
