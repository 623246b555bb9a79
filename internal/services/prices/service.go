package prices

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"ge-flipper/internal/flip"

	"github.com/go-resty/resty/v2"
)

// Service fetches live prices and item metadata from the wiki real-time
// price API and assembles immutable snapshots for the flip engine.
type Service struct {
	baseURL string
	client  *resty.Client

	mu       sync.RWMutex
	snapshot *flip.Snapshot
	mapping  map[int]itemMeta // id -> name and buy limit, fetched once
}

type itemMeta struct {
	Name     string
	BuyLimit int
}

// latestResponse is the /latest payload: per-item latest observed prices.
// Fields are nullable because newly tracked items may have no trades yet.
type latestResponse struct {
	Data map[string]latestEntry `json:"data"`
}

type latestEntry struct {
	High     *int64 `json:"high"`
	HighTime *int64 `json:"highTime"`
	Low      *int64 `json:"low"`
	LowTime  *int64 `json:"lowTime"`
}

// mappingEntry is one element of the /mapping array.
type mappingEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	BuyLimit int    `json:"limit"`
}

// dailyResponse is the /24h payload: trade volume and average prices over
// the last day, keyed by item id.
type dailyResponse struct {
	Data map[string]dailyEntry `json:"data"`
}

type dailyEntry struct {
	AvgHighPrice    *int64 `json:"avgHighPrice"`
	HighPriceVolume int    `json:"highPriceVolume"`
	AvgLowPrice     *int64 `json:"avgLowPrice"`
	LowPriceVolume  int    `json:"lowPriceVolume"`
}

func NewService(baseURL, userAgent string) *Service {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", userAgent)

	return &Service{
		baseURL: baseURL,
		client:  client,
	}
}

// Snapshot returns the most recent snapshot, or false when no fetch has
// succeeded yet.
func (s *Service) Snapshot() (*flip.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot != nil
}

// Refresh fetches prices, metadata and daily stats and swaps in a new
// snapshot. On failure the previous snapshot stays in place.
func (s *Service) Refresh() error {
	mapping, err := s.loadMapping()
	if err != nil {
		return fmt.Errorf("failed to load item mapping: %w", err)
	}

	var latest latestResponse
	if err := s.getJSON("/latest", &latest); err != nil {
		return fmt.Errorf("failed to fetch latest prices: %w", err)
	}

	var daily dailyResponse
	if err := s.getJSON("/24h", &daily); err != nil {
		return fmt.Errorf("failed to fetch 24h stats: %w", err)
	}

	items := make([]flip.ItemPrice, 0, len(latest.Data))
	for key, entry := range latest.Data {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		meta, ok := mapping[id]
		if !ok {
			continue
		}

		var high, low int64
		if entry.High != nil {
			high = *entry.High
		}
		if entry.Low != nil {
			low = *entry.Low
		}

		volume, volatility := dayStats(daily.Data[key])

		items = append(items, flip.ItemPrice{
			ItemID:        id,
			Name:          meta.Name,
			LatestLow:     low,
			LatestHigh:    high,
			DailyVolume:   volume,
			BuyLimit:      meta.BuyLimit,
			VolatilityPct: volatility,
		})
	}

	// Map iteration order is random; fix a stable snapshot order.
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })

	snap := &flip.Snapshot{Items: items, FetchedAt: time.Now()}
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	log.Printf("Price snapshot refreshed: %d items", len(items))
	return nil
}

// dayStats derives the daily trade volume and a 24h volatility percentage
// from the bulk stats entry. Volume is the real traded count on both
// sides of the book, not an approximation.
func dayStats(e dailyEntry) (volume int, volatilityPct float64) {
	volume = e.HighPriceVolume + e.LowPriceVolume
	if e.AvgHighPrice != nil && e.AvgLowPrice != nil && *e.AvgHighPrice > 0 {
		volatilityPct = 100.0 * float64(*e.AvgHighPrice-*e.AvgLowPrice) / float64(*e.AvgHighPrice)
	}
	return volume, volatilityPct
}

// loadMapping fetches the id -> (name, buy limit) table on first use.
// Item metadata changes rarely enough to cache for the process lifetime.
func (s *Service) loadMapping() (map[int]itemMeta, error) {
	s.mu.RLock()
	cached := s.mapping
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	var entries []mappingEntry
	if err := s.getJSON("/mapping", &entries); err != nil {
		return nil, err
	}

	mapping := make(map[int]itemMeta, len(entries))
	for _, e := range entries {
		mapping[e.ID] = itemMeta{Name: e.Name, BuyLimit: e.BuyLimit}
	}

	s.mu.Lock()
	s.mapping = mapping
	s.mu.Unlock()
	return mapping, nil
}

func (s *Service) getJSON(path string, out interface{}) error {
	resp, err := s.client.R().Get(s.baseURL + path)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode(), path)
	}
	return json.Unmarshal(resp.Body(), out)
}
