package flip

// Settings holds the tunable strategy options. They are reread at the
// start of every refresh, so updates take effect without a restart.
type Settings struct {
	RefreshSeconds   int     `json:"refresh_seconds" envconfig:"FLIP_REFRESH_SECONDS" default:"60"`
	MinDailyVolume   int     `json:"min_daily_volume" envconfig:"FLIP_MIN_DAILY_VOLUME" default:"1000"`
	MinMarginPct     float64 `json:"min_margin_pct" envconfig:"FLIP_MIN_MARGIN_PCT" default:"1.0"`
	MaxVolatilityPct float64 `json:"max_volatility_pct" envconfig:"FLIP_MAX_VOLATILITY_PCT" default:"20.0"`
	ExcludeLowVolume bool    `json:"exclude_low_volume" envconfig:"FLIP_EXCLUDE_LOW_VOLUME" default:"true"`
	RespectBuyLimits bool    `json:"respect_buy_limits" envconfig:"FLIP_RESPECT_BUY_LIMITS" default:"true"`
	EvenlyAllocate   bool    `json:"evenly_allocate" envconfig:"FLIP_EVENLY_ALLOCATE" default:"true"`
	MaxCandidates    int     `json:"max_candidates" envconfig:"FLIP_MAX_CANDIDATES" default:"2000"`
}

// DefaultSettings mirrors the envconfig defaults.
func DefaultSettings() Settings {
	return Settings{
		RefreshSeconds:   60,
		MinDailyVolume:   1000,
		MinMarginPct:     1.0,
		MaxVolatilityPct: 20.0,
		ExcludeLowVolume: true,
		RespectBuyLimits: true,
		EvenlyAllocate:   true,
		MaxCandidates:    2000,
	}
}
