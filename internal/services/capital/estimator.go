package capital

import "sync"

// Estimator resolves the gold available for flipping. The companion
// client reports the wallet amount it can see; a manual override entered
// through the API wins whenever it is positive. Absent data degrades to
// zero, never to an error.
type Estimator struct {
	mu       sync.Mutex
	wallet   int64
	override int64
}

func NewEstimator() *Estimator {
	return &Estimator{}
}

// ReportWallet records the latest wallet amount observed by the
// companion. Negative reports are ignored.
func (e *Estimator) ReportWallet(coins int64) {
	if coins < 0 {
		return
	}
	e.mu.Lock()
	e.wallet = coins
	e.mu.Unlock()
}

// SetOverride sets the manual gold override. Values <= 0 clear it.
func (e *Estimator) SetOverride(gp int64) {
	e.mu.Lock()
	if gp <= 0 {
		e.override = 0
	} else {
		e.override = gp
	}
	e.mu.Unlock()
}

// ClearOverride removes the manual override.
func (e *Estimator) ClearOverride() {
	e.SetOverride(0)
}

// Available returns the gold to consider this refresh.
func (e *Estimator) Available() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.override > 0 {
		return e.override
	}
	return e.wallet
}

// Override returns the current manual override and whether one is set.
func (e *Estimator) Override() (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.override, e.override > 0
}
