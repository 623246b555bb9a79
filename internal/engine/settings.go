package engine

import (
	"sync"

	"ge-flipper/internal/flip"
)

// SettingsStore holds the live flip settings. The engine rereads them at
// the start of every refresh, so updates apply without a restart.
type SettingsStore struct {
	mu sync.RWMutex
	s  flip.Settings
}

func NewSettingsStore(s flip.Settings) *SettingsStore {
	return &SettingsStore{s: s}
}

func (st *SettingsStore) Get() flip.Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

func (st *SettingsStore) Update(s flip.Settings) {
	st.mu.Lock()
	st.s = s
	st.mu.Unlock()
}
