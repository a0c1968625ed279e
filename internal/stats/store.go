// Package stats persists the dashboard counters and the operating flag in a
// side-file under the Logs bucket, so both survive restarts.
package stats

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
)

// FileName is the stats side-file inside the Logs bucket.
const FileName = "dashboard_stats.json"

// Store reads and writes the stats side-file.
type Store struct {
	vault *vault.Vault
	log   *logrus.Logger
}

// NewStore creates a Store over the given vault.
func NewStore(v *vault.Vault, log *logrus.Logger) *Store {
	return &Store{vault: v, log: log}
}

// Load returns the persisted stats. A missing or unparsable side-file
// degrades to the compiled-in defaults; the failure is logged, never
// surfaced to the caller.
func (s *Store) Load() models.Stats {
	if !s.vault.Exists(vault.BucketLogs, FileName) {
		return models.DefaultStats()
	}

	data, err := s.vault.Read(vault.BucketLogs, FileName)
	if err != nil {
		s.log.WithError(err).Warn("stats side-file unreadable, using defaults")

		return models.DefaultStats()
	}

	var st models.Stats
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.WithError(err).Warn("stats side-file unparsable, using defaults")

		return models.DefaultStats()
	}

	return st
}

// Save persists the stats atomically.
func (s *Store) Save(st models.Stats) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	return s.vault.WriteAtomic(vault.BucketLogs, FileName, data)
}

// SetAIActive toggles the durable operating flag.
func (s *Store) SetAIActive(active bool) error {
	st := s.Load()
	st.AIActive = active

	return s.Save(st)
}
