// Package storage provides persistent storage for user preferences and
// session statistics, backed by BadgerDB.
package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// UserPreferences stores user settings that survive restarts.
type UserPreferences struct {
	Theme        string    `json:"theme"`
	SoundEnabled bool      `json:"sound_enabled"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Theme:        "classic",
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// SessionStats accumulates interaction counters across sessions.
type SessionStats struct {
	MovesCommitted int `json:"moves_committed"`
	DropsRejected  int `json:"drops_rejected"`
	DragsCancelled int `json:"drags_cancelled"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if none are
// stored yet.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves session statistics.
func (s *Storage) SaveStats(stats *SessionStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads session statistics, returning zeroed counters if none
// are stored yet.
func (s *Storage) LoadStats() (*SessionStats, error) {
	stats := &SessionStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordCommit increments the committed-move counter.
func (s *Storage) RecordCommit() error {
	return s.bumpStats(func(st *SessionStats) { st.MovesCommitted++ })
}

// RecordReject increments the rejected-drop counter.
func (s *Storage) RecordReject() error {
	return s.bumpStats(func(st *SessionStats) { st.DropsRejected++ })
}

// RecordCancel increments the cancelled-drag counter.
func (s *Storage) RecordCancel() error {
	return s.bumpStats(func(st *SessionStats) { st.DragsCancelled++ })
}

func (s *Storage) bumpStats(update func(*SessionStats)) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	update(stats)
	return s.SaveStats(stats)
}
