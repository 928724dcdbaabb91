package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyPosition    = "position"
	keyFirstLaunch = "first_launch"
)

// UserPreferences stores user settings
type UserPreferences struct {
	Flipped        bool      `json:"flipped"`
	ShowLegalMoves bool      `json:"show_legal_moves"`
	SoundEnabled   bool      `json:"sound_enabled"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		ShowLegalMoves: true,
		SoundEnabled:   true,
		LastPlayed:     time.Now(),
	}
}

// Stats counts what happened on the board across sessions.
type Stats struct {
	GamesStarted int `json:"games_started"`
	MovesPlayed  int `json:"moves_played"`
	Captures     int `json:"captures"`
	Checks       int `json:"checks"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences decodes the stored preferences over a copy of defaults.
// found is false when nothing was saved yet, in which case the copy is
// returned unchanged. A nil defaults means DefaultPreferences.
func (s *Storage) LoadPreferences(defaults *UserPreferences) (prefs *UserPreferences, found bool, err error) {
	if defaults == nil {
		defaults = DefaultPreferences()
	}
	p := *defaults
	found, err = s.getJSON(keyPreferences, &p)
	return &p, found, err
}

// SavePosition stores the notation of the position on the board so the
// next launch can resume it.
func (s *Storage) SavePosition(notation string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPosition), []byte(notation))
	})
}

// LoadPosition returns the last saved notation. ok is false when nothing
// has been saved yet.
func (s *Storage) LoadPosition() (notation string, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPosition))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		notation, ok = string(val), true
		return nil
	})
	return notation, ok, err
}

// ClearPosition forgets the saved position.
func (s *Storage) ClearPosition() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPosition))
	})
}

// LoadStats loads statistics, returns zeroes if not found
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}
	_, err := s.getJSON(keyStats, stats)
	return stats, err
}

// RecordNewGame counts a game started from the initial position.
func (s *Storage) RecordNewGame() error {
	return s.updateStats(func(st *Stats) {
		st.GamesStarted++
	})
}

// RecordMove counts a move that was applied to the board.
func (s *Storage) RecordMove(capture, check bool) error {
	return s.updateStats(func(st *Stats) {
		st.MovesPlayed++
		if capture {
			st.Captures++
		}
		if check {
			st.Checks++
		}
	})
}

// updateStats reads, modifies and writes the stats in one transaction.
func (s *Storage) updateStats(fn func(*Stats)) error {
	return s.db.Update(func(txn *badger.Txn) error {
		stats := &Stats{}
		item, err := txn.Get([]byte(keyStats))
		switch {
		case err == badger.ErrKeyNotFound:
		case err != nil:
			return err
		default:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, stats)
			}); err != nil {
				return err
			}
		}

		fn(stats)

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
}

func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON decodes the value at key into v. found is false and v is left
// untouched when the key does not exist.
func (s *Storage) getJSON(key string, v any) (found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}
