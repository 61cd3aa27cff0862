package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"chesskit/internal/board"
)

// Storage keys
const (
	keySavedGame   = "saved_game"
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// ErrNoSavedGame is returned by LoadGame when nothing has been saved.
var ErrNoSavedGame = errors.New("no saved game")

// BoardTheme selects the board color scheme.
type BoardTheme int

const (
	ThemeClassic BoardTheme = iota
	ThemeBlue
	ThemeGreen
)

// UserPreferences stores user settings.
type UserPreferences struct {
	Username       string     `json:"username"`
	Theme          BoardTheme `json:"theme"`
	ShowMoveHints  bool       `json:"show_move_hints"`
	HighlightCheck bool       `json:"highlight_check"`
	LastPlayed     time.Time  `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:       "Player",
		Theme:          ThemeClassic,
		ShowMoveHints:  true,
		HighlightCheck: true,
	}
}

// SavedGame is a snapshot of a game in progress. Position is the full rules
// state, so a load restores exactly what was saved, including the en passant
// window and castling rights.
type SavedGame struct {
	Position board.Position `json:"position"`
	SavedAt  time.Time      `json:"saved_at"`
}

// GameStats stores play statistics across games.
type GameStats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Stalemates  int `json:"stalemates"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return NewStorageAt(dbDir)
}

// NewStorageAt opens the database in the given directory. Tests point this
// at a temporary directory.
func NewStorageAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

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

// SaveGame stores the position as the current saved game, replacing any
// previous save.
func (s *Storage) SaveGame(pos *board.Position) error {
	saved := SavedGame{
		Position: *pos,
		SavedAt:  time.Now(),
	}

	data, err := json.Marshal(&saved)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySavedGame), data)
	})
}

// LoadGame restores the saved game, or returns ErrNoSavedGame.
func (s *Storage) LoadGame() (*board.Position, error) {
	var saved SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySavedGame))
		if err == badger.ErrKeyNotFound {
			return ErrNoSavedGame
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})
	if err != nil {
		return nil, err
	}

	pos := saved.Position
	if err := pos.Validate(); err != nil {
		return nil, err
	}

	return &pos, nil
}

// ClearSavedGame removes the saved game, if any.
func (s *Storage) ClearSavedGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keySavedGame))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
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

// LoadPreferences loads user preferences, returning defaults if not found.
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

// LoadStats loads play statistics, returning zeroes if not found.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}

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

// RecordResult records a finished game. winner is ignored when draw is true.
func (s *Storage) RecordResult(winner board.Color, draw bool) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch {
	case draw:
		stats.Stalemates++
	case winner == board.White:
		stats.WhiteWins++
	default:
		stats.BlackWins++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}
