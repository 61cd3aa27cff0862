package storage

import (
	"errors"
	"testing"

	"chesskit/internal/board"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSaveLoadGame(t *testing.T) {
	s := openTestStorage(t)

	pos := board.NewPosition()
	for _, mv := range []struct{ from, to board.Square }{
		{board.E2, board.E4}, {board.E7, board.E6},
		{board.E4, board.E5}, {board.D7, board.D5},
	} {
		if err := pos.CommitMove(mv.from, mv.to, board.NoPieceType); err != nil {
			t.Fatalf("CommitMove: %v", err)
		}
	}

	if err := s.SaveGame(pos); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	loaded, err := s.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}

	// The full rules state must survive the round trip, including the
	// one-ply en passant window.
	if *loaded != *pos {
		t.Errorf("loaded position differs:\nsaved  %s\nloaded %s", pos.ToFEN(), loaded.ToFEN())
	}
	if loaded.EnPassant != board.D6 {
		t.Errorf("EnPassant = %s after load, want d6", loaded.EnPassant)
	}
}

func TestLoadGameMissing(t *testing.T) {
	s := openTestStorage(t)

	if _, err := s.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("LoadGame on empty db = %v, want ErrNoSavedGame", err)
	}
}

func TestClearSavedGame(t *testing.T) {
	s := openTestStorage(t)

	if err := s.SaveGame(board.NewPosition()); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if err := s.ClearSavedGame(); err != nil {
		t.Fatalf("ClearSavedGame: %v", err)
	}
	if _, err := s.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("LoadGame after clear = %v, want ErrNoSavedGame", err)
	}

	// Clearing twice is fine.
	if err := s.ClearSavedGame(); err != nil {
		t.Errorf("second ClearSavedGame: %v", err)
	}
}

func TestPreferences(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.Username != "Player" {
		t.Errorf("default username = %q, want Player", prefs.Username)
	}
	if !prefs.ShowMoveHints || !prefs.HighlightCheck {
		t.Error("hint defaults not enabled")
	}

	prefs.Username = "magnus"
	prefs.Theme = ThemeGreen
	prefs.ShowMoveHints = false
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if loaded.Username != "magnus" || loaded.Theme != ThemeGreen || loaded.ShowMoveHints {
		t.Errorf("preferences did not round-trip: %+v", loaded)
	}
	if loaded.LastPlayed.IsZero() {
		t.Error("LastPlayed not stamped on save")
	}
}

func TestRecordResult(t *testing.T) {
	s := openTestStorage(t)

	if err := s.RecordResult(board.White, false); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordResult(board.Black, false); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordResult(board.White, true); err != nil {
		t.Fatal(err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 3 || stats.WhiteWins != 1 || stats.BlackWins != 1 || stats.Stalemates != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
