// ChessKit - a two-player chess game built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"chesskit/internal/storage"
	"chesskit/internal/ui"
)

func main() {
	store, err := storage.NewStorage()
	if err != nil {
		// Play without persistence rather than refuse to start.
		log.Printf("Storage unavailable, save/load disabled: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := ui.NewGame(store)

	ebiten.SetWindowSize(ui.BoardSize, ui.BoardSize+ui.StatusBar)
	ebiten.SetWindowTitle("ChessKit")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
