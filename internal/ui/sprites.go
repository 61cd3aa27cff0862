// Package ui implements the chess game UI using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"chesskit/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager renders and caches piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces()
	return sm
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// pieceFiles maps pieces to their asset file paths.
var pieceFiles = map[board.Piece]string{
	board.WhitePawn:   "assets/pieces/wP.svg",
	board.WhiteKnight: "assets/pieces/wN.svg",
	board.WhiteBishop: "assets/pieces/wB.svg",
	board.WhiteRook:   "assets/pieces/wR.svg",
	board.WhiteQueen:  "assets/pieces/wQ.svg",
	board.WhiteKing:   "assets/pieces/wK.svg",
	board.BlackPawn:   "assets/pieces/bP.svg",
	board.BlackKnight: "assets/pieces/bN.svg",
	board.BlackBishop: "assets/pieces/bB.svg",
	board.BlackRook:   "assets/pieces/bR.svg",
	board.BlackQueen:  "assets/pieces/bQ.svg",
	board.BlackKing:   "assets/pieces/bK.svg",
}

// loadPieces rasterizes all piece sprites from the embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for piece, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
