package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chesskit/internal/board"
	"chesskit/internal/storage"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	PickerColor    color.RGBA
}

// ThemeFor returns the color theme for a stored preference.
func ThemeFor(t storage.BoardTheme) *Theme {
	theme := &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255},
		PickerColor:    color.RGBA{60, 64, 72, 240},
	}

	switch t {
	case storage.ThemeBlue:
		theme.LightSquare = color.RGBA{222, 227, 230, 255}
		theme.DarkSquare = color.RGBA{140, 162, 173, 255}
	case storage.ThemeGreen:
		theme.LightSquare = color.RGBA{238, 238, 210, 255}
		theme.DarkSquare = color.RGBA{118, 150, 86, 255}
	}

	return theme
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a renderer for a board of boardSize pixels.
func NewRenderer(boardSize, squareSize int, theme *Theme) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      theme,
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// SetTheme swaps the color scheme.
func (r *Renderer) SetTheme(theme *Theme) {
	r.theme = theme
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := float32(file * r.squareSize)
			y := float32((7 - rank) * r.squareSize) // Flip so rank 1 is at bottom

			var c color.RGBA
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			} else {
				c = r.theme.LightSquare
			}

			vector.DrawFilledRect(screen, x, y, float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws the last move, the selected square and its legal
// destinations.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, legal board.Bitboard, lastMove board.Move) {
	if lastMove != board.NoMove {
		r.highlightSquare(screen, lastMove.From(), r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To(), r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for dests := legal; dests != 0; {
		r.drawLegalMoveIndicator(screen, dests.PopLSB())
	}
}

// DrawCheck highlights the king's square when in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	r.highlightSquare(screen, kingSq, r.theme.CheckColor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.squareSize), float32(r.squareSize), c, false)
}

// drawLegalMoveIndicator draws a dot on a legal destination square.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := float32(x) + float32(r.squareSize)/2
	cy := float32(y) + float32(r.squareSize)/2
	radius := float32(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position) {
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}

		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, piece, x, y)
	}
}

// DrawPromotionPicker draws the four promotion choices stacked on the file
// of the destination square, starting from the promotion rank.
func (r *Renderer) DrawPromotionPicker(screen *ebiten.Image, target board.Square, mover board.Color) {
	for i, pt := range PromotionChoices {
		sq := promotionPickerSquare(target, mover, i)
		x, y := r.SquareToScreen(sq)

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.squareSize), float32(r.squareSize), r.theme.PickerColor, false)
		r.sprites.DrawPieceAt(screen, board.NewPiece(pt, mover), x, y)
	}
}

// PromotionChoices lists the selectable promotion kinds in picker order.
var PromotionChoices = [4]board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight}

// promotionPickerSquare returns the board square the i-th picker entry
// covers: the promotion square itself, then inward along the file.
func promotionPickerSquare(target board.Square, mover board.Color, i int) board.Square {
	if mover == board.White {
		return target - board.Square(8*i)
	}
	return target + board.Square(8*i)
}

// SquareToScreen converts a board square to screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize // Flip so rank 1 is at bottom
	return x, y
}

// ScreenToSquare converts screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize)
	return board.NewSquare(file, rank)
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
