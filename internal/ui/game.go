package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"chesskit/internal/board"
	"chesskit/internal/storage"
)

// Board geometry in pixels.
const (
	SquareSize = 80
	BoardSize  = SquareSize * 8
	StatusBar  = 40
)

type gameState int

const (
	statePlaying gameState = iota
	statePromoting
	stateGameOver
)

// Game is the Ebitengine game implementation: it owns a rules position and
// turns clicks into legal-move queries and committed moves.
type Game struct {
	pos      *board.Position
	renderer *Renderer
	input    *InputHandler
	store    *storage.Storage
	prefs    *storage.UserPreferences

	state    gameState
	selected board.Square
	legal    board.Bitboard

	// Pending promotion while the picker is open.
	promoFrom, promoTo board.Square

	status   string
	endText  string
	recorded bool
}

// NewGame creates the game, loading preferences from storage. store may be
// nil, in which case saving and loading are disabled.
func NewGame(store *storage.Storage) *Game {
	prefs := storage.DefaultPreferences()
	if store != nil {
		loaded, err := store.LoadPreferences()
		if err != nil {
			log.Printf("Failed to load preferences: %v", err)
		} else {
			prefs = loaded
		}
	}

	return &Game{
		pos:      board.NewPosition(),
		renderer: NewRenderer(BoardSize, SquareSize, ThemeFor(prefs.Theme)),
		input:    NewInputHandler(),
		store:    store,
		prefs:    prefs,
		selected: board.NoSquare,
	}
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()

	ctrl := IsKeyPressed(ebiten.KeyControl) || IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && IsKeyJustPressed(ebiten.KeyN):
		g.newGame()
	case ctrl && IsKeyJustPressed(ebiten.KeyS):
		g.saveGame()
	case ctrl && IsKeyJustPressed(ebiten.KeyL):
		g.loadGame()
	}

	switch g.state {
	case statePlaying:
		g.updatePlaying()
	case statePromoting:
		g.updatePromoting()
	case stateGameOver:
		// Board stays visible; only Ctrl+N/Ctrl+L leave this state.
	}

	return nil
}

func (g *Game) updatePlaying() {
	if !g.input.IsLeftJustPressed() {
		return
	}

	sq := g.renderer.ScreenToSquare(g.input.MousePosition())
	if sq == board.NoSquare {
		return
	}

	// A click on a legal destination commits; any other click reselects.
	if g.selected != board.NoSquare && g.legal.IsSet(sq) {
		g.commit(g.selected, sq, board.NoPieceType)
		return
	}

	g.selectSquare(sq)
}

func (g *Game) selectSquare(sq board.Square) {
	if sq == g.selected {
		g.selected = board.NoSquare
		g.legal = board.Empty
		return
	}

	legal := g.pos.LegalMoves(sq)
	if legal.Empty() {
		g.selected = board.NoSquare
		g.legal = board.Empty
		return
	}
	g.selected = sq
	g.legal = legal
}

func (g *Game) commit(from, to board.Square, promo board.PieceType) {
	err := g.pos.CommitMove(from, to, promo)
	switch {
	case err == nil:
		g.selected = board.NoSquare
		g.legal = board.Empty
		g.state = statePlaying
		g.status = ""
		g.checkGameEnd()
	case errors.Is(err, board.ErrPromotionChoiceRequired):
		g.promoFrom, g.promoTo = from, to
		g.state = statePromoting
	default:
		// Clicks on own pieces reselect before we get here, so any
		// remaining error is worth surfacing.
		g.status = err.Error()
		g.selected = board.NoSquare
		g.legal = board.Empty
	}
}

func (g *Game) updatePromoting() {
	if IsKeyJustPressed(ebiten.KeyEscape) {
		g.state = statePlaying
		return
	}

	if !g.input.IsLeftJustPressed() {
		return
	}

	sq := g.renderer.ScreenToSquare(g.input.MousePosition())
	mover := g.pos.SideToMove()

	for i, pt := range PromotionChoices {
		if sq == promotionPickerSquare(g.promoTo, mover, i) {
			g.commit(g.promoFrom, g.promoTo, pt)
			return
		}
	}

	// Clicking outside the picker cancels.
	g.state = statePlaying
	g.selected = board.NoSquare
	g.legal = board.Empty
}

func (g *Game) checkGameEnd() {
	switch {
	case g.pos.IsCheckmate():
		winner := g.pos.SideToMove().Other()
		g.endText = fmt.Sprintf("Checkmate. %s wins. Ctrl+N for a new game.", winner)
		g.finish(winner, false)
	case g.pos.IsStalemate():
		g.endText = "Stalemate. Ctrl+N for a new game."
		g.finish(board.White, true)
	}
}

func (g *Game) finish(winner board.Color, draw bool) {
	g.state = stateGameOver
	if g.store != nil && !g.recorded {
		if err := g.store.RecordResult(winner, draw); err != nil {
			log.Printf("Failed to record result: %v", err)
		}
		g.recorded = true
	}
}

func (g *Game) newGame() {
	g.pos = board.NewPosition()
	g.state = statePlaying
	g.selected = board.NoSquare
	g.legal = board.Empty
	g.status = ""
	g.endText = ""
	g.recorded = false
}

func (g *Game) saveGame() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveGame(g.pos); err != nil {
		log.Printf("Failed to save game: %v", err)
		g.status = "Save failed"
		return
	}
	g.status = "Game saved"
}

func (g *Game) loadGame() {
	if g.store == nil {
		return
	}
	pos, err := g.store.LoadGame()
	if err != nil {
		if errors.Is(err, storage.ErrNoSavedGame) {
			g.status = "No saved game"
		} else {
			log.Printf("Failed to load game: %v", err)
			g.status = "Load failed"
		}
		return
	}

	g.pos = pos
	g.state = statePlaying
	g.selected = board.NoSquare
	g.legal = board.Empty
	g.status = "Game loaded"
	g.endText = ""
	g.recorded = false
	g.checkGameEnd()
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	legal := g.legal
	if !g.prefs.ShowMoveHints {
		legal = board.Empty
	}
	g.renderer.DrawHighlights(screen, g.selected, legal, g.pos.LastMove)

	if g.prefs.HighlightCheck && g.pos.InCheck {
		g.renderer.DrawCheck(screen, g.pos.KingSquare[g.pos.SideToMove()])
	}

	g.renderer.DrawPieces(screen, g.pos)

	if g.state == statePromoting {
		g.renderer.DrawPromotionPicker(screen, g.promoTo, g.pos.SideToMove())
	}

	g.drawStatusBar(screen)
}

func (g *Game) drawStatusBar(screen *ebiten.Image) {
	line := g.statusLine()
	face := GetRegularFace()
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(BoardSize)+12)
	op.ColorScale.ScaleWithColor(g.renderer.Theme().TextColor)
	text.Draw(screen, line, face, op)
}

func (g *Game) statusLine() string {
	if g.state == stateGameOver {
		return g.endText
	}

	line := fmt.Sprintf("%s to move", g.pos.SideToMove())
	if g.pos.InCheck {
		line += " - check"
	}
	if g.state == statePromoting {
		line += " - choose a promotion piece"
	}
	if g.status != "" {
		line += "  |  " + g.status
	}
	return line
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return BoardSize, BoardSize + StatusBar
}
