package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/JackMordaunt/fog-of-chess/game"
)

const (
	tileSize     = 75
	boardSize    = tileSize * 8 // 600
	panelWidth   = 200
	screenWidth  = boardSize + panelWidth
	screenHeight = boardSize
)

var (
	pieceFace font.Face
	textFace  font.Face
)

var boardColors = [2]color.Color{
	color.RGBA{149, 175, 192, 255}, // light
	color.RGBA{83, 92, 104, 255},   // dark
}

var pieceColors = map[game.Player]color.Color{
	game.White: color.White,
	game.Black: color.Black,
}

// DejaVu Sans Mono covers the unicode chess glyphs.
const fontPath = "res/DejaVuSansMono.ttf"

func loadFonts() error {
	raw, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	ttf, err := truetype.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing font: %w", err)
	}
	pieceFace = truetype.NewFace(ttf, &truetype.Options{Size: 60})
	textFace = truetype.NewFace(ttf, &truetype.Options{Size: 16})
	return nil
}

type Game struct {
	match    *game.Match
	scenario string
	fog      bool

	selected  *game.Square
	targets   game.SquareSet
	mouseDown bool

	gameOver bool
	result   string
}

func squareFromMouse(x, y int) (game.Square, bool) {
	if x < 0 || y < 0 || x >= boardSize || y >= boardSize {
		return game.Square{}, false
	}

	file := x / tileSize
	rank := 7 - (y / tileSize)

	sq := game.Sq(file, rank)
	return sq, sq.Valid()
}

// Game Update helpers

func (g *Game) resetGame() {
	if g.scenario != "" {
		b, _ := game.Scenario(g.scenario)
		g.match = game.NewMatchWith(b)
		g.match.SetSinglePlayer(true)
	} else {
		g.match.Reset()
	}

	g.selected = nil
	g.targets = nil

	g.gameOver = false
	g.result = ""
}

func (g *Game) handleClick(sq game.Square) {
	piece, occupied := g.match.At(sq)

	if g.selected == nil {
		if occupied && piece.Player == g.match.ActivePlayer() {
			g.selected = &sq
			g.targets = g.match.LegalTargets(sq)
		}
		return
	}

	// Clicking another of your own pieces re-selects it.
	if occupied && piece.Player == g.match.ActivePlayer() && sq != *g.selected {
		g.selected = &sq
		g.targets = g.match.LegalTargets(sq)
		return
	}

	// A rejected move is simply "not performed"; drop the selection and let
	// the player try again.
	g.match.SubmitMove(*g.selected, sq)
	g.selected = nil
	g.targets = nil
}

func (g *Game) Update() error {
	mousePressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// restart the game with R
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.resetGame()
		g.mouseDown = mousePressed
		return nil
	}

	if g.gameOver {
		g.mouseDown = mousePressed
		return nil
	}

	// Human input
	if mousePressed && !g.mouseDown {
		x, y := ebiten.CursorPosition()
		if sq, ok := squareFromMouse(x, y); ok {
			g.handleClick(sq)
		}
	}

	// Kings are captured, not checkmated, in this variant.
	if victim, over := g.match.CapturedKing(); over {
		g.gameOver = true
		g.result = fmt.Sprintf("%s wins by king capture", victim.Other())
	}

	g.mouseDown = mousePressed
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Side panel
	ebitenutil.DrawRect(screen, float64(boardSize), 0, panelWidth, boardSize, color.RGBA{30, 30, 30, 255})

	seen := g.match.Visible(g.match.ActivePlayer())

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := game.Sq(file, rank)

			// Squares outside the active player's view stay fogged.
			if g.fog && !seen.Contains(sq) {
				continue
			}

			x := float64(file) * tileSize
			y := float64(7-rank) * tileSize
			ebitenutil.DrawRect(screen, x, y, tileSize, tileSize, boardColors[(file+rank)%2])

			if g.selected != nil && sq == *g.selected {
				ebitenutil.DrawRect(screen, x, y, tileSize, tileSize, color.RGBA{106, 176, 76, 90})
			}

			// Highlight legal target squares
			if g.targets != nil && g.targets.Contains(sq) {
				if _, occupied := g.match.At(sq); occupied {
					// capture square
					ebitenutil.DrawRect(screen, x, y, tileSize, tileSize, color.RGBA{255, 0, 0, 80})
				} else {
					ebitenutil.DrawRect(screen, x, y, tileSize, tileSize, color.RGBA{0, 0, 0, 60})
				}
			}

			if piece, ok := g.match.At(sq); ok {
				text.Draw(screen, string(piece.Rune()), pieceFace,
					int(x)+10, int(y)+tileSize-14, pieceColors[piece.Player])
			}
		}
	}

	g.drawHUD(screen)

	if g.gameOver {
		ebitenutil.DrawRect(screen, 0, 0, float64(boardSize), float64(boardSize), color.RGBA{0, 0, 0, 180})
		text.Draw(screen, g.result, textFace, boardSize/2-110, boardSize/2, color.White)
		text.Draw(screen, "Press R to Restart", textFace, boardSize/2-80, boardSize/2+30, color.White)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("turn: %s", g.match.ActivePlayer()),
		fmt.Sprintf("moves: %d", g.match.MoveCount()),
	}
	if !g.fog {
		lines = append(lines, "fog: off")
	}
	if g.scenario != "" {
		lines = append(lines, fmt.Sprintf("scenario: %s", g.scenario))
	}
	lines = append(lines, "", "click: select / move", "R: restart")

	y := 40
	for _, line := range lines {
		text.Draw(screen, line, textFace, boardSize+20, y, color.White)
		y += 28
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	noFog := flag.Bool("no-fog", false, "turn off the fog of war")
	scenario := flag.String("scenario", "", "start from a named test board (single player)")
	flag.Parse()

	board := game.New()
	single := false
	if *scenario != "" {
		b, ok := game.Scenario(*scenario)
		if !ok {
			log.Fatalf("scenario %q does not exist", *scenario)
		}
		board = b
		single = true
	}

	match := game.NewMatchWith(board)
	match.SetSinglePlayer(single)

	if err := loadFonts(); err != nil {
		log.Fatal(err)
	}

	g := &Game{
		match:    match,
		scenario: *scenario,
		fog:      !*noFog,
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Fog of Chess")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
