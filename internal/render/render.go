// Package render is the desktop presentation layer: it draws a Simulation
// with ebiten and feeds mouse input back into the stick.
package render

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/playmatatu/billiards/internal/game"
)

const (
	spriteCell    = 160
	spriteColumns = 4
)

var (
	feltColor     = color.RGBA{0x3f, 0x69, 0x22, 0xff}
	pocketColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	restingColor  = color.RGBA{0x00, 0x80, 0x00, 0xff}
	contactColor  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	chargingColor = color.RGBA{0xff, 0x00, 0x00, 0xff}
	idleColor     = color.RGBA{0xa9, 0xa9, 0xa9, 0xff}
)

// Pool ball colours for 1-7; 8 is black and 9-15 repeat 1-7 as stripes.
var solids = [...]color.RGBA{
	{0xf2, 0xc2, 0x0f, 0xff}, // yellow
	{0x1f, 0x4e, 0xb4, 0xff}, // blue
	{0xd6, 0x27, 0x28, 0xff}, // red
	{0x6a, 0x2c, 0x91, 0xff}, // purple
	{0xf2, 0x7d, 0x0c, 0xff}, // orange
	{0x1b, 0x7f, 0x3b, 0xff}, // green
	{0x7b, 0x1e, 0x1e, 0xff}, // maroon
}

// SpriteRect returns the sprite sheet cell for a ball number. The sheet
// holds 160x160 cells, four per row, in ball order.
func SpriteRect(number int) image.Rectangle {
	x := (number % spriteColumns) * spriteCell
	y := (number / spriteColumns) * spriteCell
	return image.Rect(x, y, x+spriteCell, y+spriteCell)
}

// BallColor is the flat colour used when no sprite sheet is loaded. Ball
// numbers index the rack, so number+1 is the face value.
func BallColor(b game.BallState) color.RGBA {
	if b.IsCue {
		return color.RGBA{0xf5, 0xf5, 0xf0, 0xff}
	}
	face := b.Number + 1
	if face == 8 {
		return color.RGBA{0x10, 0x10, 0x10, 0xff}
	}
	return solids[(face-1)%8]
}

// StickColor is red while the stick is being drawn back.
func StickColor(s game.Stick) color.RGBA {
	if s.Charging {
		return chargingColor
	}
	return idleColor
}

// Game implements ebiten.Game around a Simulation. Update runs the whole
// physics frame before Draw reads it.
type Game struct {
	sim    *game.Simulation
	scale  float64
	sheet  *ebiten.Image
	report game.FrameReport
}

// NewGame wraps sim. sheet may be nil, in which case balls are drawn as
// flat circles.
func NewGame(sim *game.Simulation, scale float64, sheet *ebiten.Image) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{sim: sim, scale: scale, sheet: sheet}
}

// LoadSpriteSheet reads a ball sprite sheet from disk.
func LoadSpriteSheet(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite sheet %s: %w", path, err)
	}
	return img, nil
}

func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	g.sim.Aim(float64(cx)/g.scale, float64(cy)/g.scale)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.BeginCharge()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if err := g.sim.ReleaseStrike(); err != nil {
			log.Printf("[DESKTOP] strike ignored: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Rack()
	}

	g.report = g.sim.Update(1000 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := float32(g.scale)
	snap := g.sim.Snapshot()

	screen.Fill(feltColor)

	for _, p := range snap.Pockets {
		vector.DrawFilledCircle(screen, float32(p.Position.X)*s, float32(p.Position.Y)*s, float32(p.Radius)*s, pocketColor, true)
	}

	touching := contactSet(g.report.Contacts)
	for _, b := range snap.Balls {
		if b.Pocketed {
			continue
		}
		x, y := float32(b.X)*s, float32(b.Y)*s
		if g.sheet != nil {
			g.drawSprite(screen, b)
		} else {
			vector.DrawFilledCircle(screen, x, y, game.BallRadius*s, BallColor(b), true)
		}
		outline := restingColor
		if touching[b.Number] {
			outline = contactColor
		}
		vector.StrokeCircle(screen, x, y, game.BallRadius*s, 1, outline, true)
	}

	if cue, ok := cueBall(snap.Balls); ok {
		vector.StrokeLine(screen, float32(cue.X)*s, float32(cue.Y)*s,
			float32(snap.Stick.Aim.X)*s, float32(snap.Stick.Aim.Y)*s, 2, StickColor(snap.Stick), true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d  power %.2f  remaining %d  TPS %.0f",
		snap.Frame, snap.Stick.Power, snap.Remaining, ebiten.ActualTPS()), 4, 4)
}

func (g *Game) drawSprite(screen *ebiten.Image, b game.BallState) {
	sub := g.sheet.SubImage(SpriteRect(b.Number)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*game.BallRadius/spriteCell, 2*game.BallRadius/spriteCell)
	op.GeoM.Translate(-game.BallRadius, -game.BallRadius)
	op.GeoM.Rotate(b.Angle)
	op.GeoM.Translate(b.X, b.Y)
	op.GeoM.Scale(g.scale, g.scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.scale)
}

// WindowSize is the table size in pixels at the given scale.
func WindowSize(scale float64) (int, int) {
	return int(game.TableWidth * scale), int(game.TableHeight * scale)
}

func cueBall(balls []game.BallState) (game.BallState, bool) {
	for _, b := range balls {
		if b.IsCue {
			return b, true
		}
	}
	return game.BallState{}, false
}

func contactSet(contacts []game.Contact) map[int]bool {
	set := make(map[int]bool, 2*len(contacts))
	for _, c := range contacts {
		set[c.A] = true
		set[c.B] = true
	}
	return set
}
