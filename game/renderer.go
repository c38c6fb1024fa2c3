package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pong/assets"
	"pong/match"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorForeground = color.RGBA{255, 255, 255, 255}
	colorNet        = color.RGBA{90, 90, 90, 255}
)

const (
	scoreFontSize = 24
	scoreTop      = 16
	netDash       = 12
	netGap        = 10
	netWidth      = 2
)

// HUD carries the non-match information shown on screen
type HUD struct {
	Paused bool
	Debug  bool
	TPS    float64
	FPS    float64
}

// Renderer draws a match. It only reads the state it is given.
type Renderer struct {
	ballSprite *ebiten.Image
	scoreFace  text.Face
}

// NewRenderer loads the ball sprite and score font. Assets that fail to load
// are logged and replaced by primitives and the debug font.
func NewRenderer(config match.Config) *Renderer {
	r := &Renderer{}

	sprite, err := loadBallSprite(int(math.Ceil(2 * config.BallRadius)))
	if err != nil {
		log.Printf("Warning: %v, drawing the ball as a circle", err)
	} else {
		r.ballSprite = sprite
	}

	face, err := loadScoreFace()
	if err != nil {
		log.Printf("Warning: %v, using the debug font for scores", err)
	} else {
		r.scoreFace = face
	}

	return r
}

func loadBallSprite(diameter int) (*ebiten.Image, error) {
	img, err := assets.BallImage(diameter)
	if err != nil {
		return nil, err
	}
	if os.Getenv("DEBUG_SPRITES") == "1" {
		if err := assets.SaveDebugPNG(img, "debug_ball.png"); err != nil {
			log.Printf("Failed to save debug sprite: %v", err)
		}
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadScoreFace() (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(assets.ScoreFont()))
	if err != nil {
		return nil, fmt.Errorf("failed to load score font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: scoreFontSize}, nil
}

// Render draws the whole frame
func (r *Renderer) Render(screen *ebiten.Image, s match.State, hud HUD) {
	screen.Fill(colorBackground)

	r.drawNet(screen, s.Config)
	r.drawPaddle(screen, s.Left)
	r.drawPaddle(screen, s.Right)
	r.drawBall(screen, s.Ball)
	r.drawScores(screen, s)
	r.drawMessages(screen, s, hud)

	if hud.Debug {
		r.drawDebug(screen, s, hud)
	}
}

func (r *Renderer) drawNet(screen *ebiten.Image, c match.Config) {
	x := float32(c.FieldWidth/2 - netWidth/2)
	for y := float32(0); y < float32(c.FieldHeight); y += netDash + netGap {
		vector.DrawFilledRect(screen, x, y, netWidth, netDash, colorNet, false)
	}
}

func (r *Renderer) drawPaddle(screen *ebiten.Image, p match.Paddle) {
	rect := p.Rect()
	vector.DrawFilledRect(screen,
		float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
		colorForeground, false)
}

func (r *Renderer) drawBall(screen *ebiten.Image, b match.Ball) {
	if r.ballSprite == nil {
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), colorForeground, true)
		return
	}

	w, h := r.ballSprite.Bounds().Dx(), r.ballSprite.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*b.Radius/float64(w), 2*b.Radius/float64(h))
	op.GeoM.Translate(b.Pos.X-b.Radius, b.Pos.Y-b.Radius)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.ballSprite, op)
}

func (r *Renderer) drawScores(screen *ebiten.Image, s match.State) {
	line := scoreLine(s)
	cx := s.Config.FieldWidth / 2

	if r.scoreFace == nil {
		ebitenutil.DebugPrintAt(screen, line, int(cx)-len(line)*3, scoreTop)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, scoreTop)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colorForeground)
	text.Draw(screen, line, r.scoreFace, op)
}

func (r *Renderer) drawMessages(screen *ebiten.Image, s match.State, hud HUD) {
	var msg string
	switch {
	case hud.Paused:
		msg = "PAUSED - press P to resume"
	case s.Phase == match.AwaitingServe:
		msg = "Press SPACE to serve"
	default:
		return
	}
	x := int(s.Config.FieldWidth/2) - len(msg)*3
	y := int(s.Config.FieldHeight) - 32
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

func (r *Renderer) drawDebug(screen *ebiten.Image, s match.State, hud HUD) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %0.1f | FPS: %0.1f | %s | rally: %d\nball: (%0.1f, %0.1f) dir: (%0.2f, %0.2f)",
		hud.TPS, hud.FPS, s.Phase, s.Rally,
		s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Dir.X, s.Ball.Dir.Y))
}

// scoreLine formats the scores as "left  :  right"
func scoreLine(s match.State) string {
	return fmt.Sprintf("%d  :  %d", s.Score(match.Left), s.Score(match.Right))
}
