package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/clock"
	"pong/match"
	"pong/profiling"
)

// Game drives a match from ebiten's update loop
type Game struct {
	config   Config
	state    match.State
	input    InputProvider
	clock    *clock.Clock
	rng      *rand.Rand
	renderer *Renderer

	paused bool
	debug  bool

	// Frame-rate drop detection
	profiler        *profiling.Profiler
	startTime       time.Time
	tpsCheckTimer   float64
	lastTPSDropTime time.Time
}

// NewGame creates a game reading the keyboard
func NewGame(config Config) (*Game, error) {
	return NewGameWithInput(config, KeyboardInput{})
}

// NewGameWithInput creates a game reading player controls from input
func NewGameWithInput(config Config, input InputProvider) (*Game, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		config:    config,
		input:     input,
		clock:     clock.New(config.MaxDeltaTime),
		rng:       rand.New(rand.NewSource(seed)),
		renderer:  NewRenderer(config.Match),
		debug:     config.Debug,
		startTime: time.Now(),
	}

	if config.ProfileDir != "" {
		p, err := profiling.New(config.ProfileDir)
		if err != nil {
			return nil, fmt.Errorf("failed to set up profiling: %w", err)
		}
		g.profiler = p
	}

	g.newMatch()
	log.Printf("Serve seed: %d", seed)
	return g, nil
}

// newMatch starts a fresh match with zero scores
func (g *Game) newMatch() {
	g.state = match.New(g.config.Match)
	g.clock.Reset()
	log.Printf("Match %s started", g.state.ID)
}

// Update advances the game by one tick
func (g *Game) Update() error {
	switch readCommand() {
	case commandQuit:
		log.Printf("Match %s ended at %s", g.state.ID, scoreLine(g.state))
		return ebiten.Termination
	case commandPause:
		g.paused = !g.paused
	case commandRestart:
		g.paused = false
		g.newMatch()
		return nil
	case commandToggleDebug:
		g.debug = !g.debug
	case commandToggleFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if g.paused {
		g.clock.Skip()
		return nil
	}

	dt := g.clock.Tick()
	next, events := match.Step(g.state, g.input.Input(), dt, g.clock.Total(), g.rng)
	g.state = next
	g.logEvents(events)

	g.watchFrameRate(dt)
	return nil
}

func (g *Game) logEvents(ev match.Events) {
	id := g.state.ID
	if ev.Served {
		log.Printf("Match %s: serve, direction (%.2f, %.2f)", id, g.state.Ball.Dir.X, g.state.Ball.Dir.Y)
	}
	if ev.Scored {
		log.Printf("Match %s: %s player scored! Score: %s", id, ev.Scorer, scoreLine(g.state))
	}
	if g.debug {
		for _, side := range []match.Side{match.Left, match.Right} {
			if ev.PaddleHit[side] {
				log.Printf("Match %s: %s paddle hit, rally %d", id, side, g.state.Rally)
			}
		}
	}
}

// watchFrameRate captures a profile when the tick rate drops, ignoring the
// first seconds after launch
func (g *Game) watchFrameRate(dt float64) {
	if g.profiler == nil {
		return
	}
	g.tpsCheckTimer += dt
	if g.tpsCheckTimer < 0.5 {
		return
	}
	g.tpsCheckTimer = 0

	tps := ebiten.ActualTPS()
	if tps >= g.config.MinTPS || time.Since(g.startTime) < 3*time.Second {
		return
	}
	if time.Since(g.lastTPSDropTime) < 10*time.Second {
		return
	}
	g.lastTPSDropTime = time.Now()

	log.Printf("TPS drop detected (%.0f TPS), capturing profile", tps)
	if err := g.profiler.Capture(fmt.Sprintf("tps%.0f", tps)); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.state, HUD{
		Paused: g.paused,
		Debug:  g.debug,
		TPS:    ebiten.ActualTPS(),
		FPS:    ebiten.ActualFPS(),
	})
}

// Layout returns the game's logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
