// Command pongsim plays a headless match with random paddle input and
// reports what happened. It exercises the physics without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"pong/match"
)

func main() {
	ticks := flag.Int("ticks", 60*60*5, "Number of ticks to simulate")
	tps := flag.Float64("tps", 60, "Ticks per simulated second")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	serveEvery := flag.Int("serve-every", 30, "Serve on average once every N waiting ticks")
	verbose := flag.Bool("v", false, "Log every serve and goal")
	flag.Parse()

	if *tps <= 0 || *ticks < 0 || *serveEvery <= 0 {
		fmt.Fprintln(os.Stderr, "pongsim: -tps and -serve-every must be positive, -ticks non-negative")
		flag.Usage()
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Simulating %d ticks at %.0f TPS with seed %d", *ticks, *tps, *seed)

	stats, err := simulate(match.DefaultConfig(), *ticks, 1 / *tps, *serveEvery, rand.New(rand.NewSource(*seed)), *verbose)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Printf("score        %d : %d\n", stats.final.Left.Score, stats.final.Right.Score)
	fmt.Printf("serves       %d\n", stats.serves)
	fmt.Printf("paddle hits  %d\n", stats.paddleHits)
	fmt.Printf("wall bounces %d\n", stats.wallBounces)
	fmt.Printf("longest rally %d\n", stats.longestRally)
}

type stats struct {
	final        match.State
	serves       int
	paddleHits   int
	wallBounces  int
	longestRally int
}

// simulate runs ticks steps of dt seconds and checks the field invariants
// after each one
func simulate(config match.Config, ticks int, dt float64, serveEvery int, r *rand.Rand, verbose bool) (stats, error) {
	var st stats
	s := match.New(config)
	total := 0.0

	for i := 0; i < ticks; i++ {
		in := match.Input{
			LeftUp:    r.Intn(2) == 0,
			LeftDown:  r.Intn(2) == 0,
			RightUp:   r.Intn(2) == 0,
			RightDown: r.Intn(2) == 0,
			Serve:     s.Phase == match.AwaitingServe && r.Intn(serveEvery) == 0,
		}
		total += dt

		var ev match.Events
		s, ev = match.Step(s, in, dt, total, r)

		if ev.Served {
			st.serves++
			if verbose {
				log.Printf("tick %d: serve (%.2f, %.2f)", i, s.Ball.Dir.X, s.Ball.Dir.Y)
			}
		}
		if ev.WallBounce {
			st.wallBounces++
		}
		for _, hit := range ev.PaddleHit {
			if hit {
				st.paddleHits++
			}
		}
		if s.Rally > st.longestRally {
			st.longestRally = s.Rally
		}
		if ev.Scored && verbose {
			log.Printf("tick %d: %s scored, %d : %d", i, ev.Scorer, s.Left.Score, s.Right.Score)
		}

		if err := checkInvariants(s); err != nil {
			return st, fmt.Errorf("tick %d: %w", i, err)
		}
	}

	st.final = s
	return st, nil
}

func checkInvariants(s match.State) error {
	h := s.Config.FieldHeight
	for _, side := range []match.Side{match.Left, match.Right} {
		p := s.Paddle(side)
		if p.Pos.Y < 0 || p.Pos.Y > h-p.Height {
			return fmt.Errorf("%s paddle out of field at y=%.3f", side, p.Pos.Y)
		}
	}
	if s.Phase == match.InPlay {
		if l := s.Ball.Dir.Len(); l < 1-1e-9 || l > 1+1e-9 {
			return fmt.Errorf("ball direction not unit length: %v", l)
		}
	}
	return nil
}
