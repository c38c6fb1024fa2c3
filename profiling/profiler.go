// Package profiling captures CPU profiles and execution traces when the game
// loop falls behind.
package profiling

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	// ErrCooldown is returned when a capture was taken too recently
	ErrCooldown = errors.New("capture on cooldown")

	// ErrBusy is returned while a previous capture is still running
	ErrBusy = errors.New("already profiling")
)

// Profiler writes a CPU profile and a trace covering the moments after a
// frame-rate drop
type Profiler struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	dir         string
	active      bool
	lastCapture time.Time

	cooldown time.Duration
	duration time.Duration
}

// New creates a profiler writing into dir, creating it if needed
func New(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		dir:      dir,
		cooldown: 10 * time.Second,
		duration: 5 * time.Second,
	}, nil
}

// Capture starts a background capture tagged with reason. It returns
// ErrCooldown or ErrBusy instead of overlapping captures.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return ErrBusy
	}
	if since := time.Since(p.lastCapture); !p.lastCapture.IsZero() && since < p.cooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrCooldown, since.Round(time.Millisecond))
	}

	p.active = true
	p.lastCapture = time.Now()
	base := fmt.Sprintf("tps-drop-%s-%s", p.lastCapture.Format("20060102-150405"), reason)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.active = false
			p.mu.Unlock()
		}()

		var inner sync.WaitGroup
		inner.Add(2)
		go func() {
			defer inner.Done()
			if err := p.captureCPUProfile(base); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer inner.Done()
			if err := p.captureTrace(base); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()
		inner.Wait()
	}()

	return nil
}

// Wait blocks until any running capture has finished
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Profiler) captureCPUProfile(base string) error {
	path := filepath.Join(p.dir, base+".cpu.prof")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to %s (view with: go tool pprof -http=:8080 %s)", path, path)
	return nil
}

func (p *Profiler) captureTrace(base string) error {
	path := filepath.Join(p.dir, base+".trace")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.duration)
	trace.Stop()

	log.Printf("Trace saved to %s", path)
	return nil
}
