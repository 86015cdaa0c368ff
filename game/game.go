// Package game runs a Game of Life simulation from a seeded grid until the
// population stops changing or a generation cap is reached.
package game

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-console/model"
	"github.com/sheikhrachel/go-gol-console/utils"
)

// State is where a game is in its lifecycle
type State int

const (
	Running State = iota
	// Converged means a step produced an identical grid
	Converged
	// Exhausted means the generation cap was passed without converging
	Exhausted
	// Interrupted means the run context was cancelled
	Interrupted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Renderer draws a grid labelled with its generation number
type Renderer interface {
	Render(g *model.Grid, generation int) error
}

// Result describes how a run ended. Generation is the number shown on the
// final frame.
type Result struct {
	State      State
	Generation int
	Population int
}

// Options tune a Game; zero values fall back to the defaults
type Options struct {
	MaxGenerations int
	FrameDelay     time.Duration
	Sleeper        Sleeper
	Pool           *model.GridPool
	Stats          *utils.Stats
}

// Game owns the two grid buffers of a single run. Each tick the current grid
// is drawn, stepped into the scratch grid, compared with it, and the two swap
// roles. Nothing is allocated per generation.
type Game struct {
	current *model.Grid
	next    *model.Grid

	renderer       Renderer
	sleeper        Sleeper
	frameDelay     time.Duration
	maxGenerations int
	pool           *model.GridPool
	stats          *utils.Stats

	generation int
	state      State
	lastFrame  time.Time

	// final is the result kept once the buffers are released
	final *Result
}

// New prepares a game starting from seed, which the game takes ownership of
func New(seed *model.Grid, renderer Renderer, opts Options) *Game {
	defaults := utils.DefaultConfig()
	if opts.MaxGenerations <= 0 {
		opts.MaxGenerations = defaults.MaxGenerations
	}
	if opts.Sleeper == nil {
		opts.Sleeper = ContextSleeper{}
	}
	if opts.Stats == nil {
		opts.Stats = utils.NewStats()
	}

	return &Game{
		current:        seed,
		next:           model.GridFromPool(seed.Rows(), seed.Cols(), opts.Pool),
		renderer:       renderer,
		sleeper:        opts.Sleeper,
		frameDelay:     opts.FrameDelay,
		maxGenerations: opts.MaxGenerations,
		pool:           opts.Pool,
		stats:          opts.Stats,
		generation:     1,
		state:          Running,
	}
}

// Run ticks until the game converges, is exhausted or ctx is cancelled, then
// draws one final frame. Cancellation returns ctx.Err() without the final
// frame.
func (g *Game) Run(ctx context.Context) (Result, error) {
	g.lastFrame = time.Now()
	for g.state == Running {
		if err := ctx.Err(); err != nil {
			g.state = Interrupted
			return g.Result(), err
		}
		if err := g.Tick(); err != nil {
			return g.Result(), err
		}
		if g.state != Running {
			break
		}
		if err := g.sleeper.Sleep(ctx, g.frameDelay); err != nil {
			g.state = Interrupted
			return g.Result(), err
		}
	}

	if err := g.renderer.Render(g.current, g.generation); err != nil {
		return g.Result(), errors.Wrapf(err, "[Game.Run] failed to draw final generation %d", g.generation)
	}
	return g.Result(), nil
}

// Tick advances the game by one generation
func (g *Game) Tick() error {
	if g.state != Running {
		return nil
	}
	if g.generation > g.maxGenerations {
		g.state = Exhausted
		return nil
	}

	if err := g.renderer.Render(g.current, g.generation); err != nil {
		return errors.Wrapf(err, "[Game.Tick] failed to draw generation %d", g.generation)
	}
	now := time.Now()
	g.stats.Update(g.generation, g.current.CountLivingCells(), now.Sub(g.lastFrame))
	g.lastFrame = now

	g.current.Step(g.next)
	if !model.HasChanged(g.current, g.next) {
		g.state = Converged
		return nil
	}

	g.current, g.next = g.next, g.current
	g.generation++
	return nil
}

// Result reports the current state of the game, or how it ended once the
// game has been released
func (g *Game) Result() Result {
	if g.final != nil {
		return *g.final
	}
	return Result{
		State:      g.state,
		Generation: g.generation,
		Population: g.current.CountLivingCells(),
	}
}

// Current returns the grid of the present generation, nil after Release
func (g *Game) Current() *model.Grid {
	return g.current
}

// Release hands both buffers back to the pool. Only Result remains usable
// afterwards; releasing twice is a no-op.
func (g *Game) Release() {
	if g.final != nil {
		return
	}
	res := g.Result()
	g.final = &res

	model.GridToPool(g.current, g.pool)
	model.GridToPool(g.next, g.pool)
	g.current, g.next = nil, nil
}
