package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-console/game"
	"github.com/sheikhrachel/go-gol-console/model"
	"github.com/sheikhrachel/go-gol-console/prompt"
	"github.com/sheikhrachel/go-gol-console/terminal"
	"github.com/sheikhrachel/go-gol-console/utils"
)

const (
	defaultConfigFile = "config.json"
	restartAnswer     = "r"

	rowsPrompt    = "Enter the number of rows (%d-%d): "
	colsPrompt    = "Enter the number of columns (%d-%d): "
	restartPrompt = "Press <Enter> to exit or r to restart: "
)

// parseConfig loads the JSON file named by -config and applies the flags
// given on the command line on top of it
func parseConfig(args []string, out io.Writer) (utils.Config, error) {
	var (
		flagged = utils.DefaultConfig()
		fs      = flag.NewFlagSet("gol", flag.ContinueOnError)
		path    = fs.String("config", defaultConfigFile, "path to a JSON config file")
	)
	flagged.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return flagged, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	config, err := utils.LoadConfig(*path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Fprintf(out, "Using default configuration (%s not found)\n", *path)
		config = utils.DefaultConfig()
	}

	var (
		overrides = flag.NewFlagSet("overrides", flag.ContinueOnError)
		setErr    error
	)
	config.Bind(overrides)
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" && setErr == nil {
			setErr = overrides.Set(f.Name, f.Value.String())
		}
	})
	if setErr != nil {
		return config, errors.Wrap(setErr, "[parseConfig] failed to apply flags")
	}

	return config, config.Validate()
}

// session is the owning caller of the simulation: it asks for dimensions,
// runs one game at a time and decides whether to restart
type session struct {
	config    utils.Config
	input     *prompt.Prompter
	control   terminal.Control
	pool      *model.GridPool
	out       io.Writer
	newScreen func() (tcell.Screen, error)
}

func newSession(config utils.Config, in io.Reader, out io.Writer, control terminal.Control) *session {
	s := &session{
		config:    config,
		input:     prompt.New(in, out),
		control:   control,
		out:       out,
		newScreen: tcell.NewScreen,
	}
	if config.UseMemoryPool {
		s.pool = model.NewGridPool()
	}
	return s
}

// loop plays games until the user declines a restart
func (s *session) loop(ctx context.Context) error {
	for run := 0; ; run++ {
		restart, err := s.play(ctx, run)
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// play runs a single game and reports whether the user asked for another
func (s *session) play(ctx context.Context, run int) (bool, error) {
	rows, cols, err := s.dimensions()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err = s.control.ResizeFor(rows, cols); err != nil {
		fmt.Fprintln(s.out, "Error resizing terminal:", err)
	}

	var (
		rng   = newRNG(s.config.Seed, run)
		seed  = seedGrid(rows, cols, s.config, rng, s.pool)
		stats = utils.NewStats()
	)

	res, err := s.simulate(ctx, seed, stats)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(s.out, "\r\nShutting down gracefully...")
		fmt.Fprintln(s.out, stats.Summary(time.Now()))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	fmt.Fprintf(s.out, "\r\nRun %s at generation %d with %d living cells\r\n", res.State, res.Generation, res.Population)
	fmt.Fprintln(s.out, stats.Summary(time.Now()))

	answer, err := s.input.Line(restartPrompt)
	if err != nil {
		// closed input ends the program like a plain <Enter>
		return false, nil
	}
	return answer == restartAnswer, nil
}

// dimensions returns the configured grid size, asking for what is missing
func (s *session) dimensions() (rows, cols int, err error) {
	rows, cols = s.config.Rows, s.config.Cols
	if rows == 0 {
		s.clear()
		if rows, err = s.input.IntInRange(fmt.Sprintf(rowsPrompt, utils.MinDimension, utils.MaxDimension),
			utils.MinDimension, utils.MaxDimension); err != nil {
			return 0, 0, err
		}
	}
	if cols == 0 {
		s.clear()
		if cols, err = s.input.IntInRange(fmt.Sprintf(colsPrompt, utils.MinDimension, utils.MaxDimension),
			utils.MinDimension, utils.MaxDimension); err != nil {
			return 0, 0, err
		}
	}
	return rows, cols, nil
}

func (s *session) clear() {
	if err := s.control.Clear(); err != nil {
		fmt.Fprintln(s.out, "Error clearing terminal:", err)
	}
}

func (s *session) gameOptions(stats *utils.Stats) game.Options {
	return game.Options{
		MaxGenerations: s.config.MaxGenerations,
		FrameDelay:     s.config.FrameDelay,
		Pool:           s.pool,
		Stats:          stats,
	}
}

// simulate handles SIGINT and SIGTERM for the length of the run only, so an
// interrupt at the restart prompt still ends the process
func (s *session) simulate(ctx context.Context, seed *model.Grid, stats *utils.Stats) (game.Result, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.config.Display == utils.DisplayScreen {
		return s.simulateOnScreen(ctx, seed, stats)
	}
	return s.simulateOnConsole(ctx, seed, stats)
}

func (s *session) simulateOnConsole(ctx context.Context, seed *model.Grid, stats *utils.Stats) (game.Result, error) {
	g := game.New(seed, model.NewConsoleRenderer(s.out, s.control), s.gameOptions(stats))
	defer g.Release()

	return g.Run(ctx)
}

// simulateOnScreen owns the terminal for the length of the run. Quit keys are
// read next to the game and cancel it; the screen is always finalised before
// the last frame is repeated on the plain console.
func (s *session) simulateOnScreen(ctx context.Context, seed *model.Grid, stats *utils.Stats) (game.Result, error) {
	screen, err := s.newScreen()
	if err != nil {
		model.GridToPool(seed, s.pool)
		return game.Result{}, errors.Wrap(err, "[simulateOnScreen] failed to create screen")
	}
	renderer := model.NewScreenRenderer(screen)
	if err = renderer.Open(); err != nil {
		model.GridToPool(seed, s.pool)
		return game.Result{}, err
	}
	defer renderer.Close()

	g := game.New(seed, renderer, s.gameOptions(stats))
	defer g.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egCtx := errgroup.WithContext(ctx)

	var res game.Result
	eg.Go(func() error {
		return renderer.PollQuit(cancel)
	})
	eg.Go(func() error {
		defer renderer.Close()
		var runErr error
		res, runErr = g.Run(egCtx)
		return runErr
	})
	err = eg.Wait()

	if _, writeErr := io.WriteString(s.out, model.FormatFrame(g.Current(), res.Generation)); writeErr != nil && err == nil {
		err = errors.Wrapf(writeErr, "[simulateOnScreen] failed to repeat generation %d", res.Generation)
	}
	return res, err
}

// newRNG gives every run its own source; a fixed seed makes runs repeatable
func newRNG(seed int64, run int) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed+int64(run)), 0))
}

// seedGrid builds the first generation of a run
func seedGrid(rows, cols int, config utils.Config, rng *rand.Rand, pool *model.GridPool) *model.Grid {
	grid := model.GridFromPool(rows, cols, pool)
	midRow, midCol := rows/2-1, cols/2-1

	switch config.Pattern {
	case utils.PatternGlider:
		grid.AddGlider(midRow, midCol)
	case utils.PatternBlock:
		grid.AddBlock(midRow, midCol)
	case utils.PatternBlinker:
		grid.AddBlinker(midRow+1, midCol)
	default:
		grid.Randomize(config.LiveProbability, rng)
	}
	return grid
}
