package game

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/raymaze/internal/entity"
	"github.com/samdwyer/raymaze/internal/gamedata"
	"github.com/samdwyer/raymaze/internal/raycast"
	"github.com/samdwyer/raymaze/internal/telemetry"
	"github.com/samdwyer/raymaze/internal/ui"
	"github.com/samdwyer/raymaze/internal/world"
)

// Surface is the drawing target for one frame, in virtual pixels.
type Surface interface {
	Fill(c colorful.Color)
	FillRect(x, y, w, h int, c colorful.Color)
	DrawText(text string, cx, cy int, c colorful.Color)
	Present()
}

// InputSource reports the keys held this frame and whether to quit.
type InputSource interface {
	Poll() (entity.Input, bool)
}

// Clock paces the loop.
type Clock interface {
	Tick()
}

// Game holds the entire game state.
type Game struct {
	cfg       Config
	screen    *ui.Screen
	surface   Surface
	input     InputSource
	clock     Clock
	grid      *world.Grid
	player    *entity.Player
	projector *raycast.Projector
	colors    gamedata.Colors
	strips    []raycast.Strip
	tracer    trace.Tracer
	state     State
	running   bool
	frames    int
	started   time.Time
}

// New creates a new game instance on the terminal, using the embedded maze
// and palette. A malformed maze is a fatal error.
func New(ctx context.Context, cfg Config) (*Game, error) {
	grid, colors, err := loadData(ctx, cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	keyboard := ui.NewKeyboard(screen, ui.DefaultHoldWindow)
	g, err := newGame(cfg, grid, colors, ui.NewRenderer(screen, cfg.ScreenWidth, cfg.ScreenHeight),
		keyboard, NewFrameClock(cfg.FPS))
	if err != nil {
		screen.Close()
		return nil, err
	}
	g.screen = screen
	keyboard.Start()
	return g, nil
}

// loadData reads and validates the embedded maze and palette.
func loadData(ctx context.Context, cfg Config) (*world.Grid, gamedata.Colors, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.load")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, gamedata.Colors{}, fmt.Errorf("invalid config: %w", err)
	}

	rows, err := gamedata.LoadMaze()
	if err != nil {
		span.RecordError(err)
		return nil, gamedata.Colors{}, err
	}

	grid, err := world.Parse(rows, cfg.TileSize)
	if err != nil {
		span.RecordError(err)
		return nil, gamedata.Colors{}, fmt.Errorf("malformed maze %s: %w", gamedata.MazeFile, err)
	}

	if err := checkStart(cfg, grid); err != nil {
		span.RecordError(err)
		return nil, gamedata.Colors{}, err
	}

	colors, err := gamedata.LoadPalette()
	if err != nil {
		span.RecordError(err)
		return nil, gamedata.Colors{}, err
	}

	span.SetAttributes(
		attribute.Int("maze.width", grid.Width),
		attribute.Int("maze.height", grid.Height),
	)
	return grid, colors, nil
}

// checkStart reports whether the configured start lies on a walkable tile.
func checkStart(cfg Config, grid *world.Grid) error {
	tile, err := grid.TileAt(cfg.StartX, cfg.StartY)
	if err != nil {
		return fmt.Errorf("player start: %w", err)
	}
	if !tile.IsPassable() {
		return fmt.Errorf("player start (%.0f, %.0f) is inside a %s tile", cfg.StartX, cfg.StartY, tile)
	}
	return nil
}

// newGame wires a game to its collaborators. The start position must lie
// on a walkable tile.
func newGame(cfg Config, grid *world.Grid, colors gamedata.Colors, surface Surface, input InputSource, clock Clock) (*Game, error) {
	if err := checkStart(cfg, grid); err != nil {
		if c, ok := clock.(*FrameClock); ok {
			c.Stop()
		}
		return nil, err
	}

	caster := raycast.NewCaster(grid, cfg.MaxDepth)
	return &Game{
		cfg:       cfg,
		surface:   surface,
		input:     input,
		clock:     clock,
		grid:      grid,
		player:    entity.NewPlayer(cfg.StartX, cfg.StartY, cfg.StartAngle),
		projector: raycast.NewProjector(caster, cfg.Projection()),
		colors:    colors,
		strips:    make([]raycast.Strip, 0, cfg.NumRays),
		tracer:    telemetry.Tracer("game"),
		state:     StatePlaying,
		running:   true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	// Initialize game (traced)
	ctx, initSpan := g.tracer.Start(ctx, "game.init")
	col, row := g.player.Cell(g.grid)
	exitCol, exitRow := g.grid.Exit()
	initSpan.SetAttributes(
		attribute.Int("maze.width", g.grid.Width),
		attribute.Int("maze.height", g.grid.Height),
		attribute.Int("player.start_col", col),
		attribute.Int("player.start_row", row),
		attribute.Int("maze.exit_col", exitCol),
		attribute.Int("maze.exit_row", exitRow),
	)
	initSpan.End()

	ctx, runSpan := g.tracer.Start(ctx, "game.run")
	defer func() {
		runSpan.SetAttributes(
			attribute.Int("game.frames", g.frames),
			attribute.String("game.state", g.state.String()),
		)
		runSpan.End()
	}()

	g.started = time.Now()

	// Main game loop
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
			continue
		default:
		}

		if err := g.step(ctx); err != nil {
			runSpan.RecordError(err)
			return err
		}
	}
	return nil
}

// step runs one frame: input, update, render, present, pace.
func (g *Game) step(ctx context.Context) error {
	in, quit := g.input.Poll()
	if quit {
		g.running = false
		return nil
	}

	g.surface.Fill(g.colors.Background)

	switch g.state {
	case StatePlaying:
		if err := g.player.Update(in, g.grid, g.cfg.Speed, g.cfg.TurnRate); err != nil {
			return fmt.Errorf("frame %d: %w", g.frames, err)
		}
		g.drawScene()
		g.checkWin(ctx)

	case StateWon:
		g.surface.DrawText(g.colors.WinMessage, g.cfg.ScreenWidth/2, g.cfg.ScreenHeight/2, g.colors.WinText)
	}

	g.surface.Present()
	g.clock.Tick()
	g.frames++
	return nil
}

// drawScene projects the player's view and draws one strip per ray.
func (g *Game) drawScene() {
	g.strips = g.projector.ProjectInto(g.strips, g.player)
	for _, s := range g.strips {
		g.surface.FillRect(s.X, s.Y, s.Width, s.Height, s.Color)
	}
}

// checkWin switches to StateWon when the player stands on the exit.
func (g *Game) checkWin(ctx context.Context) {
	col, row := g.player.Cell(g.grid)
	if !g.grid.IsExit(col, row) {
		return
	}

	g.state = StateWon

	_, span := g.tracer.Start(ctx, "game.won")
	span.SetAttributes(
		attribute.Int("game.frames", g.frames),
		attribute.Int64("game.elapsed_ms", time.Since(g.started).Milliseconds()),
	)
	span.End()
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Player returns the player state owned by the loop.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Close cleans up game resources.
func (g *Game) Close() {
	if k, ok := g.input.(*ui.Keyboard); ok {
		k.Stop()
	}
	if c, ok := g.clock.(*FrameClock); ok {
		c.Stop()
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
