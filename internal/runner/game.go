package runner

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
)

// HUD text sizes and positions, in viewport units.
const (
	scoreX        = 10
	scoreY        = 30
	hudTextSize   = 20
	titleTextSize = 30
	lineSpacing   = 30
)

// Env wires a Game to its surroundings. Renderer, Clock and Viewport are
// required; Sound and Logger default to silence and a discarding logger.
type Env struct {
	Renderer Renderer
	Sound    Sound
	Clock    Scheduler
	Viewport Viewport
	Logger   *log.Logger
	Seed     int64 // RNG seed; 0 seeds from the current time
}

// Stats summarizes the current run.
type Stats struct {
	RunID   string
	Runs    int // Runs started in this Game, including the current one
	Ticks   int
	Score   int
	Spawned int
	Jumps   int
}

// Game owns the session state of the runner and advances it one frame per tick.
// A Game is not safe for concurrent use; frontends drive it from one goroutine.
type Game struct {
	cfg     config.RunnerConfig
	pending *config.RunnerConfig // Applied at the next reset
	env     Env
	logger  *log.Logger
	seed    int64

	player Player
	field  *ObstacleField
	score  int // Tick counter; the displayed score is score / divisor

	started   bool
	gameOver  bool
	halted    bool // Terminal screen drawn, no tick pending
	scheduled bool // A Tick has been requested and not yet run

	runID string
	runs  int
	jumps int
}

// New creates a Game showing nothing yet. Call ShowInstructions to draw the
// pre-game screen and Start to begin ticking.
func New(cfg config.RunnerConfig, env Env) *Game {
	if env.Sound == nil {
		env.Sound = silence{}
	}
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		env:    env,
		logger: logger,
		seed:   seed,
	}
	g.field = NewObstacleField(cfg.Obstacles, rand.New(rand.NewSource(seed)))
	g.reset()
	return g
}

// reset reinitializes all per-run state, applying any pending config.
func (g *Game) reset() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	_, h := g.env.Viewport.Size()
	g.player = newPlayer(g.cfg, h)
	g.field.Reset(g.cfg.Obstacles)
	g.score = 0
	g.gameOver = false
	g.halted = false
	g.jumps = 0
	g.runID = uuid.NewString()
}

// schedule requests the next Tick unless one is already pending.
func (g *Game) schedule() {
	if g.scheduled {
		return
	}
	g.scheduled = true
	g.env.Clock.RequestNextTick(g.Tick)
}

// Start leaves the instructions screen and begins ticking.
// Only the first call has an effect.
func (g *Game) Start() bool {
	if g.started {
		return false
	}
	g.started = true
	g.reset() // Place the player against the viewport as it is now
	g.runs++
	g.logger.Info("run started", "run", g.runID, "seed", g.seed)
	g.schedule()
	return true
}

// Tick is the per-frame handler. While the run is live it steps the
// simulation and requests the next frame; once the run is over it draws
// the game over screen and stops requesting frames until Restart.
func (g *Game) Tick() {
	g.scheduled = false
	if !g.started {
		return
	}

	if g.gameOver {
		g.drawGameOver()
		g.halted = true
		return
	}

	g.Step()
	g.schedule()
}

// Step advances the simulation by exactly one frame and renders it.
func (g *Game) Step() {
	w, h := g.env.Viewport.Size()
	r := g.env.Renderer
	r.Clear()

	// Player physics
	g.player.fall(h)
	r.FillRect(g.player.Rect(), g.player.Color)

	// Spawn
	g.field.tick(w, h)

	// Advance
	g.field.advance()
	for _, o := range g.field.obstacles {
		r.FillRect(o.Rect(), o.Color)
	}

	// Collision
	collided := false
	if !g.gameOver && g.field.collides(g.player.Rect()) {
		g.gameOver = true
		collided = true
		g.env.Sound.Play(CueCollision)
	}

	// Prune
	g.field.prune()

	// Score
	g.score++
	r.DrawText(fmt.Sprintf("Score: %d", g.displayScore()), scoreX, scoreY, core.TextStyle{Size: hudTextSize})

	if collided {
		g.logger.Info("run ended",
			"run", g.runID,
			"score", g.displayScore(),
			"ticks", g.score,
			"spawned", g.field.Spawned(),
			"jumps", g.jumps,
		)
	}
}

// RequestJump makes a grounded player jump. It is ignored before Start,
// after the run has ended and while the player is airborne.
func (g *Game) RequestJump() bool {
	if !g.started || g.gameOver {
		return false
	}
	if !g.player.jump() {
		return false
	}
	g.jumps++
	g.env.Sound.Play(CueJump)
	return true
}

// Restart begins a new run after a game over and resumes ticking.
// It does nothing while a run is live.
func (g *Game) Restart() bool {
	if !g.gameOver {
		return false
	}
	previous := g.runID
	g.reset()
	g.runs++
	g.logger.Debug("run restarted", "previous", previous, "run", g.runID)
	g.schedule()
	return true
}

// Primary performs the single player action: it starts the first run,
// jumps during a run and restarts after a game over.
func (g *Game) Primary() bool {
	switch {
	case !g.started:
		return g.Start()
	case g.gameOver:
		return g.Restart()
	default:
		return g.RequestJump()
	}
}

// Reconfigure replaces the tuning. Before Start it applies immediately;
// afterwards it takes effect at the next Restart.
func (g *Game) Reconfigure(cfg config.RunnerConfig) {
	if !g.started {
		g.cfg = cfg
		g.pending = nil
		g.reset()
		return
	}
	g.pending = &cfg
	g.logger.Debug("config staged for next run")
}

// ShowInstructions draws the pre-game screen.
func (g *Game) ShowInstructions() {
	w, h := g.env.Viewport.Size()
	r := g.env.Renderer
	hud := g.cfg.HUD
	title := core.TextStyle{Size: titleTextSize, Align: core.AlignCenter}
	body := core.TextStyle{Size: hudTextSize, Align: core.AlignCenter}

	r.Clear()
	r.DrawText(hud.Title, w/2, h/3, title)
	for i, line := range hud.Instructions {
		r.DrawText(line, w/2, h/2-lineSpacing+float64(i*lineSpacing), body)
	}
	r.DrawText(hud.StartPrompt, w/2, h/2+5*lineSpacing, body)
}

// drawGameOver draws the terminal screen with the final score.
func (g *Game) drawGameOver() {
	w, h := g.env.Viewport.Size()
	r := g.env.Renderer
	style := core.TextStyle{Size: titleTextSize, Align: core.AlignCenter}

	r.Clear()
	r.DrawText("Game Over", w/2, h/2, style)
	r.DrawText(fmt.Sprintf("Final Score: %d", g.displayScore()), w/2, h/2+40, style)
	r.DrawText(g.cfg.HUD.RestartPrompt, w/2, h/2+80, style)
}

// displayScore converts the tick counter to the human-facing score.
func (g *Game) displayScore() int {
	return g.score / g.cfg.Score.Divisor
}

// State returns the externally visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.displayScore(),
		Ticks:    g.score,
		Started:  g.started,
		GameOver: g.gameOver,
		Halted:   g.halted,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	return g.field.Obstacles()
}

// Stats returns counters for the current run.
func (g *Game) Stats() Stats {
	return Stats{
		RunID:   g.runID,
		Runs:    g.runs,
		Ticks:   g.score,
		Score:   g.displayScore(),
		Spawned: g.field.Spawned(),
		Jumps:   g.jumps,
	}
}

// Config returns the tuning of the current run.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}
