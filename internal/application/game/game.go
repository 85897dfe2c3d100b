// Package game provides the orchestrator that owns the top-level game
// state machine and drives the per-tick simulation.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/skylands/internal/application/level"
	"github.com/younwookim/skylands/internal/application/state"
	"github.com/younwookim/skylands/internal/application/system"
	"github.com/younwookim/skylands/internal/domain/entity"
	"github.com/younwookim/skylands/internal/infrastructure/config"
)

// UI is the HUD/message sink the director reports to. The frontend
// implements it; the core never touches presentation.
type UI interface {
	SetCounters(score, coins, lives, level int)
	ShowMessage(title, body, button string, onConfirm func())
}

// FX receives visual-effect requests. Purely cosmetic; may be nil.
type FX interface {
	Spawn(kind string, pos mgl64.Vec3)
}

// Director owns the game state machine {Loading, Playing, Paused,
// Ended} and wires the player system to the level manager. All methods
// run on the single per-frame tick.
type Director struct {
	phase   state.Phase
	session *state.Session
	levels  *level.Manager
	player  *entity.Player
	sys     *system.PlayerSystem
	ui      UI
	fx      FX
}

// New creates a director in the Loading phase. Call Start to load the
// first level and begin playing.
func New(levels *level.Manager, tuning *config.Tuning, ui UI, fx FX) *Director {
	d := &Director{
		phase:   state.PhaseLoading,
		session: state.NewSession(entity.DefaultLives),
		levels:  levels,
		ui:      ui,
		fx:      fx,
	}
	d.sys = system.NewPlayerSystem(tuning, d)
	return d
}

// Start loads level 1 and enters the Playing phase.
func (d *Director) Start() error {
	if err := d.levels.Load(d.session.CurrentLevel); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	d.player = entity.NewPlayer(d.levels.Current().Spawn, d.session.Lives)
	d.phase = state.PhasePlaying
	d.pushCounters()
	return nil
}

// Phase returns the current top-level state.
func (d *Director) Phase() state.Phase {
	return d.phase
}

// Session returns the session counters.
func (d *Director) Session() *state.Session {
	return d.session
}

// PlayerStatus returns a read-only snapshot of the player, or the zero
// status before Start.
func (d *Director) PlayerStatus() entity.Status {
	if d.player == nil {
		return entity.Status{}
	}
	return d.player.Status()
}

// Level returns the active level for the renderer.
func (d *Director) Level() *entity.Level {
	return d.levels.Current()
}

// Player returns the live player entity for the renderer.
func (d *Director) Player() *entity.Player {
	return d.player
}

// Ticks returns the number of simulation ticks run so far.
func (d *Director) Ticks() uint64 {
	return d.sys.Tick()
}

// Tick runs one simulation step. Edge-triggered session commands are
// honored in any phase that allows them; the simulation itself runs
// only while playing and not paused.
func (d *Director) Tick(in system.InputState) {
	if in.PausePressed {
		d.TogglePause()
	}
	if in.RestartPressed && d.phase == state.PhasePlaying {
		d.RestartLevel()
	}
	if in.NextPressed && d.phase == state.PhasePlaying {
		d.AdvanceLevel()
	}

	if d.phase != state.PhasePlaying {
		return
	}

	d.sys.Update(d.player, d.levels.Current(), in)
	d.levels.Animate(d.sys.Tick())

	if d.player.Alive && d.levels.CheckComplete(d.player) {
		d.onLevelComplete()
	}

	d.pushCounters()
}

// TogglePause suspends or resumes the simulation tick. Rendering and
// input stay live so unpausing is immediate.
func (d *Director) TogglePause() {
	switch d.phase {
	case state.PhasePlaying:
		d.phase = state.PhasePaused
	case state.PhasePaused:
		d.phase = state.PhasePlaying
	}
}

// RestartLevel respawns the player and restores collectibles while
// preserving score and lives. With no lives left it falls through to a
// full restart.
func (d *Director) RestartLevel() {
	if d.session.Lives == 0 {
		d.RestartGame()
		return
	}
	d.levels.ResetCollectibles()
	d.player.Reset(d.levels.Current().Spawn)
	d.player.Lives = d.session.Lives
	d.phase = state.PhasePlaying
	d.pushCounters()
}

// RestartGame zeroes the session and reloads level 1.
func (d *Director) RestartGame() {
	d.session.Restart(entity.DefaultLives)
	if err := d.levels.Load(1); err != nil {
		d.fail("Could not restart the game.", err)
		return
	}
	d.player.Reset(d.levels.Current().Spawn)
	d.player.Lives = d.session.Lives
	d.phase = state.PhasePlaying
	d.pushCounters()
}

// AdvanceLevel loads the next level, keeping score, coins and lives.
// A load failure surfaces as an error message and leaves the current
// state untouched.
func (d *Director) AdvanceLevel() {
	next := d.session.CurrentLevel + 1
	if err := d.levels.Load(next); err != nil {
		d.fail(fmt.Sprintf("Could not load level %d.", next), err)
		return
	}
	d.session.Advance()
	d.player.Reset(d.levels.Current().Spawn)
	d.player.Lives = d.session.Lives
	d.phase = state.PhasePlaying
	d.pushCounters()
}

func (d *Director) onLevelComplete() {
	d.phase = state.PhaseEnded
	if d.levels.HasLevel(d.session.CurrentLevel + 1) {
		d.ui.ShowMessage(
			"Level Complete!",
			fmt.Sprintf("Score: %d", d.session.Score),
			"Next Level",
			d.AdvanceLevel,
		)
		return
	}
	d.ui.ShowMessage(
		"Game Complete!",
		fmt.Sprintf("Final score: %d", d.session.Score),
		"Play Again",
		d.RestartGame,
	)
}

func (d *Director) fail(body string, err error) {
	log.Error("level load failed", "err", err)
	d.ui.ShowMessage("Error", body, "OK", nil)
}

func (d *Director) pushCounters() {
	d.ui.SetCounters(d.session.Score, d.session.Coins, d.session.Lives, d.session.CurrentLevel)
}

// ScoreAdded implements system.Events.
func (d *Director) ScoreAdded(points int) {
	d.session.AddScore(points)
}

// CoinCollected implements system.Events.
func (d *Director) CoinCollected(entity.CollectibleType) {
	d.session.AddCoin()
}

// LifeGained implements system.Events.
func (d *Director) LifeGained() {
	d.session.AddLife()
}

// PlayerDamaged implements system.Events. The session mirror follows
// the player's authoritative count.
func (d *Director) PlayerDamaged(remaining int) {
	d.session.Lives = remaining
}

// PlayerDied implements system.Events: respawn within the level while
// lives remain, otherwise game over. Both resolve through the same
// message-and-restart branch.
func (d *Director) PlayerDied() {
	d.phase = state.PhaseEnded
	if d.session.Lives > 0 {
		d.ui.ShowMessage(
			"You Died",
			fmt.Sprintf("Lives left: %d", d.session.Lives),
			"Try Again",
			d.RestartLevel,
		)
		return
	}
	d.ui.ShowMessage(
		"Game Over",
		fmt.Sprintf("Score: %d", d.session.Score),
		"Restart",
		d.RestartGame,
	)
}

// EffectRequested implements system.Events.
func (d *Director) EffectRequested(kind string, pos mgl64.Vec3) {
	if d.fx != nil {
		d.fx.Spawn(kind, pos)
	}
}

// SetTuning swaps gameplay constants mid-session (live reload).
func (d *Director) SetTuning(t *config.Tuning) {
	d.sys.SetTuning(t)
}
