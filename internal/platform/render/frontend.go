package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/skylands/internal/application/game"
	"github.com/younwookim/skylands/internal/application/replay"
	"github.com/younwookim/skylands/internal/application/state"
	"github.com/younwookim/skylands/internal/application/system"
	"github.com/younwookim/skylands/internal/domain/entity"
	"github.com/younwookim/skylands/internal/infrastructure/config"
)

var (
	colorSky       = color.RGBA{90, 150, 220, 255}
	colorHorizon   = color.RGBA{140, 190, 235, 255}
	colorFloor     = color.RGBA{70, 150, 80, 255}
	colorPlayer    = color.RGBA{230, 90, 60, 255}
	colorFlash     = color.RGBA{255, 255, 255, 220}
	colorShadow    = color.RGBA{0, 0, 0, 70}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
	colorModalBG   = color.RGBA{20, 20, 40, 230}
	colorModalEdge = color.RGBA{200, 200, 220, 255}
)

// RunSink receives the result of a finished run. The sqlite score
// store satisfies it; a nil sink disables persistence.
type RunSink interface {
	RecordRun(level, score, coins int) error
}

// modal is the active message box, if any.
type modal struct {
	title, body, button string
	onConfirm           func()
}

// Frontend implements ebiten.Game on top of the director. It also
// implements game.UI, so the director's counters and messages land
// here directly.
type Frontend struct {
	director *game.Director
	fx       *Particles
	tuning   *config.Tuning

	screenW int
	screenH int
	scale   float64
	camX    float64
	camZ    float64

	score, coins, lives, level int
	modal                      *modal

	recorder *replay.Recorder
	replayer *replay.Replayer
	sink     RunSink

	tuningPath string
	watcher    *config.Watcher
}

// Options configures the optional frontend features.
type Options struct {
	// Recorder captures every simulated input frame for later replay.
	Recorder *replay.Recorder
	// Replayer substitutes recorded input for the keyboard.
	Replayer *replay.Replayer
	// Sink persists finished runs.
	Sink RunSink
	// Watcher and TuningPath enable live tuning reload.
	Watcher    *config.Watcher
	TuningPath string
}

// New creates the frontend without a director: the director wants the
// UI at construction time and the UI is the frontend itself, so wiring
// completes in Attach.
func New(tuning *config.Tuning, opts Options) *Frontend {
	return &Frontend{
		tuning:     tuning,
		screenW:    tuning.Display.ScreenWidth,
		screenH:    tuning.Display.ScreenHeight,
		scale:      14,
		recorder:   opts.Recorder,
		replayer:   opts.Replayer,
		sink:       opts.Sink,
		watcher:    opts.Watcher,
		tuningPath: opts.TuningPath,
	}
}

// Attach binds the director and particle pool. Must be called before
// Run.
func (f *Frontend) Attach(director *game.Director, fx *Particles) {
	f.director = director
	f.fx = fx
}

// Run starts the director and enters the ebiten main loop. It blocks
// until the window closes.
func (f *Frontend) Run(title string) error {
	if err := f.director.Start(); err != nil {
		return err
	}
	ebiten.SetWindowSize(f.screenW, f.screenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(f.tuning.Display.Framerate)
	return ebiten.RunGame(f)
}

// SetCounters implements game.UI.
func (f *Frontend) SetCounters(score, coins, lives, level int) {
	f.score, f.coins, f.lives, f.level = score, coins, lives, level
}

// ShowMessage implements game.UI. The box stays up until the player
// confirms; Update stops sampling and simulating while it shows, so no
// input frames are recorded under a box and replays stay faithful.
func (f *Frontend) ShowMessage(title, body, button string, onConfirm func()) {
	f.modal = &modal{title: title, body: body, button: button, onConfirm: onConfirm}
	f.reportRun(title)
}

// reportRun persists the finished run when a terminal message comes in.
func (f *Frontend) reportRun(title string) {
	if f.sink == nil {
		return
	}
	if title != "Game Over" && title != "Game Complete!" {
		return
	}
	if err := f.sink.RecordRun(f.level, f.score, f.coins); err != nil {
		log.Warn("record run failed", "err", err)
	}
}

// Update implements ebiten.Game: one simulation tick per frame.
func (f *Frontend) Update() error {
	f.pollTuning()

	if f.modal != nil {
		if confirmPressed() {
			m := f.modal
			f.modal = nil
			if m.onConfirm != nil {
				m.onConfirm()
			}
		}
		return nil
	}

	var in system.InputState
	if f.replayer != nil {
		frame, ok := f.replayer.Next()
		if !ok {
			return ebiten.Termination
		}
		in = frame
	} else {
		in = readInput()
	}

	if f.recorder != nil {
		f.recorder.Record(in)
	}

	f.director.Tick(in)
	if f.fx != nil {
		f.fx.Update()
	}
	f.followPlayer()
	return nil
}

// pollTuning drains the watcher channel and hot-swaps constants.
func (f *Frontend) pollTuning() {
	if f.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-f.watcher.Events:
			if !ok {
				f.watcher = nil
				return
			}
			t, err := config.LoadTuning(f.tuningPath)
			if err != nil {
				log.Warn("tuning reload failed", "path", path, "err", err)
				continue
			}
			f.tuning = t
			f.director.SetTuning(t)
			log.Info("tuning reloaded", "path", path)
		default:
			return
		}
	}
}

// followPlayer eases the camera toward the player on the ground plane.
func (f *Frontend) followPlayer() {
	p := f.director.Player()
	if p == nil {
		return
	}
	f.camX += (p.Position.X() - f.camX) * 0.1
	f.camZ += (p.Position.Z() - f.camZ) * 0.1
}

// project maps a world position onto the screen. The view is a fixed
// oblique look-down: x maps to screen x, z to screen depth, y to lift.
func (f *Frontend) project(v mgl64.Vec3) (float64, float64) {
	sx := float64(f.screenW)/2 + (v.X()-f.camX)*f.scale
	sy := float64(f.screenH)/2 + (v.Z()-f.camZ)*f.scale*0.55 - v.Y()*f.scale*0.8
	return sx, sy
}

// Draw implements ebiten.Game.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	ebitenutil.DrawRect(screen, 0, float64(f.screenH)/3, float64(f.screenW), float64(f.screenH)/6, colorHorizon)

	lvl := f.director.Level()
	if lvl != nil {
		f.drawFloor(screen)
		f.drawDecorations(screen, lvl)
		f.drawPlatforms(screen, lvl)
		f.drawHazards(screen, lvl)
		f.drawInteractives(screen, lvl)
		f.drawCollectibles(screen, lvl)
	}
	f.drawPlayer(screen)
	f.drawParticles(screen)
	f.drawHUD(screen)

	if f.director.Phase() == state.PhasePaused && f.modal == nil {
		ebitenutil.DrawRect(screen, 0, 0, float64(f.screenW), float64(f.screenH), colorOverlay)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", f.screenW/2-50, f.screenH/2-20)
	}
	if f.modal != nil {
		f.drawModal(screen)
	}
}

// drawFloor shades the walkable disc around the camera.
func (f *Frontend) drawFloor(screen *ebiten.Image) {
	radius := f.tuning.World.Radius
	x0, y0 := f.project(mgl64.Vec3{f.camX - radius, 1, f.camZ - radius})
	x1, y1 := f.project(mgl64.Vec3{f.camX + radius, 1, f.camZ + radius})
	ebitenutil.DrawRect(screen, x0, y0, x1-x0, y1-y0, colorFloor)
}

func (f *Frontend) drawDecorations(screen *ebiten.Image, lvl *entity.Level) {
	for _, d := range lvl.Decorations {
		f.drawModel(screen, d.Model, d.Transform, 1.0)
	}
}

func (f *Frontend) drawPlatforms(screen *ebiten.Image, lvl *entity.Level) {
	for _, p := range lvl.Platforms {
		f.drawModel(screen, p.Model, p.Transform, 1.6)
	}
}

func (f *Frontend) drawHazards(screen *ebiten.Image, lvl *entity.Level) {
	for _, h := range lvl.Hazards {
		f.drawModel(screen, h.Model, h.Transform, 1.0)
	}
}

func (f *Frontend) drawInteractives(screen *ebiten.Image, lvl *entity.Level) {
	for _, it := range lvl.Interactives {
		f.drawModel(screen, it.Model, it.Transform, 1.2)
	}
}

func (f *Frontend) drawCollectibles(screen *ebiten.Image, lvl *entity.Level) {
	for _, c := range lvl.Collectibles {
		if !c.Visible {
			continue
		}
		f.drawModel(screen, c.Model, c.Transform, 0.8)
	}
}

// drawModel renders one object: a Style from the asset catalog, or a
// Placeholder when the catalog had no entry.
func (f *Frontend) drawModel(screen *ebiten.Image, model entity.Model, tr entity.Transform, base float64) {
	shape := entity.ShapeBox
	col := color.RGBA{255, 0, 255, 255}
	size := base

	switch m := model.(type) {
	case Style:
		shape = m.Shape
		col = m.Color
		size = base * m.Size
	case entity.Placeholder:
		shape = m.Shape
		col = m.Color
	}

	sx, sy := f.project(tr.Position)
	w := size * f.scale * math.Max(tr.Scale.X(), 0.2)
	h := size * f.scale * math.Max(tr.Scale.Y(), 0.2)

	// Ground shadow anchors objects in the oblique view.
	gx, gy := f.project(mgl64.Vec3{tr.Position.X(), 1, tr.Position.Z()})
	ebitenutil.DrawRect(screen, gx-w/2, gy-2, w, 4, colorShadow)

	switch shape {
	case entity.ShapeBox:
		ebitenutil.DrawRect(screen, sx-w/2, sy-h/2, w, h, col)
	case entity.ShapeSphere:
		f.drawDiamond(screen, sx, sy, w/2, col)
	case entity.ShapeCone:
		ebitenutil.DrawLine(screen, sx-w/2, sy+h/2, sx, sy-h/2, col)
		ebitenutil.DrawLine(screen, sx+w/2, sy+h/2, sx, sy-h/2, col)
		ebitenutil.DrawLine(screen, sx-w/2, sy+h/2, sx+w/2, sy+h/2, col)
		ebitenutil.DrawRect(screen, sx-w/4, sy-h/4, w/2, h/2, col)
	}
}

// drawDiamond approximates a sphere with stacked rects. Cheap and it
// reads clearly at this scale.
func (f *Frontend) drawDiamond(screen *ebiten.Image, cx, cy, r float64, col color.RGBA) {
	steps := 4
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		w := r * 2 * (1 - t*0.6)
		y := cy - r + t*2*r
		ebitenutil.DrawRect(screen, cx-w/2, y, w, 2*r/float64(steps)+1, col)
	}
}

func (f *Frontend) drawPlayer(screen *ebiten.Image) {
	p := f.director.Player()
	if p == nil {
		return
	}

	sx, sy := f.project(p.Position)
	gx, gy := f.project(mgl64.Vec3{p.Position.X(), 1, p.Position.Z()})
	w := f.scale * 0.9
	h := f.scale * 1.4

	ebitenutil.DrawRect(screen, gx-w/2, gy-2, w, 4, colorShadow)

	c := colorPlayer
	if p.Flashing(f.director.Ticks()) && f.director.Ticks()%8 < 4 {
		c = colorFlash
	}
	ebitenutil.DrawRect(screen, sx-w/2, sy-h, w, h, c)

	// Facing tick so turning is visible without a real model.
	fx := sx + math.Sin(p.Facing)*w
	fy := sy - h/2 + math.Cos(p.Facing)*w*0.55
	ebitenutil.DrawLine(screen, sx, sy-h/2, fx, fy, c)
}

func (f *Frontend) drawParticles(screen *ebiten.Image) {
	if f.fx == nil {
		return
	}
	for _, pt := range f.fx.alive {
		sx, sy := f.project(pt.pos)
		fade := float64(pt.life) / float64(pt.max)
		c := pt.col
		c.A = uint8(float64(c.A) * fade)
		ebitenutil.DrawRect(screen, sx-2, sy-2, 4, 4, c)
	}
}

func (f *Frontend) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("Score: %d   Coins: %d   Lives: %d   Level: %d", f.score, f.coins, f.lives, f.level)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	if f.replayer != nil {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("REPLAY %d/%d", f.replayer.CurrentFrame(), f.replayer.TotalFrames()),
			10, 26)
		return
	}

	controls := "WASD/Arrows: Move | Shift: Run | Space: Jump | P: Pause | R: Restart"
	ebitenutil.DebugPrintAt(screen, controls, 10, f.screenH-20)
}

func (f *Frontend) drawModal(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(f.screenW), float64(f.screenH), colorOverlay)

	boxW, boxH := 260.0, 110.0
	x := float64(f.screenW)/2 - boxW/2
	y := float64(f.screenH)/2 - boxH/2
	ebitenutil.DrawRect(screen, x-2, y-2, boxW+4, boxH+4, colorModalEdge)
	ebitenutil.DrawRect(screen, x, y, boxW, boxH, colorModalBG)

	ebitenutil.DebugPrintAt(screen, f.modal.title, int(x)+12, int(y)+12)
	ebitenutil.DebugPrintAt(screen, f.modal.body, int(x)+12, int(y)+36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[Enter] %s", f.modal.button), int(x)+12, int(y)+int(boxH)-24)
}

// Layout implements ebiten.Game.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.screenW, f.screenH
}
