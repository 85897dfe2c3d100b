package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skylands/internal/application/system"
)

// readInput samples the keyboard into a simulation input frame.
// Movement and run are level-triggered; jump is level-triggered too
// (the player system gates re-jump on landing), and the meta keys are
// edge-triggered so one press means one action.
func readInput() system.InputState {
	return system.InputState{
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Forward:  ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Run:      ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Jump:     ebiten.IsKeyPressed(ebiten.KeySpace),

		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyR),
		NextPressed:    inpututil.IsKeyJustPressed(ebiten.KeyN),
		PausePressed:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// confirmPressed reports the modal confirm key going down this frame.
func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
