package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// InputReader reports which directions are held this tick.
type InputReader interface {
	Directions() (left, right, up bool)
}

// KeyboardReader reads arrow keys, WASD/space and the first standard gamepad.
type KeyboardReader struct{}

func (KeyboardReader) Directions() (left, right, up bool) {
	left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
			right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
			up = up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) ||
				ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		}
	}
	return left, right, up
}

// InputSystem copies the reader state into every Input component. A nil reader
// reads as nothing held.
type InputSystem struct {
	reader InputReader
}

func NewInputSystem(reader InputReader) *InputSystem {
	return &InputSystem{reader: reader}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var left, right, up bool
	if i.reader != nil {
		left, right, up = i.reader.Directions()
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Up = up
	})
}
