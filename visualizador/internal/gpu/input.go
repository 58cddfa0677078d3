package gpu

import (
	"LumenForge/visualizador/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var cameraKeys = map[camera.Key]int32{
	camera.KeyForward: rl.KeyW,
	camera.KeyBack:    rl.KeyS,
	camera.KeyLeft:    rl.KeyA,
	camera.KeyRight:   rl.KeyD,
	camera.KeyUp:      rl.KeySpace,
	camera.KeyDown:    rl.KeyX,
	camera.KeyFast:    rl.KeyLeftShift,
	camera.KeySlow:    rl.KeyLeftControl,
}

// Input lê teclado e mouse do raylib para a câmera.
type Input struct{}

func (Input) IsKeyDown(k camera.Key) bool {
	key, ok := cameraKeys[k]
	return ok && rl.IsKeyDown(key)
}

func (Input) IsMouseLeftDown() bool {
	return rl.IsMouseButtonDown(rl.MouseButtonLeft)
}

func (Input) MouseDelta() mgl32.Vec2 {
	d := rl.GetMouseDelta()
	return mgl32.Vec2{d.X, d.Y}
}
