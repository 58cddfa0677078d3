package render

import (
	"LumenForge/shared/mathx"
	"LumenForge/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// ShadowSettings descreve o mapa de sombra e a projeção ortográfica da
// luz.
type ShadowSettings struct {
	Enabled  bool
	MapSize  int
	Extent   float32
	Distance float32
	Near     float32
	Far      float32
}

// DefaultShadowDirection é usada quando a cena não tem luz direcional.
var DefaultShadowDirection = mgl32.Vec3{0, -1, 1}.Normalize()

var shadowCleared = mgl32.Vec4{1, 1, 1, 1} // profundidade máxima = iluminado

// LightMatrices monta a visão (olhando na direção da luz, recuada
// Distance ao longo dela) e a projeção ortográfica do passe de sombra.
func LightMatrices(sc *scene.Scene, s ShadowSettings) (view, proj mgl32.Mat4) {
	dir := DefaultShadowDirection
	if l, ok := sc.ShadowCaster(); ok && l.Direction.Len() > 1e-6 {
		dir = l.Direction.Normalize()
	}

	eye := dir.Mul(-s.Distance)
	view = mathx.LookToLH(eye, dir, mathx.WorldUp)
	proj = mathx.OrthographicLH(s.Extent, s.Extent, s.Near, s.Far)
	return view, proj
}
