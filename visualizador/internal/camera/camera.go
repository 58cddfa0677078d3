package camera

import (
	"LumenForge/shared/mathx"
	"LumenForge/shared/transform"
	"LumenForge/shared/util"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Planos de corte fixos da projeção.
const (
	NearClip float32 = 0.01
	FarClip  float32 = 1000.0
)

// MaxPitch é o limite de inclinação vertical (±90 graus) para a câmera não
// virar de ponta cabeça.
const MaxPitch = math32.Pi / 2

// Key identifica as teclas que a câmera consulta.
type Key int

const (
	KeyForward Key = iota // W
	KeyBack               // S
	KeyLeft               // A
	KeyRight              // D
	KeyUp                 // Espaço
	KeyDown               // X
	KeyFast               // Shift
	KeySlow               // Ctrl
)

// Input é a fonte de entrada consultada uma vez por tick.
type Input interface {
	IsKeyDown(k Key) bool
	IsMouseLeftDown() bool
	MouseDelta() mgl32.Vec2
}

// Camera é uma câmera "fly": WASD move relativo à orientação, arrastar com
// o botão esquerdo gira.
type Camera struct {
	Name      string
	Transform *transform.Transform

	view       mgl32.Mat4
	projection mgl32.Mat4

	fov         float32 // radianos
	aspectRatio float32
	MoveSpeed   float32
	LookSpeed   float32
}

// New cria a câmera na posição inicial e já calcula visão e projeção.
func New(name string, pos mgl32.Vec3, aspect, fov, moveSpeed, lookSpeed float32) *Camera {
	c := &Camera{
		Name:      name,
		Transform: transform.New(),
		fov:       fov,
		MoveSpeed: moveSpeed,
		LookSpeed: lookSpeed,
	}
	c.Transform.SetPositionV(pos)

	c.UpdateViewMatrix()
	c.UpdateProjectionMatrix(aspect)
	return c
}

// UpdateViewMatrix reconstrói a visão a partir da posição e do forward.
func (c *Camera) UpdateViewMatrix() {
	c.view = mathx.LookToLH(c.Transform.GetPosition(), c.Transform.GetForward(), mathx.WorldUp)
}

// UpdateProjectionMatrix reconstrói só a projeção; chamado no resize.
func (c *Camera) UpdateProjectionMatrix(aspect float32) {
	if aspect <= 0 {
		aspect = 1
	}
	c.aspectRatio = aspect
	c.projection = mathx.PerspectiveFovLH(c.fov, aspect, NearClip, FarClip)
}

// Update processa a entrada do frame e atualiza a matriz de visão.
func (c *Camera) Update(dt float32, in Input) {
	speed := c.MoveSpeed * dt

	if in.IsKeyDown(KeyFast) {
		speed *= 2
	}
	if in.IsKeyDown(KeySlow) {
		speed *= 0.5
	}

	t := c.Transform
	if in.IsKeyDown(KeyForward) {
		t.MoveRelative(0, 0, speed)
	}
	if in.IsKeyDown(KeyBack) {
		t.MoveRelative(0, 0, -speed)
	}
	if in.IsKeyDown(KeyLeft) {
		t.MoveRelative(-speed, 0, 0)
	}
	if in.IsKeyDown(KeyRight) {
		t.MoveRelative(speed, 0, 0)
	}
	if in.IsKeyDown(KeyUp) {
		t.MoveRelative(0, speed, 0)
	}
	if in.IsKeyDown(KeyDown) {
		t.MoveRelative(0, -speed, 0)
	}

	if in.IsMouseLeftDown() {
		delta := in.MouseDelta()
		t.Rotate(delta.Y()*c.LookSpeed, delta.X()*c.LookSpeed, 0)

		// Clamp no pitch
		rot := t.GetPitchYawRoll()
		rot[0] = util.Clamp(rot[0], -MaxPitch, MaxPitch)
		t.SetRotationV(rot)
	}

	c.UpdateViewMatrix()
}

func (c *Camera) GetView() mgl32.Mat4       { return c.view }
func (c *Camera) GetProjection() mgl32.Mat4 { return c.projection }
func (c *Camera) GetPosition() mgl32.Vec3   { return c.Transform.GetPosition() }
func (c *Camera) GetFov() float32           { return c.fov }
func (c *Camera) GetAspect() float32        { return c.aspectRatio }

// SetFov altera o campo de visão (radianos) e refaz a projeção.
func (c *Camera) SetFov(fov float32) {
	c.fov = util.Clamp(fov, 0.1, math32.Pi-0.1)
	c.UpdateProjectionMatrix(c.aspectRatio)
}
