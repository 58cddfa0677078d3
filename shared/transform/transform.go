// Package transform guarda posição, rotação e escala de uma entidade e
// calcula sob demanda a matriz de mundo correspondente.
package transform

import (
	"LumenForge/shared/mathx"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform é exclusivo de uma entidade (ou câmera); não deve ser
// compartilhado. A matriz de mundo é recalculada só quando algum campo
// mudou desde a última consulta.
type Transform struct {
	position     mgl32.Vec3
	pitchYawRoll mgl32.Vec3
	scale        mgl32.Vec3

	world        mgl32.Mat4
	worldInvTran mgl32.Mat4
	dirty        bool
}

// New cria um transform na origem, sem rotação e com escala 1.
func New() *Transform {
	return &Transform{
		scale:        mgl32.Vec3{1, 1, 1},
		world:        mgl32.Ident4(),
		worldInvTran: mgl32.Ident4(),
	}
}

// --- Setters absolutos ---

func (t *Transform) SetPosition(x, y, z float32) {
	t.position = mgl32.Vec3{x, y, z}
	t.dirty = true
}

func (t *Transform) SetPositionV(p mgl32.Vec3) {
	t.position = p
	t.dirty = true
}

// SetRotation define pitch (X), yaw (Y) e roll (Z) em radianos.
func (t *Transform) SetRotation(pitch, yaw, roll float32) {
	t.pitchYawRoll = mgl32.Vec3{pitch, yaw, roll}
	t.dirty = true
}

func (t *Transform) SetRotationV(r mgl32.Vec3) {
	t.pitchYawRoll = r
	t.dirty = true
}

func (t *Transform) SetScale(x, y, z float32) {
	t.scale = mgl32.Vec3{x, y, z}
	t.dirty = true
}

func (t *Transform) SetScaleV(s mgl32.Vec3) {
	t.scale = s
	t.dirty = true
}

// --- Mutadores relativos ---

// MoveAbsolute desloca a posição no espaço do mundo.
func (t *Transform) MoveAbsolute(x, y, z float32) {
	t.position = t.position.Add(mgl32.Vec3{x, y, z})
	t.dirty = true
}

// MoveRelative desloca a posição no espaço local: o vetor é girado pela
// orientação atual antes de ser somado.
func (t *Transform) MoveRelative(x, y, z float32) {
	t.MoveRelativeV(mgl32.Vec3{x, y, z})
}

func (t *Transform) MoveRelativeV(offset mgl32.Vec3) {
	dir := t.orientation().Rotate(offset)
	t.position = t.position.Add(dir)
	t.dirty = true
}

// Rotate soma ângulos (radianos) ao pitch/yaw/roll atuais.
func (t *Transform) Rotate(pitch, yaw, roll float32) {
	t.pitchYawRoll = t.pitchYawRoll.Add(mgl32.Vec3{pitch, yaw, roll})
	t.dirty = true
}

// Scale soma (não multiplica) os valores à escala atual.
func (t *Transform) Scale(x, y, z float32) {
	t.scale = t.scale.Add(mgl32.Vec3{x, y, z})
	t.dirty = true
}

// --- Getters ---

func (t *Transform) GetPosition() mgl32.Vec3     { return t.position }
func (t *Transform) GetPitchYawRoll() mgl32.Vec3 { return t.pitchYawRoll }
func (t *Transform) GetScale() mgl32.Vec3        { return t.scale }

// GetWorldMatrix devolve a matriz escala → rotação → translação.
func (t *Transform) GetWorldMatrix() mgl32.Mat4 {
	t.update()
	return t.world
}

// GetWorldInverseTransposeMatrix devolve a inversa da transposta da matriz
// de mundo, usada para levar normais ao espaço do mundo.
func (t *Transform) GetWorldInverseTransposeMatrix() mgl32.Mat4 {
	t.update()
	return t.worldInvTran
}

// GetRight, GetUp e GetForward giram os eixos base pela orientação atual.
func (t *Transform) GetRight() mgl32.Vec3 {
	return t.orientation().Rotate(mgl32.Vec3{1, 0, 0})
}

func (t *Transform) GetUp() mgl32.Vec3 {
	return t.orientation().Rotate(mgl32.Vec3{0, 1, 0})
}

func (t *Transform) GetForward() mgl32.Vec3 {
	return t.orientation().Rotate(mgl32.Vec3{0, 0, 1})
}

func (t *Transform) orientation() mgl32.Quat {
	r := t.pitchYawRoll
	return mathx.RollPitchYaw(r[0], r[1], r[2])
}

func (t *Transform) update() {
	if !t.dirty {
		return
	}
	s := mgl32.Scale3D(t.scale[0], t.scale[1], t.scale[2])
	r := t.orientation().Mat4()
	tr := mgl32.Translate3D(t.position[0], t.position[1], t.position[2])

	t.world = tr.Mul4(r).Mul4(s)
	// Escala zero deixa a matriz singular; mantém a última inversa válida.
	if t.world.Det() != 0 {
		t.worldInvTran = t.world.Transpose().Inv()
	}
	t.dirty = false
}
