// Package mathx reúne as construções de matriz em convenção mão-esquerda
// (eixo +Z entrando na tela) usadas pela câmera e pelo passe de sombra.
//
// Todas as matrizes seguem a convenção do mgl32: coluna-maior, vetor-coluna
// (v' = M * v). A composição do mundo é portanto T * R * S.
package mathx

import (
	"LumenForge/shared/util"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp é o "up" fixo usado pelas matrizes de visão.
var WorldUp = mgl32.Vec3{0, 1, 0}

// RollPitchYaw monta o quaternion de orientação a partir de pitch (X),
// yaw (Y) e roll (Z). A ordem aplicada ao vetor é roll, depois pitch,
// depois yaw.
func RollPitchYaw(pitch, yaw, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	qz := mgl32.QuatRotate(roll, mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// LookToLH monta a matriz de visão a partir da posição do olho e da
// direção para onde ele olha (não um ponto alvo).
func LookToLH(eye, dir, up mgl32.Vec3) mgl32.Mat4 {
	z := dir.Normalize()
	x := up.Cross(z)
	if x.Len() < 1e-6 {
		// Direção paralela ao up: escolhe outro eixo de referência
		x = mgl32.Vec3{0, 0, 1}.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl32.Mat4FromRows(
		mgl32.Vec4{x[0], x[1], x[2], -x.Dot(eye)},
		mgl32.Vec4{y[0], y[1], y[2], -y.Dot(eye)},
		mgl32.Vec4{z[0], z[1], z[2], -z.Dot(eye)},
		mgl32.Vec4{0, 0, 0, 1},
	)
}

// PerspectiveFovLH monta a projeção perspectiva com profundidade em [0, 1].
// fovY em radianos.
func PerspectiveFovLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	h := 1 / math32.Tan(fovY*0.5)
	w := h / aspect
	r := far / (far - near)

	return mgl32.Mat4FromRows(
		mgl32.Vec4{w, 0, 0, 0},
		mgl32.Vec4{0, h, 0, 0},
		mgl32.Vec4{0, 0, r, -r * near},
		mgl32.Vec4{0, 0, 1, 0},
	)
}

// OrthographicLH monta a projeção ortográfica centrada de largura w e
// altura h.
func OrthographicLH(w, h, near, far float32) mgl32.Mat4 {
	r := 1 / (far - near)

	return mgl32.Mat4FromRows(
		mgl32.Vec4{2 / w, 0, 0, 0},
		mgl32.Vec4{0, 2 / h, 0, 0},
		mgl32.Vec4{0, 0, r, -r * near},
		mgl32.Vec4{0, 0, 0, 1},
	)
}

// ApproxEqualMat compara duas matrizes elemento a elemento.
func ApproxEqualMat(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if !util.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// ApproxEqualVec compara dois vetores elemento a elemento.
func ApproxEqualVec(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if !util.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
