package transform

import (
	"testing"

	"LumenForge/shared/mathx"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func TestNewIsIdentity(t *testing.T) {
	tr := New()
	assert.Equal(t, mgl32.Ident4(), tr.GetWorldMatrix())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.GetScale())
}

func TestOriginUnitScaleIsIdentity(t *testing.T) {
	tr := New()
	tr.SetPosition(0, 0, 0)
	tr.SetScale(1, 1, 1)
	tr.SetRotation(0, 0, 0)
	assert.True(t, tr.dirty)
	assert.True(t, mathx.ApproxEqualMat(mgl32.Ident4(), tr.GetWorldMatrix(), 1e-6))
	assert.False(t, tr.dirty)
}

func TestWorldMatrixIdempotentUntilMutation(t *testing.T) {
	tr := New()
	tr.SetPosition(1, 2, 3)
	tr.SetRotation(0.3, -1.1, 0.7)
	tr.SetScale(2, 0.5, 3)

	first := tr.GetWorldMatrix()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tr.GetWorldMatrix())
	}

	tr.MoveAbsolute(1, 0, 0)
	assert.NotEqual(t, first, tr.GetWorldMatrix())
}

func TestWorldMatrixComposition(t *testing.T) {
	tr := New()
	tr.SetScale(2, 2, 2)
	tr.SetRotation(0, math32.Pi/2, 0)
	tr.SetPosition(10, 0, 0)

	// (0,0,1) escalado → (0,0,2), yaw 90 → (2,0,0), transladado → (12,0,0)
	p := tr.GetWorldMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	assert.True(t, mathx.ApproxEqualVec(mgl32.Vec3{12, 0, 0}, p.Vec3(), eps), "got %v", p)
}

func TestMoveRelativeRoundTrip(t *testing.T) {
	rotations := []mgl32.Vec3{
		{0, 0, 0},
		{math32.Pi / 4, 0, 0},
		{0, math32.Pi / 3, 0},
		{0.2, -2.5, 1.3},
		{-math32.Pi / 2, math32.Pi, -0.4},
	}
	offsets := []mgl32.Vec3{
		{1, 0, 0},
		{0, 0, 5},
		{-3, 2.5, 0.75},
	}

	for _, rot := range rotations {
		for _, v := range offsets {
			tr := New()
			tr.SetPosition(4, -2, 9)
			tr.SetRotationV(rot)
			start := tr.GetPosition()

			tr.MoveRelativeV(v)
			tr.MoveRelativeV(v.Mul(-1))
			assert.True(t, mathx.ApproxEqualVec(start, tr.GetPosition(), eps),
				"rot=%v v=%v got %v", rot, v, tr.GetPosition())
		}
	}
}

func TestMoveRelativeUsesCurrentRotation(t *testing.T) {
	tr := New()
	_ = tr.GetWorldMatrix()
	tr.Rotate(0, math32.Pi/2, 0) // ainda sem recomputar a matriz
	tr.MoveRelative(0, 0, 1)
	assert.True(t, mathx.ApproxEqualVec(mgl32.Vec3{1, 0, 0}, tr.GetPosition(), eps), "got %v", tr.GetPosition())
}

func TestBasisVectors(t *testing.T) {
	tr := New()
	assert.True(t, mathx.ApproxEqualVec(mgl32.Vec3{0, 0, 1}, tr.GetForward(), eps))
	assert.True(t, mathx.ApproxEqualVec(mgl32.Vec3{0, 1, 0}, tr.GetUp(), eps))
	assert.True(t, mathx.ApproxEqualVec(mgl32.Vec3{1, 0, 0}, tr.GetRight(), eps))

	tr.SetRotation(0.4, 1.2, -0.3)
	f, u, r := tr.GetForward(), tr.GetUp(), tr.GetRight()
	assert.InDelta(t, 0, f.Dot(u), eps)
	assert.InDelta(t, 0, f.Dot(r), eps)
	assert.InDelta(t, 1, f.Len(), eps)
}

func TestRotateAndScaleAreAdditive(t *testing.T) {
	tr := New()
	tr.Rotate(0.1, 0.2, 0.3)
	tr.Rotate(0.1, 0.2, 0.3)
	assert.True(t, mathx.ApproxEqualVec(mgl32.Vec3{0.2, 0.4, 0.6}, tr.GetPitchYawRoll(), 1e-6))

	tr.Scale(1, 0, -0.5)
	assert.Equal(t, mgl32.Vec3{2, 1, 0.5}, tr.GetScale())
}

func TestWorldInverseTranspose(t *testing.T) {
	tr := New()
	tr.SetPosition(1, -3, 2)
	tr.SetRotation(0.5, 0.25, -0.75)
	tr.SetScale(1, 2, 4)

	world := tr.GetWorldMatrix()
	invT := tr.GetWorldInverseTransposeMatrix()
	require.NotEqual(t, mgl32.Mat4{}, invT)

	// (M^-1)^T * M^T == I
	assert.True(t, mathx.ApproxEqualMat(mgl32.Ident4(), invT.Mul4(world.Transpose()), eps))
}
