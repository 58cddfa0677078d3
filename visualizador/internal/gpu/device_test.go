package gpu

import (
	"testing"

	"LumenForge/shared/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestToMatrixKeepsColumnMajorOrder(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(4, 5, 6))
	r := toMatrix(m)

	assert.Equal(t, float32(4), r.M0)
	assert.Equal(t, float32(5), r.M5)
	assert.Equal(t, float32(6), r.M10)
	assert.Equal(t, float32(1), r.M12)
	assert.Equal(t, float32(2), r.M13)
	assert.Equal(t, float32(3), r.M14)
	assert.Equal(t, float32(1), r.M15)
}

func TestSamplerMapping(t *testing.T) {
	assert.Equal(t, rl.FilterPoint, toFilter(scene.FilterPoint))
	assert.Equal(t, rl.FilterBilinear, toFilter(scene.FilterBilinear))
	assert.Equal(t, rl.FilterTrilinear, toFilter(scene.FilterTrilinear))
	assert.Equal(t, rl.FilterAnisotropic16x, toFilter(scene.FilterAnisotropic))

	assert.Equal(t, rl.WrapRepeat, toWrap(scene.WrapRepeat))
	assert.Equal(t, rl.WrapClamp, toWrap(scene.WrapClamp))
	assert.Equal(t, rl.WrapMirrorRepeat, toWrap(scene.WrapMirror))
}

func TestCameraKeysCoverEveryKey(t *testing.T) {
	assert.Len(t, cameraKeys, 8)
}

func TestMapSlotsStayInsideMaterialLocations(t *testing.T) {
	for _, idx := range append(append([]int{}, mapSlots2D...), mapSlotsCube...) {
		assert.LessOrEqual(t, int(rl.ShaderLocMapAlbedo)+idx, int(rl.ShaderLocMapBrdf), "slot %d", idx)
	}
	assert.Contains(t, mapSlots2D, int(rl.ShaderLocMapBrdf-rl.ShaderLocMapAlbedo))
	assert.Len(t, mapSlots2D, 8)
}
