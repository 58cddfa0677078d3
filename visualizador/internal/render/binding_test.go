package render

import (
	"testing"

	"LumenForge/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinderSkipsIdenticalUploads(t *testing.T) {
	dev := newFakeDevice()
	b := NewBinder(dev)
	prog := &fakeProgram{name: "p"}

	m := mgl32.Translate3D(1, 2, 3)
	b.Matrix(prog, UniformWorld, m)
	b.Matrix(prog, UniformWorld, m)
	assert.Equal(t, 1, dev.setCalls)
	assert.Equal(t, 1, b.Skipped)

	b.Matrix(prog, UniformWorld, mgl32.Ident4())
	assert.Equal(t, 2, dev.setCalls)
	assert.Equal(t, mgl32.Ident4(), dev.matrices[UniformWorld])

	// mesmo valor em outro programa não é coalescido
	b.Matrix(&fakeProgram{name: "q"}, UniformWorld, mgl32.Ident4())
	assert.Equal(t, 3, dev.setCalls)

	b.Forget(prog)
	b.Matrix(prog, UniformWorld, mgl32.Ident4())
	assert.Equal(t, 4, dev.setCalls)
	assert.Equal(t, 4, b.Uploads)
}

func TestBinderMaterial(t *testing.T) {
	sh := newTestShaders()
	frame := FrameResources{
		Textures: map[string]*scene.Texture{SlotShadowMap: {Name: "shadow"}},
		Samplers: map[string]*scene.Sampler{SlotShadowSampler: {Name: "cmp", Comparison: true}},
	}

	t.Run("envia parâmetros e texturas", func(t *testing.T) {
		dev := newFakeDevice()
		b := NewBinder(dev)
		prog := &fakeProgram{name: "lit"}

		mat := scene.NewMaterial("m", sh.litVS, sh.litPS)
		mat.ColorTint = mgl32.Vec4{1, 0, 0, 1}
		mat.UVScale = mgl32.Vec2{2, 2}
		mat.SetRoughness(0.25)
		mat.SetTexture("Albedo", &scene.Texture{Name: "checker"})
		mat.SetSampler("BasicSampler", &scene.Sampler{Name: "basic"})

		require.NoError(t, b.Material(prog, mat, frame))
		assert.Equal(t, []float32{1, 0, 0, 1}, dev.floats[UniformColorTint])
		assert.Equal(t, []float32{2, 2}, dev.floats[UniformUVScale])
		assert.Equal(t, []float32{0, 0}, dev.floats[UniformUVOffset])
		assert.Equal(t, []float32{0.25}, dev.floats[UniformRoughness])

		var slots []string
		for _, i := range dev.find(func(e event) bool { return e.op == "texture" }) {
			slots = append(slots, dev.events[i].name)
		}
		assert.Equal(t, []string{"Albedo", SlotShadowMap}, slots)

		// segundo bind idêntico não reenvia os parâmetros
		calls := dev.setCalls
		require.NoError(t, b.Material(prog, mat, frame))
		assert.Equal(t, calls, dev.setCalls)
	})

	t.Run("textura ausente", func(t *testing.T) {
		dev := newFakeDevice()
		b := NewBinder(dev)
		mat := scene.NewMaterial("m", sh.litVS, sh.litPS)
		mat.SetSampler("BasicSampler", &scene.Sampler{Name: "basic"})

		err := b.Material(&fakeProgram{}, mat, frame)
		assert.ErrorIs(t, err, scene.ErrMissingTexture)
		assert.Zero(t, dev.setCalls)
		assert.Empty(t, dev.events)
	})

	t.Run("sampler ausente", func(t *testing.T) {
		dev := newFakeDevice()
		b := NewBinder(dev)
		mat := scene.NewMaterial("m", sh.litVS, sh.litPS)
		mat.SetTexture("Albedo", &scene.Texture{Name: "checker"})

		err := b.Material(&fakeProgram{}, mat, frame)
		assert.ErrorIs(t, err, scene.ErrMissingSampler)
	})

	t.Run("mapa de sombra só vem do frame", func(t *testing.T) {
		dev := newFakeDevice()
		b := NewBinder(dev)
		mat := scene.NewMaterial("m", sh.litVS, sh.litPS)
		mat.SetTexture("Albedo", &scene.Texture{Name: "checker"})
		mat.SetSampler("BasicSampler", &scene.Sampler{Name: "basic"})

		err := b.Material(&fakeProgram{}, mat, FrameResources{})
		assert.ErrorIs(t, err, scene.ErrMissingTexture)
	})
}
