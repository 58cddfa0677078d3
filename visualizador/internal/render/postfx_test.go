package render

import (
	"testing"

	"LumenForge/shared/mathx"
	"LumenForge/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPostParamsEffective(t *testing.T) {
	tests := []struct {
		name string
		in   PostParams
		want PostParams
	}{
		{"raio negativo", PostParams{Enabled: true, BlurRadius: -3}, PostParams{Enabled: true}},
		{"raio acima do máximo", PostParams{Enabled: true, BlurRadius: 100}, PostParams{Enabled: true, BlurRadius: MaxBlurRadius}},
		{"força negativa", PostParams{Enabled: true, Aberration: true, AberrationStrength: -1}, PostParams{Enabled: true, Aberration: true}},
		{"desligado", PostParams{BlurRadius: 4, Aberration: true, AberrationStrength: 1}, PostParams{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Effective())
		})
	}
}

func TestPostParamsUniforms(t *testing.T) {
	p := PostParams{Enabled: true, BlurRadius: 3, Aberration: false, AberrationStrength: 0.5}
	r, a, texel := p.Uniforms(200, 100)
	assert.Equal(t, float32(3), r)
	assert.Equal(t, float32(0), a)
	assert.Equal(t, mgl32.Vec2{0.005, 0.01}, texel)
	assert.False(t, p.Identity())

	p.Aberration = true
	_, a, _ = p.Uniforms(200, 100)
	assert.Equal(t, float32(0.5), a)

	assert.True(t, PostParams{Enabled: true}.Identity())
	assert.True(t, PostParams{BlurRadius: 5}.Identity())
}

func TestPackLights(t *testing.T) {
	lights := []scene.Light{
		scene.NewDirectionalLight("d", mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0.5, 0.25}, 2),
		scene.NewPointLight("p", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1, 1}, 1, 10),
		scene.NewSpotLight("s", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 1, 1}, 1, 20, 0.2, 0.4),
	}

	block, count, dropped := PackLights(lights)
	assert.Equal(t, 3, count)
	assert.Zero(t, dropped)

	assert.Equal(t, []float32{0, 0, -1, 0}, block[0:4])
	assert.Equal(t, []float32{2, 1, 0.5, 0.25}, block[8:12])
	assert.Equal(t, float32(1), block[16])
	assert.Equal(t, []float32{10, 1, 2, 3}, block[20:24])
	assert.Equal(t, float32(2), block[32])
	assert.Equal(t, []float32{0.2, 0.4, 0, 0}, block[44:48])
	// registros não usados ficam zerados
	for _, v := range block[3*LightFloats:] {
		assert.Zero(t, v)
	}
}

func TestPackLightsDropsExtra(t *testing.T) {
	lights := make([]scene.Light, MaxLights+3)
	for i := range lights {
		lights[i] = scene.NewPointLight("p", mgl32.Vec3{float32(i), 0, 0}, mgl32.Vec3{1, 1, 1}, 1, 5)
	}
	block, count, dropped := PackLights(lights)
	assert.Equal(t, MaxLights, count)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, float32(MaxLights-1), block[(MaxLights-1)*LightFloats+5])
}

func TestLightMatrices(t *testing.T) {
	s := ShadowSettings{Extent: 20, Distance: 20, Near: 1, Far: 100}

	sc := scene.New()
	sc.Lights = []scene.Light{scene.NewDirectionalLight("sun", mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 1, 1}, 1)}
	view, proj := LightMatrices(sc, s)

	// a origem fica Distance à frente da luz
	p := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 20, p[2], 1e-4)

	clip := proj.Mul4x1(p)
	assert.InDelta(t, (20-1)/(100-1), clip[2], 1e-4)
	assert.InDelta(t, 0, clip[0], 1e-4)

	// sem direcional usa a direção padrão
	empty := scene.New()
	view, _ = LightMatrices(empty, s)
	want := mathx.LookToLH(DefaultShadowDirection.Mul(-20), DefaultShadowDirection, mathx.WorldUp)
	assert.True(t, mathx.ApproxEqualMat(want, view, 1e-5))
}
