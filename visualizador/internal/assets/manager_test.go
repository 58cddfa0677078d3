package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"LumenForge/shared/config"
	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/builtin"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
ambient: [0.1, 0.1, 0.15]
shadowLight: sun
shaders:
  - {name: litVS, stage: vertex, path: "builtin:lit_vs"}
  - {name: litPS, stage: pixel, path: "builtin:lit_ps"}
samplers:
  - {name: basic, filter: trilinear, wrap: repeat}
textures:
  - {name: checker, path: "builtin:checker"}
meshes:
  - {name: cube, path: "builtin:cube"}
  - {name: torus, path: "builtin:torus"}
materials:
  - name: stone
    vertexShader: litVS
    pixelShader: litPS
    tint: [1, 0.5, 0.5, 1]
    uvScale: [2, 2]
    roughness: 3
    textures: {Albedo: checker}
    samplers: {BasicSampler: basic}
entities:
  - {name: box, mesh: cube, material: stone, position: [1, 2, 3], rotation: [0, 90, 0]}
  - {name: ring, mesh: torus, material: stone, scale: [2, 2, 2]}
lights:
  - {name: fill, type: point, position: [0, 3, 0], color: [1, 1, 1], intensity: 1, range: 10}
  - {name: sun, type: directional, direction: [0, -1, 1], color: [1, 1, 0.9], intensity: 1}
  - {name: lamp, type: spot, position: [0, 5, 0], direction: [0, -1, 0], color: [1, 1, 1], intensity: 2, range: 20, spotInner: 20, spotOuter: 30}
sky:
  faces: ["builtin:sky_side", "builtin:sky_side", "builtin:sky_up", "builtin:sky_down", "builtin:sky_side", "builtin:sky_side"]
cameras:
  - {name: main, position: [0, 0, -10], fov: 60}
  - {name: top, position: [0, 10, 0], rotation: [90, 0, 0], moveSpeed: 2}
`

func loadString(t *testing.T, src string) (*Manager, *Loaded, error) {
	t.Helper()
	desc, err := scene.ParseDescription([]byte(src))
	require.NoError(t, err)
	m := NewManager(HeadlessLoader{}, t.TempDir())
	loaded, err := m.Load(desc)
	return m, loaded, err
}

func TestLoadScene(t *testing.T) {
	m, loaded, err := loadString(t, testScene)
	require.NoError(t, err)
	sc := loaded.Scene

	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.15}, sc.Ambient)
	require.Len(t, sc.Entities, 2)
	require.Len(t, sc.Lights, 3)
	assert.Len(t, sc.Meshes, 2)
	assert.Len(t, sc.Materials, 1)
	assert.Equal(t, 1, sc.ShadowLight)

	box, ok := sc.EntityByName("box")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, box.Transform.GetPosition())
	assert.InDelta(t, mgl32.DegToRad(90), box.Transform.GetPitchYawRoll()[1], 1e-6)
	assert.Same(t, box.Material, sc.Entities[1].Material)

	ring, _ := sc.EntityByName("ring")
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, ring.Transform.GetScale())

	mat, ok := m.Material("stone")
	require.True(t, ok)
	assert.Equal(t, float32(1), mat.Roughness())
	assert.Equal(t, mgl32.Vec2{2, 2}, mat.UVScale)
	smp, ok := mat.Sampler("BasicSampler")
	require.True(t, ok)
	assert.Equal(t, scene.FilterTrilinear, smp.Filter)

	lamp := sc.Lights[2]
	assert.Equal(t, scene.LightSpot, lamp.Type)
	assert.InDelta(t, mgl32.DegToRad(20), lamp.SpotInner, 1e-6)
	assert.InDelta(t, mgl32.DegToRad(30), lamp.SpotOuter, 1e-6)

	require.NotNil(t, sc.Sky)
	assert.True(t, sc.Sky.Cubemap.Cube)
	assert.Equal(t, builtin.MeshSkybox, sc.Sky.Mesh.Name)
	assert.Equal(t, builtin.ShaderSkyPS, sc.Sky.PixelShader.Name)

	// shaders internos do frame vêm dos builtins quando não nomeados
	assert.Equal(t, builtin.ShaderShadowVS, loaded.Pipeline.ShadowVertex.Name)
	assert.Equal(t, scene.StagePixel, loaded.Pipeline.PostPixel.Stage)
	assert.Contains(t, loaded.Pipeline.PostPixel.Textures, "SceneTexture")

	require.Len(t, loaded.Cameras, 2)
	assert.InDelta(t, mgl32.DegToRad(60), loaded.Cameras[0].Fov, 1e-6)
	assert.InDelta(t, mgl32.DegToRad(90), loaded.Cameras[1].Rotation[0], 1e-6)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		scene  string
		target error
	}{
		{
			name: "textura obrigatória ausente",
			scene: `
shaders:
  - {name: vs, stage: vertex, path: "builtin:lit_vs"}
  - {name: ps, stage: pixel, path: "builtin:lit_ps"}
samplers:
  - {name: basic}
materials:
  - {name: m, vertexShader: vs, pixelShader: ps, samplers: {BasicSampler: basic}}
`,
			target: scene.ErrMissingTexture,
		},
		{
			name: "estágio trocado",
			scene: `
shaders:
  - {name: vs, stage: vertex, path: "builtin:lit_vs"}
materials:
  - {name: m, vertexShader: vs, pixelShader: vs}
`,
			target: scene.ErrWrongStage,
		},
		{
			name: "malha builtin desconhecida",
			scene: `
meshes:
  - {name: pot, path: "builtin:teapot"}
`,
			target: ErrUnknownBuiltin,
		},
		{
			name: "arquivo ausente",
			scene: `
textures:
  - {name: t, path: "nao/existe.png"}
`,
			target: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadString(t, tt.scene)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "erro inesperado: %v", err)
		})
	}
}

func TestLoadReferenceErrors(t *testing.T) {
	cases := map[string]string{
		"entidade sem malha": `
entities:
  - {name: e, mesh: nada, material: m}
`,
		"luz de sombra pontual": `
shadowLight: p
lights:
  - {name: p, type: point}
`,
		"luz de sombra inexistente": `
shadowLight: sol
`,
		"céu com face vazia": `
sky:
  faces: ["builtin:sky_up", "", "", "", "", ""]
`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := loadString(t, src)
			assert.Error(t, err)
		})
	}
}

func TestLoadFileResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders", "flat.vs"), []byte("#version 330\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(`
shaders:
  - {name: flat, stage: vertex, path: shaders/flat.vs}
`), 0o644))

	m, _, err := LoadFile(HeadlessLoader{}, filepath.Join(dir, "scene.yaml"))
	require.NoError(t, err)
	sh, ok := m.Shader("flat")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "shaders", "flat.vs"), sh.Path)
	assert.Contains(t, sh.Source, "void main")
}

func TestNewCameras(t *testing.T) {
	cfg := config.DefaultConfig().Camera

	cams := NewCameras(nil, 16.0/9.0, cfg)
	require.Len(t, cams, 1)
	assert.Equal(t, "main", cams[0].Name)
	assert.InDelta(t, mgl32.DegToRad(cfg.FOV), cams[0].GetFov(), 1e-6)
	assert.Equal(t, cfg.MoveSpeed, cams[0].MoveSpeed)

	cams = NewCameras([]CameraSpec{{Name: "c", MoveSpeed: 2, Rotation: mgl32.Vec3{0, 1, 0}}}, 1, cfg)
	assert.Equal(t, float32(2), cams[0].MoveSpeed)
	assert.Equal(t, cfg.LookSpeed, cams[0].LookSpeed)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cams[0].Transform.GetPitchYawRoll())
}

func TestDemoSceneLoads(t *testing.T) {
	path := filepath.Join("..", "..", "..", "assets", "scenes", "demo.yaml")
	_, loaded, err := LoadFile(HeadlessLoader{}, path)
	require.NoError(t, err)
	assert.Len(t, loaded.Scene.Entities, 7)
	assert.Len(t, loaded.Scene.Lights, 5)
	assert.NotNil(t, loaded.Scene.Sky)
	assert.GreaterOrEqual(t, len(loaded.Cameras), 2)
}
