package assets

import (
	"fmt"
	"path/filepath"

	"LumenForge/shared/config"
	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/builtin"
	"LumenForge/visualizador/internal/camera"
	"LumenForge/visualizador/internal/render"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// CameraSpec é uma câmera da descrição já convertida para radianos.
type CameraSpec struct {
	Name      string
	Position  mgl32.Vec3
	Rotation  mgl32.Vec3
	Fov       float32
	MoveSpeed float32
	LookSpeed float32
}

// Loaded é o resultado da carga: a cena pronta, as câmeras e os shaders
// internos do frame.
type Loaded struct {
	Scene    *scene.Scene
	Cameras  []CameraSpec
	Pipeline render.PipelineShaders
}

// Manager monta a cena a partir da descrição, guardando cada recurso por
// nome para consultas (HUD, recarga de shaders).
type Manager struct {
	loader  Loader
	baseDir string

	shaders   map[string]*scene.Shader
	samplers  map[string]*scene.Sampler
	textures  map[string]*scene.Texture
	meshes    map[string]*scene.Mesh
	materials map[string]*scene.Material
}

// NewManager cria o gerenciador. Caminhos relativos da descrição são
// resolvidos a partir de baseDir (normalmente a pasta do arquivo de cena).
func NewManager(loader Loader, baseDir string) *Manager {
	return &Manager{
		loader:    loader,
		baseDir:   baseDir,
		shaders:   make(map[string]*scene.Shader),
		samplers:  make(map[string]*scene.Sampler),
		textures:  make(map[string]*scene.Texture),
		meshes:    make(map[string]*scene.Mesh),
		materials: make(map[string]*scene.Material),
	}
}

// LoadFile lê a descrição e monta a cena.
func LoadFile(loader Loader, path string) (*Manager, *Loaded, error) {
	desc, err := scene.LoadDescription(path)
	if err != nil {
		return nil, nil, err
	}
	m := NewManager(loader, filepath.Dir(path))
	loaded, err := m.Load(desc)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, loaded, nil
}

func (m *Manager) resolve(path string) string {
	if _, ok := builtin.Name(path); ok || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// Load cria todos os recursos na ordem de dependência. Qualquer erro
// interrompe a carga.
func (m *Manager) Load(desc *scene.Description) (*Loaded, error) {
	if err := m.loadShaders(desc.Shaders); err != nil {
		return nil, err
	}
	if err := m.loadSamplers(desc.Samplers); err != nil {
		return nil, err
	}
	for _, t := range desc.Textures {
		tex, err := m.loader.LoadTexture(m.resolve(t.Path))
		if err != nil {
			return nil, fmt.Errorf("textura %q: %w", t.Name, err)
		}
		tex.Name = t.Name
		m.textures[t.Name] = tex
	}
	for _, md := range desc.Meshes {
		mesh, err := m.loader.LoadMesh(m.resolve(md.Path))
		if err != nil {
			return nil, fmt.Errorf("malha %q: %w", md.Name, err)
		}
		mesh.Name = md.Name
		m.meshes[md.Name] = mesh
	}
	if err := m.loadMaterials(desc.Materials); err != nil {
		return nil, err
	}

	sc := scene.New()
	sc.Ambient = mgl32.Vec3(desc.Ambient)
	for _, md := range desc.Meshes {
		sc.Meshes = append(sc.Meshes, m.meshes[md.Name])
	}
	for _, md := range desc.Materials {
		sc.Materials = append(sc.Materials, m.materials[md.Name])
	}

	if err := m.loadEntities(sc, desc.Entities); err != nil {
		return nil, err
	}
	if err := m.loadLights(sc, desc); err != nil {
		return nil, err
	}
	if desc.Sky != nil {
		sky, err := m.loadSky(desc.Sky)
		if err != nil {
			return nil, fmt.Errorf("céu: %w", err)
		}
		sc.Sky = sky
	}

	pipe, err := m.pipelineShaders(desc.Pipeline)
	if err != nil {
		return nil, err
	}

	zap.S().Infof("[Assets] Cena carregada: %d malhas, %d materiais, %d entidades, %d luzes",
		len(sc.Meshes), len(sc.Materials), len(sc.Entities), len(sc.Lights))

	return &Loaded{
		Scene:    sc,
		Cameras:  cameraSpecs(desc.Cameras),
		Pipeline: pipe,
	}, nil
}

func (m *Manager) loadShaders(descs []scene.ShaderDesc) error {
	for _, sd := range descs {
		var (
			sh  *scene.Shader
			err error
		)
		path := m.resolve(sd.Path)
		if scene.ParseStage(sd.Stage) == scene.StagePixel {
			sh, err = m.loader.LoadPixelShader(path)
		} else {
			sh, err = m.loader.LoadVertexShader(path)
		}
		if err != nil {
			return fmt.Errorf("shader %q: %w", sd.Name, err)
		}
		sh.Name = sd.Name
		if len(sd.Textures) > 0 {
			sh.Textures = sd.Textures
		}
		m.shaders[sd.Name] = sh
	}
	return nil
}

func (m *Manager) loadSamplers(descs []scene.SamplerDesc) error {
	for _, sd := range descs {
		filter, err := scene.ParseFilter(sd.Filter)
		if err != nil {
			return fmt.Errorf("sampler %q: %w", sd.Name, err)
		}
		wrap, err := scene.ParseWrap(sd.Wrap)
		if err != nil {
			return fmt.Errorf("sampler %q: %w", sd.Name, err)
		}
		m.samplers[sd.Name] = m.loader.NewSampler(sd.Name, filter, wrap, sd.Comparison)
	}
	return nil
}

// shader busca por nome e confere o estágio.
func (m *Manager) shader(name string, stage scene.ShaderStage) (*scene.Shader, error) {
	sh, ok := m.shaders[name]
	if !ok {
		return nil, fmt.Errorf("shader %q não encontrado", name)
	}
	if sh.Stage != stage {
		return nil, fmt.Errorf("shader %q (%s): %w", name, sh.Stage, scene.ErrWrongStage)
	}
	return sh, nil
}

func (m *Manager) loadMaterials(descs []scene.MaterialDesc) error {
	for _, md := range descs {
		vs, err := m.shader(md.VertexShader, scene.StageVertex)
		if err != nil {
			return fmt.Errorf("material %q: %w", md.Name, err)
		}
		ps, err := m.shader(md.PixelShader, scene.StagePixel)
		if err != nil {
			return fmt.Errorf("material %q: %w", md.Name, err)
		}

		mat := scene.NewMaterial(md.Name, vs, ps)
		if md.Tint != nil {
			mat.ColorTint = mgl32.Vec4(*md.Tint)
		}
		if md.UVScale != nil {
			mat.UVScale = mgl32.Vec2(*md.UVScale)
		}
		mat.UVOffset = mgl32.Vec2(md.UVOffset)
		if md.Roughness != nil {
			mat.SetRoughness(*md.Roughness)
		}

		for slot, texName := range md.Textures {
			tex, ok := m.textures[texName]
			if !ok {
				return fmt.Errorf("material %q: textura %q não encontrada", md.Name, texName)
			}
			mat.SetTexture(slot, tex)
		}
		for slot, sampName := range md.Samplers {
			smp, ok := m.samplers[sampName]
			if !ok {
				return fmt.Errorf("material %q: sampler %q não encontrado", md.Name, sampName)
			}
			mat.SetSampler(slot, smp)
		}

		if err := mat.Validate(render.SlotShadowMap, render.SlotShadowSampler); err != nil {
			return err
		}
		m.materials[md.Name] = mat
	}
	return nil
}

func (m *Manager) loadEntities(sc *scene.Scene, descs []scene.EntityDesc) error {
	for _, ed := range descs {
		mesh, ok := m.meshes[ed.Mesh]
		if !ok {
			return fmt.Errorf("entidade %q: malha %q não encontrada", ed.Name, ed.Mesh)
		}
		mat, ok := m.materials[ed.Material]
		if !ok {
			return fmt.Errorf("entidade %q: material %q não encontrado", ed.Name, ed.Material)
		}

		e := scene.NewEntity(ed.Name, mesh, mat)
		e.Transform.SetPositionV(mgl32.Vec3(ed.Position))
		e.Transform.SetRotationV(degrees(ed.Rotation))
		if ed.Scale != nil {
			e.Transform.SetScaleV(mgl32.Vec3(*ed.Scale))
		}
		if err := sc.AddEntity(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) loadLights(sc *scene.Scene, desc *scene.Description) error {
	for _, ld := range desc.Lights {
		typ, err := scene.ParseLightType(ld.Type)
		if err != nil {
			return fmt.Errorf("luz %q: %w", ld.Name, err)
		}
		var l scene.Light
		switch typ {
		case scene.LightPoint:
			l = scene.NewPointLight(ld.Name, ld.Position, ld.Color, ld.Intensity, ld.Range)
		case scene.LightSpot:
			l = scene.NewSpotLight(ld.Name, ld.Position, ld.Direction, ld.Color, ld.Intensity, ld.Range,
				mgl32.DegToRad(ld.SpotInner), mgl32.DegToRad(ld.SpotOuter))
		default:
			l = scene.NewDirectionalLight(ld.Name, ld.Direction, ld.Color, ld.Intensity)
		}
		sc.Lights = append(sc.Lights, l)
	}

	if len(sc.Lights) > render.MaxLights {
		zap.S().Warnf("[Assets] %d luzes na cena, apenas %d chegam ao shader", len(sc.Lights), render.MaxLights)
	}

	if desc.ShadowLight == "" {
		return nil
	}
	for i, l := range sc.Lights {
		if l.Name == desc.ShadowLight {
			if l.Type != scene.LightDirectional {
				return fmt.Errorf("luz de sombra %q não é direcional", l.Name)
			}
			sc.ShadowLight = i
			return nil
		}
	}
	return fmt.Errorf("luz de sombra %q não encontrada", desc.ShadowLight)
}

func (m *Manager) loadSky(sd *scene.SkyDesc) (*scene.Sky, error) {
	var faces [6]string
	for i, f := range sd.Faces {
		if f == "" {
			return nil, fmt.Errorf("face %d vazia", i)
		}
		faces[i] = m.resolve(f)
	}
	cube, err := m.loader.LoadCubemap(faces)
	if err != nil {
		return nil, err
	}
	cube.Name = "sky"

	meshName := sd.Mesh
	mesh, ok := m.meshes[meshName]
	if !ok {
		if meshName == "" {
			meshName = builtin.Prefix + builtin.MeshSkybox
		}
		mesh, err = m.loader.LoadMesh(m.resolve(meshName))
		if err != nil {
			return nil, err
		}
	}

	smp, ok := m.samplers[sd.Sampler]
	if !ok {
		smp = m.loader.NewSampler("sky", scene.FilterBilinear, scene.WrapClamp, false)
	}

	vs, err := m.shaderOrBuiltin(sd.VertexShader, builtin.ShaderSkyVS, scene.StageVertex)
	if err != nil {
		return nil, err
	}
	ps, err := m.shaderOrBuiltin(sd.PixelShader, builtin.ShaderSkyPS, scene.StagePixel)
	if err != nil {
		return nil, err
	}

	return &scene.Sky{Mesh: mesh, Cubemap: cube, Sampler: smp, VertexShader: vs, PixelShader: ps}, nil
}

// shaderOrBuiltin usa o shader nomeado ou, sem nome, o shader interno.
func (m *Manager) shaderOrBuiltin(name, fallback string, stage scene.ShaderStage) (*scene.Shader, error) {
	if name != "" {
		return m.shader(name, stage)
	}
	if sh, ok := m.shaders[fallback]; ok && sh.Stage == stage {
		return sh, nil
	}

	var (
		sh  *scene.Shader
		err error
	)
	if stage == scene.StagePixel {
		sh, err = m.loader.LoadPixelShader(builtin.Prefix + fallback)
	} else {
		sh, err = m.loader.LoadVertexShader(builtin.Prefix + fallback)
	}
	if err != nil {
		return nil, err
	}
	sh.Name = fallback
	m.shaders[fallback] = sh
	return sh, nil
}

func (m *Manager) pipelineShaders(p scene.PipelineShaders) (render.PipelineShaders, error) {
	var out render.PipelineShaders
	var err error
	if out.ShadowVertex, err = m.shaderOrBuiltin(p.ShadowVertex, builtin.ShaderShadowVS, scene.StageVertex); err != nil {
		return out, fmt.Errorf("pipeline: %w", err)
	}
	if out.PostVertex, err = m.shaderOrBuiltin(p.PostVertex, builtin.ShaderFullscreenVS, scene.StageVertex); err != nil {
		return out, fmt.Errorf("pipeline: %w", err)
	}
	if out.PostPixel, err = m.shaderOrBuiltin(p.PostPixel, builtin.ShaderPostPS, scene.StagePixel); err != nil {
		return out, fmt.Errorf("pipeline: %w", err)
	}
	return out, nil
}

func cameraSpecs(descs []scene.CameraDesc) []CameraSpec {
	out := make([]CameraSpec, 0, len(descs))
	for _, cd := range descs {
		out = append(out, CameraSpec{
			Name:      cd.Name,
			Position:  mgl32.Vec3(cd.Position),
			Rotation:  degrees(cd.Rotation),
			Fov:       mgl32.DegToRad(cd.Fov),
			MoveSpeed: cd.MoveSpeed,
			LookSpeed: cd.LookSpeed,
		})
	}
	return out
}

// NewCameras cria as câmeras da cena. Valores ausentes vêm da
// configuração; sem câmeras na descrição cria uma recuada em -Z.
func NewCameras(specs []CameraSpec, aspect float32, cfg config.CameraConfig) []*camera.Camera {
	if len(specs) == 0 {
		specs = []CameraSpec{{Name: "main", Position: mgl32.Vec3{0, 2, -15}}}
	}

	cams := make([]*camera.Camera, 0, len(specs))
	for _, s := range specs {
		fov := s.Fov
		if fov <= 0 {
			fov = mgl32.DegToRad(cfg.FOV)
		}
		move := s.MoveSpeed
		if move <= 0 {
			move = cfg.MoveSpeed
		}
		look := s.LookSpeed
		if look <= 0 {
			look = cfg.LookSpeed
		}

		c := camera.New(s.Name, s.Position, aspect, fov, move, look)
		c.Transform.SetRotationV(s.Rotation)
		c.UpdateViewMatrix()
		cams = append(cams, c)
	}
	return cams
}

func degrees(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{mgl32.DegToRad(v[0]), mgl32.DegToRad(v[1]), mgl32.DegToRad(v[2])}
}

// Shaders devolve todos os shaders carregados (para a recarga).
func (m *Manager) Shaders() []*scene.Shader {
	out := make([]*scene.Shader, 0, len(m.shaders))
	for _, name := range sortedNames(m.shaders) {
		out = append(out, m.shaders[name])
	}
	return out
}

func (m *Manager) Shader(name string) (*scene.Shader, bool) {
	sh, ok := m.shaders[name]
	return sh, ok
}

func (m *Manager) Material(name string) (*scene.Material, bool) {
	mat, ok := m.materials[name]
	return mat, ok
}

func (m *Manager) Mesh(name string) (*scene.Mesh, bool) {
	mesh, ok := m.meshes[name]
	return mesh, ok
}
