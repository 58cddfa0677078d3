package render

import (
	"errors"

	"LumenForge/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDevice grava cada chamada e quantos desenhos cada alvo recebeu desde
// a última limpeza.

type fakeTarget struct {
	kind     TargetKind
	w, h     int
	tex      *scene.Texture
	draws    int
	released bool
}

func (t *fakeTarget) Size() (int, int)        { return t.w, t.h }
func (t *fakeTarget) Texture() *scene.Texture { return t.tex }

type fakeProgram struct {
	name   string
	vs, ps *scene.Shader
}

func (p *fakeProgram) Name() string { return p.name }

type event struct {
	op     string
	target *fakeTarget // nil = back buffer
	prog   *fakeProgram
	name   string
	depth  DepthState
	// desenhos no alvo amostrado no momento do bind/fullscreen
	sampled int
}

type fakeDevice struct {
	events   []event
	current  *fakeTarget
	depth    DepthState
	byTex    map[*scene.Texture]*fakeTarget
	targets  []*fakeTarget
	compiled int
	failWith error

	matrices map[string]mgl32.Mat4
	floats   map[string][]float32
	setCalls int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		byTex:    make(map[*scene.Texture]*fakeTarget),
		matrices: make(map[string]mgl32.Mat4),
		floats:   make(map[string][]float32),
	}
}

func (d *fakeDevice) record(e event) { d.events = append(d.events, e) }

func (d *fakeDevice) CreateTarget(kind TargetKind, w, h int) (Target, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("tamanho inválido")
	}
	t := &fakeTarget{kind: kind, w: w, h: h, tex: &scene.Texture{Width: w, Height: h}}
	d.byTex[t.tex] = t
	d.targets = append(d.targets, t)
	return t, nil
}

func (d *fakeDevice) ReleaseTarget(t Target) { t.(*fakeTarget).released = true }

func (d *fakeDevice) Program(vs, ps *scene.Shader) (Program, error) {
	if d.failWith != nil {
		return nil, d.failWith
	}
	d.compiled++
	name := vs.Name
	if ps != nil {
		name += "+" + ps.Name
	}
	return &fakeProgram{name: name, vs: vs, ps: ps}, nil
}

func (d *fakeDevice) BeginFrame() { d.record(event{op: "begin"}) }

func (d *fakeDevice) BindTarget(t Target) {
	if t == nil {
		d.current = nil
	} else {
		d.current = t.(*fakeTarget)
	}
	d.record(event{op: "bind", target: d.current})
}

func (d *fakeDevice) Viewport(w, h int) {}

func (d *fakeDevice) Clear(color mgl32.Vec4, depth bool) {
	if d.current != nil {
		d.current.draws = 0
	}
	d.record(event{op: "clear", target: d.current})
}

func (d *fakeDevice) SetDepthState(s DepthState) { d.depth = s }

func (d *fakeDevice) UseProgram(p Program) {
	d.record(event{op: "use", prog: p.(*fakeProgram)})
}

func (d *fakeDevice) SetMatrix(p Program, name string, m mgl32.Mat4) {
	d.setCalls++
	d.matrices[name] = m
}

func (d *fakeDevice) SetFloats(p Program, name string, v []float32) {
	d.setCalls++
	d.floats[name] = append([]float32(nil), v...)
}

func (d *fakeDevice) BindTexture(p Program, slot string, tex *scene.Texture, smp *scene.Sampler) {
	e := event{op: "texture", prog: p.(*fakeProgram), name: slot, target: d.current}
	if t, ok := d.byTex[tex]; ok {
		e.sampled = t.draws
	}
	d.record(e)
}

func (d *fakeDevice) DrawMesh(p Program, mesh *scene.Mesh, world mgl32.Mat4) {
	if d.current != nil {
		d.current.draws++
	}
	d.record(event{op: "draw", target: d.current, prog: p.(*fakeProgram), name: mesh.Name, depth: d.depth})
}

func (d *fakeDevice) DrawFullscreen(p Program, src *scene.Texture) {
	e := event{op: "fullscreen", target: d.current, prog: p.(*fakeProgram), depth: d.depth}
	if t, ok := d.byTex[src]; ok {
		e.sampled = t.draws
	}
	d.record(e)
}

func (d *fakeDevice) EndFrame() { d.record(event{op: "end"}) }

// find devolve os índices dos eventos que satisfazem f.
func (d *fakeDevice) find(f func(e event) bool) []int {
	var out []int
	for i, e := range d.events {
		if f(e) {
			out = append(out, i)
		}
	}
	return out
}

type fakeView struct {
	view, proj mgl32.Mat4
	pos        mgl32.Vec3
}

func (v fakeView) GetView() mgl32.Mat4       { return v.view }
func (v fakeView) GetProjection() mgl32.Mat4 { return v.proj }
func (v fakeView) GetPosition() mgl32.Vec3   { return v.pos }

func newFakeView() fakeView {
	return fakeView{view: mgl32.Ident4(), proj: mgl32.Ident4(), pos: mgl32.Vec3{0, 0, -5}}
}

type testShaders struct {
	pipeline PipelineShaders
	litVS    *scene.Shader
	litPS    *scene.Shader
	skyVS    *scene.Shader
	skyPS    *scene.Shader
}

func newTestShaders() testShaders {
	return testShaders{
		pipeline: PipelineShaders{
			ShadowVertex: &scene.Shader{Name: "shadow_vs", Stage: scene.StageVertex},
			PostVertex:   &scene.Shader{Name: "fullscreen_vs", Stage: scene.StageVertex},
			PostPixel:    &scene.Shader{Name: "post_ps", Stage: scene.StagePixel, Textures: map[string]string{SlotScene: "PostSampler"}},
		},
		litVS: &scene.Shader{Name: "lit_vs", Stage: scene.StageVertex},
		litPS: &scene.Shader{Name: "lit_ps", Stage: scene.StagePixel, Textures: map[string]string{
			"Albedo":      "BasicSampler",
			SlotShadowMap: SlotShadowSampler,
		}},
		skyVS: &scene.Shader{Name: "sky_vs", Stage: scene.StageVertex},
		skyPS: &scene.Shader{Name: "sky_ps", Stage: scene.StagePixel, Textures: map[string]string{"SkyTexture": "BasicSampler"}},
	}
}

// newTestScene monta duas entidades com o mesmo material e uma luz
// direcional.
func newTestScene(sh testShaders, withSky bool) *scene.Scene {
	sc := scene.New()
	mesh := &scene.Mesh{Name: "cube", VertexCount: 24, IndexCount: 36}
	mat := scene.NewMaterial("stone", sh.litVS, sh.litPS)
	mat.SetTexture("Albedo", &scene.Texture{Name: "checker"})
	mat.SetSampler("BasicSampler", &scene.Sampler{Name: "basic"})

	a := scene.NewEntity("a", mesh, mat)
	b := scene.NewEntity("b", mesh, mat)
	b.Transform.SetPosition(2, 0, 0)
	_ = sc.AddEntity(a)
	_ = sc.AddEntity(b)
	sc.Meshes = []*scene.Mesh{mesh}
	sc.Materials = []*scene.Material{mat}
	sc.Lights = []scene.Light{scene.NewDirectionalLight("sun", mgl32.Vec3{1, -1, 1}, mgl32.Vec3{1, 1, 1}, 1)}

	if withSky {
		sc.Sky = &scene.Sky{
			Mesh:         &scene.Mesh{Name: "skybox", VertexCount: 36},
			Cubemap:      &scene.Texture{Name: "sky", Cube: true},
			Sampler:      &scene.Sampler{Name: "basic"},
			VertexShader: sh.skyVS,
			PixelShader:  sh.skyPS,
		}
	}
	return sc
}

func defaultSettings() Settings {
	return Settings{
		Background: mgl32.Vec4{0.1, 0.1, 0.1, 1},
		Shadows:    ShadowSettings{Enabled: true, MapSize: 256, Extent: 20, Distance: 20, Near: 1, Far: 100},
		Post:       PostParams{Enabled: true, BlurRadius: 2},
	}
}
