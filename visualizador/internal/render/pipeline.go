package render

import (
	"fmt"

	"LumenForge/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// View é o que o frame precisa da câmera ativa.
type View interface {
	GetView() mgl32.Mat4
	GetProjection() mgl32.Mat4
	GetPosition() mgl32.Vec3
}

// PipelineShaders são os shaders internos do frame (sombra e pós).
type PipelineShaders struct {
	ShadowVertex *scene.Shader
	PostVertex   *scene.Shader
	PostPixel    *scene.Shader
}

// Settings é a parte do estado da UI que afeta o frame.
type Settings struct {
	Background mgl32.Vec4
	Shadows    ShadowSettings
	Post       PostParams
}

// FrameStats resume o último frame para o HUD.
type FrameStats struct {
	ShadowDraws   int
	SceneDraws    int
	SkippedDraws  int
	DroppedLights int
	Uploads       int
	Skipped       int
}

// programReleaser é implementado por devices que liberam programas
// substituídos por recarga.
type programReleaser interface {
	Release(Program)
}

type programKey struct {
	vs, ps               *scene.Shader
	vsVersion, psVersion int
}

// Pipeline orquestra o frame: sombra, cena no alvo intermediário, céu,
// pós-processamento e overlay.
type Pipeline struct {
	dev     Device
	shaders PipelineShaders
	binder  *Binder

	programs map[programKey]Program

	shadowTarget Target
	sceneTarget  Target
	shadowSize   int
	width        int
	height       int

	shadowSampler *scene.Sampler
	failed        map[string]bool

	Stats FrameStats
}

// NewPipeline cria os alvos fora da tela. Os shaders internos são
// obrigatórios.
func NewPipeline(dev Device, shaders PipelineShaders, shadowSize, w, h int) (*Pipeline, error) {
	if shaders.ShadowVertex == nil || shaders.PostVertex == nil || shaders.PostPixel == nil {
		return nil, fmt.Errorf("pipeline: %w", scene.ErrNoShader)
	}

	p := &Pipeline{
		dev:        dev,
		shaders:    shaders,
		binder:     NewBinder(dev),
		programs:   make(map[programKey]Program),
		shadowSize: shadowSize,
		shadowSampler: &scene.Sampler{
			Name:       SlotShadowSampler,
			Filter:     scene.FilterBilinear,
			Wrap:       scene.WrapClamp,
			Comparison: true,
		},
		failed: make(map[string]bool),
	}

	var err error
	p.shadowTarget, err = dev.CreateTarget(TargetDepth, shadowSize, shadowSize)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar mapa de sombra: %w", err)
	}
	if err := p.Resize(w, h); err != nil {
		return nil, err
	}

	zap.S().Infof("[Render] Pipeline pronto: sombra %dx%d, cena %dx%d", shadowSize, shadowSize, p.width, p.height)
	return p, nil
}

// Resize recria o alvo intermediário com o tamanho da janela.
func (p *Pipeline) Resize(w, h int) error {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if p.sceneTarget != nil && w == p.width && h == p.height {
		return nil
	}

	t, err := p.dev.CreateTarget(TargetColor, w, h)
	if err != nil {
		return fmt.Errorf("falha ao criar alvo intermediário %dx%d: %w", w, h, err)
	}
	if p.sceneTarget != nil {
		p.dev.ReleaseTarget(p.sceneTarget)
	}
	p.sceneTarget = t
	p.width, p.height = w, h
	return nil
}

// Size é o tamanho atual do alvo intermediário.
func (p *Pipeline) Size() (int, int) { return p.width, p.height }

// ShadowTarget expõe o mapa de sombra para o HUD.
func (p *Pipeline) ShadowTarget() Target { return p.shadowTarget }

// Close libera os alvos.
func (p *Pipeline) Close() {
	if p.shadowTarget != nil {
		p.dev.ReleaseTarget(p.shadowTarget)
		p.shadowTarget = nil
	}
	if p.sceneTarget != nil {
		p.dev.ReleaseTarget(p.sceneTarget)
		p.sceneTarget = nil
	}
}

// program devolve o programa em cache, recompilando quando algum dos
// shaders foi recarregado.
func (p *Pipeline) program(vs, ps *scene.Shader) (Program, error) {
	key := programKey{vs: vs, ps: ps, vsVersion: vs.Version}
	if ps != nil {
		key.psVersion = ps.Version
	}
	if prog, ok := p.programs[key]; ok {
		return prog, nil
	}

	prog, err := p.dev.Program(vs, ps)
	if err != nil {
		// Recarga com erro mantém a versão anterior em uso
		for k, old := range p.programs {
			if k.vs == vs && k.ps == ps {
				zap.S().Errorf("[Render] Recarga de %s falhou, mantendo versão anterior: %v", old.Name(), err)
				delete(p.programs, k)
				p.programs[key] = old
				return old, nil
			}
		}
		return nil, err
	}

	// Versões antigas do mesmo par saem do cache
	for k, old := range p.programs {
		if k.vs == vs && k.ps == ps {
			p.binder.Forget(old)
			delete(p.programs, k)
			if r, ok := p.dev.(programReleaser); ok {
				r.Release(old)
			}
		}
	}
	p.programs[key] = prog
	return prog, nil
}

// Render desenha um frame completo. Só retorna erro para falhas de
// programa (irrecuperáveis); materiais mal configurados são registrados
// uma vez e pulados.
func (p *Pipeline) Render(sc *scene.Scene, view View, s Settings, overlay func()) error {
	p.Stats = FrameStats{}
	p.binder.ResetStats()

	p.dev.BeginFrame()

	// 1-2. Mapa de sombra. Desligado, o alvo fica só com a limpeza.
	lightView, lightProj := LightMatrices(sc, s.Shadows)
	if err := p.shadowPass(sc, lightView, lightProj, s.Shadows.Enabled); err != nil {
		return err
	}

	// 3. Volta para o back buffer antes de trocar de alvo
	p.dev.BindTarget(nil)
	p.dev.Viewport(p.width, p.height)

	// 4. Cena iluminada no alvo intermediário
	if err := p.scenePass(sc, view, lightView, lightProj, s.Background); err != nil {
		return err
	}

	// 5. Céu por último
	if err := p.skyPass(sc, view); err != nil {
		return err
	}

	// 6. Pós-processamento para o back buffer
	if err := p.postPass(s.Post); err != nil {
		return err
	}

	// 7. Overlay e apresentação
	if overlay != nil {
		overlay()
	}
	p.dev.EndFrame()

	p.Stats.Uploads = p.binder.Uploads
	p.Stats.Skipped = p.binder.Skipped
	return nil
}

func (p *Pipeline) shadowPass(sc *scene.Scene, lightView, lightProj mgl32.Mat4, enabled bool) error {
	p.dev.BindTarget(p.shadowTarget)
	p.dev.Viewport(p.shadowSize, p.shadowSize)
	p.dev.Clear(shadowCleared, true)
	if !enabled {
		return nil
	}

	prog, err := p.program(p.shaders.ShadowVertex, nil)
	if err != nil {
		return fmt.Errorf("shader de sombra: %w", err)
	}

	p.dev.SetDepthState(depthOpaque)
	p.dev.UseProgram(prog)
	p.binder.Matrix(prog, UniformView, lightView)
	p.binder.Matrix(prog, UniformProjection, lightProj)

	for _, e := range sc.Entities {
		if e.Mesh == nil {
			continue
		}
		world := e.Transform.GetWorldMatrix()
		p.binder.Matrix(prog, UniformWorld, world)
		p.dev.DrawMesh(prog, e.Mesh, world)
		p.Stats.ShadowDraws++
	}
	return nil
}

func (p *Pipeline) scenePass(sc *scene.Scene, view View, lightView, lightProj mgl32.Mat4, background mgl32.Vec4) error {
	p.dev.BindTarget(p.sceneTarget)
	p.dev.Viewport(p.width, p.height)
	p.dev.Clear(background, true)
	p.dev.SetDepthState(depthOpaque)

	lights, count, dropped := PackLights(sc.Lights)
	p.Stats.DroppedLights = dropped
	if dropped > 0 && !p.failed["#lights"] {
		zap.S().Warnf("[Render] %d luzes além do limite de %d foram descartadas", dropped, MaxLights)
		p.failed["#lights"] = true
	}

	caster := sc.ShadowCasterIndex()
	if caster >= count {
		caster = -1
	}
	camPos := view.GetPosition()
	frame := FrameResources{
		Textures: map[string]*scene.Texture{SlotShadowMap: p.shadowTarget.Texture()},
		Samplers: map[string]*scene.Sampler{SlotShadowSampler: p.shadowSampler},
	}

	for _, e := range sc.Entities {
		mat := e.Material
		if e.Mesh == nil || mat == nil {
			continue
		}
		if mat.VertexShader == nil || mat.PixelShader == nil {
			p.skip(mat, scene.ErrNoShader)
			continue
		}

		prog, err := p.program(mat.VertexShader, mat.PixelShader)
		if err != nil {
			return fmt.Errorf("material %q: %w", mat.Name, err)
		}
		p.dev.UseProgram(prog)

		// Parâmetros do frame; repetidos por entidade são coalescidos
		p.binder.Matrix(prog, UniformView, view.GetView())
		p.binder.Matrix(prog, UniformProjection, view.GetProjection())
		p.binder.Matrix(prog, UniformLightView, lightView)
		p.binder.Matrix(prog, UniformLightProjection, lightProj)
		p.binder.Floats(prog, UniformLights, lights[:])
		p.binder.Floats(prog, UniformLightCount, []float32{float32(count)})
		p.binder.Floats(prog, UniformShadowLight, []float32{float32(caster)})
		p.binder.Floats(prog, UniformAmbient, sc.Ambient[:])
		p.binder.Floats(prog, UniformCameraPosition, camPos[:])

		world := e.Transform.GetWorldMatrix()
		p.binder.Matrix(prog, UniformWorld, world)
		p.binder.Matrix(prog, UniformWorldInvTranspose, e.Transform.GetWorldInverseTransposeMatrix())

		if err := p.binder.Material(prog, mat, frame); err != nil {
			p.skip(mat, err)
			continue
		}
		p.dev.DrawMesh(prog, e.Mesh, world)
		p.Stats.SceneDraws++
	}
	return nil
}

// skip registra o erro de um material uma única vez.
func (p *Pipeline) skip(mat *scene.Material, err error) {
	p.Stats.SkippedDraws++
	if p.failed[mat.Name] {
		return
	}
	p.failed[mat.Name] = true
	zap.S().Errorf("[Render] Material %q não pode ser desenhado: %v", mat.Name, err)
}

func (p *Pipeline) skyPass(sc *scene.Scene, view View) error {
	sky := sc.Sky
	if sky == nil || sky.Mesh == nil || sky.Cubemap == nil {
		return nil
	}
	if sky.VertexShader == nil || sky.PixelShader == nil {
		return fmt.Errorf("céu: %w", scene.ErrNoShader)
	}

	prog, err := p.program(sky.VertexShader, sky.PixelShader)
	if err != nil {
		return fmt.Errorf("shader do céu: %w", err)
	}

	p.dev.SetDepthState(depthSky)
	p.dev.UseProgram(prog)
	p.binder.Matrix(prog, UniformView, view.GetView())
	p.binder.Matrix(prog, UniformProjection, view.GetProjection())
	for _, slot := range scene.SortedSlots(sky.PixelShader.Textures) {
		p.dev.BindTexture(prog, slot, sky.Cubemap, sky.Sampler)
	}
	p.dev.DrawMesh(prog, sky.Mesh, mgl32.Ident4())
	p.dev.SetDepthState(depthOpaque)
	return nil
}

func (p *Pipeline) postPass(post PostParams) error {
	prog, err := p.program(p.shaders.PostVertex, p.shaders.PostPixel)
	if err != nil {
		return fmt.Errorf("shader de pós-processamento: %w", err)
	}

	p.dev.BindTarget(nil)
	p.dev.Viewport(p.width, p.height)
	p.dev.Clear(mgl32.Vec4{0, 0, 0, 1}, true)
	p.dev.SetDepthState(depthOff)

	radius, aberration, texel := post.Uniforms(p.width, p.height)
	p.dev.UseProgram(prog)
	p.binder.Floats(prog, UniformBlurRadius, []float32{radius})
	p.binder.Floats(prog, UniformAberration, []float32{aberration})
	p.binder.Floats(prog, UniformTexelSize, texel[:])
	p.dev.DrawFullscreen(prog, p.sceneTarget.Texture())
	return nil
}
