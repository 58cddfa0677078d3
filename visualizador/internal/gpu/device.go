package gpu

import (
	"fmt"
	"image/color"
	"strings"

	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/builtin"
	"LumenForge/visualizador/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Índices de material map que o raylib liga como 2D e como cubemap no
// DrawMesh (7, 8 e 9 são cubemaps no rmodels.c). O último 2D é o BRDF;
// depois dele vêm as localizações de atributos de vértice.
var (
	mapSlots2D   = []int{0, 1, 2, 3, 4, 5, 6, 10}
	mapSlotsCube = []int{7, 8, 9}
)

type target struct {
	rt  rl.RenderTexture2D
	tex *scene.Texture
	w   int
	h   int
}

func (t *target) Size() (int, int)        { return t.w, t.h }
func (t *target) Texture() *scene.Texture { return t.tex }

// program guarda o shader do raylib, um material próprio (cujos maps
// recebem as texturas) e o cache de localizações.
type program struct {
	name     string
	shader   rl.Shader
	material rl.Material
	slots    map[string]int
	locs     map[string]int32
}

func (p *program) Name() string { return p.name }

func (p *program) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(p.shader, name)
	p.locs[name] = l
	return l
}

// Device implementa render.Device sobre o raylib. Precisa de uma janela
// aberta; todas as chamadas acontecem na thread principal.
//
// O rlgl usa GL_LEQUAL fixo, então DepthLess é emulado com LEQUAL (igual
// para geometria opaca sobre profundidade limpa). O culling fica desligado
// porque as malhas do raylib são CCW em mão-direita e a cena é mão-esquerda.
type Device struct {
	current *target
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) CreateTarget(kind render.TargetKind, w, h int) (render.Target, error) {
	rt := rl.LoadRenderTexture(int32(w), int32(h))
	if rt.ID == 0 {
		return nil, fmt.Errorf("falha ao criar render texture %dx%d", w, h)
	}
	rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
	rl.SetTextureWrap(rt.Texture, rl.WrapClamp)

	name := "scene"
	if kind == render.TargetDepth {
		name = "shadow"
	}
	t := &target{
		rt:  rt,
		tex: &scene.Texture{Name: name, Width: w, Height: h, GPU: rt.Texture},
		w:   w,
		h:   h,
	}
	return t, nil
}

func (d *Device) ReleaseTarget(t render.Target) {
	rt := t.(*target)
	if d.current == rt {
		rl.EndTextureMode()
		d.current = nil
	}
	rl.UnloadRenderTexture(rt.rt)
}

// Program compila o par. Sem pixel shader usa o empacotador de
// profundidade do passe de sombra.
func (d *Device) Program(vs, ps *scene.Shader) (render.Program, error) {
	psSrc, psName := "", ""
	var slots map[string]string
	if ps != nil {
		psSrc, psName, slots = ps.Source, ps.Name, ps.Textures
	} else {
		psSrc, _ = builtin.Shader(builtin.ShaderShadowDepth)
		psName = builtin.ShaderShadowDepth
	}

	shader := rl.LoadShaderFromMemory(vs.Source, psSrc)
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() {
		return nil, fmt.Errorf("falha ao compilar %s + %s", vs.Name, psName)
	}

	mat := rl.LoadMaterialDefault()
	mat.Shader = shader

	p := &program{
		name:     vs.Name + "+" + psName,
		shader:   shader,
		material: mat,
		slots:    make(map[string]int),
		locs:     make(map[string]int32),
	}

	// Cada slot de textura ganha um material map; o raylib liga a textura
	// na unidade do map e envia o índice na localização correspondente.
	next2D, nextCube := 0, 0
	for _, slot := range scene.SortedSlots(slots) {
		var idx int
		if strings.Contains(psSrc, "samplerCube "+slot) {
			if nextCube >= len(mapSlotsCube) {
				return nil, fmt.Errorf("%s: cubemaps demais", p.name)
			}
			idx = mapSlotsCube[nextCube]
			nextCube++
		} else {
			if next2D >= len(mapSlots2D) {
				return nil, fmt.Errorf("%s: texturas demais", p.name)
			}
			idx = mapSlots2D[next2D]
			next2D++
		}
		p.slots[slot] = idx
		shader.UpdateLocation(int32(rl.ShaderLocMapAlbedo+idx), rl.GetShaderLocation(shader, slot))
	}

	zap.S().Debugf("[GPU] Programa %s compilado (id %d, %d texturas)", p.name, shader.ID, len(p.slots))
	return p, nil
}

func (d *Device) BeginFrame() {
	rl.BeginDrawing()
	rl.DisableBackfaceCulling()
}

func (d *Device) BindTarget(t render.Target) {
	if d.current != nil {
		rl.EndTextureMode()
		d.current = nil
	}
	if t == nil {
		return
	}
	d.current = t.(*target)
	rl.BeginTextureMode(d.current.rt)
}

func (d *Device) Viewport(w, h int) {
	rl.Viewport(0, 0, int32(w), int32(h))
}

// Clear limpa cor e profundidade juntas (ClearBackground do raylib).
func (d *Device) Clear(c mgl32.Vec4, depth bool) {
	rl.ClearBackground(toColor(c))
}

func (d *Device) SetDepthState(s render.DepthState) {
	rl.DrawRenderBatchActive()
	if s.Test {
		rl.EnableDepthTest()
	} else {
		rl.DisableDepthTest()
	}
	if s.Write {
		rl.EnableDepthMask()
	} else {
		rl.DisableDepthMask()
	}
}

func (d *Device) UseProgram(p render.Program) {}

func (d *Device) SetMatrix(p render.Program, name string, m mgl32.Mat4) {
	prog := p.(*program)
	if l := prog.loc(name); l >= 0 {
		rl.SetShaderValueMatrix(prog.shader, l, toMatrix(m))
	}
}

func (d *Device) SetFloats(p render.Program, name string, v []float32) {
	prog := p.(*program)
	l := prog.loc(name)
	if l < 0 || len(v) == 0 {
		return
	}
	switch len(v) {
	case 1:
		rl.SetShaderValue(prog.shader, l, v, rl.ShaderUniformFloat)
	case 2:
		rl.SetShaderValue(prog.shader, l, v, rl.ShaderUniformVec2)
	case 3:
		rl.SetShaderValue(prog.shader, l, v, rl.ShaderUniformVec3)
	case 4:
		rl.SetShaderValue(prog.shader, l, v, rl.ShaderUniformVec4)
	default:
		rl.SetShaderValueV(prog.shader, l, v, rl.ShaderUniformVec4, int32(len(v)/4))
	}
}

func (d *Device) BindTexture(p render.Program, slot string, tex *scene.Texture, smp *scene.Sampler) {
	prog := p.(*program)
	idx, ok := prog.slots[slot]
	if !ok || tex == nil {
		return
	}
	t, ok := tex.GPU.(rl.Texture2D)
	if !ok {
		return
	}
	if smp != nil {
		rl.SetTextureFilter(t, toFilter(smp.Filter))
		rl.SetTextureWrap(t, toWrap(smp.Wrap))
	}
	prog.material.GetMap(int32(idx)).Texture = t
}

func (d *Device) DrawMesh(p render.Program, mesh *scene.Mesh, world mgl32.Mat4) {
	m, ok := mesh.GPU.(rl.Mesh)
	if !ok {
		return
	}
	rl.DrawMesh(m, p.(*program).material, toMatrix(world))
}

// DrawFullscreen desenha a textura na tela inteira. Render textures ficam
// de cabeça para baixo, daí a altura negativa.
func (d *Device) DrawFullscreen(p render.Program, src *scene.Texture) {
	t, ok := src.GPU.(rl.Texture2D)
	if !ok {
		return
	}
	rl.BeginShaderMode(p.(*program).shader)
	rl.DrawTextureRec(t, rl.Rectangle{X: 0, Y: 0, Width: float32(t.Width), Height: -float32(t.Height)}, rl.Vector2{}, rl.White)
	rl.EndShaderMode()
}

func (d *Device) EndFrame() {
	rl.EndDrawing()
}

// Release descarrega um programa que saiu de uso.
func (d *Device) Release(p render.Program) {
	prog := p.(*program)
	rl.UnloadShader(prog.shader)
	prog.slots = nil
}

// toMatrix copia a matriz do mgl32 (coluna-maior) para o layout do raylib:
// o campo Mi corresponde ao índice i em coluna-maior.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

func toColor(c mgl32.Vec4) color.RGBA {
	return rl.ColorFromNormalized(rl.Vector4{X: c[0], Y: c[1], Z: c[2], W: c[3]})
}

func toFilter(f scene.Filter) rl.TextureFilterMode {
	switch f {
	case scene.FilterPoint:
		return rl.FilterPoint
	case scene.FilterTrilinear:
		return rl.FilterTrilinear
	case scene.FilterAnisotropic:
		return rl.FilterAnisotropic16x
	}
	return rl.FilterBilinear
}

func toWrap(w scene.Wrap) rl.TextureWrapMode {
	switch w {
	case scene.WrapClamp:
		return rl.WrapClamp
	case scene.WrapMirror:
		return rl.WrapMirrorRepeat
	}
	return rl.WrapRepeat
}
