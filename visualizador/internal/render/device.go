package render

import (
	"LumenForge/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// TargetKind diz o que um alvo fora da tela guarda.
type TargetKind int

const (
	TargetColor TargetKind = iota // cor + profundidade (cena intermediária)
	TargetDepth                   // profundidade vista da luz (mapa de sombra)
)

type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
)

// DepthState é o estado de profundidade usado pelos próximos desenhos.
type DepthState struct {
	Test  bool
	Write bool
	Func  DepthFunc
}

var (
	depthOpaque = DepthState{Test: true, Write: true, Func: DepthLess}
	depthSky    = DepthState{Test: true, Write: false, Func: DepthLessEqual}
	depthOff    = DepthState{}
)

// Target é um alvo de renderização fora da tela. Texture devolve a textura
// que os passes seguintes amostram.
type Target interface {
	Size() (int, int)
	Texture() *scene.Texture
}

// Program é um par de shaders ligado pelo backend.
type Program interface {
	Name() string
}

// Device é tudo o que o frame precisa da GPU. Um único Device é usado por
// thread de renderização; nenhum método é seguro para uso concorrente.
type Device interface {
	CreateTarget(kind TargetKind, w, h int) (Target, error)
	ReleaseTarget(t Target)

	// Program liga os dois estágios. ps == nil monta um programa só de
	// vértice (passe de sombra).
	Program(vs, ps *scene.Shader) (Program, error)

	BeginFrame()
	// BindTarget com nil volta para o back buffer.
	BindTarget(t Target)
	Viewport(w, h int)
	Clear(color mgl32.Vec4, depth bool)
	SetDepthState(s DepthState)

	UseProgram(p Program)
	SetMatrix(p Program, name string, m mgl32.Mat4)
	// SetFloats envia float, vec2, vec3, vec4 ou um array de vec4
	// conforme o tamanho de v.
	SetFloats(p Program, name string, v []float32)
	BindTexture(p Program, slot string, tex *scene.Texture, smp *scene.Sampler)

	DrawMesh(p Program, mesh *scene.Mesh, world mgl32.Mat4)
	DrawFullscreen(p Program, src *scene.Texture)
	EndFrame()
}

// Nomes dos uniforms compartilhados entre o núcleo e os shaders.
const (
	UniformWorld             = "world"
	UniformWorldInvTranspose = "worldInvTranspose"
	UniformView              = "view"
	UniformProjection        = "projection"
	UniformLightView         = "lightView"
	UniformLightProjection   = "lightProjection"
	UniformLights            = "lights"
	UniformLightCount        = "lightCount"
	UniformShadowLight       = "shadowLight"
	UniformAmbient           = "ambientColor"
	UniformCameraPosition    = "cameraPosition"

	UniformColorTint = "colorTint"
	UniformUVScale   = "uvScale"
	UniformUVOffset  = "uvOffset"
	UniformRoughness = "roughness"

	UniformBlurRadius = "blurRadius"
	UniformAberration = "aberration"
	UniformTexelSize  = "texelSize"

	SlotShadowMap     = "ShadowMap"
	SlotShadowSampler = "ShadowSampler"
	SlotScene         = "SceneTexture"
)
