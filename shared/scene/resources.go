package scene

import "errors"

// Handle é um recurso opaco do backend gráfico (buffer, textura, programa).
// O núcleo nunca inspeciona seu conteúdo.
type Handle interface{}

var (
	ErrMissingTexture = errors.New("textura obrigatória ausente no material")
	ErrMissingSampler = errors.New("sampler obrigatório ausente no material")
	ErrNoShader       = errors.New("material sem shader")
	ErrWrongStage     = errors.New("shader no estágio errado")
)

// Mesh é imutável depois de criada: buffers de vértice/índice na GPU mais
// as contagens. Pode ser compartilhada por várias entidades.
type Mesh struct {
	Name        string
	Path        string
	VertexCount int
	IndexCount  int
	GPU         Handle
}

// TriangleCount considera malhas não indexadas (IndexCount == 0).
func (m *Mesh) TriangleCount() int {
	if m.IndexCount > 0 {
		return m.IndexCount / 3
	}
	return m.VertexCount / 3
}

// Texture referencia uma textura 2D ou cubemap já carregada.
type Texture struct {
	Name   string
	Path   string
	Width  int
	Height int
	Cube   bool
	GPU    Handle
}

type Filter int

const (
	FilterPoint Filter = iota
	FilterBilinear
	FilterTrilinear
	FilterAnisotropic
)

type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClamp
	WrapMirror
)

// Sampler descreve como uma textura é amostrada. Comparison marca o
// sampler de comparação usado pelo mapa de sombra.
type Sampler struct {
	Name       string
	Filter     Filter
	Wrap       Wrap
	Comparison bool
}

type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StagePixel
)

func (s ShaderStage) String() string {
	if s == StagePixel {
		return "pixel"
	}
	return "vertex"
}

// Shader é um estágio do pipeline. Textures mapeia cada slot de textura que
// o shader lê para o slot de sampler com que ele é amostrado.
type Shader struct {
	Name     string
	Path     string
	Stage    ShaderStage
	Source   string
	Textures map[string]string

	// Version aumenta a cada recarga; o backend religa o programa quando muda.
	Version int
}
