package scene

import (
	"fmt"
	"sort"

	"LumenForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Material junta os parâmetros de superfície e o par de shaders. Vários
// materiais podem apontar para os mesmos shaders e texturas.
type Material struct {
	Name      string
	ColorTint mgl32.Vec4
	UVScale   mgl32.Vec2
	UVOffset  mgl32.Vec2
	roughness float32

	textures map[string]*Texture
	samplers map[string]*Sampler

	VertexShader *Shader
	PixelShader  *Shader
}

// NewMaterial cria um material branco, sem repetição de UV e rugosidade 0.5.
func NewMaterial(name string, vs, ps *Shader) *Material {
	return &Material{
		Name:         name,
		ColorTint:    mgl32.Vec4{1, 1, 1, 1},
		UVScale:      mgl32.Vec2{1, 1},
		roughness:    0.5,
		textures:     make(map[string]*Texture),
		samplers:     make(map[string]*Sampler),
		VertexShader: vs,
		PixelShader:  ps,
	}
}

func (m *Material) Roughness() float32 { return m.roughness }

// SetRoughness limita o valor a [0, 1].
func (m *Material) SetRoughness(r float32) {
	m.roughness = util.Clamp(r, 0, 1)
}

func (m *Material) SetTexture(slot string, t *Texture) { m.textures[slot] = t }
func (m *Material) SetSampler(slot string, s *Sampler) { m.samplers[slot] = s }

func (m *Material) Texture(slot string) (*Texture, bool) {
	t, ok := m.textures[slot]
	return t, ok && t != nil
}

func (m *Material) Sampler(slot string) (*Sampler, bool) {
	s, ok := m.samplers[slot]
	return s, ok && s != nil
}

// TextureSlots devolve os slots de textura em ordem alfabética.
func (m *Material) TextureSlots() []string {
	slots := make([]string, 0, len(m.textures))
	for k := range m.textures {
		slots = append(slots, k)
	}
	sort.Strings(slots)
	return slots
}

// Validate confere se o material fornece toda textura e todo sampler que o
// pixel shader declara. Slots em provided são preenchidos pelo frame (mapa
// de sombra, por exemplo) e não precisam estar no material.
func (m *Material) Validate(provided ...string) error {
	if m.VertexShader == nil || m.PixelShader == nil {
		return fmt.Errorf("material %q: %w", m.Name, ErrNoShader)
	}
	if m.VertexShader.Stage != StageVertex {
		return fmt.Errorf("material %q: %q: %w", m.Name, m.VertexShader.Name, ErrWrongStage)
	}
	if m.PixelShader.Stage != StagePixel {
		return fmt.Errorf("material %q: %q: %w", m.Name, m.PixelShader.Name, ErrWrongStage)
	}

	fromFrame := make(map[string]bool, len(provided))
	for _, p := range provided {
		fromFrame[p] = true
	}

	for _, texSlot := range SortedSlots(m.PixelShader.Textures) {
		sampSlot := m.PixelShader.Textures[texSlot]
		if _, ok := m.Texture(texSlot); !ok && !fromFrame[texSlot] {
			return fmt.Errorf("material %q, slot %q: %w", m.Name, texSlot, ErrMissingTexture)
		}
		if _, ok := m.Sampler(sampSlot); !ok && !fromFrame[sampSlot] {
			return fmt.Errorf("material %q, slot %q: %w", m.Name, sampSlot, ErrMissingSampler)
		}
	}
	return nil
}

// SortedSlots devolve as chaves de um mapa de slots em ordem estável.
func SortedSlots(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
