package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Sky é desenhado por último no passe principal, atrás de toda a geometria.
type Sky struct {
	Mesh         *Mesh
	Cubemap      *Texture
	Sampler      *Sampler
	VertexShader *Shader
	PixelShader  *Shader
}

// Scene agrega tudo o que o frame desenha. A ordem de Lights só importa
// para a UI.
type Scene struct {
	Meshes    []*Mesh
	Materials []*Material
	Entities  []*Entity
	Lights    []Light
	Ambient   mgl32.Vec3
	Sky       *Sky

	// ShadowLight é o índice em Lights da luz que projeta sombra (-1 = a
	// primeira direcional).
	ShadowLight int
}

func New() *Scene {
	return &Scene{ShadowLight: -1}
}

// AddEntity rejeita nomes repetidos, já que o ID deriva do nome.
func (s *Scene) AddEntity(e *Entity) error {
	if _, ok := s.EntityByID(e.ID); ok {
		return fmt.Errorf("entidade duplicada: %q", e.Name)
	}
	s.Entities = append(s.Entities, e)
	return nil
}

func (s *Scene) EntityByID(id uuid.UUID) (*Entity, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

func (s *Scene) EntityByName(name string) (*Entity, bool) {
	return s.EntityByID(EntityID(name))
}

// ShadowCasterIndex devolve o índice em Lights da luz direcional usada no
// passe de sombra, ou -1.
func (s *Scene) ShadowCasterIndex() int {
	if s.ShadowLight >= 0 && s.ShadowLight < len(s.Lights) && s.Lights[s.ShadowLight].Type == LightDirectional {
		return s.ShadowLight
	}
	for i, l := range s.Lights {
		if l.Type == LightDirectional {
			return i
		}
	}
	return -1
}

// ShadowCaster devolve a luz direcional usada no passe de sombra.
func (s *Scene) ShadowCaster() (Light, bool) {
	i := s.ShadowCasterIndex()
	if i < 0 {
		return Light{}, false
	}
	return s.Lights[i], true
}
