package render

import (
	"LumenForge/shared/config"
	"LumenForge/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

const MaxBlurRadius = config.MaxBlurRadius

// PostParams controla o passe de tela cheia.
type PostParams struct {
	Enabled            bool
	BlurRadius         int
	Aberration         bool
	AberrationStrength float32
}

// Effective devolve os parâmetros limitados. Com o pós-processamento
// desligado o passe ainda roda, com filtro identidade.
func (p PostParams) Effective() PostParams {
	if !p.Enabled {
		return PostParams{}
	}
	p.BlurRadius = util.ClampInt(p.BlurRadius, 0, MaxBlurRadius)
	if p.AberrationStrength < 0 {
		p.AberrationStrength = 0
	}
	return p
}

// Identity diz se o filtro não altera a imagem.
func (p PostParams) Identity() bool {
	e := p.Effective()
	return e.BlurRadius == 0 && (!e.Aberration || e.AberrationStrength == 0)
}

// Uniforms devolve raio, deslocamento da aberração e tamanho do texel.
func (p PostParams) Uniforms(w, h int) (radius, aberration float32, texel mgl32.Vec2) {
	e := p.Effective()
	radius = float32(e.BlurRadius)
	if e.Aberration {
		aberration = e.AberrationStrength
	}
	if w > 0 && h > 0 {
		texel = mgl32.Vec2{1 / float32(w), 1 / float32(h)}
	}
	return radius, aberration, texel
}
