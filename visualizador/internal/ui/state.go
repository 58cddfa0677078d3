// Package ui guarda o estado da interface de depuração. O HUD lê e altera
// este mesmo estado; nada aqui depende do raylib.
package ui

import (
	"LumenForge/shared/config"
	"LumenForge/shared/util"
	"LumenForge/visualizador/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

// TitleChoice é o título escolhido para a janela.
type TitleChoice int

const (
	TitleDebugInspector TitleChoice = iota
	TitleDebugWindow
	TitleInspectorWindow
	titleCount
)

func (t TitleChoice) String() string {
	switch t {
	case TitleDebugWindow:
		return "Debug Window"
	case TitleInspectorWindow:
		return "Inspector Window"
	}
	return "Debug Inspector"
}

// Passos dos atalhos.
const (
	BackgroundStep = 0.05
	StrengthStep   = 0.001
	TintStep       = 0.05
	RoughnessStep  = 0.05
	IntensityStep  = 0.1
)

// DefaultBackground é o azul usado quando a configuração não define outro.
var DefaultBackground = mgl32.Vec4{0.4, 0.6, 0.75, 1}

type State struct {
	Background         mgl32.Vec4
	ShowHUD            bool
	Shadows            bool
	Post               bool
	BlurRadius         int
	Aberration         bool
	AberrationStrength float32
	Selected           int
	SelectedLight      int
	ActiveCamera       int
	Title              TitleChoice
}

func New(cfg *config.Config) *State {
	s := &State{
		Background: DefaultBackground,
		ShowHUD:    cfg.ShowDebugInfo,
		Shadows:    cfg.Shadow.Enabled,
		Post:       cfg.Post.Enabled,
		Aberration: cfg.Post.Aberration,
	}
	s.SetBlurRadius(cfg.Post.BlurRadius)
	s.SetAberrationStrength(cfg.Post.AberrationStrength)
	return s
}

// SetBlurRadius limita o raio a [0, MaxBlurRadius].
func (s *State) SetBlurRadius(r int) {
	s.BlurRadius = util.ClampInt(r, 0, render.MaxBlurRadius)
}

func (s *State) SetAberrationStrength(v float32) {
	if v < 0 {
		v = 0
	}
	s.AberrationStrength = v
}

// AdjustBackground soma delta a um canal (0=R, 1=G, 2=B) mantendo [0,1].
func (s *State) AdjustBackground(channel int, delta float32) {
	if channel < 0 || channel > 2 {
		return
	}
	s.Background[channel] = util.Clamp(s.Background[channel]+delta, 0, 1)
}

// Select escolhe a entidade i, dando a volta nos dois sentidos.
func (s *State) Select(i, count int) {
	s.Selected = util.Wrap(i, count)
}

// SelectLight escolhe a luz i, dando a volta nos dois sentidos.
func (s *State) SelectLight(i, count int) {
	s.SelectedLight = util.Wrap(i, count)
}

func (s *State) NextCamera(count int) {
	s.ActiveCamera = util.Wrap(s.ActiveCamera+1, count)
}

func (s *State) CycleTitle() {
	s.Title = (s.Title + 1) % titleCount
}

// RenderSettings traduz o estado para o pipeline. O tamanho e a projeção
// da sombra vêm da configuração.
func (s *State) RenderSettings(shadow config.ShadowConfig) render.Settings {
	return render.Settings{
		Background: s.Background,
		Shadows: render.ShadowSettings{
			Enabled:  s.Shadows,
			MapSize:  shadow.MapSize,
			Extent:   shadow.Extent,
			Distance: shadow.Distance,
			Near:     shadow.Near,
			Far:      shadow.Far,
		},
		Post: s.postParams(),
	}
}

func (s *State) postParams() render.PostParams {
	return render.PostParams{
		Enabled:            s.Post,
		BlurRadius:         s.BlurRadius,
		Aberration:         s.Aberration,
		AberrationStrength: s.AberrationStrength,
	}
}
