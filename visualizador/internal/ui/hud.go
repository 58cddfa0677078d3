package ui

import (
	"fmt"

	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

// HUDInfo reúne o que o HUD mostra além do próprio estado.
type HUDInfo struct {
	FPS        int32
	CameraName string
	CameraPos  mgl32.Vec3
	Cameras    int
	Width      int
	Height     int
	ShadowSize int
	Stats      render.FrameStats
	Scene      *scene.Scene
	Status     string
}

// Lines monta as linhas de texto do HUD, de cima para baixo.
func (s *State) Lines(info HUDInfo) []string {
	lines := []string{
		fmt.Sprintf("%s | FPS %d", s.Title, info.FPS),
		fmt.Sprintf("Camera %s (%d/%d)  pos %.1f %.1f %.1f", info.CameraName, s.ActiveCamera+1, info.Cameras,
			info.CameraPos.X(), info.CameraPos.Y(), info.CameraPos.Z()),
		fmt.Sprintf("Resolucao %dx%d | mapa de sombra %dx%d", info.Width, info.Height, info.ShadowSize, info.ShadowSize),
		fmt.Sprintf("Sombras %s | Pos %s | Blur %d | Aberracao %s %.3f",
			onOff(s.Shadows), s.postLabel(), s.BlurRadius, onOff(s.Aberration), s.AberrationStrength),
		fmt.Sprintf("Fundo %.2f %.2f %.2f", s.Background.X(), s.Background.Y(), s.Background.Z()),
		fmt.Sprintf("Draws sombra %d cena %d puladas %d | uploads %d evitados %d",
			info.Stats.ShadowDraws, info.Stats.SceneDraws, info.Stats.SkippedDraws, info.Stats.Uploads, info.Stats.Skipped),
	}

	if sc := info.Scene; sc != nil {
		lines = append(lines, fmt.Sprintf("Entidades %d | Luzes %d", len(sc.Entities), len(sc.Lights)))
		if info.Stats.DroppedLights > 0 {
			lines = append(lines, fmt.Sprintf("Luzes descartadas: %d", info.Stats.DroppedLights))
		}
		lines = append(lines, s.lightLines(sc)...)
		if len(sc.Entities) > 0 && s.Selected < len(sc.Entities) {
			lines = append(lines, entityLines(sc.Entities[s.Selected])...)
		}
	}

	if info.Status != "" {
		lines = append(lines, info.Status)
	}
	return lines
}

// entityLines mostra a entidade selecionada e os dados da malha dela.
func entityLines(e *scene.Entity) []string {
	pos := e.Transform.GetPosition()
	rot := e.Transform.GetPitchYawRoll()
	scl := e.Transform.GetScale()
	lines := []string{
		fmt.Sprintf("> %s", e.Name),
		fmt.Sprintf("  pos %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("  rot %.1f %.1f %.1f", mgl32.RadToDeg(rot.X()), mgl32.RadToDeg(rot.Y()), mgl32.RadToDeg(rot.Z())),
		fmt.Sprintf("  escala %.2f %.2f %.2f", scl.X(), scl.Y(), scl.Z()),
	}
	if e.Mesh != nil {
		lines = append(lines, fmt.Sprintf("  malha %s: %d triangulos, %d vertices, %d indices",
			e.Mesh.Name, e.Mesh.TriangleCount(), e.Mesh.VertexCount, e.Mesh.IndexCount))
	}
	if m := e.Material; m != nil {
		lines = append(lines, fmt.Sprintf("  material %s: tint %.2f %.2f %.2f %.2f rugosidade %.2f",
			m.Name, m.ColorTint[0], m.ColorTint[1], m.ColorTint[2], m.ColorTint[3], m.Roughness()))
	}
	return lines
}

// lightLines lista as luzes na ordem da cena; ">" marca a selecionada e
// "*" a que projeta sombra.
func (s *State) lightLines(sc *scene.Scene) []string {
	caster := sc.ShadowCasterIndex()
	lines := make([]string, 0, len(sc.Lights))
	for i, l := range sc.Lights {
		mark := " "
		if i == s.SelectedLight {
			mark = ">"
		}
		shadow := ""
		if i == caster {
			shadow = " *"
		}
		lines = append(lines, fmt.Sprintf("%s %d %s %s: intensidade %.2f cor %.2f %.2f %.2f%s",
			mark, i, l.Type, l.Name, l.Intensity, l.Color.X(), l.Color.Y(), l.Color.Z(), shadow))
	}
	return lines
}

// postLabel indica quando o pós-processamento está ligado mas não altera
// a imagem.
func (s *State) postLabel() string {
	if !s.Post {
		return "off"
	}
	if s.postParams().Identity() {
		return "on (identidade)"
	}
	return "on"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
