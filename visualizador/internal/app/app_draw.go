package app

import (
	"fmt"

	"LumenForge/visualizador/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize   = 16
	hudLineHeight = 20
	hudPadding    = 10
)

// draw renderiza o frame pelo pipeline, com o HUD como overlay.
func (a *App) draw() error {
	cam := a.activeCamera()
	settings := a.UI.RenderSettings(a.Config.Shadow)

	if err := a.pipeline.Render(a.scene, cam, settings, a.drawHUD); err != nil {
		return fmt.Errorf("falha no frame %d: %w", a.frameCount, err)
	}
	return nil
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.UI.ShowHUD {
		rl.DrawText("F1: HUD", hudPadding, hudPadding, hudFontSize, rl.RayWhite)
		return
	}

	cam := a.activeCamera()
	status := ""
	if rl.GetTime() < a.statusUntil {
		status = a.status
	}

	w, h := a.pipeline.Size()
	shadowSize, _ := a.pipeline.ShadowTarget().Size()
	lines := a.UI.Lines(ui.HUDInfo{
		FPS:        rl.GetFPS(),
		CameraName: cam.Name,
		CameraPos:  cam.GetPosition(),
		Cameras:    len(a.cameras),
		Width:      w,
		Height:     h,
		ShadowSize: shadowSize,
		Stats:      a.pipeline.Stats,
		Scene:      a.scene,
		Status:     status,
	})

	// Fundo semi-transparente
	width := int32(0)
	for _, l := range lines {
		if w := rl.MeasureText(l, hudFontSize); w > width {
			width = w
		}
	}
	width += 2 * hudPadding
	height := int32(len(lines))*hudLineHeight + hudPadding
	rl.DrawRectangle(hudPadding, hudPadding, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(hudPadding, hudPadding, width, height, rl.NewColor(50, 50, 50, 255))

	y := int32(2 * hudPadding)
	for i, l := range lines {
		col := rl.White
		if i == 0 {
			col = fpsColor(rl.GetFPS())
		}
		rl.DrawText(l, 2*hudPadding, y, hudFontSize, col)
		y += hudLineHeight
	}
}

func fpsColor(fps int32) rl.Color {
	switch {
	case fps < 30:
		return rl.Red
	case fps < 50:
		return rl.Yellow
	}
	return rl.Green
}
