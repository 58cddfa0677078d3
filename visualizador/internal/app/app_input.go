package app

import (
	"LumenForge/visualizador/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Velocidades de edição da entidade selecionada.
const (
	entityMoveSpeed   = 3.0 // unidades/s
	entityRotateSpeed = 1.5 // rad/s
)

var hudKeys = map[int32]ui.Action{
	rl.KeyF1:           ui.ActionToggleHUD,
	rl.KeyF2:           ui.ActionToggleShadows,
	rl.KeyF3:           ui.ActionTogglePost,
	rl.KeyF4:           ui.ActionToggleAberration,
	rl.KeyRightBracket: ui.ActionBlurUp,
	rl.KeyLeftBracket:  ui.ActionBlurDown,
	rl.KeyEqual:        ui.ActionStrengthUp,
	rl.KeyMinus:        ui.ActionStrengthDown,
	rl.KeyC:            ui.ActionNextCamera,
	rl.KeyT:            ui.ActionCycleTitle,
}

// Com Shift a ação troca para a segunda da dupla.
var shiftedKeys = map[int32][2]ui.Action{
	rl.KeyTab:   {ui.ActionSelectNext, ui.ActionSelectPrev},
	rl.KeyOne:   {ui.ActionRedUp, ui.ActionRedDown},
	rl.KeyTwo:   {ui.ActionGreenUp, ui.ActionGreenDown},
	rl.KeyThree: {ui.ActionBlueUp, ui.ActionBlueDown},
	rl.KeyFour:  {ui.ActionTintRedUp, ui.ActionTintRedDown},
	rl.KeyFive:  {ui.ActionTintGreenUp, ui.ActionTintGreenDown},
	rl.KeySix:   {ui.ActionTintBlueUp, ui.ActionTintBlueDown},
	rl.KeySeven: {ui.ActionRoughnessUp, ui.ActionRoughnessDown},
	rl.KeyL:     {ui.ActionLightNext, ui.ActionLightPrev},
	rl.KeyI:     {ui.ActionIntensityUp, ui.ActionIntensityDown},
}

// updateCamera move a câmera ativa.
func (a *App) updateCamera() {
	a.activeCamera().Update(rl.GetFrameTime(), a.input)
}

// updateInput processa os atalhos do HUD e a edição da entidade
// selecionada.
func (a *App) updateInput() {
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	entities, cameras := len(a.scene.Entities), len(a.cameras)

	for key, action := range hudKeys {
		if rl.IsKeyPressed(key) {
			a.applyAction(action, entities, cameras)
		}
	}
	for key, pair := range shiftedKeys {
		if rl.IsKeyPressed(key) {
			action := pair[0]
			if shift {
				action = pair[1]
			}
			a.applyAction(action, entities, cameras)
		}
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyF5) {
		a.saveSnapshot()
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		a.restoreSnapshot()
	}

	a.editSelected()
}

func (a *App) applyAction(action ui.Action, entities, cameras int) {
	title := a.UI.Title
	a.UI.Apply(action, entities, cameras)
	if a.UI.EditScene(action, a.scene) {
		zap.S().Debugf("[App] Edição %d aplicada", action)
	}

	switch action {
	case ui.ActionCycleTitle:
		if a.UI.Title != title {
			rl.SetWindowTitle(a.windowTitle())
		}
	case ui.ActionNextCamera:
		zap.S().Infof("[Camera] Câmera ativa: %s", a.activeCamera().Name)
	case ui.ActionToggleShadows:
		zap.S().Infof("[App] Sombras: %v", a.UI.Shadows)
	case ui.ActionTogglePost:
		zap.S().Infof("[App] Pós-processamento: %v", a.UI.Post)
	}
}

// editSelected move a entidade selecionada com as setas (XZ), PageUp e
// PageDown (Y) e gira com R.
func (a *App) editSelected() {
	if len(a.scene.Entities) == 0 {
		return
	}
	e := a.scene.Entities[a.UI.Selected]
	dt := rl.GetFrameTime()
	step := entityMoveSpeed * dt

	var dx, dy, dz float32
	if rl.IsKeyDown(rl.KeyRight) {
		dx += step
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		dx -= step
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dz += step
	}
	if rl.IsKeyDown(rl.KeyDown) {
		dz -= step
	}
	if rl.IsKeyDown(rl.KeyPageUp) {
		dy += step
	}
	if rl.IsKeyDown(rl.KeyPageDown) {
		dy -= step
	}
	if dx != 0 || dy != 0 || dz != 0 {
		e.Transform.MoveAbsolute(dx, dy, dz)
	}
	if rl.IsKeyDown(rl.KeyR) {
		e.Transform.Rotate(0, entityRotateSpeed*dt, 0)
	}
}
