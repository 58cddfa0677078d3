package ui

import (
	"LumenForge/shared/scene"
	"LumenForge/shared/util"
)

// Action é um atalho do HUD, já traduzido da tecla.
type Action int

const (
	ActionNone Action = iota
	ActionToggleHUD
	ActionToggleShadows
	ActionTogglePost
	ActionToggleAberration
	ActionBlurUp
	ActionBlurDown
	ActionStrengthUp
	ActionStrengthDown
	ActionSelectNext
	ActionSelectPrev
	ActionNextCamera
	ActionCycleTitle
	ActionRedUp
	ActionRedDown
	ActionGreenUp
	ActionGreenDown
	ActionBlueUp
	ActionBlueDown

	// Ações que editam a cena.
	ActionTintRedUp
	ActionTintRedDown
	ActionTintGreenUp
	ActionTintGreenDown
	ActionTintBlueUp
	ActionTintBlueDown
	ActionRoughnessUp
	ActionRoughnessDown
	ActionLightNext
	ActionLightPrev
	ActionIntensityUp
	ActionIntensityDown
)

// Apply altera o estado conforme a ação. entities e cameras são as
// contagens atuais usadas nos ciclos.
func (s *State) Apply(a Action, entities, cameras int) {
	switch a {
	case ActionToggleHUD:
		s.ShowHUD = !s.ShowHUD
	case ActionToggleShadows:
		s.Shadows = !s.Shadows
	case ActionTogglePost:
		s.Post = !s.Post
	case ActionToggleAberration:
		s.Aberration = !s.Aberration
	case ActionBlurUp:
		s.SetBlurRadius(s.BlurRadius + 1)
	case ActionBlurDown:
		s.SetBlurRadius(s.BlurRadius - 1)
	case ActionStrengthUp:
		s.SetAberrationStrength(s.AberrationStrength + StrengthStep)
	case ActionStrengthDown:
		s.SetAberrationStrength(s.AberrationStrength - StrengthStep)
	case ActionSelectNext:
		s.Select(s.Selected+1, entities)
	case ActionSelectPrev:
		s.Select(s.Selected-1, entities)
	case ActionNextCamera:
		s.NextCamera(cameras)
	case ActionCycleTitle:
		s.CycleTitle()
	case ActionRedUp:
		s.AdjustBackground(0, BackgroundStep)
	case ActionRedDown:
		s.AdjustBackground(0, -BackgroundStep)
	case ActionGreenUp:
		s.AdjustBackground(1, BackgroundStep)
	case ActionGreenDown:
		s.AdjustBackground(1, -BackgroundStep)
	case ActionBlueUp:
		s.AdjustBackground(2, BackgroundStep)
	case ActionBlueDown:
		s.AdjustBackground(2, -BackgroundStep)
	}
}

// EditScene aplica as ações que alteram o material da entidade
// selecionada ou a luz selecionada. Retorna false quando a ação não é de
// edição ou não há alvo. Materiais são compartilhados: o tint vale para
// todas as entidades que usam o mesmo material.
func (s *State) EditScene(a Action, sc *scene.Scene) bool {
	if sc == nil {
		return false
	}

	switch a {
	case ActionTintRedUp, ActionTintRedDown, ActionTintGreenUp, ActionTintGreenDown,
		ActionTintBlueUp, ActionTintBlueDown, ActionRoughnessUp, ActionRoughnessDown:
		m := s.selectedMaterial(sc)
		if m == nil {
			return false
		}
		switch a {
		case ActionRoughnessUp:
			m.SetRoughness(m.Roughness() + RoughnessStep)
		case ActionRoughnessDown:
			m.SetRoughness(m.Roughness() - RoughnessStep)
		default:
			ch := int(a-ActionTintRedUp) / 2
			delta := float32(TintStep)
			if (a-ActionTintRedUp)%2 == 1 {
				delta = -delta
			}
			m.ColorTint[ch] = util.Clamp(m.ColorTint[ch]+delta, 0, 1)
		}
		return true

	case ActionLightNext, ActionLightPrev:
		if len(sc.Lights) == 0 {
			return false
		}
		step := 1
		if a == ActionLightPrev {
			step = -1
		}
		s.SelectLight(s.SelectedLight+step, len(sc.Lights))
		return true

	case ActionIntensityUp, ActionIntensityDown:
		if len(sc.Lights) == 0 {
			return false
		}
		s.SelectLight(s.SelectedLight, len(sc.Lights))
		l := &sc.Lights[s.SelectedLight]
		delta := float32(IntensityStep)
		if a == ActionIntensityDown {
			delta = -delta
		}
		l.Intensity = max(l.Intensity+delta, 0)
		return true
	}
	return false
}

func (s *State) selectedMaterial(sc *scene.Scene) *scene.Material {
	if len(sc.Entities) == 0 {
		return nil
	}
	s.Select(s.Selected, len(sc.Entities))
	return sc.Entities[s.Selected].Material
}
