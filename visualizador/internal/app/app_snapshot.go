package app

import (
	"errors"
	"fmt"
	"time"

	"LumenForge/shared/persistence"
	"LumenForge/visualizador/internal/camera"

	"go.uber.org/zap"
)

// saveSnapshot grava o estado editável da cena (F5).
func (a *App) saveSnapshot() {
	if a.store == nil {
		a.setStatus("Snapshots indisponíveis")
		return
	}

	label := time.Now().Format("2006-01-02 15:04:05")
	snap := persistence.Capture(label, a.sceneName(), a.scene, cameraPoses(a.cameras),
		a.UI.Background.Vec3(), a.UI.ActiveCamera)
	if err := a.store.Save(snap); err != nil {
		zap.S().Errorf("[App] %v", err)
		a.setStatus("Erro ao salvar snapshot")
		return
	}
	a.setStatus(fmt.Sprintf("Snapshot %d salvo", snap.ID))
}

// restoreSnapshot aplica o snapshot mais recente da cena (F9).
func (a *App) restoreSnapshot() {
	if a.store == nil {
		a.setStatus("Snapshots indisponíveis")
		return
	}

	snap, err := a.store.Latest(a.sceneName())
	if errors.Is(err, persistence.ErrNoSnapshot) {
		a.setStatus("Nenhum snapshot salvo")
		return
	}
	if err != nil {
		zap.S().Errorf("[App] Erro ao ler snapshot: %v", err)
		a.setStatus("Erro ao ler snapshot")
		return
	}

	applied := persistence.Apply(snap, a.scene)
	for _, c := range a.cameras {
		if pose, ok := snap.CameraByName(c.Name); ok {
			c.Transform.SetPositionV(pose.Position())
			c.Transform.SetRotationV(pose.Rotation())
			c.SetFov(pose.Fov)
			c.UpdateViewMatrix()
		}
	}

	bg := snap.Background()
	a.UI.Background = bg.Vec4(a.UI.Background.W())
	a.UI.ActiveCamera = restoredCamera(snap.ActiveCamera, a.UI.ActiveCamera, len(a.cameras))
	a.setStatus(fmt.Sprintf("Snapshot %d restaurado (%d registros)", snap.ID, applied))
}

// restoredCamera devolve o índice salvo quando ele ainda existe, senão
// mantém o atual.
func restoredCamera(saved, current, count int) int {
	if saved < 0 || saved >= count {
		return current
	}
	return saved
}

func cameraPoses(cams []*camera.Camera) []persistence.Pose {
	poses := make([]persistence.Pose, 0, len(cams))
	for _, c := range cams {
		poses = append(poses, persistence.Pose{
			Name:     c.Name,
			Position: c.GetPosition(),
			Rotation: c.Transform.GetPitchYawRoll(),
			Fov:      c.GetFov(),
		})
	}
	return poses
}
