package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"LumenForge/shared/config"
	"LumenForge/shared/persistence"
	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/assets"
	"LumenForge/visualizador/internal/camera"
	"LumenForge/visualizador/internal/gpu"
	"LumenForge/visualizador/internal/render"
	"LumenForge/visualizador/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// statusDuration é quanto tempo (s) uma mensagem fica no HUD.
const statusDuration = 3.0

// App é a aplicação principal do LumenForge.
type App struct {
	Config    *config.Config
	ScenePath string
	UI        *ui.State

	loader   *gpu.Loader
	device   *gpu.Device
	input    gpu.Input
	manager  *assets.Manager
	scene    *scene.Scene
	cameras  []*camera.Camera
	pipeline *render.Pipeline
	watcher  *assets.Watcher
	store    *persistence.Store

	frameCount  int
	status      string
	statusUntil float64
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:    cfg,
		ScenePath: cfg.Paths.Scene,
		UI:        ui.New(cfg),
	}
}

// Run abre a janela, carrega a cena e roda o loop principal. Erros de
// carga e de compilação de shader são fatais e voltam para o chamador.
func (a *App) Run() error {
	rl.SetConfigFlags(a.windowFlags())
	rl.InitWindow(a.Config.Window.Width, a.Config.Window.Height, a.windowTitle())
	defer rl.CloseWindow()
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Window.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.Window.TargetFPS)

	zap.S().Infof("[LumenForge] Janela inicializada: %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())

	if err := a.init(); err != nil {
		a.shutdown()
		return err
	}

	var runErr error
	for !rl.WindowShouldClose() {
		a.update()
		if err := a.draw(); err != nil {
			runErr = err
			break
		}
	}

	a.shutdown()
	return runErr
}

func (a *App) windowFlags() uint32 {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if a.Config.Window.VSync {
		flags |= rl.FlagVsyncHint
	}
	return flags
}

func (a *App) windowTitle() string {
	return fmt.Sprintf("%s - %s", a.Config.Window.Title, a.UI.Title)
}

// init carrega a cena e cria o pipeline. Precisa da janela aberta.
func (a *App) init() error {
	a.loader = gpu.NewLoader()
	a.device = gpu.NewDevice()

	manager, loaded, err := assets.LoadFile(a.loader, a.ScenePath)
	if err != nil {
		return fmt.Errorf("falha ao carregar cena: %w", err)
	}
	a.manager = manager
	a.scene = loaded.Scene

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	a.cameras = assets.NewCameras(loaded.Cameras, aspect(w, h), a.Config.Camera)

	a.pipeline, err = render.NewPipeline(a.device, loaded.Pipeline, a.Config.Shadow.MapSize, w, h)
	if err != nil {
		return fmt.Errorf("falha ao criar pipeline: %w", err)
	}

	if a.watcher, err = assets.NewWatcher(manager.Shaders()); err != nil {
		zap.S().Warnf("[App] Recarga de shaders desativada: %v", err)
	}

	if a.store, err = persistence.Open(a.Config.Paths.Snapshots, a.sceneName()); err != nil {
		zap.S().Warnf("[App] Snapshots desativados: %v", err)
	}

	zap.S().Infof("[App] Cena %s: %d entidades, %d luzes, %d câmeras",
		a.ScenePath, len(a.scene.Entities), len(a.scene.Lights), len(a.cameras))
	return nil
}

func (a *App) sceneName() string {
	base := filepath.Base(a.ScenePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (a *App) activeCamera() *camera.Camera {
	if a.UI.ActiveCamera < 0 || a.UI.ActiveCamera >= len(a.cameras) {
		a.UI.ActiveCamera = 0
	}
	return a.cameras[a.UI.ActiveCamera]
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	if a.watcher != nil {
		if changed := a.watcher.Poll(); len(changed) > 0 {
			a.setStatus(fmt.Sprintf("%d shader(s) recarregado(s)", len(changed)))
		}
	}

	a.handleResize()
	a.updateInput()
	a.updateCamera()
}

// handleResize refaz apenas as projeções e o alvo intermediário.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	for _, c := range a.cameras {
		c.UpdateProjectionMatrix(aspect(w, h))
	}
	if err := a.pipeline.Resize(w, h); err != nil {
		zap.S().Errorf("[App] Erro ao redimensionar: %v", err)
		return
	}
	zap.S().Debugf("[App] Janela redimensionada para %dx%d", w, h)
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = rl.GetTime() + statusDuration
	zap.S().Infof("[App] %s", msg)
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	zap.S().Info("[App] Finalizando aplicação...")

	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			zap.S().Warnf("[App] Erro ao fechar snapshots: %v", err)
		}
	}
	if a.pipeline != nil {
		a.pipeline.Close()
	}
	if a.loader != nil {
		a.loader.Close()
	}

	a.Config.ShowDebugInfo = a.UI.ShowHUD
	a.Config.Shadow.Enabled = a.UI.Shadows
	a.Config.Post.Enabled = a.UI.Post
	a.Config.Post.BlurRadius = a.UI.BlurRadius
	a.Config.Post.Aberration = a.UI.Aberration
	a.Config.Post.AberrationStrength = a.UI.AberrationStrength
	if err := a.Config.Save(); err != nil {
		zap.S().Errorf("[LumenForge] Erro ao salvar configurações: %v", err)
	}
}

func aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}
