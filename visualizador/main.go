package main

import (
	"flag"
	"os"
	"runtime"

	"LumenForge/shared/config"
	"LumenForge/shared/logging"
	"LumenForge/visualizador/internal/app"

	"go.uber.org/zap"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	scenePath := flag.String("scene", "", "Arquivo de cena (padrão: o do config.yaml)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar HUD e logs de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Carregar configurações
	cfg := config.Load()

	// Flags sobrescrevem o config salvo
	if *scenePath != "" {
		cfg.Paths.Scene = *scenePath
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
		cfg.Logging.Debug = true
	}
	if *width > 0 {
		cfg.Window.Width = int32(*width)
	}
	if *height > 0 {
		cfg.Window.Height = int32(*height)
	}
	cfg.Validate()

	_, done, err := logging.Setup(cfg.Logging.File, cfg.Logging.Debug)
	if err != nil {
		// sem arquivo de log, segue só no console
		_, done, err = logging.Setup("", cfg.Logging.Debug)
		if err != nil {
			os.Exit(1)
		}
	}

	zap.S().Info("--- INICIANDO LUMENFORGE ---")

	application := app.New(cfg)
	if err := application.Run(); err != nil {
		zap.S().Errorf("[LumenForge] Erro fatal: %v", err)
		done()
		os.Exit(1)
	}
	done()
}
