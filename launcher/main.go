package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

func main() {
	scene := flag.String("scene", "assets/scenes/demo.yaml", "Cena aberta pelo visualizador")
	debug := flag.Bool("debug", false, "Abrir o visualizador com HUD e logs de debug")
	flag.Parse()

	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║         LumenForge Launcher          ║")
	fmt.Println("╚══════════════════════════════════════╝")

	// 1. Validar a cena sem abrir janela
	fmt.Println("[1/2] Validando cena...")
	inspector, err := binaryPath("visualizador/inspetor/inspetor")
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do inspetor: %v", err)
	}
	check := exec.Command(inspector, "validate", *scene)
	check.Stdout = os.Stdout
	check.Stderr = os.Stderr
	if err := check.Run(); err != nil {
		log.Fatalf("Cena inválida (%s): %v", *scene, err)
	}

	// 2. Abrir o visualizador
	fmt.Println("[2/2] Abrindo Visualizador...")
	viewer, err := binaryPath("visualizador/visualizador")
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do visualizador: %v", err)
	}

	cmd := exec.Command(viewer, visualizerArgs(*scene, *debug)...)
	if err := cmd.Start(); err != nil {
		fmt.Printf("ERRO CRÍTICO: Não foi possível executar o visualizador em %s\n", viewer)
		fmt.Printf("Detalhes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nSucesso! LumenForge foi iniciado.")
}

// binaryPath devolve o caminho absoluto do binário, com .exe no Windows.
func binaryPath(base string) (string, error) {
	if runtime.GOOS == "windows" {
		base += ".exe"
	}
	return filepath.Abs(base)
}

func visualizerArgs(scene string, debug bool) []string {
	args := []string{"-scene", scene}
	if debug {
		args = append(args, "-debug")
	}
	return args
}
