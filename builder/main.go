package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// component é um binário do projeto.
type component struct {
	name    string
	pkg     string
	output  string
	cgo     bool
	ldflags string
}

var wait bool

func main() {
	static := flag.Bool("static", runtime.GOOS == "windows", "Linkar estaticamente os binários com CGO")
	flag.BoolVar(&wait, "wait", runtime.GOOS == "windows", "Esperar Enter antes de sair")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║      LumenForge Native Builder       ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	// 1. Configurar Ambiente
	setupEnvironment()

	components := plan(runtime.GOOS, *static)
	for i, c := range components {
		fmt.Printf(ColorYellow+"\n[%d/%d]"+ColorReset, i+1, len(components))
		if err := buildComponent(c); err != nil {
			fatal(err)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Dica: Execute o '%s' para abrir a cena de demonstração."+ColorReset+"\n", exeName("LumenForge", runtime.GOOS))

	pause()
}

// plan lista os binários na ordem de compilação. O visualizador e o
// inspetor usam CGO (raylib e SQLite); o launcher é Go puro.
func plan(goos string, static bool) []component {
	cgoFlags := "-s -w"
	if static {
		cgoFlags = "-extldflags=-static -s -w"
	}
	guiFlags := cgoFlags
	if goos == "windows" {
		guiFlags += " -H=windowsgui"
	}

	return []component{
		{"VISUALIZADOR (CGO + GUI)", "visualizador", exeName("visualizador/visualizador", goos), true, guiFlags},
		{"INSPETOR (CGO)", "visualizador/inspetor", exeName("visualizador/inspetor/inspetor", goos), true, cgoFlags},
		{"LAUNCHER (Pure Go)", "launcher", exeName("LumenForge", goos), false, "-s -w"},
	}
}

func exeName(base, goos string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

func buildComponent(c component) error {
	fmt.Printf(ColorYellow+" Compilando %s..."+ColorReset+"\n", c.name)

	cgoValue := "0"
	if c.cgo {
		cgoValue = "1"
	}

	args := []string{"build", "-ldflags", c.ldflags, "-o", c.output, "./" + c.pkg}
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(), "CGO_ENABLED="+cgoValue)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %w", c.name, err)
	}

	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", c.name, c.output)
	return nil
}

func pause() {
	if !wait {
		return
	}
	fmt.Println("\nPressione Enter para sair...")
	fmt.Scanln()
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	pause()
	os.Exit(1)
}
