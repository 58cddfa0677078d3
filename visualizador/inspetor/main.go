// Inspetor valida cenas e lista snapshots sem abrir janela.
package main

import (
	"fmt"
	"os"

	"LumenForge/shared/logging"

	"go.uber.org/zap"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

func main() {
	_, done, err := logging.Setup("", os.Getenv("LF_DEBUG") != "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = run(os.Args[1:], os.Stdout)
	if err != nil {
		zap.S().Debugf("[Inspetor] %+v", err)
		fmt.Fprintln(os.Stderr, ColorRed+"ERRO: "+err.Error()+ColorReset)
	}
	done()
	if err != nil {
		os.Exit(1)
	}
}
