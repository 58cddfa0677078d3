// Package logging configura o zap global usado pelos binários.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup cria o logger (console no stderr e, se file não for vazio, no
// arquivo também) e instala como global para zap.S(). A função devolvida
// descarrega os buffers e restaura o logger anterior.
func Setup(file string, debug bool) (*zap.Logger, func(), error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder

	outputs := []string{"stderr"}
	if file != "" {
		outputs = append(outputs, file)
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       debug,
		Encoding:          "console",
		EncoderConfig:     encoder,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !debug,
		DisableStacktrace: true,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao criar logger: %w", err)
	}

	restore := zap.ReplaceGlobals(logger)
	return logger, func() {
		_ = logger.Sync()
		restore()
	}, nil
}
