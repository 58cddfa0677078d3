package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizerArgs(t *testing.T) {
	assert.Equal(t, []string{"-scene", "a.yaml"}, visualizerArgs("a.yaml", false))
	assert.Equal(t, []string{"-scene", "a.yaml", "-debug"}, visualizerArgs("a.yaml", true))
}

func TestBinaryPathIsAbsolute(t *testing.T) {
	p, err := binaryPath("visualizador/visualizador")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p))
	assert.Contains(t, p, filepath.Join("visualizador", "visualizador"))
}
