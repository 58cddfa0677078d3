package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"LumenForge/shared/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsChangedShader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lit.ps")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	sh, err := ReadShader(path, scene.StagePixel)
	require.NoError(t, err)
	builtinSh, err := ReadShader("builtin:lit_vs", scene.StageVertex)
	require.NoError(t, err)

	w, err := NewWatcher([]*scene.Shader{sh, builtinSh})
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, 1, w.Watched())

	// sem eventos Poll volta na hora
	assert.Empty(t, w.Poll())

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	var reloaded []*scene.Shader
	require.Eventually(t, func() bool {
		reloaded = append(reloaded, w.Poll()...)
		return len(reloaded) > 0
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, "v2", sh.Source)
	assert.Equal(t, 1, sh.Version)
	assert.Equal(t, 0, builtinSh.Version)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sky.ps")
	require.NoError(t, os.WriteFile(path, []byte("sky"), 0o644))
	sh, err := ReadShader(path, scene.StagePixel)
	require.NoError(t, err)

	w, err := NewWatcher([]*scene.Shader{sh})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, w.Poll())
	assert.Equal(t, 0, sh.Version)
}
