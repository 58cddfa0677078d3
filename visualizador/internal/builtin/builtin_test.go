package builtin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	name, ok := Name("builtin:cube")
	assert.True(t, ok)
	assert.Equal(t, "cube", name)

	_, ok = Name("assets/meshes/cube.obj")
	assert.False(t, ok)
}

func TestShaderSlotsMatchSource(t *testing.T) {
	for _, name := range ShaderNames() {
		src, ok := Shader(name)
		assert.True(t, ok, name)
		assert.True(t, strings.Contains(src, "#version 330"), name)

		// todo slot declarado existe como uniform na fonte
		for slot := range ShaderSlots(name) {
			assert.Contains(t, src, " "+slot+";", "%s: %s", name, slot)
		}
	}
}

func TestShaderSlotsIsCopy(t *testing.T) {
	slots := ShaderSlots(ShaderLitPS)
	slots["Albedo"] = "outro"
	assert.Equal(t, "BasicSampler", ShaderSlots(ShaderLitPS)["Albedo"])
	assert.Nil(t, ShaderSlots(ShaderLitVS))
}

func TestKnownResources(t *testing.T) {
	assert.True(t, IsMesh(MeshHelix))
	assert.False(t, IsMesh("teapot"))
	assert.True(t, IsTexture(TextureChecker))
	assert.Len(t, MeshNames(), 8)
	assert.Equal(t, MeshNames()[0], MeshCube)
}
