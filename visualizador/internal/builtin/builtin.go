// Package builtin guarda os recursos procedurais referenciados na cena por
// "builtin:<nome>": fontes GLSL, malhas geradas e texturas geradas.
package builtin

import (
	"sort"
	"strings"
)

const Prefix = "builtin:"

// Name separa o nome de um caminho "builtin:<nome>".
func Name(path string) (string, bool) {
	if !strings.HasPrefix(path, Prefix) {
		return "", false
	}
	return strings.TrimPrefix(path, Prefix), true
}

// Malhas geradas pelo backend.
const (
	MeshCube       = "cube"
	MeshSphere     = "sphere"
	MeshCylinder   = "cylinder"
	MeshTorus      = "torus"
	MeshHelix      = "helix"
	MeshQuad       = "quad"
	MeshDoubleQuad = "quad_double_sided"
	MeshSkybox     = "skybox"
)

// Texturas geradas pelo backend.
const (
	TextureWhite    = "white"
	TextureChecker  = "checker"
	TextureGrid     = "grid"
	TextureSkySide  = "sky_side"
	TextureSkyUp    = "sky_up"
	TextureSkyDown  = "sky_down"
	TextureSkyNight = "sky_night"
)

var meshes = map[string]bool{
	MeshCube: true, MeshSphere: true, MeshCylinder: true, MeshTorus: true,
	MeshHelix: true, MeshQuad: true, MeshDoubleQuad: true, MeshSkybox: true,
}

var textures = map[string]bool{
	TextureWhite: true, TextureChecker: true, TextureGrid: true,
	TextureSkySide: true, TextureSkyUp: true, TextureSkyDown: true, TextureSkyNight: true,
}

func IsMesh(name string) bool    { return meshes[name] }
func IsTexture(name string) bool { return textures[name] }

func MeshNames() []string    { return sortedKeys(meshes) }
func TextureNames() []string { return sortedKeys(textures) }

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
