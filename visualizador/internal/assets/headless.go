package assets

import (
	"fmt"

	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/builtin"
)

// HeadlessLoader valida a cena sem GPU: confere arquivos e nomes builtin e
// devolve recursos sem handle. Usado pelo inspetor e pelos testes.
type HeadlessLoader struct{}

func (HeadlessLoader) LoadMesh(path string) (*scene.Mesh, error) {
	if name, ok := builtin.Name(path); ok {
		if !builtin.IsMesh(name) {
			return nil, fmt.Errorf("malha %q: %w", path, ErrUnknownBuiltin)
		}
		return &scene.Mesh{Name: name, Path: path}, nil
	}
	if err := checkFile("malha", path); err != nil {
		return nil, err
	}
	return &scene.Mesh{Name: path, Path: path}, nil
}

func (HeadlessLoader) LoadTexture(path string) (*scene.Texture, error) {
	if name, ok := builtin.Name(path); ok {
		if !builtin.IsTexture(name) {
			return nil, fmt.Errorf("textura %q: %w", path, ErrUnknownBuiltin)
		}
		return &scene.Texture{Name: name, Path: path}, nil
	}
	if err := checkFile("textura", path); err != nil {
		return nil, err
	}
	return &scene.Texture{Name: path, Path: path}, nil
}

func (l HeadlessLoader) LoadCubemap(faces [6]string) (*scene.Texture, error) {
	for _, f := range faces {
		if _, err := l.LoadTexture(f); err != nil {
			return nil, fmt.Errorf("cubemap: %w", err)
		}
	}
	return &scene.Texture{Name: "cubemap", Path: faces[0], Cube: true}, nil
}

func (HeadlessLoader) LoadVertexShader(path string) (*scene.Shader, error) {
	return ReadShader(path, scene.StageVertex)
}

func (HeadlessLoader) LoadPixelShader(path string) (*scene.Shader, error) {
	return ReadShader(path, scene.StagePixel)
}

func (HeadlessLoader) NewSampler(name string, filter scene.Filter, wrap scene.Wrap, comparison bool) *scene.Sampler {
	return NewSampler(name, filter, wrap, comparison)
}
