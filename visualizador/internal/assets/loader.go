package assets

import (
	"errors"
	"fmt"
	"os"

	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/builtin"
)

var ErrUnknownBuiltin = errors.New("recurso builtin desconhecido")

// Loader cria os recursos da cena. Caminhos "builtin:<nome>" resolvem para
// recursos procedurais. Qualquer falha é fatal para a carga da cena.
type Loader interface {
	LoadMesh(path string) (*scene.Mesh, error)
	LoadTexture(path string) (*scene.Texture, error)
	// LoadCubemap recebe as faces na ordem direita, esquerda, cima, baixo,
	// frente, trás.
	LoadCubemap(faces [6]string) (*scene.Texture, error)
	LoadVertexShader(path string) (*scene.Shader, error)
	LoadPixelShader(path string) (*scene.Shader, error)
	NewSampler(name string, filter scene.Filter, wrap scene.Wrap, comparison bool) *scene.Sampler
}

// ReadShader lê a fonte de um shader interno ou de um arquivo. A
// compilação acontece depois, no Device.
func ReadShader(path string, stage scene.ShaderStage) (*scene.Shader, error) {
	sh := &scene.Shader{Name: path, Path: path, Stage: stage}

	if name, ok := builtin.Name(path); ok {
		src, ok := builtin.Shader(name)
		if !ok {
			return nil, fmt.Errorf("shader %q: %w", path, ErrUnknownBuiltin)
		}
		sh.Source = src
		sh.Textures = builtin.ShaderSlots(name)
		return sh, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler shader %s: %w", path, err)
	}
	sh.Source = string(data)
	return sh, nil
}

// NewSampler monta a descrição de um sampler; o backend aplica filtro e
// wrap na textura no momento do bind.
func NewSampler(name string, filter scene.Filter, wrap scene.Wrap, comparison bool) *scene.Sampler {
	return &scene.Sampler{Name: name, Filter: filter, Wrap: wrap, Comparison: comparison}
}

// checkFile falha cedo para arquivos ausentes, antes de chegar ao backend.
func checkFile(kind, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s %s: %w", kind, path, err)
	}
	return nil
}
