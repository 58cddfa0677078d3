package gpu

import (
	"fmt"
	"image/color"
	"os"

	"LumenForge/shared/scene"
	"LumenForge/visualizador/internal/assets"
	"LumenForge/visualizador/internal/builtin"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	builtinTextureSize = 256
	cubeFaceSize       = 256
)

// Loader carrega malhas e texturas na GPU através do raylib. Guarda tudo o
// que criou para liberar em Close.
type Loader struct {
	meshes   []rl.Mesh
	models   []rl.Model
	textures []rl.Texture2D
}

var _ assets.Loader = (*Loader)(nil)

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) LoadMesh(path string) (*scene.Mesh, error) {
	if name, ok := builtin.Name(path); ok {
		m, ok := genMesh(name)
		if !ok {
			return nil, fmt.Errorf("malha %q: %w", path, assets.ErrUnknownBuiltin)
		}
		l.meshes = append(l.meshes, m)
		return meshInfo(name, path, m), nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("malha %s: %w", path, err)
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return nil, fmt.Errorf("malha %s: arquivo sem geometria", path)
	}
	l.models = append(l.models, model)
	meshes := model.GetMeshes()
	if model.MeshCount > 1 {
		zap.S().Warnf("[Assets] %s tem %d malhas, usando apenas a primeira", path, model.MeshCount)
	}
	return meshInfo(path, path, meshes[0]), nil
}

func genMesh(name string) (rl.Mesh, bool) {
	switch name {
	case builtin.MeshCube:
		return rl.GenMeshCube(1, 1, 1), true
	case builtin.MeshSphere:
		return rl.GenMeshSphere(0.5, 24, 32), true
	case builtin.MeshCylinder:
		return rl.GenMeshCylinder(0.5, 1, 32), true
	case builtin.MeshTorus:
		return rl.GenMeshTorus(0.4, 1, 32, 24), true
	case builtin.MeshHelix:
		return rl.GenMeshKnot(0.5, 1, 64, 16), true
	case builtin.MeshQuad:
		return rl.GenMeshPlane(1, 1, 1, 1), true
	case builtin.MeshDoubleQuad:
		return genDoubleQuad(), true
	case builtin.MeshSkybox:
		return rl.GenMeshCube(2, 2, 2), true
	}
	return rl.Mesh{}, false
}

func meshInfo(name, path string, m rl.Mesh) *scene.Mesh {
	info := &scene.Mesh{Name: name, Path: path, VertexCount: int(m.VertexCount), GPU: m}
	if m.Indices != nil {
		info.IndexCount = int(m.TriangleCount) * 3
	}
	return info
}

func (l *Loader) LoadTexture(path string) (*scene.Texture, error) {
	img, err := l.loadImage(path)
	if err != nil {
		return nil, err
	}
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return nil, fmt.Errorf("textura %s: falha no upload", path)
	}
	rl.GenTextureMipmaps(&tex)
	l.textures = append(l.textures, tex)

	name := path
	if n, ok := builtin.Name(path); ok {
		name = n
	}
	return &scene.Texture{Name: name, Path: path, Width: int(tex.Width), Height: int(tex.Height), GPU: tex}, nil
}

// LoadCubemap monta as seis faces numa faixa vertical (direita, esquerda,
// cima, baixo, frente, trás) e cria o cubemap a partir dela.
func (l *Loader) LoadCubemap(faces [6]string) (*scene.Texture, error) {
	strip := rl.GenImageColor(cubeFaceSize, cubeFaceSize*6, rl.Black)
	defer rl.UnloadImage(strip)

	for i, f := range faces {
		img, err := l.loadImage(f)
		if err != nil {
			return nil, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		src := rl.Rectangle{Width: float32(img.Width), Height: float32(img.Height)}
		dst := rl.Rectangle{Y: float32(i * cubeFaceSize), Width: cubeFaceSize, Height: cubeFaceSize}
		rl.ImageDraw(strip, img, src, dst, rl.White)
		rl.UnloadImage(img)
	}

	tex := rl.LoadTextureCubemap(strip, rl.CubemapLayoutLineVertical)
	if tex.ID == 0 {
		return nil, fmt.Errorf("cubemap %s: falha no upload", faces[0])
	}
	l.textures = append(l.textures, tex)
	return &scene.Texture{Name: "cubemap", Path: faces[0], Width: cubeFaceSize, Height: cubeFaceSize, Cube: true, GPU: tex}, nil
}

func (l *Loader) loadImage(path string) (*rl.Image, error) {
	if name, ok := builtin.Name(path); ok {
		img, ok := genImage(name)
		if !ok {
			return nil, fmt.Errorf("textura %q: %w", path, assets.ErrUnknownBuiltin)
		}
		return img, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("textura %s: %w", path, err)
	}
	img := rl.LoadImage(path)
	if img == nil || img.Data == nil {
		return nil, fmt.Errorf("textura %s: formato não suportado", path)
	}
	return img, nil
}

func genImage(name string) (*rl.Image, bool) {
	const n = builtinTextureSize
	switch name {
	case builtin.TextureWhite:
		return rl.GenImageColor(4, 4, rl.White), true
	case builtin.TextureChecker:
		return rl.GenImageChecked(n, n, n/8, n/8, rl.LightGray, rl.DarkGray), true
	case builtin.TextureGrid:
		img := rl.GenImageColor(n, n, color.RGBA{R: 90, G: 96, B: 104, A: 255})
		for i := int32(0); i < n; i += n / 8 {
			rl.ImageDrawRectangle(img, i, 0, 2, n, rl.RayWhite)
			rl.ImageDrawRectangle(img, 0, i, n, 2, rl.RayWhite)
		}
		return img, true
	case builtin.TextureSkySide:
		return rl.GenImageGradientLinear(n, n, 0, color.RGBA{R: 40, G: 90, B: 180, A: 255}, color.RGBA{R: 190, G: 215, B: 240, A: 255}), true
	case builtin.TextureSkyUp:
		return rl.GenImageColor(n, n, color.RGBA{R: 40, G: 90, B: 180, A: 255}), true
	case builtin.TextureSkyDown:
		return rl.GenImageColor(n, n, color.RGBA{R: 70, G: 64, B: 58, A: 255}), true
	case builtin.TextureSkyNight:
		return rl.GenImageGradientLinear(n, n, 0, color.RGBA{R: 4, G: 6, B: 20, A: 255}, color.RGBA{R: 30, G: 34, B: 70, A: 255}), true
	}
	return nil, false
}

func (l *Loader) LoadVertexShader(path string) (*scene.Shader, error) {
	return assets.ReadShader(path, scene.StageVertex)
}

func (l *Loader) LoadPixelShader(path string) (*scene.Shader, error) {
	return assets.ReadShader(path, scene.StagePixel)
}

func (l *Loader) NewSampler(name string, filter scene.Filter, wrap scene.Wrap, comparison bool) *scene.Sampler {
	return assets.NewSampler(name, filter, wrap, comparison)
}

// Close descarrega tudo que o loader enviou para a GPU.
func (l *Loader) Close() {
	for i := range l.meshes {
		rl.UnloadMesh(&l.meshes[i])
	}
	for _, m := range l.models {
		rl.UnloadModel(m)
	}
	for _, t := range l.textures {
		rl.UnloadTexture(t)
	}
	zap.S().Debugf("[Assets] Liberados %d malhas, %d modelos, %d texturas", len(l.meshes), len(l.models), len(l.textures))
	l.meshes, l.models, l.textures = nil, nil, nil
}
