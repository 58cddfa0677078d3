package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Description é o arquivo YAML que descreve a cena. Os caminhos podem ser
// "builtin:<nome>" para recursos procedurais.
type Description struct {
	Ambient     [3]float32      `yaml:"ambient"`
	ShadowLight string          `yaml:"shadowLight,omitempty"`
	Shaders     []ShaderDesc    `yaml:"shaders"`
	Samplers    []SamplerDesc   `yaml:"samplers"`
	Textures    []TextureDesc   `yaml:"textures"`
	Meshes      []MeshDesc      `yaml:"meshes"`
	Materials   []MaterialDesc  `yaml:"materials"`
	Entities    []EntityDesc    `yaml:"entities"`
	Lights      []LightDesc     `yaml:"lights"`
	Sky         *SkyDesc        `yaml:"sky,omitempty"`
	Cameras     []CameraDesc    `yaml:"cameras"`
	Pipeline    PipelineShaders `yaml:"pipeline"`
}

type ShaderDesc struct {
	Name     string            `yaml:"name"`
	Stage    string            `yaml:"stage"` // vertex | pixel
	Path     string            `yaml:"path"`
	Textures map[string]string `yaml:"textures,omitempty"`
}

type SamplerDesc struct {
	Name       string `yaml:"name"`
	Filter     string `yaml:"filter"` // point | bilinear | trilinear | anisotropic
	Wrap       string `yaml:"wrap"`   // repeat | clamp | mirror
	Comparison bool   `yaml:"comparison,omitempty"`
}

type TextureDesc struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type MeshDesc struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type MaterialDesc struct {
	Name         string            `yaml:"name"`
	VertexShader string            `yaml:"vertexShader"`
	PixelShader  string            `yaml:"pixelShader"`
	Tint         *[4]float32       `yaml:"tint,omitempty"`
	UVScale      *[2]float32       `yaml:"uvScale,omitempty"`
	UVOffset     [2]float32        `yaml:"uvOffset,omitempty"`
	Roughness    *float32          `yaml:"roughness,omitempty"`
	Textures     map[string]string `yaml:"textures,omitempty"`
	Samplers     map[string]string `yaml:"samplers,omitempty"`
}

// EntityDesc usa graus em Rotation (pitch, yaw, roll).
type EntityDesc struct {
	Name     string      `yaml:"name"`
	Mesh     string      `yaml:"mesh"`
	Material string      `yaml:"material"`
	Position [3]float32  `yaml:"position"`
	Rotation [3]float32  `yaml:"rotation"`
	Scale    *[3]float32 `yaml:"scale,omitempty"`
}

// LightDesc usa graus nos ângulos do cone.
type LightDesc struct {
	Name      string     `yaml:"name"`
	Type      string     `yaml:"type"` // directional | point | spot
	Direction [3]float32 `yaml:"direction"`
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Range     float32    `yaml:"range"`
	SpotInner float32    `yaml:"spotInner"`
	SpotOuter float32    `yaml:"spotOuter"`
}

// SkyDesc lista as seis faces na ordem direita, esquerda, cima, baixo,
// frente, trás.
type SkyDesc struct {
	Faces        [6]string `yaml:"faces"`
	Mesh         string    `yaml:"mesh"`
	Sampler      string    `yaml:"sampler"`
	VertexShader string    `yaml:"vertexShader"`
	PixelShader  string    `yaml:"pixelShader"`
}

// CameraDesc usa graus em Fov e Rotation.
type CameraDesc struct {
	Name      string     `yaml:"name"`
	Position  [3]float32 `yaml:"position"`
	Rotation  [3]float32 `yaml:"rotation"`
	Fov       float32    `yaml:"fov"`
	MoveSpeed float32    `yaml:"moveSpeed"`
	LookSpeed float32    `yaml:"lookSpeed"`
}

// PipelineShaders nomeia os shaders internos do frame.
type PipelineShaders struct {
	ShadowVertex string `yaml:"shadowVertex"`
	PostVertex   string `yaml:"postVertex"`
	PostPixel    string `yaml:"postPixel"`
}

// ParseDescription decodifica o YAML e confere os campos obrigatórios.
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("falha ao parsear cena: %w", err)
	}
	if err := d.check(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDescription lê e decodifica um arquivo de cena.
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler cena %s: %w", path, err)
	}
	d, err := ParseDescription(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Description) check() error {
	seen := make(map[string]bool)
	unique := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%s sem nome", kind)
		}
		key := kind + "/" + name
		if seen[key] {
			return fmt.Errorf("%s duplicado: %q", kind, name)
		}
		seen[key] = true
		return nil
	}

	for _, s := range d.Shaders {
		if err := unique("shader", s.Name); err != nil {
			return err
		}
		if s.Stage != "vertex" && s.Stage != "pixel" {
			return fmt.Errorf("shader %q: estágio inválido %q", s.Name, s.Stage)
		}
	}
	for _, s := range d.Samplers {
		if err := unique("sampler", s.Name); err != nil {
			return err
		}
	}
	for _, t := range d.Textures {
		if err := unique("texture", t.Name); err != nil {
			return err
		}
	}
	for _, m := range d.Meshes {
		if err := unique("mesh", m.Name); err != nil {
			return err
		}
	}
	for _, m := range d.Materials {
		if err := unique("material", m.Name); err != nil {
			return err
		}
	}
	for _, e := range d.Entities {
		if err := unique("entity", e.Name); err != nil {
			return err
		}
	}
	for _, l := range d.Lights {
		if err := unique("light", l.Name); err != nil {
			return err
		}
		if _, err := ParseLightType(l.Type); err != nil {
			return fmt.Errorf("luz %q: %w", l.Name, err)
		}
	}
	for _, c := range d.Cameras {
		if err := unique("camera", c.Name); err != nil {
			return err
		}
	}
	return nil
}

func ParseLightType(s string) (LightType, error) {
	switch s {
	case "directional", "":
		return LightDirectional, nil
	case "point":
		return LightPoint, nil
	case "spot":
		return LightSpot, nil
	}
	return 0, fmt.Errorf("tipo de luz desconhecido %q", s)
}

func ParseFilter(s string) (Filter, error) {
	switch s {
	case "point":
		return FilterPoint, nil
	case "bilinear", "":
		return FilterBilinear, nil
	case "trilinear":
		return FilterTrilinear, nil
	case "anisotropic":
		return FilterAnisotropic, nil
	}
	return 0, fmt.Errorf("filtro desconhecido %q", s)
}

func ParseWrap(s string) (Wrap, error) {
	switch s {
	case "repeat", "":
		return WrapRepeat, nil
	case "clamp":
		return WrapClamp, nil
	case "mirror":
		return WrapMirror, nil
	}
	return 0, fmt.Errorf("wrap desconhecido %q", s)
}

func ParseStage(s string) ShaderStage {
	if s == "pixel" {
		return StagePixel
	}
	return StageVertex
}
