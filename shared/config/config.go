package config

import (
	"fmt"
	"os"
	"path/filepath"

	"LumenForge/shared/util"

	"gopkg.in/yaml.v3"
)

// MaxBlurRadius é o maior raio aceito pelo filtro de desfoque.
const MaxBlurRadius = 16

// Config armazena as configurações do LumenForge.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Shadow  ShadowConfig  `yaml:"shadow"`
	Post    PostConfig    `yaml:"post"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`

	// Debug
	ShowDebugInfo bool `yaml:"show_debug_info"`
}

type WindowConfig struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
	VSync      bool   `yaml:"vsync"`
}

type CameraConfig struct {
	FOV       float32 `yaml:"fov"` // graus
	MoveSpeed float32 `yaml:"move_speed"`
	LookSpeed float32 `yaml:"look_speed"`
}

// ShadowConfig descreve a projeção ortográfica da luz que projeta sombra.
type ShadowConfig struct {
	Enabled  bool    `yaml:"enabled"`
	MapSize  int     `yaml:"map_size"`
	Extent   float32 `yaml:"extent"`
	Distance float32 `yaml:"distance"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

type PostConfig struct {
	Enabled            bool    `yaml:"enabled"`
	BlurRadius         int     `yaml:"blur_radius"`
	Aberration         bool    `yaml:"aberration"`
	AberrationStrength float32 `yaml:"aberration_strength"`
}

type PathsConfig struct {
	Scene     string `yaml:"scene"`
	Snapshots string `yaml:"snapshots"`
}

type LoggingConfig struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "LumenForge",
			TargetFPS: 60,
			VSync:     true,
		},
		Camera: CameraConfig{
			FOV:       45,
			MoveSpeed: 5,
			LookSpeed: 0.004,
		},
		Shadow: ShadowConfig{
			Enabled:  true,
			MapSize:  1024,
			Extent:   20,
			Distance: 20,
			Near:     0.1,
			Far:      60,
		},
		Post: PostConfig{
			Enabled:            true,
			BlurRadius:         0,
			AberrationStrength: 0.004,
		},
		Paths: PathsConfig{
			Scene:     "assets/scenes/demo.yaml",
			Snapshots: "saves",
		},
		Logging: LoggingConfig{
			File: "debug_lf.log",
		},
		ShowDebugInfo: true,
	}
}

// Validate limita valores fora de faixa em vez de falhar.
func (c *Config) Validate() {
	if c.Window.Width < 320 {
		c.Window.Width = 320
	}
	if c.Window.Height < 240 {
		c.Window.Height = 240
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = 60
	}
	c.Camera.FOV = util.Clamp(c.Camera.FOV, 10, 170)
	if c.Camera.MoveSpeed <= 0 {
		c.Camera.MoveSpeed = 5
	}
	if c.Camera.LookSpeed <= 0 {
		c.Camera.LookSpeed = 0.004
	}
	if c.Shadow.MapSize < 64 {
		c.Shadow.MapSize = 1024
	}
	if c.Shadow.Extent <= 0 {
		c.Shadow.Extent = 20
	}
	if c.Shadow.Near <= 0 {
		c.Shadow.Near = 0.1
	}
	if c.Shadow.Far <= c.Shadow.Near {
		c.Shadow.Far = c.Shadow.Near + 60
	}
	c.Post.BlurRadius = util.ClampInt(c.Post.BlurRadius, 0, MaxBlurRadius)
	if c.Post.AberrationStrength < 0 {
		c.Post.AberrationStrength = 0
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(execDir), "config.yaml")
}

// Load carrega as configurações do arquivo ao lado do executável.
// Se o arquivo não existir ou for inválido, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFrom(configPath())
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFrom carrega um arquivo específico; campos ausentes mantêm o padrão.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("falha ao parsear %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Save salva as configurações ao lado do executável.
func (c *Config) Save() error {
	return c.SaveTo(configPath())
}

func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
