package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType é a etiqueta da união de luzes. Os valores são os mesmos lidos
// pelo shader.
type LightType int

const (
	LightDirectional LightType = 0
	LightPoint       LightType = 1
	LightSpot        LightType = 2
)

func (t LightType) String() string {
	switch t {
	case LightPoint:
		return "point"
	case LightSpot:
		return "spot"
	default:
		return "directional"
	}
}

// Light usa um único registro de tamanho fixo para os três tipos; campos
// que não se aplicam ao tipo são ignorados pelo shader.
type Light struct {
	Name      string
	Type      LightType
	Direction mgl32.Vec3
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Range     float32

	// Ângulos do cone em radianos.
	SpotInner float32
	SpotOuter float32
}

func NewDirectionalLight(name string, dir, color mgl32.Vec3, intensity float32) Light {
	return Light{Name: name, Type: LightDirectional, Direction: dir.Normalize(), Color: color, Intensity: intensity}
}

func NewPointLight(name string, pos, color mgl32.Vec3, intensity, rng float32) Light {
	return Light{Name: name, Type: LightPoint, Position: pos, Color: color, Intensity: intensity, Range: rng}
}

func NewSpotLight(name string, pos, dir, color mgl32.Vec3, intensity, rng, inner, outer float32) Light {
	if inner > outer {
		inner, outer = outer, inner
	}
	return Light{
		Name: name, Type: LightSpot,
		Position: pos, Direction: dir.Normalize(), Color: color,
		Intensity: intensity, Range: rng,
		SpotInner: inner, SpotOuter: math32.Min(outer, math32.Pi/2),
	}
}
