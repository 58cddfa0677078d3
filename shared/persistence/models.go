package persistence

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot é o estado editável de uma cena num instante: transforms das
// entidades, parâmetros das luzes, poses das câmeras e parte da UI.
type Snapshot struct {
	ID        uint `gorm:"primaryKey"`
	Label     string
	Scene     string `gorm:"index"`
	CreatedAt time.Time

	BgR, BgG, BgB float32
	ActiveCamera  int

	Entities []EntityState `gorm:"constraint:OnDelete:CASCADE"`
	Lights   []LightState  `gorm:"constraint:OnDelete:CASCADE"`
	Cameras  []CameraPose  `gorm:"constraint:OnDelete:CASCADE"`
}

// EntityState guarda o transform de uma entidade, identificada pelo UUID.
type EntityState struct {
	ID         uint   `gorm:"primaryKey"`
	SnapshotID uint   `gorm:"index"`
	EntityID   string `gorm:"size:36"`
	Name       string

	PX, PY, PZ       float32
	Pitch, Yaw, Roll float32
	SX, SY, SZ       float32
}

// LightState guarda uma luz pela posição na lista da cena.
type LightState struct {
	ID         uint `gorm:"primaryKey"`
	SnapshotID uint `gorm:"index"`
	LightIndex int
	Name       string
	Type       int

	DX, DY, DZ           float32
	PX, PY, PZ           float32
	R, G, B              float32
	Intensity, Range     float32
	SpotInner, SpotOuter float32
}

type CameraPose struct {
	ID         uint `gorm:"primaryKey"`
	SnapshotID uint `gorm:"index"`
	Name       string

	PX, PY, PZ       float32
	Pitch, Yaw, Roll float32
	Fov              float32
}

// Metadata guarda pares chave/valor do banco (versão do formato).
type Metadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (e EntityState) Position() mgl32.Vec3 { return mgl32.Vec3{e.PX, e.PY, e.PZ} }
func (e EntityState) Rotation() mgl32.Vec3 { return mgl32.Vec3{e.Pitch, e.Yaw, e.Roll} }
func (e EntityState) Scale() mgl32.Vec3    { return mgl32.Vec3{e.SX, e.SY, e.SZ} }

func (c CameraPose) Position() mgl32.Vec3 { return mgl32.Vec3{c.PX, c.PY, c.PZ} }
func (c CameraPose) Rotation() mgl32.Vec3 { return mgl32.Vec3{c.Pitch, c.Yaw, c.Roll} }

func (s Snapshot) Background() mgl32.Vec3 { return mgl32.Vec3{s.BgR, s.BgG, s.BgB} }
