// Package persistence salva e restaura snapshots de cena num banco SQLite.
package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"LumenForge/shared/scene"
	"LumenForge/shared/transform"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const CurrentFormatVersion = 1

var (
	ErrNoSnapshot = errors.New("nenhum snapshot salvo")
	ErrClosed     = errors.New("banco de dados não inicializado")
)

type Store struct {
	DB   *gorm.DB
	Path string
}

// Open abre (ou cria) dir/<name>.lf e roda as migrações.
func Open(dir, name string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, fmt.Sprintf("%s.lf", name))

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&Snapshot{}, &EntityState{}, &LightState{}, &CameraPose{}, &Metadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&Metadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})
	db.Save(&Metadata{Key: "SceneName", Value: name})

	zap.S().Infof("[Persistence] Banco de dados SQLite aberto: %s", dbPath)
	return &Store{DB: db, Path: dbPath}, nil
}

// Save grava o snapshot com todos os filhos numa transação.
func (s *Store) Save(snap *Snapshot) error {
	if s.DB == nil {
		return ErrClosed
	}
	if err := s.DB.Create(snap).Error; err != nil {
		return fmt.Errorf("falha ao salvar snapshot %q: %w", snap.Label, err)
	}
	zap.S().Infof("[Persistence] Snapshot %d (%s) salvo: %d entidades, %d luzes, %d câmeras",
		snap.ID, snap.Label, len(snap.Entities), len(snap.Lights), len(snap.Cameras))
	return nil
}

func (s *Store) preloaded() *gorm.DB {
	return s.DB.Preload("Entities").Preload("Lights", func(db *gorm.DB) *gorm.DB {
		return db.Order("light_index")
	}).Preload("Cameras")
}

// Latest devolve o snapshot mais recente da cena.
func (s *Store) Latest(sceneName string) (*Snapshot, error) {
	if s.DB == nil {
		return nil, ErrClosed
	}
	var snap Snapshot
	err := s.preloaded().Where("scene = ?", sceneName).Order("id desc").First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Store) Load(id uint) (*Snapshot, error) {
	if s.DB == nil {
		return nil, ErrClosed
	}
	var snap Snapshot
	err := s.preloaded().First(&snap, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("snapshot %d: %w", id, ErrNoSnapshot)
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// List devolve os snapshots sem os filhos, do mais antigo ao mais novo.
func (s *Store) List() ([]Snapshot, error) {
	if s.DB == nil {
		return nil, ErrClosed
	}
	var out []Snapshot
	if err := s.DB.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	s.DB = nil
	return sqlDB.Close()
}

// Pose é a câmera vista pela persistência.
type Pose struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Fov      float32
}

// Capture copia o estado editável da cena para um snapshot novo.
func Capture(label, sceneName string, sc *scene.Scene, cams []Pose, background mgl32.Vec3, activeCamera int) *Snapshot {
	snap := &Snapshot{
		Label:        label,
		Scene:        sceneName,
		BgR:          background.X(),
		BgG:          background.Y(),
		BgB:          background.Z(),
		ActiveCamera: activeCamera,
	}

	for _, e := range sc.Entities {
		p, r, k := e.Transform.GetPosition(), e.Transform.GetPitchYawRoll(), e.Transform.GetScale()
		snap.Entities = append(snap.Entities, EntityState{
			EntityID: e.ID.String(),
			Name:     e.Name,
			PX:       p.X(), PY: p.Y(), PZ: p.Z(),
			Pitch: r.X(), Yaw: r.Y(), Roll: r.Z(),
			SX: k.X(), SY: k.Y(), SZ: k.Z(),
		})
	}

	for i, l := range sc.Lights {
		snap.Lights = append(snap.Lights, LightState{
			LightIndex: i,
			Name:       l.Name,
			Type:       int(l.Type),
			DX:         l.Direction.X(), DY: l.Direction.Y(), DZ: l.Direction.Z(),
			PX: l.Position.X(), PY: l.Position.Y(), PZ: l.Position.Z(),
			R: l.Color.X(), G: l.Color.Y(), B: l.Color.Z(),
			Intensity: l.Intensity, Range: l.Range,
			SpotInner: l.SpotInner, SpotOuter: l.SpotOuter,
		})
	}

	for _, c := range cams {
		snap.Cameras = append(snap.Cameras, CameraPose{
			Name: c.Name,
			PX:   c.Position.X(), PY: c.Position.Y(), PZ: c.Position.Z(),
			Pitch: c.Rotation.X(), Yaw: c.Rotation.Y(), Roll: c.Rotation.Z(),
			Fov: c.Fov,
		})
	}
	return snap
}

// Apply restaura entidades (pelo UUID) e luzes (pelo índice, se o nome
// bater) na cena. Devolve quantos registros foram aplicados; o que não
// existe mais na cena é ignorado.
func Apply(snap *Snapshot, sc *scene.Scene) int {
	applied := 0
	for _, st := range snap.Entities {
		id, err := uuid.Parse(st.EntityID)
		if err != nil {
			continue
		}
		e, ok := sc.EntityByID(id)
		if !ok {
			continue
		}
		restoreTransform(e.Transform, st)
		applied++
	}

	for _, st := range snap.Lights {
		i := st.LightIndex
		if i < 0 || i >= len(sc.Lights) || sc.Lights[i].Name != st.Name {
			continue
		}
		sc.Lights[i] = scene.Light{
			Name:      st.Name,
			Type:      scene.LightType(st.Type),
			Direction: mgl32.Vec3{st.DX, st.DY, st.DZ},
			Position:  mgl32.Vec3{st.PX, st.PY, st.PZ},
			Color:     mgl32.Vec3{st.R, st.G, st.B},
			Intensity: st.Intensity,
			Range:     st.Range,
			SpotInner: st.SpotInner,
			SpotOuter: st.SpotOuter,
		}
		applied++
	}
	return applied
}

func restoreTransform(t *transform.Transform, st EntityState) {
	t.SetPositionV(st.Position())
	t.SetRotationV(st.Rotation())
	t.SetScaleV(st.Scale())
}

// CameraByName procura a pose de uma câmera no snapshot.
func (s *Snapshot) CameraByName(name string) (CameraPose, bool) {
	for _, c := range s.Cameras {
		if c.Name == name {
			return c, true
		}
	}
	return CameraPose{}, false
}
