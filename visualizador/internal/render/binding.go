package render

import (
	"encoding/binary"
	"fmt"
	"math"

	"LumenForge/shared/scene"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameResources são texturas e samplers que o frame fornece a todos os
// materiais (o mapa de sombra, por exemplo).
type FrameResources struct {
	Textures map[string]*scene.Texture
	Samplers map[string]*scene.Sampler
}

func (f FrameResources) slots() []string {
	out := make([]string, 0, len(f.Textures)+len(f.Samplers))
	for k := range f.Textures {
		out = append(out, k)
	}
	for k := range f.Samplers {
		out = append(out, k)
	}
	return out
}

type uploadKey struct {
	prog Program
	name string
}

// Binder envia parâmetros ao Device e pula envios idênticos ao último
// feito para o mesmo programa e nome. Os uniforms persistem no programa,
// então o resultado visível não muda.
type Binder struct {
	dev     Device
	last    map[uploadKey]uint64
	scratch []byte

	Uploads int
	Skipped int
}

func NewBinder(dev Device) *Binder {
	return &Binder{
		dev:  dev,
		last: make(map[uploadKey]uint64),
	}
}

// Forget descarta as impressões de um programa (recompilado ou liberado).
func (b *Binder) Forget(p Program) {
	for k := range b.last {
		if k.prog == p {
			delete(b.last, k)
		}
	}
}

// ResetStats zera os contadores do frame.
func (b *Binder) ResetStats() {
	b.Uploads = 0
	b.Skipped = 0
}

func (b *Binder) fingerprint(values []float32) uint64 {
	b.scratch = b.scratch[:0]
	for _, v := range values {
		b.scratch = binary.LittleEndian.AppendUint32(b.scratch, math.Float32bits(v))
	}
	return xxhash.Sum64(b.scratch)
}

// changed registra a impressão do bloco e diz se ele precisa ser enviado.
func (b *Binder) changed(p Program, name string, values []float32) bool {
	key := uploadKey{prog: p, name: name}
	sum := b.fingerprint(values)
	if prev, ok := b.last[key]; ok && prev == sum {
		b.Skipped++
		return false
	}
	b.last[key] = sum
	b.Uploads++
	return true
}

func (b *Binder) Matrix(p Program, name string, m mgl32.Mat4) {
	if b.changed(p, name, m[:]) {
		b.dev.SetMatrix(p, name, m)
	}
}

func (b *Binder) Floats(p Program, name string, v []float32) {
	if b.changed(p, name, v) {
		b.dev.SetFloats(p, name, v)
	}
}

// Material envia tint, UV e rugosidade e liga cada par textura/sampler que
// o pixel shader declara. Um slot exigido e ausente tanto no material
// quanto no frame é erro de configuração; nada é enviado nesse caso.
func (b *Binder) Material(p Program, m *scene.Material, frame FrameResources) error {
	if err := m.Validate(frame.slots()...); err != nil {
		return err
	}

	block := []float32{
		m.ColorTint[0], m.ColorTint[1], m.ColorTint[2], m.ColorTint[3],
		m.UVScale[0], m.UVScale[1],
		m.UVOffset[0], m.UVOffset[1],
		m.Roughness(),
	}
	if b.changed(p, "material", block) {
		b.dev.SetFloats(p, UniformColorTint, block[0:4])
		b.dev.SetFloats(p, UniformUVScale, block[4:6])
		b.dev.SetFloats(p, UniformUVOffset, block[6:8])
		b.dev.SetFloats(p, UniformRoughness, block[8:9])
	}

	for _, texSlot := range scene.SortedSlots(m.PixelShader.Textures) {
		sampSlot := m.PixelShader.Textures[texSlot]

		tex, ok := m.Texture(texSlot)
		if !ok {
			tex = frame.Textures[texSlot]
		}
		smp, ok := m.Sampler(sampSlot)
		if !ok {
			smp = frame.Samplers[sampSlot]
		}
		if tex == nil || smp == nil {
			// Validate já garante; só chega aqui com entradas nil no frame
			return fmt.Errorf("material %q, slot %q: %w", m.Name, texSlot, scene.ErrMissingTexture)
		}
		b.dev.BindTexture(p, texSlot, tex, smp)
	}
	return nil
}
