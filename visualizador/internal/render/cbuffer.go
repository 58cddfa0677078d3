package render

import (
	"LumenForge/shared/scene"
)

// MaxLights é o tamanho fixo do array de luzes no shader.
const MaxLights = 8

// LightFloats é o tamanho de um registro de luz (4 vec4 = 64 bytes):
//
//	[0]  tipo, direção.xyz
//	[4]  alcance, posição.xyz
//	[8]  intensidade, cor.rgb
//	[12] cone interno, cone externo, 0, 0
const LightFloats = 16

// PackLights copia as luzes para o bloco enviado ao shader. Luzes além de
// MaxLights são descartadas e contadas em dropped.
func PackLights(lights []scene.Light) (block [MaxLights * LightFloats]float32, count, dropped int) {
	count = len(lights)
	if count > MaxLights {
		dropped = count - MaxLights
		count = MaxLights
	}

	for i := 0; i < count; i++ {
		l := lights[i]
		r := block[i*LightFloats : (i+1)*LightFloats]
		r[0] = float32(l.Type)
		r[1], r[2], r[3] = l.Direction[0], l.Direction[1], l.Direction[2]
		r[4] = l.Range
		r[5], r[6], r[7] = l.Position[0], l.Position[1], l.Position[2]
		r[8] = l.Intensity
		r[9], r[10], r[11] = l.Color[0], l.Color[1], l.Color[2]
		r[12] = l.SpotInner
		r[13] = l.SpotOuter
	}
	return block, count, dropped
}
