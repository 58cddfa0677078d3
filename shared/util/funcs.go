package util

import "github.com/chewxy/math32"

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limita v ao intervalo [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap devolve i dentro de [0, n), dando a volta nos dois sentidos.
// Com n <= 0 retorna 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// ApproxEqual compara dois floats com tolerância absoluta.
func ApproxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}
