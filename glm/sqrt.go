package glm

import "golang.org/x/mobile/exp/f32"

// vertex data is float32, single precision is enough here
func sqrt[T numeric](value T) T {
	return T(f32.Sqrt(float32(value)))
}
