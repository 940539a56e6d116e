package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2(t *testing.T) {
	vec := Vec2f{3, 4}
	assert.InDelta(t, 5, vec.Length(), 1e-6)
	assert.Equal(t, Vec2f{6, 8}, vec.MulScalar(2))
	assert.Equal(t, Vec3f{3, 4, 1}, vec.Extend(1))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3f{1, 0, 0}
	y := Vec3f{0, 1, 0}
	assert.Equal(t, Vec3f{0, 0, 1}, x.Cross(y))
	assert.Equal(t, float32(0), x.Dot(y))
}

func TestVec4Dot(t *testing.T) {
	vec := Vec4f{1, 2, 3, 4}
	assert.Equal(t, float32(30), vec.Dot(vec))
	assert.Equal(t, Vec3f{1, 2, 3}, vec.Truncate())
}

func TestUnsignedVec(t *testing.T) {
	vec := Vec2[uint32]{6, 8}
	assert.Equal(t, uint32(10), vec.Length())
}
