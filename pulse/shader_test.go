package pulse

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSPIRV(t *testing.T) {
	module := make([]byte, 20)
	binary.LittleEndian.PutUint32(module, 0x07230203)
	assert.True(t, IsSPIRV(module))

	assert.False(t, IsSPIRV([]byte("@vertex fn main_vs() {}")))
	assert.False(t, IsSPIRV(module[:3]))
	assert.False(t, IsSPIRV(module[:6]))

	binary.BigEndian.PutUint32(module, 0x07230203)
	assert.False(t, IsSPIRV(module))
}
