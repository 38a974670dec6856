package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefinition_Normalizes(t *testing.T) {
	def := NewDefinition(
		[]uint{3, 1, 3, 0, 1},
		map[uint][]uint{
			1: {2, 2, 3, 0},
			2: {},
		},
	)

	assert.Equal(t, []uint{1, 3}, def.InitialStatuses)
	assert.Equal(t, []uint{2, 3}, def.Transitions[1])
	assert.Empty(t, def.Transitions[2])
}

func TestDefinition_IsInitial(t *testing.T) {
	def := NewDefinition([]uint{1, 2}, nil)

	assert.True(t, def.IsInitial(1))
	assert.True(t, def.IsInitial(2))
	assert.False(t, def.IsInitial(3))
}

func TestDefinition_CanTransition(t *testing.T) {
	def := NewDefinition([]uint{1}, map[uint][]uint{
		1: {2},
		2: {1, 3},
	})

	assert.True(t, def.CanTransition(1, 2))
	assert.True(t, def.CanTransition(2, 3))
	assert.False(t, def.CanTransition(1, 3))
	assert.False(t, def.CanTransition(3, 1), "status with no outgoing edges allows nothing")
}

func TestDefinition_AllowedFrom_ReturnsCopy(t *testing.T) {
	def := NewDefinition([]uint{1}, map[uint][]uint{1: {2, 3}})

	allowed := def.AllowedFrom(1)
	assert.Equal(t, []uint{2, 3}, allowed)

	allowed[0] = 99
	assert.Equal(t, []uint{2, 3}, def.AllowedFrom(1))

	assert.Empty(t, def.AllowedFrom(42))
}
