package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quarry/internal/shared/errors"
)

func newTestWorkflow(t *testing.T) *Workflow {
	t.Helper()
	wf, err := NewWorkflow(1, NewDefinition(
		[]uint{10},
		map[uint][]uint{
			10: {20},
			20: {10, 30},
		},
	))
	require.NoError(t, err)
	return wf
}

func TestEngine_Authorize_NilWorkflowIsPermissive(t *testing.T) {
	engine := NewEngine()

	assert.NoError(t, engine.Authorize(nil, nil, 99))

	current := uint(10)
	assert.NoError(t, engine.Authorize(nil, &current, 99))
}

func TestEngine_Authorize_CreationPath(t *testing.T) {
	engine := NewEngine()
	wf := newTestWorkflow(t)

	assert.NoError(t, engine.Authorize(wf, nil, 10))

	err := engine.Authorize(wf, nil, 20)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Contains(t, err.Error(), `"none"`)
	assert.Contains(t, err.Error(), "10", "allowed initial set is carried in the error")
}

func TestEngine_Authorize_Transitions(t *testing.T) {
	engine := NewEngine()
	wf := newTestWorkflow(t)

	tests := []struct {
		name    string
		from    uint
		to      uint
		allowed bool
	}{
		{name: "allowed hop", from: 10, to: 20, allowed: true},
		{name: "allowed back edge", from: 20, to: 10, allowed: true},
		{name: "skipping a hop", from: 10, to: 30, allowed: false},
		{name: "terminal status", from: 30, to: 10, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := tt.from
			err := engine.Authorize(wf, &from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidTransitionError(err))
		})
	}
}

func TestEngine_Authorize_RejectionCarriesAllowedSet(t *testing.T) {
	engine := NewEngine()
	wf := newTestWorkflow(t)

	from := uint(20)
	err := engine.Authorize(wf, &from, 99)
	require.Error(t, err)

	appErr := &errors.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details, "10, 30")
}
