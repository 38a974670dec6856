package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDependencyType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DependencyType
		wantErr bool
	}{
		{name: "blocks", input: "blocks", want: DependencyBlocks},
		{name: "relates", input: "relates", want: DependencyRelates},
		{name: "unknown value", input: "requires", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDependencyType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDependencyType_IsBlocking(t *testing.T) {
	assert.True(t, DependencyBlocks.IsBlocking())
	assert.False(t, DependencyRelates.IsBlocking())
}
