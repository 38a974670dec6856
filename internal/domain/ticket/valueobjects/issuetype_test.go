package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssueType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    IssueType
		wantErr bool
	}{
		{name: "bug", input: "bug", want: IssueTypeBug},
		{name: "task", input: "task", want: IssueTypeTask},
		{name: "story", input: "story", want: IssueTypeStory},
		{name: "epic", input: "epic", want: IssueTypeEpic},
		{name: "unknown value", input: "feature", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Bug", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewIssueType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
			assert.Equal(t, tt.input, got.String())
		})
	}
}
