package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	workflowdto "quarry/internal/application/workflow/dto"
	"quarry/internal/application/workflow/usecases"
	"quarry/internal/interfaces/http/handlers/testutil"
	"quarry/internal/shared/errors"
)

type mockUpsertWorkflowUC struct {
	result *workflowdto.WorkflowDTO
	err    error
	cmd    usecases.UpsertWorkflowCommand
}

func (m *mockUpsertWorkflowUC) Execute(_ context.Context, cmd usecases.UpsertWorkflowCommand) (*workflowdto.WorkflowDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetWorkflowUC struct {
	result *workflowdto.WorkflowDTO
	err    error
}

func (m *mockGetWorkflowUC) Execute(_ context.Context, _ usecases.GetWorkflowQuery) (*workflowdto.WorkflowDTO, error) {
	return m.result, m.err
}

type mockDeleteWorkflowUC struct {
	err error
}

func (m *mockDeleteWorkflowUC) Execute(_ context.Context, _ usecases.DeleteWorkflowCommand) error {
	return m.err
}

func TestWorkflowHandler_GetWorkflow(t *testing.T) {
	t.Run("missing workflow renders an explicit empty definition", func(t *testing.T) {
		handler := NewWorkflowHandler(&mockUpsertWorkflowUC{}, &mockGetWorkflowUC{}, &mockDeleteWorkflowUC{})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/projects/1/workflow", nil)
		testutil.SetURLParam(c, "id", "1")

		handler.GetWorkflow(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.True(t, resp.Success)

		var data struct {
			ProjectID       uint            `json:"project_id"`
			InitialStatuses []uint          `json:"initial_statuses"`
			Transitions     map[uint][]uint `json:"transitions"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, uint(1), data.ProjectID)
		assert.NotNil(t, data.InitialStatuses)
		assert.Empty(t, data.InitialStatuses)
		assert.Empty(t, data.Transitions)
	})

	t.Run("existing workflow is returned as-is", func(t *testing.T) {
		getUC := &mockGetWorkflowUC{
			result: &workflowdto.WorkflowDTO{
				ID:              4,
				ProjectID:       1,
				InitialStatuses: []uint{10},
				Transitions:     map[uint][]uint{10: {20}},
			},
		}
		handler := NewWorkflowHandler(&mockUpsertWorkflowUC{}, getUC, &mockDeleteWorkflowUC{})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/projects/1/workflow", nil)
		testutil.SetURLParam(c, "id", "1")

		handler.GetWorkflow(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWorkflowHandler_UpsertWorkflow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		upsertUC := &mockUpsertWorkflowUC{
			result: &workflowdto.WorkflowDTO{ID: 4, ProjectID: 1, InitialStatuses: []uint{10}},
		}
		handler := NewWorkflowHandler(upsertUC, &mockGetWorkflowUC{}, &mockDeleteWorkflowUC{})

		reqBody := UpsertWorkflowRequest{
			InitialStatuses: []uint{10},
			Transitions:     map[uint][]uint{10: {20}},
		}
		c, w := testutil.NewTestContext(http.MethodPut, "/api/projects/1/workflow", reqBody)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetAuthContext(c, 7, "admin")

		handler.UpsertWorkflow(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(1), upsertUC.cmd.ProjectID)
		assert.Equal(t, []uint{10}, upsertUC.cmd.InitialStatuses)
	})

	t.Run("empty initial statuses fails binding", func(t *testing.T) {
		handler := NewWorkflowHandler(&mockUpsertWorkflowUC{}, &mockGetWorkflowUC{}, &mockDeleteWorkflowUC{})

		reqBody := map[string]any{"transitions": map[string][]uint{"10": {20}}}
		c, w := testutil.NewTestContext(http.MethodPut, "/api/projects/1/workflow", reqBody)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetAuthContext(c, 7, "admin")

		handler.UpsertWorkflow(c)

		assert.NotEqual(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
	})
}

func TestWorkflowHandler_DeleteWorkflow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewWorkflowHandler(&mockUpsertWorkflowUC{}, &mockGetWorkflowUC{}, &mockDeleteWorkflowUC{})

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/projects/1/workflow", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetAuthContext(c, 7, "admin")

		handler.DeleteWorkflow(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing workflow is 404", func(t *testing.T) {
		deleteUC := &mockDeleteWorkflowUC{err: errors.NewNotFoundError("project 1 has no workflow")}
		handler := NewWorkflowHandler(&mockUpsertWorkflowUC{}, &mockGetWorkflowUC{}, deleteUC)

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/projects/1/workflow", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetAuthContext(c, 7, "admin")

		handler.DeleteWorkflow(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
