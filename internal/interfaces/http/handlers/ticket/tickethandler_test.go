package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "quarry/internal/application/ticket/dto"
	"quarry/internal/application/ticket/usecases"
	"quarry/internal/interfaces/http/handlers/testutil"
	"quarry/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	cmd    usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *usecases.UpdateTicketResult
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, _ usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, _ usecases.DeleteTicketCommand) error {
	return m.err
}

type mockChangeStatusUC struct {
	result *usecases.ChangeStatusResult
	err    error
	cmd    usecases.ChangeStatusCommand
}

func (m *mockChangeStatusUC) Execute(_ context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockAssignTicketUC struct {
	err error
	cmd usecases.AssignTicketCommand
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) error {
	m.cmd = cmd
	return m.err
}

type mockAddDependencyUC struct {
	result *ticketdto.DependencyDTO
	err    error
}

func (m *mockAddDependencyUC) Execute(_ context.Context, _ usecases.AddDependencyCommand) (*ticketdto.DependencyDTO, error) {
	return m.result, m.err
}

type mockRemoveDependencyUC struct {
	err error
}

func (m *mockRemoveDependencyUC) Execute(_ context.Context, _ usecases.RemoveDependencyCommand) error {
	return m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
	query  usecases.GetTicketQuery
}

func (m *mockGetTicketUC) Execute(_ context.Context, query usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type mockListHistoryUC struct {
	result []*ticketdto.HistoryDTO
	err    error
}

func (m *mockListHistoryUC) Execute(_ context.Context, _ usecases.ListHistoryQuery) ([]*ticketdto.HistoryDTO, error) {
	return m.result, m.err
}

type mockListDependenciesUC struct {
	result []*ticketdto.DependencyDTO
	err    error
}

func (m *mockListDependenciesUC) Execute(_ context.Context, _ usecases.ListDependenciesQuery) ([]*ticketdto.DependencyDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	createTicketUC     usecases.CreateTicketExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
	changeStatusUC     usecases.ChangeStatusExecutor
	assignTicketUC     usecases.AssignTicketExecutor
	addDependencyUC    usecases.AddDependencyExecutor
	removeDependencyUC usecases.RemoveDependencyExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	listHistoryUC      usecases.ListHistoryExecutor
	listDependenciesUC usecases.ListDependenciesExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.updateTicketUC,
		deps.deleteTicketUC,
		deps.changeStatusUC,
		deps.assignTicketUC,
		deps.addDependencyUC,
		deps.removeDependencyUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.listHistoryUC,
		deps.listDependenciesUC,
	)
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			TicketID:  1,
			UID:       "tkt-abc123",
			StatusID:  10,
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		ProjectID:  1,
		Name:       "Broken login flow",
		IssueType:  "bug",
		PriorityID: 2,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 7, "admin")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), mockUC.cmd.CreatorID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := map[string]string{"name": "only a name"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 7, "admin")

	handler.CreateTicket(c)

	assert.NotEqual(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestTicketHandler_CreateTicket_UseCaseError(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		err: errors.NewNotFoundError("project 99 not found"),
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		ProjectID:  99,
		Name:       "X",
		IssueType:  "task",
		PriorityID: 2,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 7, "admin")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_ByNumericID(t *testing.T) {
	mockUC := &mockGetTicketUC{result: &ticketdto.TicketDTO{ID: 5, UID: "tkt-abc123"}}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/5", nil)
	testutil.SetURLParam(c, "id", "5")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.query.TicketID)
	assert.Empty(t, mockUC.query.UID)
}

func TestTicketHandler_GetTicket_ByUID(t *testing.T) {
	mockUC := &mockGetTicketUC{result: &ticketdto.TicketDTO{ID: 5, UID: "tkt-abc123"}}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/tkt-abc123", nil)
	testutil.SetURLParam(c, "id", "tkt-abc123")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, mockUC.query.TicketID)
	assert.Equal(t, "tkt-abc123", mockUC.query.UID)
}

func TestTicketHandler_ChangeStatus(t *testing.T) {
	t.Run("success passes actor and note through", func(t *testing.T) {
		mockUC := &mockChangeStatusUC{
			result: &usecases.ChangeStatusResult{TicketID: 5, OldStatusID: 10, NewStatusID: 20},
		}
		handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

		note := "ready for review"
		reqBody := ChangeStatusRequest{StatusID: 20, Note: &note}
		c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/5/status", reqBody)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetAuthContext(c, 7, "admin")

		handler.ChangeStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(5), mockUC.cmd.TicketID)
		assert.Equal(t, uint(20), mockUC.cmd.NewStatusID)
		assert.Equal(t, uint(7), mockUC.cmd.ChangedBy)
		require.NotNil(t, mockUC.cmd.Note)
		assert.Equal(t, note, *mockUC.cmd.Note)
	})

	t.Run("workflow rejection surfaces 422 with allowed transitions", func(t *testing.T) {
		mockUC := &mockChangeStatusUC{
			err: errors.NewInvalidTransitionError("10", "30", []string{"20"}),
		}
		handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

		reqBody := ChangeStatusRequest{StatusID: 30}
		c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/5/status", reqBody)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetAuthContext(c, 7, "admin")

		handler.ChangeStatus(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Details, "20")
	})
}

func TestTicketHandler_AssignTicket_EmptyListAllowed(t *testing.T) {
	mockUC := &mockAssignTicketUC{}
	handler := newTestTicketHandler(testDeps{assignTicketUC: mockUC})

	reqBody := AssignTicketRequest{AssigneeIDs: []uint{}}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/5/assignees", reqBody)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 7, "admin")

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.cmd.TicketID)
	assert.Empty(t, mockUC.cmd.AssigneeIDs)
}

func TestTicketHandler_ListTickets(t *testing.T) {
	mockUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets: []*ticketdto.TicketDTO{{ID: 1}, {ID: 2}},
			Total:   2,
		},
	}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"project_id": "1", "page": "1", "page_size": "20"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var data struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(2), data.Total)
	assert.Len(t, data.Items, 2)
}

func TestTicketHandler_DeleteTicket_Conflict(t *testing.T) {
	mockUC := &mockDeleteTicketUC{
		err: errors.NewConflictError("ticket 5 has 2 child tickets"),
	}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/5", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 7, "admin")

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTicketHandler_AddDependency(t *testing.T) {
	mockUC := &mockAddDependencyUC{
		result: &ticketdto.DependencyDTO{ID: 1, TicketID: 5, DependsOnID: 6, Type: "blocks"},
	}
	handler := newTestTicketHandler(testDeps{addDependencyUC: mockUC})

	reqBody := AddDependencyRequest{DependsOnID: 6, Type: "blocks"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/5/dependencies", reqBody)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 7, "admin")

	handler.AddDependency(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}
