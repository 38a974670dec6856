package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quarry/internal/domain/project"
	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/domain/workflow"
)

func testProject(t *testing.T, id uint) *project.Project {
	t.Helper()
	now := time.Now()
	p, err := project.ReconstructProject(id, "proj-abc123", "Platform", "PLT", "", 1, now, now)
	require.NoError(t, err)
	return p
}

func testStatus(t *testing.T, id, projectID uint, sortOrder int) *project.Status {
	t.Helper()
	now := time.Now()
	s, err := project.ReconstructStatus(id, projectID, "Status", "#6699cc", false, sortOrder, now, now)
	require.NoError(t, err)
	return s
}

func testPriority(t *testing.T, id uint) *project.Priority {
	t.Helper()
	now := time.Now()
	p, err := project.ReconstructPriority(id, "High", "#cc3333", 1, now, now)
	require.NoError(t, err)
	return p
}

func testWorkflow(t *testing.T, projectID uint, initial []uint, transitions map[uint][]uint) *workflow.Workflow {
	t.Helper()
	now := time.Now()
	wf, err := workflow.ReconstructWorkflow(1, projectID, workflow.NewDefinition(initial, transitions), now, now)
	require.NoError(t, err)
	return wf
}

func testTicketEntity(t *testing.T, id, projectID, statusID uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(
		id, "tkt-abc123", projectID, statusID, 1,
		nil, nil, nil,
		vo.IssueTypeTask, "Broken login flow", "",
		nil, nil,
		1, nil, nil,
		now, now,
	)
	require.NoError(t, err)
	return tk
}
