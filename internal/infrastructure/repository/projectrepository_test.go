package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quarry/internal/domain/project"
	"quarry/internal/domain/ticket"
	"quarry/internal/domain/workflow"
)

func createTestProject(t *testing.T, name, key, uid string) *project.Project {
	t.Helper()

	p, err := project.NewProject(name, key, "", 1)
	require.NoError(t, err)
	require.NoError(t, p.SetUID(uid))
	return p
}

func TestProjectRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	t.Run("save and get by key", func(t *testing.T) {
		p := createTestProject(t, "Platform", "PLT", "proj-save01")
		require.NoError(t, repo.Save(ctx, p))
		assert.NotZero(t, p.ID())

		found, err := repo.GetByKey(ctx, "PLT")
		require.NoError(t, err)
		assert.Equal(t, p.ID(), found.ID())
		assert.Equal(t, "Platform", found.Name())
	})

	t.Run("duplicate key fails", func(t *testing.T) {
		p := createTestProject(t, "Other", "PLT", "proj-dup01")
		assert.Error(t, repo.Save(ctx, p))
	})

	t.Run("list paginates", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, createTestProject(t, "Billing", "BIL", "proj-list01")))
		require.NoError(t, repo.Save(ctx, createTestProject(t, "Mobile", "MOB", "proj-list02")))

		projects, total, err := repo.List(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, projects, 2)
	})
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	projectRepo := NewProjectRepository(db)
	statusRepo := NewStatusRepository(db)
	ticketRepo := NewTicketRepository(db)
	workflowRepo := NewWorkflowRepository(db)
	historyRepo := NewTicketHistoryRepository(db)
	ctx := context.Background()

	p := createTestProject(t, "Doomed", "DMD", "proj-del01")
	require.NoError(t, projectRepo.Save(ctx, p))

	status, err := project.NewStatus(p.ID(), "Open", "#6699cc", false, 1)
	require.NoError(t, err)
	require.NoError(t, statusRepo.Save(ctx, status))

	wf, err := workflow.NewWorkflow(p.ID(), workflow.NewDefinition([]uint{status.ID()}, nil))
	require.NoError(t, err)
	require.NoError(t, workflowRepo.CreateOrUpdate(ctx, wf))

	tk := createTestTicket(t, p.ID(), "Inside", "tkt-pdel01")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	history, err := ticket.NewHistory(tk.ID(), 1, nil, status.ID(), nil)
	require.NoError(t, err)
	require.NoError(t, historyRepo.Append(ctx, history))

	require.NoError(t, projectRepo.Delete(ctx, p.ID()))

	_, err = projectRepo.GetByID(ctx, p.ID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = ticketRepo.GetByID(ctx, tk.ID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	statuses, err := statusRepo.ListByProject(ctx, p.ID())
	require.NoError(t, err)
	assert.Empty(t, statuses)

	deletedWf, err := workflowRepo.GetByProjectID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, deletedWf)

	count, err := historyRepo.CountByTicket(ctx, tk.ID())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStatusRepository_GetDefaultForProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatusRepository(db)
	ctx := context.Background()

	second, err := project.NewStatus(1, "In Progress", "#ffcc00", false, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	first, err := project.NewStatus(1, "Open", "#6699cc", false, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	def, err := repo.GetDefaultForProject(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Open", def.Name())

	_, err = repo.GetDefaultForProject(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
