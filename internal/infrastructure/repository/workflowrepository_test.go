package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quarry/internal/domain/workflow"
)

func TestWorkflowRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkflowRepository(db)
	ctx := context.Background()

	t.Run("no workflow row returns nil without error", func(t *testing.T) {
		wf, err := repo.GetByProjectID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, wf)
	})

	t.Run("create and read back the definition", func(t *testing.T) {
		wf, err := workflow.NewWorkflow(1, workflow.NewDefinition(
			[]uint{10}, map[uint][]uint{10: {20}, 20: {10, 30}}))
		require.NoError(t, err)

		require.NoError(t, repo.CreateOrUpdate(ctx, wf))

		found, err := repo.GetByProjectID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []uint{10}, found.Definition().InitialStatuses)
		assert.Equal(t, []uint{10, 30}, found.Definition().AllowedFrom(20))
	})

	t.Run("second upsert replaces the definition for the same project", func(t *testing.T) {
		wf, err := workflow.NewWorkflow(1, workflow.NewDefinition(
			[]uint{10, 20}, map[uint][]uint{10: {20}}))
		require.NoError(t, err)

		require.NoError(t, repo.CreateOrUpdate(ctx, wf))

		found, err := repo.GetByProjectID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []uint{10, 20}, found.Definition().InitialStatuses)
		assert.Empty(t, found.Definition().AllowedFrom(20))

		var count int64
		require.NoError(t, db.Table("project_workflows").Where("project_id = ?", 1).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.DeleteByProjectID(ctx, 1))

		wf, err := repo.GetByProjectID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, wf)
	})

	t.Run("deleting a missing workflow returns record not found", func(t *testing.T) {
		err := repo.DeleteByProjectID(ctx, 1)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
