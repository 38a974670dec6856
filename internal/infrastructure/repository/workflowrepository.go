package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quarry/internal/domain/workflow"
	"quarry/internal/infrastructure/persistence/mappers"
	"quarry/internal/infrastructure/persistence/models"
	db "quarry/internal/shared/db"
)

type WorkflowRepository struct {
	db     *gorm.DB
	mapper mappers.WorkflowMapper
}

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{
		db:     db,
		mapper: mappers.NewWorkflowMapper(),
	}
}

// GetByProjectID returns (nil, nil) when the project has no workflow row;
// callers treat that as "no restrictions".
func (r *WorkflowRepository) GetByProjectID(ctx context.Context, projectID uint) (*workflow.Workflow, error) {
	var model models.ProjectWorkflowModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("project_id = ?", projectID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project workflow: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkflowRepository) CreateOrUpdate(ctx context.Context, w *workflow.Workflow) error {
	model, err := r.mapper.ToModel(w)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// One row per project; a second upsert replaces the definition.
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"definition", "updated_at"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project workflow: %w", err)
	}

	return nil
}

func (r *WorkflowRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("project_id = ?", projectID).Delete(&models.ProjectWorkflowModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project workflow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
