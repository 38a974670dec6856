package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quarry/internal/domain/project"
	"quarry/internal/infrastructure/persistence/mappers"
	"quarry/internal/infrastructure/persistence/models"
	db "quarry/internal/shared/db"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

// Delete removes the project row together with everything scoped under it:
// statuses, custom fields, workflow, and all tickets with their owned rows.
func (r *ProjectRepository) Delete(ctx context.Context, projectID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ProjectModel{}, projectID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	ticketIDs := tx.Model(&models.TicketModel{}).
		Select("id").
		Where("project_id = ?", projectID)

	if err := tx.Where("ticket_id IN (?)", ticketIDs).Delete(&models.TicketHistoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project ticket history: %w", err)
	}
	if err := tx.Where("ticket_id IN (?)", ticketIDs).Delete(&models.TicketCustomValueModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project ticket custom values: %w", err)
	}
	if err := tx.Where("ticket_id IN (?)", ticketIDs).Delete(&models.TicketAssigneeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project ticket assignees: %w", err)
	}
	if err := tx.Where("ticket_id IN (?) OR depends_on_ticket_id IN (?)", ticketIDs, ticketIDs).
		Delete(&models.TicketDependencyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project ticket dependencies: %w", err)
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project tickets: %w", err)
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&models.TicketStatusModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project statuses: %w", err)
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&models.CustomFieldModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project custom fields: %w", err)
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectWorkflowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project workflow: %w", err)
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) GetByKey(ctx context.Context, key string) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("`key` = ?", key).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context, page, pageSize int) ([]*project.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query = query.Order("created_at DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var projectModels []models.ProjectModel
	if err := query.Find(&projectModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, len(projectModels))
	for i := range projectModels {
		p, err := r.mapper.ToDomain(&projectModels[i])
		if err != nil {
			return nil, 0, err
		}
		projects[i] = p
	}

	return projects, total, nil
}
