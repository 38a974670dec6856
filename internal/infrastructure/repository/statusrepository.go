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

type StatusRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *StatusRepository) Save(ctx context.Context, s *project.Status) error {
	model := r.mapper.StatusToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket status: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *StatusRepository) Update(ctx context.Context, s *project.Status) error {
	model := r.mapper.StatusToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketStatusModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "project_id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}

	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, statusID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketStatusModel{}, statusID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *StatusRepository) GetByID(ctx context.Context, statusID uint) (*project.Status, error) {
	var model models.TicketStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, statusID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find ticket status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRepository) ListByProject(ctx context.Context, projectID uint) ([]*project.Status, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var statusModels []models.TicketStatusModel
	if err := tx.
		Where("project_id = ?", projectID).
		Order("sort_order ASC, id ASC").
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket statuses: %w", err)
	}

	statuses := make([]*project.Status, len(statusModels))
	for i := range statusModels {
		s, err := r.mapper.StatusToDomain(&statusModels[i])
		if err != nil {
			return nil, err
		}
		statuses[i] = s
	}

	return statuses, nil
}

// GetDefaultForProject picks the status with the lowest sort order. New
// tickets without an explicit status land here.
func (r *StatusRepository) GetDefaultForProject(ctx context.Context, projectID uint) (*project.Status, error) {
	var model models.TicketStatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("sort_order ASC, id ASC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find default ticket status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRepository) CountTicketsWithStatus(ctx context.Context, statusID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("ticket_status_id = ?", statusID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets with status: %w", err)
	}

	return count, nil
}
