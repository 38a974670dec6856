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

type PriorityRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewPriorityRepository(db *gorm.DB) *PriorityRepository {
	return &PriorityRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *PriorityRepository) Save(ctx context.Context, p *project.Priority) error {
	model := r.mapper.PriorityToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket priority: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PriorityRepository) GetByID(ctx context.Context, priorityID uint) (*project.Priority, error) {
	var model models.TicketPriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, priorityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find ticket priority: %w", err)
	}

	return r.mapper.PriorityToDomain(&model)
}

func (r *PriorityRepository) List(ctx context.Context) ([]*project.Priority, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var priorityModels []models.TicketPriorityModel
	if err := tx.Order("sort_order ASC, id ASC").Find(&priorityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket priorities: %w", err)
	}

	priorities := make([]*project.Priority, len(priorityModels))
	for i := range priorityModels {
		p, err := r.mapper.PriorityToDomain(&priorityModels[i])
		if err != nil {
			return nil, err
		}
		priorities[i] = p
	}

	return priorities, nil
}
