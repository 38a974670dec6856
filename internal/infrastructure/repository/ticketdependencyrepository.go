package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/infrastructure/persistence/mappers"
	"quarry/internal/infrastructure/persistence/models"
	db "quarry/internal/shared/db"
)

type TicketDependencyRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketDependencyRepository(db *gorm.DB) *TicketDependencyRepository {
	return &TicketDependencyRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketDependencyRepository) Save(ctx context.Context, d *ticket.Dependency) error {
	model := r.mapper.DependencyToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket dependency: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *TicketDependencyRepository) Delete(ctx context.Context, dependencyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketDependencyModel{}, dependencyID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket dependency: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *TicketDependencyRepository) GetByID(ctx context.Context, dependencyID uint) (*ticket.Dependency, error) {
	var model models.TicketDependencyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, dependencyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find ticket dependency: %w", err)
	}

	return r.mapper.DependencyToDomain(&model)
}

func (r *TicketDependencyRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Dependency, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var dependencyModels []models.TicketDependencyModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&dependencyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket dependencies: %w", err)
	}

	dependencies := make([]*ticket.Dependency, len(dependencyModels))
	for i := range dependencyModels {
		d, err := r.mapper.DependencyToDomain(&dependencyModels[i])
		if err != nil {
			return nil, err
		}
		dependencies[i] = d
	}

	return dependencies, nil
}

func (r *TicketDependencyRepository) Exists(ctx context.Context, ticketID, dependsOnID uint, depType vo.DependencyType) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketDependencyModel{}).
		Where("ticket_id = ? AND depends_on_ticket_id = ? AND type = ?", ticketID, dependsOnID, depType.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket dependency: %w", err)
	}

	return count > 0, nil
}

func (r *TicketDependencyRepository) CountBlockingDependents(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketDependencyModel{}).
		Where("depends_on_ticket_id = ? AND type = ?", ticketID, vo.DependencyBlocks.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blocking dependents: %w", err)
	}

	return count, nil
}
