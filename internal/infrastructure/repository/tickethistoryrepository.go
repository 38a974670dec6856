package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quarry/internal/domain/ticket"
	"quarry/internal/infrastructure/persistence/mappers"
	"quarry/internal/infrastructure/persistence/models"
	db "quarry/internal/shared/db"
)

type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(db *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Append inserts a new history row. Rows are never updated or deleted
// individually; the log is append-only.
func (r *TicketHistoryRepository) Append(ctx context.Context, h *ticket.History) error {
	model := r.mapper.HistoryToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append ticket history: %w", err)
	}

	return h.SetID(model.ID)
}

func (r *TicketHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.History, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var historyModels []models.TicketHistoryModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket history: %w", err)
	}

	entries := make([]*ticket.History, len(historyModels))
	for i := range historyModels {
		h, err := r.mapper.HistoryToDomain(&historyModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = h
	}

	return entries, nil
}

func (r *TicketHistoryRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketHistoryModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ticket history: %w", err)
	}

	return count, nil
}
