package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/ticket/dto"
	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type ListHistoryQuery struct {
	TicketID uint
}

// ListHistoryUseCase returns the ticket's status log, newest first.
type ListHistoryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewListHistoryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, query ListHistoryQuery) ([]*dto.HistoryDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	entries, err := uc.historyRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket history", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	items := make([]*dto.HistoryDTO, len(entries))
	for i, h := range entries {
		items[i] = dto.FromHistory(h)
	}

	return items, nil
}
