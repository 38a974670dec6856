package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/ticket/dto"
	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UID      string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	var (
		t   *ticket.Ticket
		err error
	)

	switch {
	case query.TicketID != 0:
		t, err = uc.ticketRepo.GetByID(ctx, query.TicketID)
	case query.UID != "":
		t, err = uc.ticketRepo.GetByUID(ctx, query.UID)
	default:
		return nil, errors.NewValidationError("ticket ID or UID is required")
	}

	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	return dto.FromTicket(t), nil
}
