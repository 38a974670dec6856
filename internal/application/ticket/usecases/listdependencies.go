package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/ticket/dto"
	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type ListDependenciesQuery struct {
	TicketID uint
}

type ListDependenciesUseCase struct {
	ticketRepo     ticket.TicketRepository
	dependencyRepo ticket.DependencyRepository
	logger         logger.Interface
}

func NewListDependenciesUseCase(
	ticketRepo ticket.TicketRepository,
	dependencyRepo ticket.DependencyRepository,
	logger logger.Interface,
) *ListDependenciesUseCase {
	return &ListDependenciesUseCase{
		ticketRepo:     ticketRepo,
		dependencyRepo: dependencyRepo,
		logger:         logger,
	}
}

func (uc *ListDependenciesUseCase) Execute(ctx context.Context, query ListDependenciesQuery) ([]*dto.DependencyDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	dependencies, err := uc.dependencyRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket dependencies", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	items := make([]*dto.DependencyDTO, len(dependencies))
	for i, d := range dependencies {
		items[i] = dto.FromDependency(d)
	}

	return items, nil
}
