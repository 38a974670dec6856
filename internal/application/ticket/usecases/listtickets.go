package usecases

import (
	"context"

	"quarry/internal/application/ticket/dto"
	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/utils"
)

type ListTicketsQuery struct {
	ProjectID  *uint
	StatusID   *uint
	PriorityID *uint
	EpicID     *uint
	SprintID   *uint
	ParentID   *uint
	IssueType  *string
	CreatorID  *uint
	AssigneeID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		ProjectID:  query.ProjectID,
		StatusID:   query.StatusID,
		PriorityID: query.PriorityID,
		EpicID:     query.EpicID,
		SprintID:   query.SprintID,
		ParentID:   query.ParentID,
		CreatorID:  query.CreatorID,
		AssigneeID: query.AssigneeID,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.IssueType != nil {
		issueType, err := vo.NewIssueType(*query.IssueType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.IssueType = &issueType
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]*dto.TicketDTO, len(tickets))
	for i, t := range tickets {
		items[i] = dto.FromTicket(t)
	}

	return &ListTicketsResult{
		Tickets: items,
		Total:   total,
	}, nil
}
