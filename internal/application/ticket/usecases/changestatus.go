package usecases

import (
	"context"
	"fmt"
	"time"

	"quarry/internal/domain/project"
	"quarry/internal/domain/shared/events"
	"quarry/internal/domain/ticket"
	"quarry/internal/domain/workflow"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID    uint
	NewStatusID uint
	Note        *string
	ChangedBy   uint
}

type ChangeStatusResult struct {
	TicketID    uint
	OldStatusID uint
	NewStatusID uint
	UpdatedAt   time.Time
}

// ChangeStatusUseCase moves a ticket through its project workflow. The
// status write and the history row commit in the same transaction.
type ChangeStatusUseCase struct {
	ticketRepo   ticket.TicketRepository
	historyRepo  ticket.HistoryRepository
	statusRepo   project.StatusRepository
	workflowRepo workflow.WorkflowRepository
	engine       *workflow.Engine
	txManager    TransactionManager
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	statusRepo project.StatusRepository,
	workflowRepo workflow.WorkflowRepository,
	engine *workflow.Engine,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		statusRepo:   statusRepo,
		workflowRepo: workflowRepo,
		engine:       engine,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID, "new_status_id", cmd.NewStatusID, "changed_by", cmd.ChangedBy)

	if cmd.NewStatusID == 0 {
		return nil, errors.NewValidationError("status ID is required")
	}
	if cmd.ChangedBy == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	oldStatusID := t.StatusID()
	if oldStatusID == cmd.NewStatusID {
		return &ChangeStatusResult{
			TicketID:    t.ID(),
			OldStatusID: oldStatusID,
			NewStatusID: oldStatusID,
			UpdatedAt:   t.UpdatedAt(),
		}, nil
	}

	newStatus, err := uc.statusRepo.GetByID(ctx, cmd.NewStatusID)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("status %d not found", cmd.NewStatusID))
	}
	if newStatus.ProjectID() != t.ProjectID() {
		return nil, errors.NewValidationError("status belongs to a different project")
	}

	wf, err := uc.workflowRepo.GetByProjectID(ctx, t.ProjectID())
	if err != nil {
		return nil, err
	}
	current := oldStatusID
	if err := uc.engine.Authorize(wf, &current, cmd.NewStatusID); err != nil {
		uc.logger.Infow("transition rejected",
			"ticket_id", cmd.TicketID, "from", oldStatusID, "to", cmd.NewStatusID)
		return nil, err
	}

	if err := t.SetStatus(cmd.NewStatusID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		from := oldStatusID
		history, err := ticket.NewHistory(t.ID(), cmd.ChangedBy, &from, cmd.NewStatusID, cmd.Note)
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	from := oldStatusID
	if err := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(
		t.ID(), t.ProjectID(), &from, cmd.NewStatusID, cmd.ChangedBy, cmd.Note,
	)); err != nil {
		uc.logger.Warnw("failed to publish status changed event", "error", err)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "from", oldStatusID, "to", cmd.NewStatusID)

	return &ChangeStatusResult{
		TicketID:    t.ID(),
		OldStatusID: oldStatusID,
		NewStatusID: cmd.NewStatusID,
		UpdatedAt:   t.UpdatedAt(),
	}, nil
}
