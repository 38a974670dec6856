package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quarry/internal/domain/project"
	"quarry/internal/domain/ticket"
	"quarry/internal/domain/workflow"
	"quarry/internal/shared/errors"
)

func TestChangeStatusUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(
		ticketRepo *mockTicketRepository,
		historyRepo *mockHistoryRepository,
		statusRepo *mockStatusRepository,
		workflowRepo *mockWorkflowRepository,
		publisher *mockPublisher,
	) *ChangeStatusUseCase {
		return NewChangeStatusUseCase(
			ticketRepo, historyRepo, statusRepo, workflowRepo,
			workflow.NewEngine(), &mockTxManager{}, publisher, mockLogger{},
		)
	}

	t.Run("changes status and appends history in one transaction", func(t *testing.T) {
		var updated *ticket.Ticket
		var appended *ticket.History

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		historyRepo := &mockHistoryRepository{
			AppendFunc: func(ctx context.Context, h *ticket.History) error {
				appended = h
				return nil
			},
		}
		statusRepo := &mockStatusRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*project.Status, error) {
				return testStatus(t, id, 1, 2), nil
			},
		}
		workflowRepo := &mockWorkflowRepository{
			GetByProjectIDFunc: func(ctx context.Context, projectID uint) (*workflow.Workflow, error) {
				return testWorkflow(t, projectID, []uint{10}, map[uint][]uint{10: {20}}), nil
			},
		}
		publisher := &mockPublisher{}
		uc := newUseCase(ticketRepo, historyRepo, statusRepo, workflowRepo, publisher)

		note := "moving to review"
		result, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID:    5,
			NewStatusID: 20,
			Note:        &note,
			ChangedBy:   7,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(10), result.OldStatusID)
		assert.Equal(t, uint(20), result.NewStatusID)

		require.NotNil(t, updated)
		assert.Equal(t, uint(20), updated.StatusID())

		require.NotNil(t, appended)
		require.NotNil(t, appended.FromStatusID())
		assert.Equal(t, uint(10), *appended.FromStatusID())
		assert.Equal(t, uint(20), appended.ToStatusID())
		require.NotNil(t, appended.Note())
		assert.Equal(t, note, *appended.Note())

		require.Len(t, publisher.Published, 1)
		changed, ok := publisher.Published[0].(ticket.TicketStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, uint(20), changed.ToStatusID)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		var updateCalled bool
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updateCalled = true
				return nil
			},
		}
		publisher := &mockPublisher{}
		uc := newUseCase(ticketRepo, &mockHistoryRepository{}, &mockStatusRepository{}, &mockWorkflowRepository{}, publisher)

		result, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID:    5,
			NewStatusID: 10,
			ChangedBy:   7,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(10), result.OldStatusID)
		assert.Equal(t, uint(10), result.NewStatusID)
		assert.False(t, updateCalled)
		assert.Empty(t, publisher.Published)
	})

	t.Run("workflow rejects disallowed transition", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
		}
		statusRepo := &mockStatusRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*project.Status, error) {
				return testStatus(t, id, 1, 3), nil
			},
		}
		workflowRepo := &mockWorkflowRepository{
			GetByProjectIDFunc: func(ctx context.Context, projectID uint) (*workflow.Workflow, error) {
				return testWorkflow(t, projectID, []uint{10}, map[uint][]uint{10: {20}, 20: {30}}), nil
			},
		}
		uc := newUseCase(ticketRepo, &mockHistoryRepository{}, statusRepo, workflowRepo, &mockPublisher{})

		_, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID:    5,
			NewStatusID: 30,
			ChangedBy:   7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("no workflow means any transition is allowed", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
		}
		statusRepo := &mockStatusRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*project.Status, error) {
				return testStatus(t, id, 1, 3), nil
			},
		}
		uc := newUseCase(ticketRepo, &mockHistoryRepository{}, statusRepo, &mockWorkflowRepository{}, &mockPublisher{})

		result, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID:    5,
			NewStatusID: 30,
			ChangedBy:   7,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(30), result.NewStatusID)
	})

	t.Run("rejects status from a different project", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
		}
		statusRepo := &mockStatusRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*project.Status, error) {
				return testStatus(t, id, 2, 1), nil
			},
		}
		uc := newUseCase(ticketRepo, &mockHistoryRepository{}, statusRepo, &mockWorkflowRepository{}, &mockPublisher{})

		_, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID:    5,
			NewStatusID: 20,
			ChangedBy:   7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "different project")
	})

	t.Run("unknown ticket returns not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("not found")
			},
		}
		uc := newUseCase(ticketRepo, &mockHistoryRepository{}, &mockStatusRepository{}, &mockWorkflowRepository{}, &mockPublisher{})

		_, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID:    99,
			NewStatusID: 20,
			ChangedBy:   7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
