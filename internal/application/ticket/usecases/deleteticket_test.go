package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(ticketRepo *mockTicketRepository, depRepo *mockDependencyRepository, publisher *mockPublisher) *DeleteTicketUseCase {
		return NewDeleteTicketUseCase(ticketRepo, depRepo, &mockTxManager{}, publisher, mockLogger{})
	}

	t.Run("deletes leaf ticket and publishes event", func(t *testing.T) {
		var deletedID uint
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		publisher := &mockPublisher{}
		uc := newUseCase(ticketRepo, &mockDependencyRepository{}, publisher)

		err := uc.Execute(ctx, DeleteTicketCommand{TicketID: 5, DeletedBy: 7})

		require.NoError(t, err)
		assert.Equal(t, uint(5), deletedID)
		require.Len(t, publisher.Published, 1)
		_, ok := publisher.Published[0].(ticket.TicketDeletedEvent)
		assert.True(t, ok)
	})

	t.Run("refuses when children exist", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			CountChildrenFunc: func(ctx context.Context, id uint) (int64, error) {
				return 3, nil
			},
		}
		uc := newUseCase(ticketRepo, &mockDependencyRepository{}, &mockPublisher{})

		err := uc.Execute(ctx, DeleteTicketCommand{TicketID: 5, DeletedBy: 7})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.Contains(t, err.Error(), "3 child tickets")
	})

	t.Run("refuses when other tickets are blocked by it", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
		}
		depRepo := &mockDependencyRepository{
			CountBlockingDependentsFunc: func(ctx context.Context, id uint) (int64, error) {
				return 2, nil
			},
		}
		uc := newUseCase(ticketRepo, depRepo, &mockPublisher{})

		err := uc.Execute(ctx, DeleteTicketCommand{TicketID: 5, DeletedBy: 7})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.Contains(t, err.Error(), "blocks 2 other tickets")
	})

	t.Run("unknown ticket returns not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("not found")
			},
		}
		uc := newUseCase(ticketRepo, &mockDependencyRepository{}, &mockPublisher{})

		err := uc.Execute(ctx, DeleteTicketCommand{TicketID: 99, DeletedBy: 7})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
