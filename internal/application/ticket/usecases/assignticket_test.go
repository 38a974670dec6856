package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
)

func TestAssignTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(ticketRepo *mockTicketRepository, userRepo *mockUserRepository, publisher *mockPublisher) *AssignTicketUseCase {
		return NewAssignTicketUseCase(ticketRepo, userRepo, &mockTxManager{}, publisher, mockLogger{})
	}

	t.Run("replaces assignees and dedupes", func(t *testing.T) {
		var replaced []uint
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			ReplaceAssigneesFunc: func(ctx context.Context, ticketID uint, userIDs []uint) error {
				replaced = userIDs
				return nil
			},
		}
		publisher := &mockPublisher{}
		uc := newUseCase(ticketRepo, &mockUserRepository{}, publisher)

		err := uc.Execute(ctx, AssignTicketCommand{
			TicketID:    5,
			AssigneeIDs: []uint{3, 4, 3},
			AssignedBy:  7,
		})

		require.NoError(t, err)
		assert.Equal(t, []uint{3, 4}, replaced)

		require.Len(t, publisher.Published, 1)
		assigned, ok := publisher.Published[0].(ticket.TicketAssignedEvent)
		require.True(t, ok)
		assert.Equal(t, []uint{3, 4}, assigned.AssigneeIDs)
	})

	t.Run("empty list unassigns everyone without a user lookup", func(t *testing.T) {
		var replaced []uint
		var existAllCalled bool
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			ReplaceAssigneesFunc: func(ctx context.Context, ticketID uint, userIDs []uint) error {
				replaced = userIDs
				return nil
			},
		}
		userRepo := &mockUserRepository{
			ExistAllFunc: func(ctx context.Context, userIDs []uint) (bool, error) {
				existAllCalled = true
				return true, nil
			},
		}
		uc := newUseCase(ticketRepo, userRepo, &mockPublisher{})

		err := uc.Execute(ctx, AssignTicketCommand{TicketID: 5, AssignedBy: 7})

		require.NoError(t, err)
		assert.Empty(t, replaced)
		assert.False(t, existAllCalled)
	})

	t.Run("rejects unknown assignees", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
		}
		userRepo := &mockUserRepository{
			ExistAllFunc: func(ctx context.Context, userIDs []uint) (bool, error) {
				return false, nil
			},
		}
		uc := newUseCase(ticketRepo, userRepo, &mockPublisher{})

		err := uc.Execute(ctx, AssignTicketCommand{
			TicketID:    5,
			AssigneeIDs: []uint{3, 99},
			AssignedBy:  7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown ticket returns not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("not found")
			},
		}
		uc := newUseCase(ticketRepo, &mockUserRepository{}, &mockPublisher{})

		err := uc.Execute(ctx, AssignTicketCommand{TicketID: 99, AssignedBy: 7})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
