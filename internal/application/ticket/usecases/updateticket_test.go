package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quarry/internal/domain/project"
	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
)

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(ticketRepo *mockTicketRepository, priorityRepo *mockPriorityRepository, customFieldRepo *mockCustomFieldRepository, publisher *mockPublisher) *UpdateTicketUseCase {
		return NewUpdateTicketUseCase(ticketRepo, priorityRepo, customFieldRepo, &mockUserRepository{}, &mockTxManager{}, publisher, mockLogger{})
	}

	strPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }

	t.Run("updates name and priority", func(t *testing.T) {
		var updated *ticket.Ticket
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		priorityRepo := &mockPriorityRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*project.Priority, error) {
				return testPriority(t, id), nil
			},
		}
		publisher := &mockPublisher{}
		uc := newUseCase(ticketRepo, priorityRepo, &mockCustomFieldRepository{}, publisher)

		result, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:   5,
			Name:       strPtr("Renamed"),
			PriorityID: uintPtr(3),
			UpdatedBy:  7,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(5), result.TicketID)
		require.NotNil(t, updated)
		assert.Equal(t, "Renamed", updated.Name())
		assert.Equal(t, uint(3), updated.PriorityID())

		require.Len(t, publisher.Published, 1)
		_, ok := publisher.Published[0].(ticket.TicketUpdatedEvent)
		assert.True(t, ok)
	})

	t.Run("reparenting rejects a cycle", func(t *testing.T) {
		// 6 is already a child of 5, so making 6 the parent of 5 closes a
		// loop.
		parentOf := map[uint]*uint{6: uintPtr(5)}
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			GetParentIDFunc: func(ctx context.Context, id uint) (*uint, error) {
				return parentOf[id], nil
			},
		}
		uc := newUseCase(ticketRepo, &mockPriorityRepository{}, &mockCustomFieldRepository{}, &mockPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:  5,
			ParentID:  uintPtr(6),
			UpdatedBy: 7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "circular")
	})

	t.Run("clear parent wins over a new parent", func(t *testing.T) {
		var updated *ticket.Ticket
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				tk := testTicketEntity(t, id, 1, 10)
				return tk, nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		uc := newUseCase(ticketRepo, &mockPriorityRepository{}, &mockCustomFieldRepository{}, &mockPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:    5,
			ParentID:    uintPtr(6),
			ClearParent: true,
			UpdatedBy:   7,
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, updated.ParentID())
	})

	t.Run("custom field update filters inactive keys and rewrites values", func(t *testing.T) {
		var rewritten map[string]string
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			ReplaceCustomValuesFunc: func(ctx context.Context, ticketID uint, values map[string]string) error {
				rewritten = values
				return nil
			},
		}
		customFieldRepo := &mockCustomFieldRepository{
			ListActiveKeysFunc: func(ctx context.Context, projectID uint) ([]string, error) {
				return []string{"severity"}, nil
			},
		}
		uc := newUseCase(ticketRepo, &mockPriorityRepository{}, customFieldRepo, &mockPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID: 5,
			CustomFields: map[string]string{
				"severity": "low",
				"retired":  "x",
			},
			UpdatedBy: 7,
		})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"severity": "low"}, rewritten)
	})

	t.Run("replaces assignees together with field updates", func(t *testing.T) {
		var updated *ticket.Ticket
		var replaced []uint
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
			ReplaceAssigneesFunc: func(ctx context.Context, ticketID uint, assigneeIDs []uint) error {
				replaced = assigneeIDs
				return nil
			},
		}
		uc := newUseCase(ticketRepo, &mockPriorityRepository{}, &mockCustomFieldRepository{}, &mockPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:    5,
			Name:        strPtr("Renamed"),
			AssigneeIDs: []uint{3, 4},
			UpdatedBy:   7,
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Renamed", updated.Name())
		assert.Equal(t, []uint{3, 4}, replaced)
	})

	t.Run("nil assignee list leaves assignees unchanged", func(t *testing.T) {
		replaceCalled := false
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
			ReplaceAssigneesFunc: func(ctx context.Context, ticketID uint, assigneeIDs []uint) error {
				replaceCalled = true
				return nil
			},
		}
		uc := newUseCase(ticketRepo, &mockPriorityRepository{}, &mockCustomFieldRepository{}, &mockPublisher{})

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:  5,
			Name:      strPtr("Renamed"),
			UpdatedBy: 7,
		})

		require.NoError(t, err)
		assert.False(t, replaceCalled)
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
		uc := NewUpdateTicketUseCase(
			ticketRepo, &mockPriorityRepository{}, &mockCustomFieldRepository{},
			userRepo, &mockTxManager{}, &mockPublisher{}, mockLogger{},
		)

		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:    5,
			AssigneeIDs: []uint{99},
			UpdatedBy:   7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "assignees")
	})

	t.Run("rejects due date before start date", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return testTicketEntity(t, id, 1, 10), nil
			},
		}
		uc := newUseCase(ticketRepo, &mockPriorityRepository{}, &mockCustomFieldRepository{}, &mockPublisher{})

		start := testTicketEntity(t, 5, 1, 10).CreatedAt()
		due := start.AddDate(0, 0, -1)
		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:  5,
			StartDate: &start,
			DueDate:   &due,
			UpdatedBy: 7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
