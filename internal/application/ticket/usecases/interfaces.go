package usecases

import (
	"context"

	"quarry/internal/application/ticket/dto"
)

// TransactionManager runs a function inside a database transaction carried
// on the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) error
}

type AddDependencyExecutor interface {
	Execute(ctx context.Context, cmd AddDependencyCommand) (*dto.DependencyDTO, error)
}

type RemoveDependencyExecutor interface {
	Execute(ctx context.Context, cmd RemoveDependencyCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListHistoryExecutor interface {
	Execute(ctx context.Context, query ListHistoryQuery) ([]*dto.HistoryDTO, error)
}

type ListDependenciesExecutor interface {
	Execute(ctx context.Context, query ListDependenciesQuery) ([]*dto.DependencyDTO, error)
}
