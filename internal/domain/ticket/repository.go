package ticket

import (
	"context"

	vo "quarry/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByUID(ctx context.Context, uid string) (*Ticket, error)
	GetParentID(ctx context.Context, ticketID uint) (*uint, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	CountChildren(ctx context.Context, ticketID uint) (int64, error)
	ReplaceAssignees(ctx context.Context, ticketID uint, userIDs []uint) error
	ReplaceCustomValues(ctx context.Context, ticketID uint, values map[string]string) error
}

type TicketFilter struct {
	ProjectID  *uint
	StatusID   *uint
	PriorityID *uint
	EpicID     *uint
	SprintID   *uint
	ParentID   *uint
	IssueType  *vo.IssueType
	CreatorID  *uint
	AssigneeID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type HistoryRepository interface {
	// Append writes a history row. History is append-only; there is no
	// update or single-row delete.
	Append(ctx context.Context, history *History) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*History, error)
	CountByTicket(ctx context.Context, ticketID uint) (int64, error)
}

type DependencyRepository interface {
	Save(ctx context.Context, dependency *Dependency) error
	Delete(ctx context.Context, dependencyID uint) error
	GetByID(ctx context.Context, dependencyID uint) (*Dependency, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Dependency, error)
	Exists(ctx context.Context, ticketID, dependsOnID uint, depType vo.DependencyType) (bool, error)
	// CountBlockingDependents counts `blocks` rows whose depends-on side is
	// the given ticket, i.e. tickets that would be orphaned by its deletion.
	CountBlockingDependents(ctx context.Context, ticketID uint) (int64, error)
}
