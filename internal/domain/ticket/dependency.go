package ticket

import (
	"fmt"
	"time"

	vo "quarry/internal/domain/ticket/valueobjects"
)

// Dependency is a directed relationship between two tickets. A `blocks`
// dependency protects its target from deletion while dependents exist; a
// `relates` dependency is informational only. Rows are unique per
// (ticket, dependsOn, type) and are removed when either ticket is deleted.
type Dependency struct {
	id          uint
	ticketID    uint
	dependsOnID uint
	depType     vo.DependencyType
	createdAt   time.Time
}

func NewDependency(ticketID, dependsOnID uint, depType vo.DependencyType) (*Dependency, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if dependsOnID == 0 {
		return nil, fmt.Errorf("depends-on ticket ID is required")
	}
	if ticketID == dependsOnID {
		return nil, fmt.Errorf("ticket cannot depend on itself")
	}
	if !depType.IsValid() {
		return nil, fmt.Errorf("invalid dependency type: %s", depType)
	}

	return &Dependency{
		ticketID:    ticketID,
		dependsOnID: dependsOnID,
		depType:     depType,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructDependency(
	id uint,
	ticketID uint,
	dependsOnID uint,
	depType vo.DependencyType,
	createdAt time.Time,
) (*Dependency, error) {
	if id == 0 {
		return nil, fmt.Errorf("dependency ID cannot be zero")
	}
	if !depType.IsValid() {
		return nil, fmt.Errorf("invalid dependency type: %s", depType)
	}

	return &Dependency{
		id:          id,
		ticketID:    ticketID,
		dependsOnID: dependsOnID,
		depType:     depType,
		createdAt:   createdAt,
	}, nil
}

func (d *Dependency) ID() uint {
	return d.id
}

func (d *Dependency) TicketID() uint {
	return d.ticketID
}

func (d *Dependency) DependsOnID() uint {
	return d.dependsOnID
}

func (d *Dependency) Type() vo.DependencyType {
	return d.depType
}

func (d *Dependency) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Dependency) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("dependency ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("dependency ID cannot be zero")
	}
	d.id = id
	return nil
}
