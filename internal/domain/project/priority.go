package project

import (
	"fmt"
	"time"
)

// Priority is a shared priority level (Low/Medium/High/Urgent by seed).
// Unlike statuses, priorities are global rather than project scoped.
type Priority struct {
	id        uint
	name      string
	color     string
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

func NewPriority(name, color string, sortOrder int) (*Priority, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Priority{
		name:      name,
		color:     color,
		sortOrder: sortOrder,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPriority(
	id uint,
	name string,
	color string,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Priority, error) {
	if id == 0 {
		return nil, fmt.Errorf("priority ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Priority{
		id:        id,
		name:      name,
		color:     color,
		sortOrder: sortOrder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Priority) ID() uint {
	return p.id
}

func (p *Priority) Name() string {
	return p.name
}

func (p *Priority) Color() string {
	return p.color
}

func (p *Priority) SortOrder() int {
	return p.sortOrder
}

func (p *Priority) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Priority) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Priority) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("priority ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("priority ID cannot be zero")
	}
	p.id = id
	return nil
}
