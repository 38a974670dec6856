package project

import (
	"fmt"
	"time"
)

// Status is a ticket status owned by exactly one project. Deleting the
// project cascades to its statuses. The project's default status for new
// tickets is the one with the lowest sort order.
type Status struct {
	id          uint
	projectID   uint
	name        string
	color       string
	isCompleted bool
	sortOrder   int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStatus(projectID uint, name, color string, isCompleted bool, sortOrder int) (*Status, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Status{
		projectID:   projectID,
		name:        name,
		color:       color,
		isCompleted: isCompleted,
		sortOrder:   sortOrder,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructStatus(
	id uint,
	projectID uint,
	name string,
	color string,
	isCompleted bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	return &Status{
		id:          id,
		projectID:   projectID,
		name:        name,
		color:       color,
		isCompleted: isCompleted,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Status) ID() uint {
	return s.id
}

func (s *Status) ProjectID() uint {
	return s.projectID
}

func (s *Status) Name() string {
	return s.name
}

func (s *Status) Color() string {
	return s.color
}

func (s *Status) IsCompleted() bool {
	return s.isCompleted
}

func (s *Status) SortOrder() int {
	return s.sortOrder
}

func (s *Status) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Status) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Status) Update(name, color string, isCompleted bool, sortOrder int) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	s.name = name
	s.color = color
	s.isCompleted = isCompleted
	s.sortOrder = sortOrder
	s.updatedAt = time.Now()
	return nil
}
