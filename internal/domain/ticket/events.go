package ticket

import (
	"strconv"
	"time"

	"quarry/internal/domain/shared/events"
)

const (
	EventTicketCreated         = "ticket.created"
	EventTicketUpdated         = "ticket.updated"
	EventTicketDeleted         = "ticket.deleted"
	EventTicketStatusChanged   = "ticket.status_changed"
	EventTicketAssigned        = "ticket.assigned"
	EventTicketDependencyAdded = "ticket.dependency_added"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID  uint
	ProjectID uint
	Name      string
	StatusID  uint
	CreatorID uint
}

func NewTicketCreatedEvent(ticketID, projectID uint, name string, statusID, creatorID uint) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketCreated,
			OccurredAt:  time.Now(),
		},
		TicketID:  ticketID,
		ProjectID: projectID,
		Name:      name,
		StatusID:  statusID,
		CreatorID: creatorID,
	}
}

type TicketUpdatedEvent struct {
	events.BaseEvent
	TicketID  uint
	ProjectID uint
	UpdatedBy uint
}

func NewTicketUpdatedEvent(ticketID, projectID, updatedBy uint) TicketUpdatedEvent {
	return TicketUpdatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketUpdated,
			OccurredAt:  time.Now(),
		},
		TicketID:  ticketID,
		ProjectID: projectID,
		UpdatedBy: updatedBy,
	}
}

type TicketDeletedEvent struct {
	events.BaseEvent
	TicketID  uint
	ProjectID uint
	DeletedBy uint
}

func NewTicketDeletedEvent(ticketID, projectID, deletedBy uint) TicketDeletedEvent {
	return TicketDeletedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketDeleted,
			OccurredAt:  time.Now(),
		},
		TicketID:  ticketID,
		ProjectID: projectID,
		DeletedBy: deletedBy,
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID     uint
	ProjectID    uint
	FromStatusID *uint
	ToStatusID   uint
	ChangedBy    uint
	Note         *string
}

func NewTicketStatusChangedEvent(ticketID, projectID uint, fromStatusID *uint, toStatusID, changedBy uint, note *string) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketStatusChanged,
			OccurredAt:  time.Now(),
		},
		TicketID:     ticketID,
		ProjectID:    projectID,
		FromStatusID: fromStatusID,
		ToStatusID:   toStatusID,
		ChangedBy:    changedBy,
		Note:         note,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID    uint
	ProjectID   uint
	AssigneeIDs []uint
	AssignedBy  uint
}

func NewTicketAssignedEvent(ticketID, projectID uint, assigneeIDs []uint, assignedBy uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketAssigned,
			OccurredAt:  time.Now(),
		},
		TicketID:    ticketID,
		ProjectID:   projectID,
		AssigneeIDs: assigneeIDs,
		AssignedBy:  assignedBy,
	}
}

type TicketDependencyAddedEvent struct {
	events.BaseEvent
	TicketID    uint
	DependsOnID uint
	Type        string
	AddedBy     uint
}

func NewTicketDependencyAddedEvent(ticketID, dependsOnID uint, depType string, addedBy uint) TicketDependencyAddedEvent {
	return TicketDependencyAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketDependencyAdded,
			OccurredAt:  time.Now(),
		},
		TicketID:    ticketID,
		DependsOnID: dependsOnID,
		Type:        depType,
		AddedBy:     addedBy,
	}
}
