package ticket

import (
	"fmt"
	"time"
)

// History is an append-only audit record of a ticket status change. A row is
// written once at ticket creation (nil fromStatusID) and once per status
// change, in the same transaction as the mutation. It is never updated.
type History struct {
	id           uint
	ticketID     uint
	actorID      uint
	fromStatusID *uint
	toStatusID   uint
	note         *string
	createdAt    time.Time
}

func NewHistory(ticketID, actorID uint, fromStatusID *uint, toStatusID uint, note *string) (*History, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if toStatusID == 0 {
		return nil, fmt.Errorf("target status ID is required")
	}

	return &History{
		ticketID:     ticketID,
		actorID:      actorID,
		fromStatusID: fromStatusID,
		toStatusID:   toStatusID,
		note:         note,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructHistory(
	id uint,
	ticketID uint,
	actorID uint,
	fromStatusID *uint,
	toStatusID uint,
	note *string,
	createdAt time.Time,
) (*History, error) {
	if id == 0 {
		return nil, fmt.Errorf("history ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &History{
		id:           id,
		ticketID:     ticketID,
		actorID:      actorID,
		fromStatusID: fromStatusID,
		toStatusID:   toStatusID,
		note:         note,
		createdAt:    createdAt,
	}, nil
}

func (h *History) ID() uint {
	return h.id
}

func (h *History) TicketID() uint {
	return h.ticketID
}

func (h *History) ActorID() uint {
	return h.actorID
}

func (h *History) FromStatusID() *uint {
	return h.fromStatusID
}

func (h *History) ToStatusID() uint {
	return h.toStatusID
}

func (h *History) Note() *string {
	return h.note
}

func (h *History) CreatedAt() time.Time {
	return h.createdAt
}

func (h *History) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history ID cannot be zero")
	}
	h.id = id
	return nil
}

// IsCreation reports whether this row records the ticket's initial status.
func (h *History) IsCreation() bool {
	return h.fromStatusID == nil
}
