package notification

import (
	"context"
	"fmt"

	"quarry/internal/domain/project"
	"quarry/internal/domain/shared/events"
	"quarry/internal/domain/ticket"
	"quarry/internal/domain/user"
	"quarry/internal/infrastructure/email"
	"quarry/internal/shared/logger"
)

// Subscriber listens for ticket events and emails the affected users.
// Delivery failures are logged and swallowed; notifications never block
// the originating operation.
type Subscriber struct {
	sender     email.Sender
	ticketRepo ticket.TicketRepository
	statusRepo project.StatusRepository
	userRepo   user.UserRepository
	baseURL    string
	logger     logger.Interface
}

func NewSubscriber(
	sender email.Sender,
	ticketRepo ticket.TicketRepository,
	statusRepo project.StatusRepository,
	userRepo user.UserRepository,
	baseURL string,
	logger logger.Interface,
) *Subscriber {
	return &Subscriber{
		sender:     sender,
		ticketRepo: ticketRepo,
		statusRepo: statusRepo,
		userRepo:   userRepo,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Register attaches the subscriber to the dispatcher.
func (s *Subscriber) Register(dispatcher events.EventSubscriber) error {
	if err := dispatcher.Subscribe(ticket.EventTicketAssigned, s); err != nil {
		return err
	}
	return dispatcher.Subscribe(ticket.EventTicketStatusChanged, s)
}

func (s *Subscriber) CanHandle(eventType string) bool {
	return eventType == ticket.EventTicketAssigned || eventType == ticket.EventTicketStatusChanged
}

func (s *Subscriber) Handle(event events.DomainEvent) error {
	switch e := event.(type) {
	case ticket.TicketAssignedEvent:
		s.handleAssigned(e)
	case ticket.TicketStatusChangedEvent:
		s.handleStatusChanged(e)
	}
	return nil
}

func (s *Subscriber) handleAssigned(e ticket.TicketAssignedEvent) {
	ctx := context.Background()

	t, err := s.ticketRepo.GetByID(ctx, e.TicketID)
	if err != nil {
		s.logger.Warnw("notification skipped, ticket not found", "ticket_id", e.TicketID)
		return
	}

	for _, assigneeID := range e.AssigneeIDs {
		if assigneeID == e.AssignedBy {
			continue
		}
		u, err := s.userRepo.GetByID(ctx, assigneeID)
		if err != nil {
			s.logger.Warnw("notification skipped, user not found", "user_id", assigneeID)
			continue
		}
		if err := s.sender.SendTicketAssigned(u.Email(), t.Name(), s.ticketURL(t.UID())); err != nil {
			s.logger.Warnw("failed to send assignment email", "user_id", assigneeID, "error", err)
		}
	}
}

func (s *Subscriber) handleStatusChanged(e ticket.TicketStatusChangedEvent) {
	ctx := context.Background()

	t, err := s.ticketRepo.GetByID(ctx, e.TicketID)
	if err != nil {
		s.logger.Warnw("notification skipped, ticket not found", "ticket_id", e.TicketID)
		return
	}

	fromName := "(none)"
	if e.FromStatusID != nil {
		if from, err := s.statusRepo.GetByID(ctx, *e.FromStatusID); err == nil {
			fromName = from.Name()
		}
	}
	toName := fmt.Sprintf("status %d", e.ToStatusID)
	if to, err := s.statusRepo.GetByID(ctx, e.ToStatusID); err == nil {
		toName = to.Name()
	}

	for _, assigneeID := range t.AssigneeIDs() {
		if assigneeID == e.ChangedBy {
			continue
		}
		u, err := s.userRepo.GetByID(ctx, assigneeID)
		if err != nil {
			continue
		}
		if err := s.sender.SendTicketStatusChanged(u.Email(), t.Name(), fromName, toName, s.ticketURL(t.UID())); err != nil {
			s.logger.Warnw("failed to send status change email", "user_id", assigneeID, "error", err)
		}
	}
}

func (s *Subscriber) ticketURL(uid string) string {
	return fmt.Sprintf("%s/tickets/%s", s.baseURL, uid)
}
