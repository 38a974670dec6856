package ticket

import (
	"context"
	"fmt"
)

// ParentResolver provides the minimal lookup needed to walk a parent chain
// without loading full tickets.
type ParentResolver interface {
	GetParentID(ctx context.Context, ticketID uint) (*uint, error)
}

// CheckCircularReference walks the parent chain upward from proposedParentID
// and fails if ticketID appears in it. The walk is bounded by a visited set,
// so it terminates even on pre-existing corrupt cycles. ticketID may be zero
// for a ticket that has not been persisted yet; a new ticket can never be an
// ancestor of an existing one, so the walk trivially passes.
func CheckCircularReference(ctx context.Context, resolver ParentResolver, ticketID, proposedParentID uint) error {
	if ticketID != 0 && ticketID == proposedParentID {
		return fmt.Errorf("ticket cannot be its own parent")
	}
	if ticketID == 0 {
		return nil
	}

	visited := map[uint]bool{proposedParentID: true}
	current := proposedParentID

	for {
		parentID, err := resolver.GetParentID(ctx, current)
		if err != nil {
			return fmt.Errorf("failed to resolve parent of ticket %d: %w", current, err)
		}
		if parentID == nil {
			return nil
		}
		if *parentID == ticketID {
			return fmt.Errorf("circular reference detected")
		}
		if visited[*parentID] {
			// Existing cycle that does not involve ticketID; stop walking.
			return nil
		}
		visited[*parentID] = true
		current = *parentID
	}
}
