package workflow

import (
	"strconv"

	"quarry/internal/shared/errors"
)

// Engine decides whether a proposed status change is permitted by a
// project's workflow. It is stateless; the caller loads the workflow (or nil
// when the project has none) and has already verified that the target status
// belongs to the ticket's project.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Authorize validates the move. currentStatusID is nil on the creation path,
// in which case the target must be one of the workflow's initial statuses.
// A nil workflow is permissive mode: any status within the project is
// reachable. On rejection the returned error carries the current status, the
// attempted status, and the allowed set.
func (e *Engine) Authorize(wf *Workflow, currentStatusID *uint, targetStatusID uint) error {
	if wf == nil {
		return nil
	}

	def := wf.Definition()

	if currentStatusID == nil {
		if def.IsInitial(targetStatusID) {
			return nil
		}
		return errors.NewInvalidTransitionError(
			"none",
			formatStatusID(targetStatusID),
			formatStatusIDs(def.InitialStatuses),
		)
	}

	if def.CanTransition(*currentStatusID, targetStatusID) {
		return nil
	}

	return errors.NewInvalidTransitionError(
		formatStatusID(*currentStatusID),
		formatStatusID(targetStatusID),
		formatStatusIDs(def.AllowedFrom(*currentStatusID)),
	)
}

func formatStatusID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatStatusIDs(ids []uint) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = formatStatusID(id)
	}
	return out
}
