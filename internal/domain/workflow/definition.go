package workflow

import "sort"

// Definition is the per-project transition graph: the set of statuses a
// ticket may start in and, for each status, the statuses reachable in one
// hop. It is constructed and replaced wholesale; the engine only performs
// membership tests against it. Status IDs are not validated against the
// status table here; keeping the definition consistent with the project's
// statuses is the caller's responsibility.
type Definition struct {
	InitialStatuses []uint          `json:"initial_statuses"`
	Transitions     map[uint][]uint `json:"transitions"`
}

// NewDefinition normalizes the inputs: duplicate status IDs are collapsed
// and slices are sorted so stored JSON is deterministic.
func NewDefinition(initialStatuses []uint, transitions map[uint][]uint) Definition {
	def := Definition{
		InitialStatuses: dedupe(initialStatuses),
		Transitions:     make(map[uint][]uint, len(transitions)),
	}
	for from, targets := range transitions {
		def.Transitions[from] = dedupe(targets)
	}
	return def
}

// IsInitial reports whether statusID is a valid starting state.
func (d Definition) IsInitial(statusID uint) bool {
	for _, id := range d.InitialStatuses {
		if id == statusID {
			return true
		}
	}
	return false
}

// CanTransition reports whether the one-hop move from -> to is allowed.
func (d Definition) CanTransition(from, to uint) bool {
	for _, id := range d.Transitions[from] {
		if id == to {
			return true
		}
	}
	return false
}

// AllowedFrom returns the statuses reachable in one hop from the given
// status. The result is a copy; callers may not mutate the definition.
func (d Definition) AllowedFrom(from uint) []uint {
	targets := d.Transitions[from]
	out := make([]uint, len(targets))
	copy(out, targets)
	return out
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
