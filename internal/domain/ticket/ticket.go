package ticket

import (
	"fmt"
	"time"

	vo "quarry/internal/domain/ticket/valueobjects"
)

// Ticket is the primary trackable work item. Hierarchy (parentID) and
// dependency invariants that need sibling lookups live in the use case layer;
// the entity only enforces what it can see locally.
type Ticket struct {
	id           uint
	uid          string
	projectID    uint
	statusID     uint
	priorityID   uint
	epicID       *uint
	sprintID     *uint
	parentID     *uint
	issueType    vo.IssueType
	name         string
	description  string
	startDate    *time.Time
	dueDate      *time.Time
	createdBy    uint
	assigneeIDs  []uint
	customFields map[string]string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTicket(
	projectID uint,
	name string,
	description string,
	issueType vo.IssueType,
	priorityID uint,
	createdBy uint,
) (*Ticket, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}
	if priorityID == 0 {
		return nil, fmt.Errorf("priority ID is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()

	return &Ticket{
		projectID:    projectID,
		name:         name,
		description:  description,
		issueType:    issueType,
		priorityID:   priorityID,
		createdBy:    createdBy,
		assigneeIDs:  []uint{},
		customFields: make(map[string]string),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	uid string,
	projectID uint,
	statusID uint,
	priorityID uint,
	epicID *uint,
	sprintID *uint,
	parentID *uint,
	issueType vo.IssueType,
	name string,
	description string,
	startDate *time.Time,
	dueDate *time.Time,
	createdBy uint,
	assigneeIDs []uint,
	customFields map[string]string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}

	if assigneeIDs == nil {
		assigneeIDs = []uint{}
	}
	if customFields == nil {
		customFields = make(map[string]string)
	}

	return &Ticket{
		id:           id,
		uid:          uid,
		projectID:    projectID,
		statusID:     statusID,
		priorityID:   priorityID,
		epicID:       epicID,
		sprintID:     sprintID,
		parentID:     parentID,
		issueType:    issueType,
		name:         name,
		description:  description,
		startDate:    startDate,
		dueDate:      dueDate,
		createdBy:    createdBy,
		assigneeIDs:  assigneeIDs,
		customFields: customFields,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UID() string {
	return t.uid
}

func (t *Ticket) ProjectID() uint {
	return t.projectID
}

func (t *Ticket) StatusID() uint {
	return t.statusID
}

func (t *Ticket) PriorityID() uint {
	return t.priorityID
}

func (t *Ticket) EpicID() *uint {
	return t.epicID
}

func (t *Ticket) SprintID() *uint {
	return t.sprintID
}

func (t *Ticket) ParentID() *uint {
	return t.parentID
}

func (t *Ticket) IssueType() vo.IssueType {
	return t.issueType
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) StartDate() *time.Time {
	return t.startDate
}

func (t *Ticket) DueDate() *time.Time {
	return t.dueDate
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) AssigneeIDs() []uint {
	idsCopy := make([]uint, len(t.assigneeIDs))
	copy(idsCopy, t.assigneeIDs)
	return idsCopy
}

func (t *Ticket) CustomFields() map[string]string {
	fieldsCopy := make(map[string]string, len(t.customFields))
	for k, v := range t.customFields {
		fieldsCopy[k] = v
	}
	return fieldsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetUID(uid string) error {
	if len(t.uid) > 0 {
		return fmt.Errorf("ticket UID is already set")
	}
	if len(uid) == 0 {
		return fmt.Errorf("ticket UID cannot be empty")
	}
	t.uid = uid
	return nil
}

// SetParent records the parent reference. Self-reference is rejected here;
// same-project and cycle checks require repository access and are performed
// by the use case layer before calling this.
func (t *Ticket) SetParent(parentID *uint) error {
	if parentID != nil && t.id != 0 && *parentID == t.id {
		return fmt.Errorf("ticket cannot be its own parent")
	}
	t.parentID = parentID
	t.updatedAt = time.Now()
	return nil
}

// SetStatus records the current status. Workflow legality is decided by the
// transition engine before this is called.
func (t *Ticket) SetStatus(statusID uint) error {
	if statusID == 0 {
		return fmt.Errorf("status ID is required")
	}
	t.statusID = statusID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) UpdateDetails(name, description string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	t.name = name
	t.description = description
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) SetIssueType(issueType vo.IssueType) error {
	if !issueType.IsValid() {
		return fmt.Errorf("invalid issue type: %s", issueType)
	}
	t.issueType = issueType
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) SetPriority(priorityID uint) error {
	if priorityID == 0 {
		return fmt.Errorf("priority ID is required")
	}
	t.priorityID = priorityID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) SetEpic(epicID *uint) {
	t.epicID = epicID
	t.updatedAt = time.Now()
}

func (t *Ticket) SetSprint(sprintID *uint) {
	t.sprintID = sprintID
	t.updatedAt = time.Now()
}

func (t *Ticket) SetSchedule(startDate, dueDate *time.Time) error {
	if startDate != nil && dueDate != nil && dueDate.Before(*startDate) {
		return fmt.Errorf("due date cannot be before start date")
	}
	t.startDate = startDate
	t.dueDate = dueDate
	t.updatedAt = time.Now()
	return nil
}

// ReplaceAssignees swaps the whole assignee set. Duplicates are collapsed.
func (t *Ticket) ReplaceAssignees(userIDs []uint) {
	seen := make(map[uint]bool, len(userIDs))
	ids := make([]uint, 0, len(userIDs))
	for _, id := range userIDs {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	t.assigneeIDs = ids
	t.updatedAt = time.Now()
}

// ReplaceCustomFields swaps the whole custom field value set. The use case
// layer filters values against the project's active schema first.
func (t *Ticket) ReplaceCustomFields(values map[string]string) {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		fields[k] = v
	}
	t.customFields = fields
	t.updatedAt = time.Now()
}

func (t *Ticket) Validate() error {
	if t.projectID == 0 {
		return fmt.Errorf("project ID is required")
	}
	if len(t.name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !t.issueType.IsValid() {
		return fmt.Errorf("invalid issue type")
	}
	if t.priorityID == 0 {
		return fmt.Errorf("priority ID is required")
	}
	if t.createdBy == 0 {
		return fmt.Errorf("creator ID is required")
	}
	if t.parentID != nil && t.id != 0 && *t.parentID == t.id {
		return fmt.Errorf("ticket cannot be its own parent")
	}
	return nil
}
