package project

import (
	"fmt"
	"time"
)

// CustomField is a project-scoped schema entry for ticket custom values.
// Only active fields accept values; writes against unknown or inactive keys
// are silently dropped during sync.
type CustomField struct {
	id        uint
	projectID uint
	key       string
	label     string
	fieldType string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

const (
	FieldTypeText   = "text"
	FieldTypeNumber = "number"
	FieldTypeDate   = "date"
	FieldTypeSelect = "select"
)

var validFieldTypes = map[string]bool{
	FieldTypeText:   true,
	FieldTypeNumber: true,
	FieldTypeDate:   true,
	FieldTypeSelect: true,
}

func NewCustomField(projectID uint, key, label, fieldType string) (*CustomField, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("key is required")
	}
	if len(label) == 0 {
		return nil, fmt.Errorf("label is required")
	}
	if !validFieldTypes[fieldType] {
		return nil, fmt.Errorf("invalid field type: %s", fieldType)
	}

	now := time.Now()
	return &CustomField{
		projectID: projectID,
		key:       key,
		label:     label,
		fieldType: fieldType,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomField(
	id uint,
	projectID uint,
	key string,
	label string,
	fieldType string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*CustomField, error) {
	if id == 0 {
		return nil, fmt.Errorf("custom field ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	return &CustomField{
		id:        id,
		projectID: projectID,
		key:       key,
		label:     label,
		fieldType: fieldType,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *CustomField) ID() uint {
	return f.id
}

func (f *CustomField) ProjectID() uint {
	return f.projectID
}

func (f *CustomField) Key() string {
	return f.key
}

func (f *CustomField) Label() string {
	return f.label
}

func (f *CustomField) FieldType() string {
	return f.fieldType
}

func (f *CustomField) IsActive() bool {
	return f.isActive
}

func (f *CustomField) CreatedAt() time.Time {
	return f.createdAt
}

func (f *CustomField) UpdatedAt() time.Time {
	return f.updatedAt
}

func (f *CustomField) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("custom field ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("custom field ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *CustomField) Deactivate() {
	f.isActive = false
	f.updatedAt = time.Now()
}
