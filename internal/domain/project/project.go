package project

import (
	"fmt"
	"strings"
	"time"
)

// Project is the container for tickets, statuses, and an optional workflow.
type Project struct {
	id          uint
	uid         string
	name        string
	key         string
	description string
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(name, key, description string, ownerID uint) (*Project, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	if len(key) == 0 {
		return nil, fmt.Errorf("key is required")
	}
	if len(key) > 10 {
		return nil, fmt.Errorf("key exceeds maximum length of 10 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Project{
		name:        name,
		key:         key,
		description: description,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	uid string,
	name string,
	key string,
	description string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Project{
		id:          id,
		uid:         uid,
		name:        name,
		key:         key,
		description: description,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) UID() string {
	return p.uid
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Key() string {
	return p.key
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) OwnerID() uint {
	return p.ownerID
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) SetUID(uid string) error {
	if len(p.uid) > 0 {
		return fmt.Errorf("project UID is already set")
	}
	if len(uid) == 0 {
		return fmt.Errorf("project UID cannot be empty")
	}
	p.uid = uid
	return nil
}

func (p *Project) UpdateDetails(name, description string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	p.name = name
	p.description = description
	p.updatedAt = time.Now()
	return nil
}
