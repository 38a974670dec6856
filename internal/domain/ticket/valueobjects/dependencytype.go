package valueobjects

import "fmt"

type DependencyType string

const (
	DependencyBlocks  DependencyType = "blocks"
	DependencyRelates DependencyType = "relates"
)

var validDependencyTypes = map[DependencyType]bool{
	DependencyBlocks:  true,
	DependencyRelates: true,
}

func (dt DependencyType) String() string {
	return string(dt)
}

func (dt DependencyType) IsValid() bool {
	return validDependencyTypes[dt]
}

func (dt DependencyType) IsBlocking() bool {
	return dt == DependencyBlocks
}

func NewDependencyType(s string) (DependencyType, error) {
	dt := DependencyType(s)
	if !dt.IsValid() {
		return "", fmt.Errorf("invalid dependency type: %s", s)
	}
	return dt, nil
}
