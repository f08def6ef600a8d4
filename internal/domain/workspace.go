package domain

import "time"

// Workspace scopes every record to one user.
type Workspace struct {
	ID        int32     `json:"id"`
	Auth0ID   string    `json:"auth0Id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WorkspaceRepository defines the interface for workspace persistence operations
type WorkspaceRepository interface {
	GetByAuth0ID(auth0ID string) (*Workspace, error)
	Create(workspace *Workspace) (*Workspace, error)
	ListIDs() ([]int32, error)
}
