// File: database/repository/workspace/interface.go
package workspaceRepo

import (
	"context"

	"coworking/models"
)

// WorkspaceRepository defines data access for bookable workspaces.
type WorkspaceRepository interface {
	// GetByID retrieves a workspace by ID; database.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Workspace, error)
	Create(ctx context.Context, ws *models.Workspace) error
	Update(ctx context.Context, ws *models.Workspace) error
	List(ctx context.Context, filter models.WorkspaceFilter) ([]models.Workspace, error)
}
