package workspace

import (
	"context"

	"coworking/models"
)

// WorkspaceService manages the catalogue of bookable workspaces.
type WorkspaceService interface {
	ListWorkspaces(ctx context.Context, filter models.WorkspaceFilter) ([]models.Workspace, error)
	GetWorkspace(ctx context.Context, id string, includeInactive bool) (*models.Workspace, error)
	CreateWorkspace(ctx context.Context, input models.WorkspaceInput) (*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, id string, input models.WorkspaceInput) (*models.Workspace, error)
	ToggleWorkspace(ctx context.Context, id string) (*models.Workspace, error)
}
