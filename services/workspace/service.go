package workspace

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"coworking/database"
	workspaceRepo "coworking/database/repository/workspace"
	"coworking/models"
	"coworking/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWorkspaceNotFound = utils.NewAppError(utils.ErrNotFound, "workspace_not_found", "workspace not found")
	ErrInvalidWorkspace  = utils.NewAppError(utils.ErrValidation, "invalid_workspace", "invalid workspace")
)

var workspaceTypes = map[string]bool{
	models.WorkspaceTypeDesk:        true,
	models.WorkspaceTypeMeetingRoom: true,
	models.WorkspaceTypeOffice:      true,
}

// DefaultWorkspaceService implements WorkspaceService.
type DefaultWorkspaceService struct {
	Repo   workspaceRepo.WorkspaceRepository
	Logger *zap.Logger
}

func NewDefaultWorkspaceService(repo workspaceRepo.WorkspaceRepository, logger *zap.Logger) *DefaultWorkspaceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultWorkspaceService{Repo: repo, Logger: logger}
}

func (s *DefaultWorkspaceService) ListWorkspaces(ctx context.Context, filter models.WorkspaceFilter) ([]models.Workspace, error) {
	if filter.Sort != "" && filter.Sort != "price_asc" && filter.Sort != "price_desc" {
		return nil, ErrInvalidWorkspace.WithMessage("unknown sort %q", filter.Sort)
	}
	list, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, utils.Transient("list workspaces", err)
	}
	return list, nil
}

// GetWorkspace returns a workspace; inactive ones are hidden unless includeInactive.
func (s *DefaultWorkspaceService) GetWorkspace(ctx context.Context, id string, includeInactive bool) (*models.Workspace, error) {
	ws, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, utils.Transient("load workspace", err)
	}
	if !ws.IsActive && !includeInactive {
		return nil, ErrWorkspaceNotFound
	}
	return ws, nil
}

func (s *DefaultWorkspaceService) CreateWorkspace(ctx context.Context, input models.WorkspaceInput) (*models.Workspace, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	now := time.Now()
	ws := &models.Workspace{
		ID:        uuid.New().String(),
		IsActive:  true,
		CreatedAt: now,
	}
	applyInput(ws, input, now)

	if err := s.Repo.Create(ctx, ws); err != nil {
		return nil, utils.Transient("create workspace", err)
	}
	s.Logger.Info("Workspace created", zap.String("workspaceId", ws.ID), zap.String("name", ws.Name))
	return ws, nil
}

func (s *DefaultWorkspaceService) UpdateWorkspace(ctx context.Context, id string, input models.WorkspaceInput) (*models.Workspace, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	ws, err := s.GetWorkspace(ctx, id, true)
	if err != nil {
		return nil, err
	}
	applyInput(ws, input, time.Now())

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// ToggleWorkspace flips the active flag. Existing bookings are left untouched.
func (s *DefaultWorkspaceService) ToggleWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	ws, err := s.GetWorkspace(ctx, id, true)
	if err != nil {
		return nil, err
	}
	ws.IsActive = !ws.IsActive
	ws.UpdatedAt = time.Now()

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	s.Logger.Info("Workspace toggled", zap.String("workspaceId", ws.ID), zap.Bool("active", ws.IsActive))
	return ws, nil
}

func (s *DefaultWorkspaceService) save(ctx context.Context, ws *models.Workspace) error {
	if err := s.Repo.Update(ctx, ws); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return utils.Transient("update workspace", err)
	}
	return nil
}

func validateInput(in *models.WorkspaceInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrInvalidWorkspace.WithMessage("name is required")
	}
	if math.IsNaN(in.PricePerHour) || in.PricePerHour <= 0 {
		return ErrInvalidWorkspace.WithMessage("pricePerHour must be positive")
	}
	if in.Capacity < 0 {
		return ErrInvalidWorkspace.WithMessage("capacity must not be negative")
	}
	if in.Type == "" {
		in.Type = models.WorkspaceTypeDesk
	}
	if !workspaceTypes[in.Type] {
		return ErrInvalidWorkspace.WithMessage("unknown workspace type %q", in.Type)
	}
	return nil
}

func applyInput(ws *models.Workspace, in models.WorkspaceInput, now time.Time) {
	ws.Name = in.Name
	ws.Description = in.Description
	ws.Type = in.Type
	ws.Location = in.Location
	ws.PricePerHour = in.PricePerHour
	ws.Capacity = in.Capacity
	ws.Features = in.Features
	if ws.Features == nil {
		ws.Features = []string{}
	}
	ws.Images = in.Images
	if ws.Images == nil {
		ws.Images = []string{}
	}
	ws.Coordinates = in.Coordinates
	ws.UpdatedAt = now
}
