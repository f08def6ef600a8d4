package service

import (
	"errors"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/rs/zerolog/log"
)

const defaultWorkspaceName = "Personal"

// WorkspaceService handles workspace-related business logic
type WorkspaceService struct {
	workspaceRepo domain.WorkspaceRepository
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(workspaceRepo domain.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaceRepo: workspaceRepo}
}

// ResolveWorkspaceID returns the workspace of an Auth0 subject, provisioning one on first login
func (s *WorkspaceService) ResolveWorkspaceID(auth0ID string) (int32, error) {
	if auth0ID == "" {
		return 0, domain.ErrUnauthorized
	}

	workspace, err := s.workspaceRepo.GetByAuth0ID(auth0ID)
	if err == nil {
		return workspace.ID, nil
	}
	if !errors.Is(err, domain.ErrWorkspaceNotFound) {
		return 0, err
	}

	workspace, err = s.workspaceRepo.Create(&domain.Workspace{
		Auth0ID: auth0ID,
		Name:    defaultWorkspaceName,
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int32("workspace_id", workspace.ID).Str("auth0_id", auth0ID).Msg("Provisioned workspace")
	return workspace.ID, nil
}

// ListWorkspaceIDs returns every workspace ID
func (s *WorkspaceService) ListWorkspaceIDs() ([]int32, error) {
	return s.workspaceRepo.ListIDs()
}
