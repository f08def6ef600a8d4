package service

import (
	"errors"
	"testing"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkspaceID_Existing(t *testing.T) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 7, Auth0ID: "auth0|alice", Name: "Alice"})
	workspaceService := NewWorkspaceService(workspaceRepo)

	id, err := workspaceService.ResolveWorkspaceID("auth0|alice")
	require.NoError(t, err)
	assert.Equal(t, int32(7), id)
}

func TestResolveWorkspaceID_ProvisionsOnFirstLogin(t *testing.T) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	workspaceService := NewWorkspaceService(workspaceRepo)

	id, err := workspaceService.ResolveWorkspaceID("auth0|new")
	require.NoError(t, err)
	assert.Equal(t, int32(1), id)

	ws := workspaceRepo.ByAuth0ID["auth0|new"]
	require.NotNil(t, ws)
	assert.Equal(t, "Personal", ws.Name)

	again, err := workspaceService.ResolveWorkspaceID("auth0|new")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestResolveWorkspaceID_EmptySubject(t *testing.T) {
	workspaceService := NewWorkspaceService(testutil.NewMockWorkspaceRepository())

	_, err := workspaceService.ResolveWorkspaceID("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolveWorkspaceID_CreateFails(t *testing.T) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	workspaceRepo.CreateFn = func(*domain.Workspace) (*domain.Workspace, error) {
		return nil, errors.New("db down")
	}
	workspaceService := NewWorkspaceService(workspaceRepo)

	_, err := workspaceService.ResolveWorkspaceID("auth0|x")
	assert.EqualError(t, err, "db down")
}

func TestListWorkspaceIDs(t *testing.T) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 3, Auth0ID: "a"})
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 1, Auth0ID: "b"})
	workspaceService := NewWorkspaceService(workspaceRepo)

	ids, err := workspaceService.ListWorkspaceIDs()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 3}, ids)
}
