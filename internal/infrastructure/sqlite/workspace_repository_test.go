package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
	"github.com/tradyon/schema-api/internal/domain/repository/repositorytest"
	"github.com/tradyon/schema-api/internal/infrastructure/sqlite"
)

func openRepo(t *testing.T, path string) *sqlite.WorkspaceRepo {
	t.Helper()
	repo, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestWorkspaceRepo_Contrato(t *testing.T) {
	repositorytest.RunWorkspaceRepositoryContract(t, func(t *testing.T) repository.WorkspaceRepository {
		return openRepo(t, filepath.Join(t.TempDir(), "workspaces.db"))
	})
}

func TestWorkspaceRepo_SobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "workspaces.db")

	repo, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	c := entity.NewCompany("Acme", "Jane", time.Now())
	c.Products["Cloves"] = entity.NewProduct()
	require.NoError(t, repo.Set(ctx, c))
	require.NoError(t, repo.Close())

	reopened := openRepo(t, path)
	got, err := reopened.Get(ctx, "ACME")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane", got.ContactPerson)
	assert.Contains(t, got.Products, "Cloves")
}
