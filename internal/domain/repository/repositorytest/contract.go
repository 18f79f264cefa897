// Package repositorytest contiene la batería de pruebas común a todas las
// implementaciones de repository.WorkspaceRepository.
package repositorytest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
)

// Factory crea un repositorio vacío para una prueba.
type Factory func(t *testing.T) repository.WorkspaceRepository

func sampleCompany(name string) *entity.Company {
	c := entity.NewCompany(name, "Jane", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	p := entity.NewProduct()
	cat := entity.NewCategory("Red", "Brown")
	cat.ToggleValue("Brown")
	p.Categories["Color"] = cat
	c.Products["Cloves"] = p
	return c
}

// RunWorkspaceRepositoryContract ejecuta el contrato completo sobre newRepo.
func RunWorkspaceRepositoryContract(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("GetInexistenteDevuelveNil", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.Get(ctx, "nadie")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SetYGetSinDistinguirMayusculas", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, sampleCompany("Acme")))

		for _, key := range []string{"acme", "ACME", "  Acme "} {
			got, err := repo.Get(ctx, key)
			require.NoError(t, err)
			require.NotNil(t, got, "clave %q", key)
			assert.Equal(t, "acme", got.ID)
			assert.Equal(t, "Acme", got.DisplayName)
			cat := got.Products["Cloves"].Categories["Color"]
			assert.Equal(t, []string{"Red", "Brown"}, cat.Options.Values())
			assert.Equal(t, []string{"Brown"}, cat.SelectedValues.Values())
		}
	})

	t.Run("CreateNoPisaExistente", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, sampleCompany("Acme"))
		require.NoError(t, err)
		assert.True(t, created)

		created, err = repo.Create(ctx, entity.NewCompany("ACME", "", time.Now()))
		require.NoError(t, err)
		assert.False(t, created)

		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Jane", got.ContactPerson)
		assert.Contains(t, got.Products, "Cloves")
	})

	t.Run("GetDevuelveCopia", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, sampleCompany("Acme")))

		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		got.Products["Pepper"] = entity.NewProduct()

		again, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		assert.NotContains(t, again.Products, "Pepper")
	})

	t.Run("UpdateInexistenteDevuelveFalse", func(t *testing.T) {
		repo := newRepo(t)
		called := false
		ok, err := repo.Update(ctx, "nadie", func(*entity.Company) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, called)
	})

	t.Run("UpdateAplicaCambios", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, sampleCompany("Acme")))

		ok, err := repo.Update(ctx, "ACME", func(c *entity.Company) error {
			c.Products["Pepper"] = entity.NewProduct()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		assert.Contains(t, got.Products, "Pepper")
	})

	t.Run("UpdateConErrorNoGuarda", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, sampleCompany("Acme")))

		boom := errors.New("boom")
		_, err := repo.Update(ctx, "acme", func(c *entity.Company) error {
			c.Products["Pepper"] = entity.NewProduct()
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		assert.NotContains(t, got.Products, "Pepper")
	})

	t.Run("DeleteYList", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, sampleCompany("Zeta")))
		require.NoError(t, repo.Set(ctx, sampleCompany("Acme")))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "acme", list[0].ID)
		assert.Equal(t, "zeta", list[1].ID)

		deleted, err := repo.Delete(ctx, "ZETA")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "zeta")
		require.NoError(t, err)
		assert.False(t, deleted)

		list, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Clear", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, sampleCompany("Acme")))
		require.NoError(t, repo.Clear(ctx))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
