package impl

import (
	"context"
	"testing"

	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(f *testFixture) usecase.CategoryUsecase {
	return NewCategoryService(CategoryServiceParams{
		TxManager:    f.txManager,
		CategoryRepo: f.categoryRepo,
		Resolver:     f.resolver,
		Logger:       testLogger(),
	})
}

func TestCategoryService_CreateCategory(t *testing.T) {
	f := newTestFixture()
	svc := newCategoryService(f)
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)

	out, err := svc.CreateCategory(ctx, &usecase.CreateCategoryInput{
		SubjectID:    enterprise.ID,
		EnterpriseID: enterprise.ID,
		Name:         "Networking",
	})
	require.NoError(t, err)
	assert.Equal(t, "Networking", out.Category.Name)
	assert.Equal(t, enterprise.ID, out.Category.EnterpriseID)
}

func TestCategoryService_CreateCategory_UniquePerEnterprise(t *testing.T) {
	f := newTestFixture()
	svc := newCategoryService(f)
	ctx := context.Background()
	enterpriseA := f.seedEnterprise(true)
	enterpriseB := f.seedEnterprise(true)

	_, err := svc.CreateCategory(ctx, &usecase.CreateCategoryInput{
		SubjectID:    enterpriseA.ID,
		EnterpriseID: enterpriseA.ID,
		Name:         "Networking",
	})
	require.NoError(t, err)

	// The same name again in the same tenant is rejected.
	_, err = svc.CreateCategory(ctx, &usecase.CreateCategoryInput{
		SubjectID:    enterpriseA.ID,
		EnterpriseID: enterpriseA.ID,
		Name:         "Networking",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)

	// Another tenant may reuse the name.
	_, err = svc.CreateCategory(ctx, &usecase.CreateCategoryInput{
		SubjectID:    enterpriseB.ID,
		EnterpriseID: enterpriseB.ID,
		Name:         "Networking",
	})
	assert.NoError(t, err)
}

func TestCategoryService_ListCategories(t *testing.T) {
	f := newTestFixture()
	svc := newCategoryService(f)
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	other := f.seedEnterprise(true)

	for _, name := range []string{"Networking", "Security"} {
		_, err := svc.CreateCategory(ctx, &usecase.CreateCategoryInput{
			SubjectID:    enterprise.ID,
			EnterpriseID: enterprise.ID,
			Name:         name,
		})
		require.NoError(t, err)
	}

	out, err := svc.ListCategories(ctx, enterprise.ID, enterprise.ID)
	require.NoError(t, err)
	assert.Len(t, out.Categories, 2)

	// Another enterprise cannot list a foreign tenant's categories.
	_, err = svc.ListCategories(ctx, other.ID, enterprise.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEnterpriseNotFound)
}
