package impl

import (
	"context"
	"testing"

	domainerrors "solhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipResolver_EnterpriseOwnedBySubject(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)

	got, err := f.resolver.EnterpriseOwnedBySubject(ctx, enterprise.ID, enterprise.ID)
	require.NoError(t, err)
	assert.Equal(t, enterprise.ID, got.ID)

	// Unknown enterprise and foreign subject both read as not found.
	_, err = f.resolver.EnterpriseOwnedBySubject(ctx, uuid.New(), enterprise.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEnterpriseNotFound)

	_, err = f.resolver.EnterpriseOwnedBySubject(ctx, enterprise.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrEnterpriseNotFound)
}

func TestOwnershipResolver_UserInEnterprise(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	other := f.seedEnterprise(true)
	user := f.seedUser(enterprise.ID, true)

	got, err := f.resolver.UserInEnterprise(ctx, enterprise.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = f.resolver.UserInEnterprise(ctx, enterprise.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = f.resolver.UserInEnterprise(ctx, other.ID, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotInEnterprise)
}

func TestOwnershipResolver_SolutionDeletable_ChainPrecedence(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	user := f.seedUser(enterprise.ID, true)
	solution := f.seedSolution(enterprise.ID, user.ID)

	// The enterprise link is checked first, even when everything else is
	// broken too.
	_, err := f.resolver.SolutionDeletableBySubject(ctx, uuid.New(), uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrEnterpriseNotFound)

	// Then the user link.
	_, err = f.resolver.SolutionDeletableBySubject(ctx, enterprise.ID, uuid.New(), uuid.New(), enterprise.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	// Then the solution link.
	_, err = f.resolver.SolutionDeletableBySubject(ctx, enterprise.ID, user.ID, uuid.New(), enterprise.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSolutionNotFound)

	// A complete chain resolves.
	got, err := f.resolver.SolutionDeletableBySubject(ctx, enterprise.ID, user.ID, solution.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, solution.ID, got.ID)
}

func TestOwnershipResolver_SolutionDeletable_Deterministic(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	user := f.seedUser(enterprise.ID, true)
	unknownUser := uuid.New()
	unknownSolution := uuid.New()

	// Same broken chain, same error, every time.
	for range 5 {
		_, err := f.resolver.SolutionDeletableBySubject(ctx, enterprise.ID, unknownUser, unknownSolution, user.ID)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	}
}

func TestOwnershipResolver_SolutionDeletable_EnterpriseBypass(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	creator := f.seedUser(enterprise.ID, true)
	colleague := f.seedUser(enterprise.ID, true)
	solution := f.seedSolution(enterprise.ID, creator.ID)

	// The enterprise may delete regardless of who created the solution.
	_, err := f.resolver.SolutionDeletableBySubject(ctx, enterprise.ID, colleague.ID, solution.ID, enterprise.ID)
	require.NoError(t, err)

	// A colleague who did not create it may not.
	_, err = f.resolver.SolutionDeletableBySubject(ctx, enterprise.ID, colleague.ID, solution.ID, colleague.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSolutionNotOwnedByUser)

	// A subject that is neither the enterprise nor the named user gets the
	// same ownership error, not a distinguishable one.
	_, err = f.resolver.SolutionDeletableBySubject(ctx, enterprise.ID, creator.ID, solution.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSolutionNotOwnedByUser)
}

func TestOwnershipResolver_SolutionDeletable_TenantIsolation(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	enterpriseA := f.seedEnterprise(true)
	enterpriseB := f.seedEnterprise(true)
	userA := f.seedUser(enterpriseA.ID, true)
	userB := f.seedUser(enterpriseB.ID, true)
	solutionB := f.seedSolution(enterpriseB.ID, userB.ID)

	// A solution in another tenant reads as not found, never as forbidden.
	_, err := f.resolver.SolutionDeletableBySubject(ctx, enterpriseA.ID, userA.ID, solutionB.ID, enterpriseA.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSolutionNotFound)

	// A foreign user under the right enterprise reads as a broken user link.
	_, err = f.resolver.SolutionDeletableBySubject(ctx, enterpriseA.ID, userB.ID, solutionB.ID, enterpriseA.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotInEnterprise)
}

func TestOwnershipResolver_SolutionReadableBySubject(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	other := f.seedEnterprise(true)
	member := f.seedUser(enterprise.ID, true)
	outsider := f.seedUser(other.ID, true)

	_, err := f.resolver.SolutionReadableBySubject(ctx, enterprise.ID, enterprise.ID)
	assert.NoError(t, err)

	_, err = f.resolver.SolutionReadableBySubject(ctx, enterprise.ID, member.ID)
	assert.NoError(t, err)

	_, err = f.resolver.SolutionReadableBySubject(ctx, enterprise.ID, outsider.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotInEnterprise)
}
