package impl

import (
	"context"
	"testing"

	"solhub/config"
	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(f *testFixture, cfg *config.Config) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager:      f.txManager,
		EnterpriseRepo: f.enterpriseRepo,
		UserRepo:       f.userRepo,
		Resolver:       f.resolver,
		Hasher:         fakeHasher{},
		TokenService:   fakeTokenService{},
		Mailer:         f.mailer,
		Config:         cfg,
		Logger:         testLogger(),
	})
}

func TestAuthService_RegisterEnterprise(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()

	out, err := svc.RegisterEnterprise(ctx, &usecase.RegisterEnterpriseInput{
		Name:     "Acme Corp",
		TaxID:    "12345678000190",
		Email:    "contact@acme.test",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Enterprise)
	assert.NotEqual(t, uuid.Nil, out.Enterprise.ID)
	assert.True(t, out.Enterprise.IsActive)
	assert.Equal(t, "hashed:secret-password", out.Enterprise.PasswordHash)
}

func TestAuthService_RegisterEnterprise_Duplicate(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	existing := f.seedEnterprise(true)

	// Same email, different tax id.
	_, err := svc.RegisterEnterprise(ctx, &usecase.RegisterEnterpriseInput{
		Name:     "Other Corp",
		TaxID:    "99999999000199",
		Email:    existing.Email,
		Password: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)

	// Same tax id, different email.
	_, err = svc.RegisterEnterprise(ctx, &usecase.RegisterEnterpriseInput{
		Name:     "Other Corp",
		TaxID:    existing.TaxID,
		Email:    "other@corp.test",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
}

func TestAuthService_LoginEnterprise(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)

	out, err := svc.LoginEnterprise(ctx, &usecase.LoginInput{
		Email:    enterprise.Email,
		Password: "acme-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "access:"+enterprise.ID.String(), out.AccessToken)
	assert.Equal(t, "refresh:"+enterprise.ID.String(), out.RefreshToken)
	assert.Equal(t, int64(3600), out.ExpiresIn)
}

func TestAuthService_LoginEnterprise_InvalidCredentials(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)

	_, err := svc.LoginEnterprise(ctx, &usecase.LoginInput{Email: "nobody@acme.test", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.LoginEnterprise(ctx, &usecase.LoginInput{Email: enterprise.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginEnterprise_Suspended(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(false)

	_, err := svc.LoginEnterprise(ctx, &usecase.LoginInput{
		Email:    enterprise.Email,
		Password: "acme-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEnterpriseSuspended)
}

func TestAuthService_LoginEnterprise_ReactivateFlag(t *testing.T) {
	f := newTestFixture()
	cfg := f.authConfig()
	cfg.Auth.ReactivateEnterpriseOnLogin = true
	svc := newAuthService(f, cfg)
	ctx := context.Background()
	enterprise := f.seedEnterprise(false)

	out, err := svc.LoginEnterprise(ctx, &usecase.LoginInput{
		Email:    enterprise.Email,
		Password: "acme-password",
	})
	require.NoError(t, err)
	assert.True(t, out.Enterprise.IsActive)

	stored, err := f.enterpriseRepo.FindByID(ctx, enterprise.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestAuthService_CreateUser(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)

	out, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		SubjectID:    enterprise.ID,
		EnterpriseID: enterprise.ID,
		Type:         "analyst",
		FirstName:    "Ana",
		LastName:     "Silva",
		CPF:          "12345678901",
		Email:        "ana@acme.test",
	})
	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.True(t, out.User.IsActive)
	assert.NotEmpty(t, out.User.RecoveryPassword)
	assert.Equal(t, "hashed:"+out.User.RecoveryPassword, out.User.PasswordHash)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "ana@acme.test", f.mailer.sent[0].creds.RecipientEmail)
	assert.Equal(t, out.User.RecoveryPassword, f.mailer.sent[0].creds.Password)
}

func TestAuthService_CreateUser_MailFailureIsNonFatal(t *testing.T) {
	f := newTestFixture()
	f.mailer.sendErr = errors.New("smtp unreachable")
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)

	out, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		SubjectID:    enterprise.ID,
		EnterpriseID: enterprise.ID,
		FirstName:    "Ana",
		CPF:          "12345678901",
		Email:        "ana@acme.test",
	})
	require.NoError(t, err)
	assert.NotNil(t, out.User)

	// The record must survive email delivery failure.
	_, err = f.userRepo.FindByID(ctx, out.User.ID)
	assert.NoError(t, err)
}

func TestAuthService_CreateUser_WrongSubject(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	other := f.seedEnterprise(true)

	_, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		SubjectID:    other.ID,
		EnterpriseID: enterprise.ID,
		FirstName:    "Ana",
		CPF:          "12345678901",
		Email:        "ana@acme.test",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEnterpriseNotFound)
}

func TestAuthService_CreateUser_Duplicate(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	existing := f.seedUser(enterprise.ID, true)

	_, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		SubjectID:    enterprise.ID,
		EnterpriseID: enterprise.ID,
		FirstName:    "Other",
		CPF:          "99999999999",
		Email:        existing.Email,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
}

func TestAuthService_LoginUser(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	user := f.seedUser(enterprise.ID, true)

	out, err := svc.LoginUser(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "user-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "access:"+user.ID.String(), out.AccessToken)
	assert.Equal(t, int64(3600), out.ExpiresIn)
}

func TestAuthService_LoginUser_CheckOrder(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()

	suspendedEnterprise := f.seedEnterprise(false)
	activeEnterprise := f.seedEnterprise(true)
	suspendedUser := f.seedUser(suspendedEnterprise.ID, false)
	inactiveUser := f.seedUser(activeEnterprise.ID, false)

	// Unknown email reads as bad credentials.
	_, err := svc.LoginUser(ctx, &usecase.LoginInput{Email: "nobody@acme.test", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// Wrong password wins over any account-status error.
	_, err = svc.LoginUser(ctx, &usecase.LoginInput{Email: suspendedUser.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// With valid credentials, the enterprise status is checked before the user's.
	_, err = svc.LoginUser(ctx, &usecase.LoginInput{Email: suspendedUser.Email, Password: "user-password"})
	assert.ErrorIs(t, err, domainerrors.ErrEnterpriseSuspended)

	_, err = svc.LoginUser(ctx, &usecase.LoginInput{Email: inactiveUser.Email, Password: "user-password"})
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}

func TestAuthService_ResendCredentials(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	user := f.seedUser(enterprise.ID, true)
	user.RecoveryPassword = "generated-pw"
	f.userRepo.users[user.ID] = user

	err := svc.ResendCredentials(ctx, &usecase.ResendCredentialsInput{
		SubjectID:    enterprise.ID,
		EnterpriseID: enterprise.ID,
		UserID:       user.ID,
	})
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "generated-pw", f.mailer.sent[0].creds.Password)
}

func TestAuthService_ResendCredentials_CrossTenant(t *testing.T) {
	f := newTestFixture()
	svc := newAuthService(f, f.authConfig())
	ctx := context.Background()
	enterprise := f.seedEnterprise(true)
	other := f.seedEnterprise(true)
	foreignUser := f.seedUser(other.ID, true)

	err := svc.ResendCredentials(ctx, &usecase.ResendCredentialsInput{
		SubjectID:    enterprise.ID,
		EnterpriseID: enterprise.ID,
		UserID:       foreignUser.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotInEnterprise)
	assert.Empty(t, f.mailer.sent)
}
