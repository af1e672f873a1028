package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"

	"solhub/config"
	deliverycontext "solhub/internal/delivery/context"
	"solhub/internal/domain/entity"
	domainerrors "solhub/internal/domain/errors"
	"solhub/internal/domain/repository"
	"solhub/internal/domain/service"
	"solhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordCharset intentionally has no look-alike characters (0/O, 1/l)
// because generated passwords are delivered over email and typed by hand.
const passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	enterpriseRepo    repository.EnterpriseRepository
	userRepo          repository.UserRepository
	resolver          *OwnershipResolver
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailer            service.CredentialMailer
	reactivateOnLogin bool
	passwordLength    int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EnterpriseRepo repository.EnterpriseRepository
	UserRepo       repository.UserRepository
	Resolver       *OwnershipResolver
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Mailer         service.CredentialMailer
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	reactivate := false
	passwordLength := 12
	if params.Config != nil && params.Config.Auth != nil {
		reactivate = params.Config.Auth.ReactivateEnterpriseOnLogin
		if params.Config.Auth.GeneratedPasswordLength > 0 {
			passwordLength = params.Config.Auth.GeneratedPasswordLength
		}
	}

	return &authService{
		txManager:         params.TxManager,
		enterpriseRepo:    params.EnterpriseRepo,
		userRepo:          params.UserRepo,
		resolver:          params.Resolver,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		mailer:            params.Mailer,
		reactivateOnLogin: reactivate,
		passwordLength:    passwordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterEnterprise orchestrates the complete enterprise registration process.
func (srv *authService) RegisterEnterprise(ctx context.Context, input *usecase.RegisterEnterpriseInput) (*usecase.RegisterEnterpriseOutput, error) {
	srv.log(ctx).Info("Starting enterprise registration", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newEnterprise := &entity.Enterprise{
		Name:         input.Name,
		TaxID:        input.TaxID,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		enterpriseRepo := repoFactory.EnterpriseRepo()

		exists, err := enterpriseRepo.ExistsByEmailOrTaxID(ctx, input.Email, input.TaxID)
		if err != nil {
			return errors.Wrap(err, "failed to check enterprise uniqueness")
		}
		if exists {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("email or tax id already registered")
		}

		return enterpriseRepo.Create(ctx, newEnterprise)
	})
	if err != nil {
		srv.log(ctx).Warn("Enterprise registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Enterprise registered", slog.Any("enterpriseID", newEnterprise.ID))

	return &usecase.RegisterEnterpriseOutput{Enterprise: newEnterprise}, nil
}

// LoginEnterprise orchestrates the enterprise login process.
func (srv *authService) LoginEnterprise(ctx context.Context, input *usecase.LoginInput) (*usecase.EnterpriseLoginOutput, error) {
	srv.log(ctx).Debug("Starting enterprise login", slog.String("email", input.Email))

	enterprise, err := srv.enterpriseRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrEnterpriseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "enterprise login failed")
		}

		return nil, errors.Wrap(err, "failed to find enterprise by email")
	}

	if !srv.hasher.Check(input.Password, enterprise.PasswordHash) {
		srv.log(ctx).Warn("Enterprise login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "enterprise login failed")
	}

	if !enterprise.IsActive {
		if !srv.reactivateOnLogin {
			return nil, errors.Wrap(domainerrors.ErrEnterpriseSuspended, "enterprise login failed")
		}

		enterprise.IsActive = true
		if err := srv.enterpriseRepo.Update(ctx, enterprise); err != nil {
			return nil, errors.Wrap(err, "failed to reactivate enterprise during login")
		}
		srv.log(ctx).Info("Enterprise reactivated on login", slog.Any("enterpriseID", enterprise.ID))
	}

	accessToken, refreshToken, err := srv.issueTokenPair(enterprise.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Enterprise logged in successfully", slog.Any("enterpriseID", enterprise.ID))

	return &usecase.EnterpriseLoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
		Enterprise:   enterprise,
	}, nil
}

// CreateUser creates a user under the acting enterprise with a generated
// password, then emails the credentials. Mail failure never rolls back the
// user record; the caller is reported success and the mailer error is logged.
func (srv *authService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.CreateUserOutput, error) {
	srv.log(ctx).Info("Creating user", slog.Any("enterpriseID", input.EnterpriseID), slog.String("email", input.Email))

	enterprise, err := srv.resolver.EnterpriseOwnedBySubject(ctx, input.EnterpriseID, input.SubjectID)
	if err != nil {
		return nil, err
	}

	generatedPassword, err := generatePassword(srv.passwordLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate password")
	}

	hashedPassword, err := srv.hasher.Hash(generatedPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash generated password")
	}

	newUser := &entity.User{
		EnterpriseID:     enterprise.ID,
		Type:             input.Type,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		CPF:              input.CPF,
		Email:            input.Email,
		PasswordHash:     hashedPassword,
		RecoveryPassword: generatedPassword,
		IsActive:         true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmailOrCPF(ctx, input.Email, input.CPF)
		if err != nil {
			return errors.Wrap(err, "failed to check user uniqueness")
		}
		if exists {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("email or cpf already registered")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("User creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.mailer.SendCredentials(ctx, service.Credentials{
		RecipientName:  newUser.FullName(),
		RecipientEmail: newUser.Email,
		Password:       generatedPassword,
		EnterpriseName: enterprise.Name,
	}); err != nil {
		srv.log(ctx).Warn("Failed to email credentials", slog.Any("userID", newUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", newUser.ID))

	return &usecase.CreateUserOutput{User: newUser}, nil
}

// LoginUser orchestrates the user login process. The checks run in a fixed
// order so a caller always gets the same error for the same account state:
// credentials first, then the owning enterprise's status, then the user's own.
func (srv *authService) LoginUser(ctx context.Context, input *usecase.LoginInput) (*usecase.UserLoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("User login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user login failed")
	}

	enterprise, err := srv.enterpriseRepo.FindByID(ctx, user.EnterpriseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owning enterprise during login")
	}
	if !enterprise.IsActive {
		return nil, errors.Wrap(domainerrors.ErrEnterpriseSuspended, "user login failed")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "user login failed")
	}

	accessToken, refreshToken, err := srv.issueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.UserLoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

// ResendCredentials re-sends the retained generated password to the user.
// Unlike CreateUser, the email here is the whole point of the operation, so
// delivery failure is returned to the caller.
func (srv *authService) ResendCredentials(ctx context.Context, input *usecase.ResendCredentialsInput) error {
	srv.log(ctx).Info("Resending credentials", slog.Any("enterpriseID", input.EnterpriseID), slog.Any("userID", input.UserID))

	enterprise, err := srv.resolver.EnterpriseOwnedBySubject(ctx, input.EnterpriseID, input.SubjectID)
	if err != nil {
		return err
	}

	user, err := srv.resolver.UserInEnterprise(ctx, input.EnterpriseID, input.UserID)
	if err != nil {
		return err
	}

	if user.RecoveryPassword == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("no recoverable password is retained for this user")
	}

	if err := srv.mailer.SendCredentials(ctx, service.Credentials{
		RecipientName:  user.FullName(),
		RecipientEmail: user.Email,
		Password:       user.RecoveryPassword,
		EnterpriseName: enterprise.Name,
	}); err != nil {
		srv.log(ctx).Error("Failed to resend credentials", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to resend credentials")
	}

	return nil
}

func (srv *authService) issueTokenPair(subjectID uuid.UUID) (string, string, error) {
	accessToken, err := srv.tokenService.IssueAccess(subjectID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefresh(subjectID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue refresh token")
	}

	return accessToken, refreshToken, nil
}

// generatePassword draws length characters from the charset using crypto/rand.
func generatePassword(length int) (string, error) {
	max := big.NewInt(int64(len(passwordCharset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		out[i] = passwordCharset[n.Int64()]
	}

	return string(out), nil
}
