// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tutoria/internal/delivery/context"
	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/domain/repository"
	"tutoria/internal/domain/service"
	"tutoria/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates an account. Every field is required and the email must not be in use.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingRegistrationFields
	}
	if len(input.Password) > entity.MaxPasswordBytes {
		return nil, domainerrors.ErrPasswordTooLong
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still win the unique index.
		return nil, err
	}

	srv.metrics.IncAccountEvent("register")
	srv.log(ctx).Info("User registered", slog.Int64("user_id", user.ID))

	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email and wrong password
// produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingLoginFields
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.loginFailed(ctx, email, "unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.loginFailed(ctx, email, "password mismatch")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.metrics.IncAccountEvent("login")
	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

func (srv *userService) loginFailed(ctx context.Context, email, reason string) {
	srv.metrics.IncAccountEvent("login_failed")
	srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.String("reason", reason))
}

// GetProfile returns the account of the authenticated user.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

// UpdateName changes the display name and returns the updated account.
func (srv *userService) UpdateName(ctx context.Context, userID int64, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrNameNotProvided
	}

	if err := srv.userRepo.UpdateName(ctx, userID, name); err != nil {
		return nil, mapUserLookupError(err)
	}

	srv.metrics.IncAccountEvent("update_name")

	return srv.GetProfile(ctx, userID)
}

// UpdatePassword stores a new bcrypt hash for the account.
func (srv *userService) UpdatePassword(ctx context.Context, userID int64, password string) (*entity.User, error) {
	if password == "" {
		return nil, domainerrors.ErrPasswordNotProvided
	}
	if len(password) > entity.MaxPasswordBytes {
		return nil, domainerrors.ErrPasswordTooLong
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return nil, mapUserLookupError(err)
	}

	srv.metrics.IncAccountEvent("update_password")
	srv.log(ctx).Info("Password updated", slog.Int64("user_id", userID))

	return srv.GetProfile(ctx, userID)
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to access user")
}
