// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "moodify/internal/delivery/context"
	"moodify/internal/domain/entity"
	domainerrors "moodify/internal/domain/errors"
	"moodify/internal/domain/repository"
	"moodify/internal/domain/service"
	"moodify/internal/errors"
	"moodify/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account. Only presence of the fields is checked.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input == nil || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput)
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email lookup")
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to look up email during signup", slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WithCause(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPasswordTooLong) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WithCause(err)
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// The unique index decides concurrent signups for the same email.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Warn("Signup lost race on unique email", slog.String("email", input.Email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to create user during signup", slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WithCause(err)
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser.Public()}, nil
}

// Login verifies the credentials and issues an access token.
// An unknown email and a wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed", slog.String("email", input.Email))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}
		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WithCause(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WithCause(err)
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Public(),
	}, nil
}

// Me returns the account behind a verified token.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Token outlived its account.
			return nil, domainerrors.ErrTokenInvalid.WithCause(err)
		}
		srv.log(ctx).Error("Failed to load current user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	return user.Public(), nil
}
