package usecases

import (
	"context"

	"quarry/internal/domain/user"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uint
	Name        string
	Email       string
	Role        string
	AccessToken string
}

// PasswordVerifier checks a plaintext password against the stored hash.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

// TokenIssuer signs an access token for the authenticated user.
type TokenIssuer interface {
	Generate(userID uint, role string) (string, error)
}

type LoginUseCase struct {
	userRepo user.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Same error for unknown email and bad password.
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.verifier.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Infow("login rejected", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.issuer.Generate(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	return &LoginResult{
		UserID:      u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		Role:        u.Role().String(),
		AccessToken: token,
	}, nil
}
