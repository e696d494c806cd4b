package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"github.com/jefdiaz/balanceone-api/pkg/oauth"
	"github.com/jefdiaz/balanceone-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the fields for local account registration
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// TokenPair is an access/refresh token pair issued on login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResult bundles the authenticated user with their tokens
type AuthResult struct {
	User   *entity.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// AuthService handles registration, login, token refresh and the
// GitHub OAuth flow.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	github     *oauth.GitHubOAuthService
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, github *oauth.GitHubOAuthService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		github:     github,
		logger:     logger,
	}
}

// Register creates a local account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Password:  string(hashed),
		Provider:  "local",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return s.issueTokens(user)
}

// Login authenticates a local account
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetProfile returns the authenticated user's account
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// GitHubAuthURL returns the consent URL for the GitHub OAuth flow
func (s *AuthService) GitHubAuthURL(state string) (string, error) {
	if s.github == nil || !s.github.IsConfigured() {
		return "", oauth.ErrOAuthNotConfigured
	}
	return s.github.GetAuthURL(state), nil
}

// GitHubCallback completes the OAuth flow: exchanges the code, fetches
// the GitHub profile and logs the matching account in, creating it on
// first sign-in. An existing local account with the same email is
// linked rather than duplicated.
func (s *AuthService) GitHubCallback(ctx context.Context, code string) (*AuthResult, error) {
	if s.github == nil || !s.github.IsConfigured() {
		return nil, oauth.ErrOAuthNotConfigured
	}

	token, err := s.github.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := s.github.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	providerID := info.ProviderID()
	user, err := s.userRepo.GetByProvider(ctx, "github", providerID)
	if err != nil {
		return nil, err
	}

	if user == nil && info.Email != "" {
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(info.Email))
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.Provider = "github"
			user.ProviderID = &providerID
			if info.AvatarURL != "" {
				user.Photo = &info.AvatarURL
			}
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
	}

	if user == nil {
		firstName, lastName := splitName(info.Name, info.Login)
		user = &entity.User{
			FirstName:  firstName,
			LastName:   lastName,
			Email:      strings.ToLower(info.Email),
			Provider:   "github",
			ProviderID: &providerID,
		}
		if info.AvatarURL != "" {
			user.Photo = &info.AvatarURL
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("user created via github oauth", zap.String("user_id", user.ID.String()))
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User: user,
		Tokens: TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

// splitName breaks a GitHub display name into first/last, falling back
// to the login when the profile has no name set.
func splitName(name, login string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return login, ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
