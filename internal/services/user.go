package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	repository "github.com/trystore/kiosk-platform/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	GetOnboardingStatus(ctx context.Context, userID uuid.UUID) (*models.OnboardingStatus, error)
}

type userService struct {
	repo       repository.UserRepository
	rateLimits repository.RateLimitRepository
	jwtKey     []byte
	sessionTTL time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimits repository.RateLimitRepository, jwtKey []byte, sessionTTL time.Duration) UserService {
	return &userService{
		repo:       repo,
		rateLimits: rateLimits,
		jwtKey:     jwtKey,
		sessionTTL: sessionTTL,
	}
}

// Register creates the account and signs the caller in right away; the
// response points at onboarding since a fresh account never has a shop.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {

	existingUser, _ := s.repo.GetUserByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	token, expiresIn, err := s.issueSession(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Success:    true,
		Token:      token,
		ExpiresIn:  expiresIn,
		RedirectTo: "/admin/onboarding",
	}, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	allowed, remaining, retryAfter, err := s.rateLimits.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	token, expiresIn, err := s.issueSession(user)
	if err != nil {
		return nil, err
	}

	// Returning users land on the dashboard unless onboarding is still
	// pending; the gate enforces the same rule on every later request.
	redirect := "/admin"

	status, err := s.repo.GetOnboardingStatus(ctx, user.ID)
	if err != nil || !status.IsOnboarded {
		redirect = "/admin/onboarding"
	}

	return &models.LoginResponse{
		Success:    true,
		Token:      token,
		ExpiresIn:  expiresIn,
		RedirectTo: redirect,
	}, nil
}

func (s *userService) issueSession(user *models.User) (string, int, error) {
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", 0, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return tokenString, int(time.Until(claims.ExpiresAt.Time).Seconds()), nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, errors.NotFoundError("Profile not found").WithError(err)
	}

	return profile, nil
}

func (s *userService) GetOnboardingStatus(ctx context.Context, userID uuid.UUID) (*models.OnboardingStatus, error) {

	status, err := s.repo.GetOnboardingStatus(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to read onboarding status").WithError(err)
	}

	return status, nil
}
