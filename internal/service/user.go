package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docshare/internal/auth"
	"docshare/internal/model"
	"docshare/internal/repository"
)

const defaultProfileImage = "default.jpg"

// RegisterInput carries everything needed to create an account. Profile
// is validated against the role's field schema.
type RegisterInput struct {
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Role     model.Role    `json:"role"`
	Profile  model.Profile `json:"profile"`
}

// UpdateProfileInput carries the mutable account fields. The actor can
// only update their own profile; the role itself never changes.
type UpdateProfileInput struct {
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	ProfileImage string        `json:"profile_image"`
	Profile      model.Profile `json:"profile"`
}

// UserService defines the identity use cases: registration, credential
// verification, and profile management.
type UserService interface {
	// Register creates an account after validating the role, credentials,
	// and the profile against the per-role field schema.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)

	// Authenticate verifies the email/password pair and returns the user
	// together with a signed bearer token.
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)

	// Get returns a user by ID.
	Get(ctx context.Context, id string) (*model.User, error)

	// UpdateProfile updates the actor's own account fields.
	UpdateProfile(ctx context.Context, actorID string, in UpdateProfileInput) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenIssuer
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository, tokens *auth.TokenIssuer) UserService {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if l := len(in.Username); l < 3 || l > 20 {
		return nil, fmt.Errorf("%w: username must be between 3 and 20 characters", ErrValidation)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, model.ErrInvalidRole)
	}
	if err := model.ValidateProfile(in.Role, in.Profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, fmt.Errorf("%w: username is already taken", ErrConflict)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, fmt.Errorf("%w: email is already registered", ErrConflict)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		ProfileImage: defaultProfileImage,
		Profile:      in.Profile,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, user)
	if err != nil {
		// A concurrent registration can still win the uniqueness race.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username or email is already registered", ErrConflict)
		}
		return nil, err
	}
	return stored, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actorID string, in UpdateProfileInput) (*model.User, error) {
	user, err := s.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if in.Username != "" && in.Username != user.Username {
		if l := len(in.Username); l < 3 || l > 20 {
			return nil, fmt.Errorf("%w: username must be between 3 and 20 characters", ErrValidation)
		}
		if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
			return nil, fmt.Errorf("%w: username is already taken", ErrConflict)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		user.Username = in.Username
	}
	if in.Email != "" && in.Email != user.Email {
		if !strings.Contains(in.Email, "@") {
			return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
		}
		if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
			return nil, fmt.Errorf("%w: email is already registered", ErrConflict)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		user.Email = in.Email
	}
	if in.ProfileImage != "" {
		user.ProfileImage = in.ProfileImage
	}

	if err := model.ValidateProfile(user.Role, in.Profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	user.Profile = in.Profile

	stored, err := s.repo.Update(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username or email is already registered", ErrConflict)
		}
		return nil, err
	}
	return stored, nil
}
