package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"swachvillage/internal/auth"
	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/model"
	"swachvillage/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields accepted by Register. Required-field
// validation happens at the handler boundary; BusinessName is optional and
// only meaningful for business registrations.
type RegisterInput struct {
	FullName     string
	Email        string
	Phone        string
	Password     string
	Role         string
	BusinessName string
}

// AuthService handles credential verification and token issuance.
type AuthService interface {
	Login(ctx context.Context, identifier, password, role string) (token string, user *model.User, err error)
	Register(ctx context.Context, input RegisterInput) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	certRepo   repository.CertificationRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, certRepo repository.CertificationRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		certRepo:   certRepo,
		jwtService: jwtService,
	}
}

// Login verifies identifier+password+role and issues a token. The identifier
// is treated as an email when it contains "@", otherwise as a phone number.
// A role mismatch is reported before the password is checked so the client
// can distinguish "wrong app mode" from "wrong password".
func (s *authService) Login(ctx context.Context, identifier, password, role string) (string, *model.User, error) {
	var (
		user *model.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByPhone(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if user.Role != role {
		return "", nil, &apperrors.RoleMismatchError{Role: role}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Register creates a user with a hashed password and issues a token. Business
// registrations also get an empty certification record so business routes can
// assume one exists.
func (s *authService) Register(ctx context.Context, input RegisterInput) (string, *model.User, error) {
	// Duplicate checks, email first.
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("check email: %w", err)
	}
	if _, err := s.userRepo.FindByPhone(ctx, input.Phone); err == nil {
		return "", nil, apperrors.ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("check phone: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	if input.Role == model.RoleBusiness {
		businessName := input.BusinessName
		if businessName == "" {
			businessName = input.FullName + "'s Business"
		}
		cert := &model.BusinessCertification{
			UserID:       user.ID,
			BusinessName: businessName,
			OwnerName:    input.FullName,
		}
		if err := s.certRepo.Create(ctx, cert); err != nil {
			return "", nil, fmt.Errorf("create certification: %w", err)
		}
	}

	token, err := s.jwtService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
