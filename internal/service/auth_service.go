package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"domus/internal/auth"
	apperrors "domus/internal/errors"
	"domus/internal/model"
	"domus/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Login     string
	Email     string
	Password  string
}

// AuthService handles registration, login and account lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (token string, customer *model.Customer, err error)
	Login(ctx context.Context, identifier, password string) (token string, customer *model.Customer, err error)
	GetCustomer(ctx context.Context, id uint) (*model.Customer, error)
}

type authService struct {
	customerRepo repository.CustomerRepository
	jwtService   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(customerRepo repository.CustomerRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		customerRepo: customerRepo,
		jwtService:   jwtService,
	}
}

// Register creates a new account with a hashed password and issues a session
// token immediately (auto-login). Login and email are checked separately so
// the caller learns which field collided.
func (s *authService) Register(ctx context.Context, input RegisterInput) (string, *model.Customer, error) {
	if input.Login == "" {
		return "", nil, apperrors.NewValidationError("login", "login is required")
	}
	if input.Email == "" {
		return "", nil, apperrors.NewValidationError("email", "email is required")
	}
	if len(input.Password) < 6 {
		return "", nil, apperrors.NewValidationError("password", "password must be at least 6 characters")
	}

	if _, err := s.customerRepo.FindByLogin(ctx, input.Login); err == nil {
		return "", nil, apperrors.ErrLoginTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("check login: %w", err)
	}
	if _, err := s.customerRepo.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &model.Customer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Enabled:      true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent registration can slip past the lookups above.
			// The unique index decides; re-check login to name the field.
			if _, lookupErr := s.customerRepo.FindByLogin(ctx, input.Login); lookupErr == nil {
				return "", nil, apperrors.ErrLoginTaken
			}
			return "", nil, apperrors.ErrEmailTaken
		}
		return "", nil, fmt.Errorf("create customer: %w", err)
	}

	token, err := s.jwtService.GenerateToken(customer.ID, customer.FullName(), customer.Email, customer.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, customer, nil
}

// Login authenticates by login or email and returns a session token. The
// disabled check runs after password verification so the response never
// reveals account state to a caller who doesn't hold the password.
func (s *authService) Login(ctx context.Context, identifier, password string) (string, *model.Customer, error) {
	customer, err := s.customerRepo.FindByLogin(ctx, identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer, err = s.customerRepo.FindByEmail(ctx, identifier)
	}
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !customer.Enabled {
		return "", nil, apperrors.ErrAccountDisabled
	}

	token, err := s.jwtService.GenerateToken(customer.ID, customer.FullName(), customer.Email, customer.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, customer, nil
}

// GetCustomer returns the account for verified claims.
func (s *authService) GetCustomer(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}
