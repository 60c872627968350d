package customer

import (
	"context"
	"fmt"
	"net/mail"

	"fishmarket-be/internal/apperr"
	"fishmarket-be/internal/auth"
	"fishmarket-be/internal/logger"
	"fishmarket-be/internal/policy"
	"fishmarket-be/internal/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (string, Customer, error)
	Login(ctx context.Context, email, password string) (string, Customer, error)
	GetProfile(ctx context.Context, p principal.Principal, customerID string) (Customer, error)
	UpdateProfile(ctx context.Context, p principal.Principal, customerID string, params UpdateParams) (Customer, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (string, Customer, error) {
	log := logger.FromCtx(ctx)

	if err := validateRegister(input); err != nil {
		return "", Customer{}, err
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", Customer{}, err
	}

	created, err := s.repo.Create(ctx, Customer{
		ID:             uuid.NewString(),
		FullName:       input.FullName,
		CompanyName:    input.CompanyName,
		CompanyAddress: input.CompanyAddress,
		Phone:          input.Phone,
		Email:          input.Email,
		PasswordHash:   hashed,
	})
	if err != nil {
		log.Error("failed to create customer", zap.String("email", input.Email), zap.Error(err))
		return "", Customer{}, err
	}

	token, err := auth.GenerateJWT(principal.Principal{
		ID:    created.ID,
		Kind:  principal.KindCustomer,
		Email: created.Email,
	}, s.jwtSecret)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("customer_id", created.ID), zap.Error(err))
		return "", Customer{}, err
	}

	log.Info("customer registered", zap.String("customer_id", created.ID))

	return token, created, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, Customer, error) {
	c, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", Customer{}, auth.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, c.PasswordHash) {
		return "", Customer{}, auth.ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(principal.Principal{
		ID:    c.ID,
		Kind:  principal.KindCustomer,
		Email: c.Email,
	}, s.jwtSecret)
	return token, c, err
}

func (s *service) GetProfile(ctx context.Context, p principal.Principal, customerID string) (Customer, error) {
	if !policy.CanReadCustomer(p, customerID) {
		return Customer{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, customerID)
}

func (s *service) UpdateProfile(ctx context.Context, p principal.Principal, customerID string, params UpdateParams) (Customer, error) {
	if !policy.CanUpdateCustomer(p, customerID) {
		return Customer{}, apperr.ErrForbidden
	}
	return s.repo.Update(ctx, customerID, params)
}

func validateRegister(input RegisterInput) error {
	if input.FullName == "" {
		return fmt.Errorf("%w: full name is required", apperr.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return fmt.Errorf("%w: invalid email", apperr.ErrValidation)
	}
	if len(input.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", apperr.ErrValidation)
	}
	return nil
}
