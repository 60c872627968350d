package farmer

import (
	"context"
	"fmt"
	"io"
	"net/mail"

	"fishmarket-be/internal/apperr"
	"fishmarket-be/internal/auth"
	"fishmarket-be/internal/logger"
	"fishmarket-be/internal/policy"
	"fishmarket-be/internal/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// codeAttempts bounds the collision-retry loop; with a 31^6 space exhausting
// it means something is very wrong with the table, not the generator.
const codeAttempts = 10

// DocumentStore is the blob-store boundary; the service only keeps the
// returned path key.
type DocumentStore interface {
	Upload(ctx context.Context, objectKey string, body io.Reader) (string, error)
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (string, Farmer, error)
	Login(ctx context.Context, email, password string) (string, Farmer, error)
	GetProfile(ctx context.Context, p principal.Principal, farmerID string) (Farmer, error)
	UpdateProfile(ctx context.Context, p principal.Principal, farmerID string, params UpdateParams) (Farmer, error)
	UploadDocuments(ctx context.Context, p principal.Principal, businessCert, idCard io.Reader) (Farmer, error)
}

type service struct {
	repo      Repository
	docs      DocumentStore
	jwtSecret string
}

func NewService(repo Repository, docs DocumentStore, jwtSecret string) Service {
	return &service{repo: repo, docs: docs, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (string, Farmer, error) {
	log := logger.FromCtx(ctx)

	if err := validateRegister(input); err != nil {
		return "", Farmer{}, err
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", Farmer{}, err
	}

	code, err := s.allocateCode(ctx)
	if err != nil {
		return "", Farmer{}, err
	}

	f := Farmer{
		ID:              uuid.NewString(),
		FullName:        input.FullName,
		CompanyName:     input.CompanyName,
		Phone:           input.Phone,
		Email:           input.Email,
		PasswordHash:    hashed,
		Country:         input.Country,
		State:           input.State,
		LocalGovernment: input.LocalGovernment,
		City:            input.City,
		Street:          input.Street,
		IDDocKind:       input.IDDocKind,
		UniqueCode:      code,
	}

	created, err := s.repo.Create(ctx, f)
	if err != nil {
		log.Error("failed to create farmer", zap.String("email", input.Email), zap.Error(err))
		return "", Farmer{}, err
	}

	token, err := auth.GenerateJWT(principal.Principal{
		ID:    created.ID,
		Kind:  principal.KindFarmer,
		Email: created.Email,
	}, s.jwtSecret)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("farmer_id", created.ID), zap.Error(err))
		return "", Farmer{}, err
	}

	log.Info("farmer registered",
		zap.String("farmer_id", created.ID),
		zap.String("unique_code", created.UniqueCode),
	)

	return token, created, nil
}

// allocateCode draws random codes until one is free.
func (s *service) allocateCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := NewCode()
		if err != nil {
			return "", err
		}
		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

func (s *service) Login(ctx context.Context, email, password string) (string, Farmer, error) {
	f, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", Farmer{}, auth.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, f.PasswordHash) {
		return "", Farmer{}, auth.ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(principal.Principal{
		ID:    f.ID,
		Kind:  principal.KindFarmer,
		Email: f.Email,
	}, s.jwtSecret)
	return token, f, err
}

func (s *service) GetProfile(ctx context.Context, p principal.Principal, farmerID string) (Farmer, error) {
	if !policy.CanReadFarmer(p) {
		return Farmer{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, farmerID)
}

func (s *service) UpdateProfile(ctx context.Context, p principal.Principal, farmerID string, params UpdateParams) (Farmer, error) {
	if !policy.CanUpdateFarmer(p, farmerID) {
		return Farmer{}, apperr.ErrForbidden
	}
	return s.repo.Update(ctx, farmerID, params)
}

func (s *service) UploadDocuments(ctx context.Context, p principal.Principal, businessCert, idCard io.Reader) (Farmer, error) {
	log := logger.FromCtx(ctx)

	if !policy.CanUpdateFarmer(p, p.ID) {
		return Farmer{}, apperr.ErrForbidden
	}

	var certURL, cardURL *string

	if businessCert != nil {
		url, err := s.docs.Upload(ctx, "verification/"+p.ID+"/business-cert", businessCert)
		if err != nil {
			log.Error("failed to upload business certificate", zap.String("farmer_id", p.ID), zap.Error(err))
			return Farmer{}, fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
		}
		certURL = &url
	}

	if idCard != nil {
		url, err := s.docs.Upload(ctx, "verification/"+p.ID+"/id-card", idCard)
		if err != nil {
			log.Error("failed to upload id card", zap.String("farmer_id", p.ID), zap.Error(err))
			return Farmer{}, fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
		}
		cardURL = &url
	}

	if err := s.repo.SetDocuments(ctx, p.ID, certURL, cardURL); err != nil {
		return Farmer{}, err
	}

	return s.repo.GetByID(ctx, p.ID)
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
	if !input.IDDocKind.Valid() {
		return fmt.Errorf("%w: unknown identity document kind %q", apperr.ErrValidation, input.IDDocKind)
	}
	return nil
}
