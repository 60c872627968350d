package listing

import (
	"context"
	"fmt"

	"fishmarket-be/internal/apperr"
	"fishmarket-be/internal/logger"
	"fishmarket-be/internal/policy"
	"fishmarket-be/internal/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, p principal.Principal, input CreateInput) (Listing, error)
	Get(ctx context.Context, p principal.Principal, id string) (Listing, error)
	Update(ctx context.Context, p principal.Principal, id string, params UpdateParams) (Listing, error)
	Delete(ctx context.Context, p principal.Principal, id string) error
	Catalog(ctx context.Context, p principal.Principal) ([]CatalogEntry, error)
	OwnerFeed(ctx context.Context, p principal.Principal) ([]Listing, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, p principal.Principal, input CreateInput) (Listing, error) {
	log := logger.FromCtx(ctx)

	if !p.IsFarmer() {
		return Listing{}, apperr.ErrForbidden
	}
	if err := validateCreate(input); err != nil {
		return Listing{}, err
	}

	created, err := s.repo.Create(ctx, Listing{
		ID:          uuid.NewString(),
		FarmerID:    p.ID,
		FishKind:    input.FishKind,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		Description: input.Description,
	})
	if err != nil {
		return Listing{}, err
	}

	log.Info("listing created",
		zap.String("listing_id", created.ID),
		zap.String("farmer_id", p.ID),
		zap.String("fish_kind", string(created.FishKind)),
	)

	return created, nil
}

func (s *service) Get(ctx context.Context, p principal.Principal, id string) (Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	if !policy.CanReadListing(p, l.FarmerID, l.IsActive) {
		// An invisible listing looks exactly like a missing one.
		return Listing{}, ErrNotFound
	}
	return l, nil
}

func (s *service) Update(ctx context.Context, p principal.Principal, id string, params UpdateParams) (Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	if !policy.CanWriteListing(p, l.FarmerID) {
		if !policy.CanReadListing(p, l.FarmerID, l.IsActive) {
			return Listing{}, ErrNotFound
		}
		return Listing{}, apperr.ErrForbidden
	}
	if err := validateUpdate(params); err != nil {
		return Listing{}, err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, p principal.Principal, id string) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanWriteListing(p, l.FarmerID) {
		if !policy.CanReadListing(p, l.FarmerID, l.IsActive) {
			return ErrNotFound
		}
		return apperr.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// Catalog never errors on invisible rows; the query already omits them.
func (s *service) Catalog(ctx context.Context, p principal.Principal) ([]CatalogEntry, error) {
	if p.ID == "" {
		return nil, apperr.ErrForbidden
	}
	return s.repo.ListActive(ctx)
}

func (s *service) OwnerFeed(ctx context.Context, p principal.Principal) ([]Listing, error) {
	if !p.IsFarmer() {
		return nil, apperr.ErrForbidden
	}
	return s.repo.ListByFarmer(ctx, p.ID)
}

func validateCreate(input CreateInput) error {
	if !input.FishKind.Valid() {
		return fmt.Errorf("%w: unknown fish kind %q", apperr.ErrValidation, input.FishKind)
	}
	if input.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", apperr.ErrValidation)
	}
	if input.UnitPrice <= 0 {
		return fmt.Errorf("%w: unit price must be greater than zero", apperr.ErrValidation)
	}
	return nil
}

func validateUpdate(params UpdateParams) error {
	if params.FishKind != nil && !params.FishKind.Valid() {
		return fmt.Errorf("%w: unknown fish kind %q", apperr.ErrValidation, *params.FishKind)
	}
	if params.Quantity != nil && *params.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", apperr.ErrValidation)
	}
	if params.UnitPrice != nil && *params.UnitPrice <= 0 {
		return fmt.Errorf("%w: unit price must be greater than zero", apperr.ErrValidation)
	}
	return nil
}
