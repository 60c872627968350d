package listing

import (
	"context"
	"database/sql"
	"errors"

	"fishmarket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, l Listing) (Listing, error)
	GetByID(ctx context.Context, id string) (Listing, error)
	Update(ctx context.Context, id string, params UpdateParams) (Listing, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]CatalogEntry, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]Listing, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const listingColumns = `id, farmer_id, fish_kind, quantity, unit_price, description,
	is_active, created_at, updated_at`

func scanListing(row *sql.Row) (Listing, error) {
	var l Listing
	err := row.Scan(
		&l.ID, &l.FarmerID, &l.FishKind, &l.Quantity, &l.UnitPrice, &l.Description,
		&l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *repository) Create(ctx context.Context, l Listing) (Listing, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO fish_listings (
			id, farmer_id, fish_kind, quantity, unit_price, description
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+listingColumns,
		l.ID, l.FarmerID, l.FishKind, l.Quantity, l.UnitPrice, l.Description,
	)

	created, err := scanListing(row)
	if err != nil {
		log.Error("db: failed to insert listing",
			zap.String("farmer_id", l.FarmerID),
			zap.Error(err),
		)
		return Listing{}, err
	}

	return created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Listing, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM fish_listings WHERE id = $1`, id)

	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Listing{}, ErrNotFound
	}
	return l, err
}

func (r *repository) Update(ctx context.Context, id string, params UpdateParams) (Listing, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE fish_listings SET
			fish_kind = COALESCE($2, fish_kind),
			quantity = COALESCE($3, quantity),
			unit_price = COALESCE($4, unit_price),
			description = COALESCE($5, description),
			is_active = COALESCE($6, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+listingColumns,
		id, params.FishKind, params.Quantity, params.UnitPrice,
		params.Description, params.IsActive,
	)

	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Listing{}, ErrNotFound
	}
	return l, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fish_listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActive is the public marketplace feed: active listings joined with the
// narrow seller projection, newest first.
func (r *repository) ListActive(ctx context.Context) ([]CatalogEntry, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			l.id, l.farmer_id, l.fish_kind, l.quantity, l.unit_price, l.description,
			l.is_active, l.created_at, l.updated_at,
			f.full_name, f.company_name, f.unique_code, f.city, f.state
		FROM fish_listings l
		JOIN farmers f ON f.id = l.farmer_id
		WHERE l.is_active
		ORDER BY l.created_at DESC
	`)
	if err != nil {
		log.Error("db: failed to query catalog", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		if err := rows.Scan(
			&e.ID, &e.FarmerID, &e.FishKind, &e.Quantity, &e.UnitPrice, &e.Description,
			&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
			&e.Seller.FullName, &e.Seller.CompanyName, &e.Seller.UniqueCode,
			&e.Seller.City, &e.Seller.State,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListByFarmer is the owner feed: every listing regardless of status, no
// seller join (the caller is the seller).
func (r *repository) ListByFarmer(ctx context.Context, farmerID string) ([]Listing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM fish_listings
		WHERE farmer_id = $1
		ORDER BY created_at DESC
	`, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(
			&l.ID, &l.FarmerID, &l.FishKind, &l.Quantity, &l.UnitPrice, &l.Description,
			&l.IsActive, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}
