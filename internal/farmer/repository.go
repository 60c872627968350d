package farmer

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"fishmarket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, f Farmer) (Farmer, error)
	GetByID(ctx context.Context, id string) (Farmer, error)
	FindByEmail(ctx context.Context, email string) (Farmer, error)
	Update(ctx context.Context, id string, params UpdateParams) (Farmer, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	SetDocuments(ctx context.Context, id string, businessCertURL, idCardURL *string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const farmerColumns = `id, full_name, company_name, phone, email, password_hash,
	country, state, local_government, city, street,
	business_cert_url, id_card_url, id_doc_kind, unique_code, is_verified,
	created_at, updated_at`

func scanFarmer(row *sql.Row) (Farmer, error) {
	var f Farmer
	err := row.Scan(
		&f.ID, &f.FullName, &f.CompanyName, &f.Phone, &f.Email, &f.PasswordHash,
		&f.Country, &f.State, &f.LocalGovernment, &f.City, &f.Street,
		&f.BusinessCertURL, &f.IDCardURL, &f.IDDocKind, &f.UniqueCode, &f.IsVerified,
		&f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

func (r *repository) Create(ctx context.Context, f Farmer) (Farmer, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO farmers (
			id, full_name, company_name, phone, email, password_hash,
			country, state, local_government, city, street,
			id_doc_kind, unique_code
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING `+farmerColumns,
		f.ID, f.FullName, f.CompanyName, f.Phone, f.Email, f.PasswordHash,
		f.Country, f.State, f.LocalGovernment, f.City, f.Street,
		f.IDDocKind, f.UniqueCode,
	)

	created, err := scanFarmer(row)
	if err != nil {
		log.Error("db: failed to insert farmer",
			zap.String("email", f.Email),
			zap.Error(err),
		)
		switch {
		case strings.Contains(err.Error(), "farmers_email_key"):
			return Farmer{}, ErrEmailExists
		case strings.Contains(err.Error(), "farmers_unique_code_key"):
			return Farmer{}, ErrCodeTaken
		}
		return Farmer{}, err
	}

	return created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Farmer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+farmerColumns+` FROM farmers WHERE id = $1`, id)

	f, err := scanFarmer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Farmer{}, ErrNotFound
	}
	return f, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Farmer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+farmerColumns+` FROM farmers WHERE email = $1`, email)

	f, err := scanFarmer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Farmer{}, ErrNotFound
	}
	return f, err
}

func (r *repository) Update(ctx context.Context, id string, params UpdateParams) (Farmer, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE farmers SET
			full_name = COALESCE($2, full_name),
			company_name = COALESCE($3, company_name),
			phone = COALESCE($4, phone),
			country = COALESCE($5, country),
			state = COALESCE($6, state),
			local_government = COALESCE($7, local_government),
			city = COALESCE($8, city),
			street = COALESCE($9, street),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+farmerColumns,
		id, params.FullName, params.CompanyName, params.Phone,
		params.Country, params.State, params.LocalGovernment,
		params.City, params.Street,
	)

	f, err := scanFarmer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Farmer{}, ErrNotFound
	}
	return f, err
}

func (r *repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM farmers WHERE unique_code = $1)`, code,
	).Scan(&exists)
	return exists, err
}

func (r *repository) SetDocuments(ctx context.Context, id string, businessCertURL, idCardURL *string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE farmers SET
			business_cert_url = COALESCE($2, business_cert_url),
			id_card_url = COALESCE($3, id_card_url),
			updated_at = NOW()
		WHERE id = $1`,
		id, businessCertURL, idCardURL,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
