package customer

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"fishmarket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	FindByEmail(ctx context.Context, email string) (Customer, error)
	Update(ctx context.Context, id string, params UpdateParams) (Customer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const customerColumns = `id, full_name, company_name, company_address, phone, email,
	password_hash, created_at, updated_at`

func scanCustomer(row *sql.Row) (Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID, &c.FullName, &c.CompanyName, &c.CompanyAddress, &c.Phone, &c.Email,
		&c.PasswordHash, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *repository) Create(ctx context.Context, c Customer) (Customer, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (
			id, full_name, company_name, company_address, phone, email, password_hash
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+customerColumns,
		c.ID, c.FullName, c.CompanyName, c.CompanyAddress, c.Phone, c.Email, c.PasswordHash,
	)

	created, err := scanCustomer(row)
	if err != nil {
		log.Error("db: failed to insert customer",
			zap.String("email", c.Email),
			zap.Error(err),
		)
		if strings.Contains(err.Error(), "customers_email_key") {
			return Customer{}, ErrEmailExists
		}
		return Customer{}, err
	}

	return created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Customer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	return c, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Customer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)

	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	return c, err
}

func (r *repository) Update(ctx context.Context, id string, params UpdateParams) (Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE customers SET
			full_name = COALESCE($2, full_name),
			company_name = COALESCE($3, company_name),
			company_address = COALESCE($4, company_address),
			phone = COALESCE($5, phone),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+customerColumns,
		id, params.FullName, params.CompanyName, params.CompanyAddress, params.Phone,
	)

	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	return c, err
}
