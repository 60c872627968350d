package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerCols = []string{
	"id", "full_name", "company_name", "company_address", "phone", "email",
	"password_hash", "created_at", "updated_at",
}

func customerRow(id, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(customerCols).AddRow(
		id, "Bisi Ade", "Ade Stores", "12 Market Rd", "+2348098765432", email,
		"hash", now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO customers`).
			WillReturnRows(customerRow("c1", "buyer@fishmongers.ng"))

		created, err := repo.Create(ctx, Customer{ID: "c1", Email: "buyer@fishmongers.ng"})
		assert.NoError(t, err)
		assert.Equal(t, "c1", created.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO customers`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "customers_email_key"`))

		_, err = repo.Create(ctx, Customer{ID: "c2", Email: "buyer@fishmongers.ng"})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .* FROM customers WHERE email = \$1`).
		WithArgs("buyer@fishmongers.ng").
		WillReturnRows(customerRow("c1", "buyer@fishmongers.ng"))

	c, err := repo.FindByEmail(ctx, "buyer@fishmongers.ng")
	assert.NoError(t, err)
	assert.Equal(t, "c1", c.ID)

	mock.ExpectQuery(`SELECT .* FROM customers WHERE email = \$1`).
		WithArgs("ghost@fishmongers.ng").
		WillReturnRows(sqlmock.NewRows(customerCols))

	_, err = repo.FindByEmail(ctx, "ghost@fishmongers.ng")
	assert.ErrorIs(t, err, ErrNotFound)
}
