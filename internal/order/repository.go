package order

import (
	"context"
	"database/sql"
	"errors"

	"fishmarket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateGroup writes one order and its items as a unit: all rows persist
	// or none do.
	CreateGroup(ctx context.Context, o Order, items []OrderItem) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	ItemsByOrder(ctx context.Context, orderID string) ([]OrderItem, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, customer_id, farmer_id, farmer_code, total_amount, status,
	created_at, updated_at`

func (r *repository) CreateGroup(ctx context.Context, o Order, items []OrderItem) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", o.ID),
		zap.String("farmer_id", o.FarmerID),
		zap.Int("item_count", len(items)),
	)

	log.Debug("starting order group transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return Order{}, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, customer_id, farmer_id, farmer_code, total_amount, status
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+orderColumns,
		o.ID, o.CustomerID, o.FarmerID, o.FarmerCode, o.TotalAmount, o.Status,
	)

	var created Order
	if err := row.Scan(
		&created.ID, &created.CustomerID, &created.FarmerID, &created.FarmerCode,
		&created.TotalAmount, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return Order{}, err
	}

	for i, item := range items {
		var itemCreated OrderItem
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				id, order_id, listing_id, quantity, unit_price, subtotal
			) VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id, order_id, listing_id, quantity, unit_price, subtotal, created_at
		`,
			item.ID, created.ID, item.ListingID, item.Quantity, item.UnitPrice, item.Subtotal,
		).Scan(
			&itemCreated.ID, &itemCreated.OrderID, &itemCreated.ListingID,
			&itemCreated.Quantity, &itemCreated.UnitPrice, &itemCreated.Subtotal,
			&itemCreated.CreatedAt,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.String("listing_id", item.ListingID),
				zap.Error(err),
			)
			return Order{}, err
		}
		created.Items = append(created.Items, itemCreated)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order group transaction", zap.Error(err))
		return Order{}, err
	}

	committed = true
	log.Info("order group committed",
		zap.Float64("total_amount", created.TotalAmount),
	)

	return created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	).Scan(
		&o.ID, &o.CustomerID, &o.FarmerID, &o.FarmerCode,
		&o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *repository) ItemsByOrder(ctx context.Context, orderID string) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, listing_id, quantity, unit_price, subtotal, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ListingID,
			&it.Quantity, &it.UnitPrice, &it.Subtotal, &it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *repository) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	return r.list(ctx, `customer_id`, customerID)
}

func (r *repository) ListByFarmer(ctx context.Context, farmerID string) ([]Order, error) {
	return r.list(ctx, `farmer_id`, farmerID)
}

func (r *repository) list(ctx context.Context, column, id string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE `+column+` = $1 ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.FarmerID, &o.FarmerCode,
			&o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// UpdateStatus moves an order along the status machine. Nothing routes here
// yet: what triggers confirmed/shipped/delivered is an external operator
// concern, but the write is guarded so that operator cannot move backwards.
func (r *repository) UpdateStatus(ctx context.Context, orderID string, from, to Status) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		to, orderID, from,
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
