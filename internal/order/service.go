package order

import (
	"context"
	"fmt"

	"fishmarket-be/internal/apperr"
	"fishmarket-be/internal/logger"
	"fishmarket-be/internal/metrics"
	"fishmarket-be/internal/policy"
	"fishmarket-be/internal/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// PlaceOrder fans a multi-farmer cart out into one order group per
	// farmer. Atomicity is per group: a failure in a later group never rolls
	// back an earlier one, and is reported as *PartialFailure.
	PlaceOrder(ctx context.Context, p principal.Principal, lines []CartLine) (PlacementResult, error)
	Get(ctx context.Context, p principal.Principal, orderID string) (Order, error)
	ListMine(ctx context.Context, p principal.Principal) ([]Order, error)
}

type service struct {
	repo  Repository
	stats *metrics.Checkout
}

func NewService(repo Repository, stats *metrics.Checkout) Service {
	if stats == nil {
		stats = &metrics.Checkout{}
	}
	return &service{repo: repo, stats: stats}
}

// farmerGroup is the checkout subset attributable to one farmer.
type farmerGroup struct {
	farmerID   string
	farmerCode string
	lines      []CartLine
	total      float64
}

func (s *service) PlaceOrder(ctx context.Context, p principal.Principal, lines []CartLine) (PlacementResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("customer_id", p.ID),
		zap.Int("line_count", len(lines)),
	)
	timer := metrics.StartTimer()

	if !policy.CanCreateOrder(p, p.ID) {
		return PlacementResult{}, apperr.ErrForbidden
	}
	if err := validateLines(lines); err != nil {
		return PlacementResult{}, err
	}

	groups := groupByFarmer(lines)
	log.Info("placing order", zap.Int("group_count", len(groups)))

	var result PlacementResult
	for _, g := range groups {
		o := Order{
			ID:          uuid.NewString(),
			CustomerID:  p.ID,
			FarmerID:    g.farmerID,
			FarmerCode:  g.farmerCode,
			TotalAmount: g.total,
			Status:      StatusPending,
		}

		items := make([]OrderItem, 0, len(g.lines))
		for _, line := range g.lines {
			items = append(items, OrderItem{
				ID:        uuid.NewString(),
				OrderID:   o.ID,
				ListingID: line.ListingID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Subtotal:  line.UnitPrice * float64(line.Quantity),
			})
		}

		created, err := s.repo.CreateGroup(ctx, o, items)
		if err != nil {
			s.stats.GroupsFailed.Inc()
			log.Error("order group failed",
				zap.String("farmer_id", g.farmerID),
				zap.Int("committed_groups", len(result.Orders)),
				zap.Error(err),
			)
			if len(result.Orders) == 0 {
				return PlacementResult{}, err
			}
			// Earlier groups are durable; report exactly what happened.
			return result, &PartialFailure{
				Committed:      result.Orders,
				FailedFarmerID: g.farmerID,
				Cause:          err,
			}
		}

		s.stats.OrdersPlaced.Inc()
		s.stats.GroupsCommitted.Inc()
		result.Orders = append(result.Orders, created)
	}

	log.Info("order placement completed",
		zap.Int("orders_created", len(result.Orders)),
		zap.Duration("took", timer.Duration()),
	)

	return result, nil
}

// groupByFarmer partitions cart lines per farmer, preserving first-seen
// farmer order. All lines of a farmer share the same code, so any line's
// code serves as the group snapshot.
func groupByFarmer(lines []CartLine) []farmerGroup {
	index := make(map[string]int, len(lines))
	var groups []farmerGroup

	for _, line := range lines {
		i, seen := index[line.FarmerID]
		if !seen {
			i = len(groups)
			index[line.FarmerID] = i
			groups = append(groups, farmerGroup{
				farmerID:   line.FarmerID,
				farmerCode: line.FarmerCode,
			})
		}
		groups[i].lines = append(groups[i].lines, line)
		groups[i].total += line.UnitPrice * float64(line.Quantity)
	}

	return groups
}

func validateLines(lines []CartLine) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	for i, line := range lines {
		if line.ListingID == "" || line.FarmerID == "" {
			return fmt.Errorf("%w: cart line %d is missing listing or farmer id", apperr.ErrValidation, i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: cart line %d quantity must be greater than zero", apperr.ErrValidation, i)
		}
		if line.UnitPrice <= 0 {
			return fmt.Errorf("%w: cart line %d unit price must be greater than zero", apperr.ErrValidation, i)
		}
	}
	return nil
}

func (s *service) Get(ctx context.Context, p principal.Principal, orderID string) (Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	if !policy.CanReadOrder(p, o.CustomerID, o.FarmerID) {
		return Order{}, ErrNotFound
	}

	items, err := s.repo.ItemsByOrder(ctx, o.ID)
	if err != nil {
		return Order{}, err
	}
	o.Items = items

	return o, nil
}

func (s *service) ListMine(ctx context.Context, p principal.Principal) ([]Order, error) {
	switch {
	case p.IsCustomer():
		return s.repo.ListByCustomer(ctx, p.ID)
	case p.IsFarmer():
		return s.repo.ListByFarmer(ctx, p.ID)
	}
	return nil, apperr.ErrForbidden
}
