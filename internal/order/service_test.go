package order

import (
	"context"
	"errors"
	"testing"

	"fishmarket-be/internal/apperr"
	"fishmarket-be/internal/metrics"
	"fishmarket-be/internal/principal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateGroup(ctx context.Context, o Order, items []OrderItem) (Order, error) {
	args := m.Called(ctx, o, items)
	// Allow tests to echo the group the service built.
	if fn, ok := args.Get(0).(func(Order, []OrderItem) Order); ok {
		return fn(o, items), args.Error(1)
	}
	return args.Get(0).(Order), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Order), args.Error(1)
}

func (m *MockRepository) ItemsByOrder(ctx context.Context, orderID string) ([]OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OrderItem), args.Error(1)
}

func (m *MockRepository) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) ListByFarmer(ctx context.Context, farmerID string) ([]Order, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, orderID string, from, to Status) error {
	args := m.Called(ctx, orderID, from, to)
	return args.Error(0)
}

var (
	buyer  = principal.Principal{ID: "c1", Kind: principal.KindCustomer}
	seller = principal.Principal{ID: "farmer1", Kind: principal.KindFarmer}
)

// Two listings from farmer1, one from farmer2.
func multiFarmerCart() []CartLine {
	return []CartLine{
		{ListingID: "listingA", FarmerID: "farmer1", FarmerCode: "FSH-AAAAAA", UnitPrice: 100, Quantity: 2},
		{ListingID: "listingB", FarmerID: "farmer1", FarmerCode: "FSH-AAAAAA", UnitPrice: 50, Quantity: 1},
		{ListingID: "listingC", FarmerID: "farmer2", FarmerCode: "FSH-BBBBBB", UnitPrice: 20, Quantity: 3},
	}
}

func TestService_PlaceOrder_Grouping(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)

	// Echo back whatever group the service built.
	repo.On("CreateGroup", ctx, mock.AnythingOfType("Order"), mock.AnythingOfType("[]order.OrderItem")).
		Return(func(o Order, items []OrderItem) Order {
			o.Items = items
			return o
		}, nil)

	svc := NewService(repo, nil)
	result, err := svc.PlaceOrder(ctx, buyer, multiFarmerCart())
	require.NoError(t, err)
	require.Len(t, result.Orders, 2)

	first, second := result.Orders[0], result.Orders[1]

	assert.Equal(t, "farmer1", first.FarmerID)
	assert.Equal(t, "FSH-AAAAAA", first.FarmerCode)
	assert.Equal(t, 250.0, first.TotalAmount)
	assert.Equal(t, StatusPending, first.Status)
	assert.Equal(t, "c1", first.CustomerID)
	require.Len(t, first.Items, 2)

	assert.Equal(t, "farmer2", second.FarmerID)
	assert.Equal(t, "FSH-BBBBBB", second.FarmerCode)
	assert.Equal(t, 60.0, second.TotalAmount)
	require.Len(t, second.Items, 1)

	// Every item's subtotal is its price snapshot times quantity.
	for _, o := range result.Orders {
		for _, it := range o.Items {
			assert.Equal(t, it.UnitPrice*float64(it.Quantity), it.Subtotal)
			assert.Greater(t, it.Subtotal, 0.0)
			assert.Equal(t, o.ID, it.OrderID)
		}
	}

	repo.AssertNumberOfCalls(t, "CreateGroup", 2)
}

func TestService_PlaceOrder_PartialFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	dbErr := errors.New("pq: connection reset")

	// farmer1's group commits, farmer2's fails.
	repo.On("CreateGroup", ctx, mock.MatchedBy(func(o Order) bool { return o.FarmerID == "farmer1" }), mock.Anything).
		Return(func(o Order, items []OrderItem) Order { return o }, nil)
	repo.On("CreateGroup", ctx, mock.MatchedBy(func(o Order) bool { return o.FarmerID == "farmer2" }), mock.Anything).
		Return(Order{}, dbErr)

	stats := &metrics.Checkout{}
	svc := NewService(repo, stats)
	result, err := svc.PlaceOrder(ctx, buyer, multiFarmerCart())

	// The committed group is still reported.
	require.Len(t, result.Orders, 1)
	assert.Equal(t, "farmer1", result.Orders[0].FarmerID)

	var pf *PartialFailure
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, "farmer2", pf.FailedFarmerID)
	assert.Len(t, pf.Committed, 1)
	assert.ErrorIs(t, pf, dbErr)

	assert.Equal(t, uint64(1), stats.GroupsCommitted.Load())
	assert.Equal(t, uint64(1), stats.GroupsFailed.Load())
}

func TestService_PlaceOrder_FirstGroupFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	dbErr := errors.New("pq: connection reset")

	repo.On("CreateGroup", ctx, mock.Anything, mock.Anything).Return(Order{}, dbErr).Once()

	svc := NewService(repo, nil)
	result, err := svc.PlaceOrder(ctx, buyer, multiFarmerCart())

	// Nothing committed: a plain failure, not a partial one.
	assert.Empty(t, result.Orders)
	var pf *PartialFailure
	assert.False(t, errors.As(err, &pf))
	assert.ErrorIs(t, err, dbErr)

	// Processing stopped at the first failed group.
	repo.AssertNumberOfCalls(t, "CreateGroup", 1)
}

func TestService_PlaceOrder_Gating(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, nil)

	// Farmers cannot place orders.
	_, err := svc.PlaceOrder(ctx, seller, multiFarmerCart())
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.PlaceOrder(ctx, buyer, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	bad := multiFarmerCart()
	bad[1].Quantity = 0
	_, err = svc.PlaceOrder(ctx, buyer, bad)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	bad = multiFarmerCart()
	bad[2].UnitPrice = -5
	_, err = svc.PlaceOrder(ctx, buyer, bad)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// Validation happens before any write.
	repo.AssertNotCalled(t, "CreateGroup")
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, nil)

	o := Order{ID: "o1", CustomerID: "c1", FarmerID: "farmer1"}
	repo.On("GetByID", ctx, "o1").Return(o, nil)
	repo.On("ItemsByOrder", ctx, "o1").Return([]OrderItem{{ID: "i1", OrderID: "o1"}}, nil)

	// Both sides of the order may read it.
	got, err := svc.Get(ctx, buyer, "o1")
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	_, err = svc.Get(ctx, seller, "o1")
	assert.NoError(t, err)

	// A third party gets not-found, not forbidden.
	outsider := principal.Principal{ID: "c2", Kind: principal.KindCustomer}
	_, err = svc.Get(ctx, outsider, "o1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_ListMine(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, nil)

	repo.On("ListByCustomer", ctx, "c1").Return([]Order{{ID: "o1"}}, nil)
	repo.On("ListByFarmer", ctx, "farmer1").Return([]Order{{ID: "o1"}, {ID: "o2"}}, nil)

	mine, err := svc.ListMine(ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListMine(ctx, seller)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	_, err = svc.ListMine(ctx, principal.Principal{})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
