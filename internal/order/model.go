package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// statusRank orders the forward path; cancelled is terminal from any
// non-delivered state.
var statusRank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

// CanTransition reports whether from → to is a legal forward move.
func CanTransition(from, to Status) bool {
	if from == StatusCancelled || from == StatusDelivered {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	fromRank, ok1 := statusRank[from]
	toRank, ok2 := statusRank[to]
	return ok1 && ok2 && toRank == fromRank+1
}

type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	FarmerID    string      `json:"farmer_id"`
	FarmerCode  string      `json:"farmer_code"`
	TotalAmount float64     `json:"total_amount"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Items       []OrderItem `json:"items,omitempty"`
}

// OrderItem is immutable after creation: unit_price and subtotal are
// snapshots taken at order time, never re-derived from the listing.
type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ListingID string    `json:"listing_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Subtotal  float64   `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is one row of the checkout input. The cart itself is transient
// client state; the core only ever sees it as this value.
type CartLine struct {
	ListingID  string  `json:"listing_id"`
	FarmerID   string  `json:"farmer_id"`
	FarmerCode string  `json:"farmer_code"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

// PlacementResult reports every order group that durably committed. On
// partial failure it accompanies a *PartialFailure error.
type PlacementResult struct {
	Orders []Order `json:"orders"`
}
