package listing

import "time"

type FishKind string

const (
	KindCatfish FishKind = "catfish"
	KindTilapia FishKind = "tilapia"
	KindDryFish FishKind = "dry_fish"
)

func (k FishKind) Valid() bool {
	switch k {
	case KindCatfish, KindTilapia, KindDryFish:
		return true
	}
	return false
}

type Listing struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmer_id"`
	FishKind    FishKind  `json:"fish_kind"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SellerCard is the only farmer projection the public catalog exposes.
// Phone and email stay off the browsing surface on purpose; the full profile
// remains readable through the farmer directory.
type SellerCard struct {
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	UniqueCode  string `json:"unique_code"`
	City        string `json:"city"`
	State       string `json:"state"`
}

type CatalogEntry struct {
	Listing
	Seller SellerCard `json:"seller"`
}

type CreateInput struct {
	FishKind    FishKind
	Quantity    int
	UnitPrice   float64
	Description string
}

type UpdateParams struct {
	FishKind    *FishKind
	Quantity    *int
	UnitPrice   *float64
	Description *string
	IsActive    *bool
}
