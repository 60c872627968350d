package policy

import (
	"testing"

	"fishmarket-be/internal/principal"

	"github.com/stretchr/testify/assert"
)

var (
	farmerA = principal.Principal{ID: "farmer-a", Kind: principal.KindFarmer}
	farmerB = principal.Principal{ID: "farmer-b", Kind: principal.KindFarmer}
	custA   = principal.Principal{ID: "cust-a", Kind: principal.KindCustomer}
	anon    = principal.Principal{}
)

func TestFarmerRules(t *testing.T) {
	// Directory is readable by any authenticated principal.
	assert.True(t, CanReadFarmer(farmerB))
	assert.True(t, CanReadFarmer(custA))
	assert.False(t, CanReadFarmer(anon))

	assert.True(t, CanCreateFarmer(farmerA, "farmer-a"))
	assert.False(t, CanCreateFarmer(farmerA, "farmer-b"))

	assert.True(t, CanUpdateFarmer(farmerA, "farmer-a"))
	assert.False(t, CanUpdateFarmer(farmerB, "farmer-a"))
	assert.False(t, CanUpdateFarmer(custA, "farmer-a"))
}

func TestCustomerRules(t *testing.T) {
	assert.True(t, CanReadCustomer(custA, "cust-a"))
	assert.False(t, CanReadCustomer(farmerA, "cust-a"))
	assert.False(t, CanReadCustomer(anon, "cust-a"))

	assert.True(t, CanUpdateCustomer(custA, "cust-a"))
	assert.False(t, CanUpdateCustomer(custA, "cust-b"))
}

func TestListingRules(t *testing.T) {
	cases := []struct {
		name     string
		p        principal.Principal
		ownerID  string
		isActive bool
		want     bool
	}{
		{"active visible to anyone authenticated", custA, "farmer-a", true, true},
		{"active visible to other farmer", farmerB, "farmer-a", true, true},
		{"inactive visible to owner", farmerA, "farmer-a", false, true},
		{"inactive hidden from other farmer", farmerB, "farmer-a", false, false},
		{"inactive hidden from customer", custA, "farmer-a", false, false},
		{"anonymous sees nothing", anon, "farmer-a", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanReadListing(tc.p, tc.ownerID, tc.isActive))
		})
	}

	assert.True(t, CanWriteListing(farmerA, "farmer-a"))
	assert.False(t, CanWriteListing(farmerB, "farmer-a"))
	assert.False(t, CanWriteListing(anon, ""))
}

func TestOrderRules(t *testing.T) {
	assert.True(t, CanReadOrder(custA, "cust-a", "farmer-a"))
	assert.True(t, CanReadOrder(farmerA, "cust-a", "farmer-a"))
	assert.False(t, CanReadOrder(farmerB, "cust-a", "farmer-a"))

	assert.True(t, CanCreateOrder(custA, "cust-a"))
	assert.False(t, CanCreateOrder(custA, "cust-b"))
	// Farmers cannot place orders even for themselves.
	assert.False(t, CanCreateOrder(farmerA, "farmer-a"))

	assert.True(t, CanReadOrderItem(farmerA, "cust-a", "farmer-a"))
	assert.False(t, CanReadOrderItem(farmerB, "cust-a", "farmer-a"))
	assert.True(t, CanCreateOrderItem(custA, "cust-a"))
	assert.False(t, CanCreateOrderItem(farmerA, "cust-a"))
}
