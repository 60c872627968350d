// Package policy decides allow/deny per operation from the requesting
// principal and the target record's ownership columns alone. There is no
// role lookup table and no capability tokens: ownership is structural, the
// principal id matching a foreign-key column.
package policy

import "fishmarket-be/internal/principal"

// CanReadFarmer: the farmer directory is public to any logged-in principal,
// not just the owner.
func CanReadFarmer(p principal.Principal) bool {
	return p.ID != ""
}

// CanCreateFarmer: self-registration only; the new record's id must be the
// principal's own.
func CanCreateFarmer(p principal.Principal, newID string) bool {
	return p.ID != "" && p.ID == newID
}

func CanUpdateFarmer(p principal.Principal, farmerID string) bool {
	return p.ID != "" && p.ID == farmerID
}

// Customer profiles are private: only the owner reads or updates them.
func CanReadCustomer(p principal.Principal, customerID string) bool {
	return p.ID != "" && p.ID == customerID
}

func CanCreateCustomer(p principal.Principal, newID string) bool {
	return p.ID != "" && p.ID == newID
}

func CanUpdateCustomer(p principal.Principal, customerID string) bool {
	return p.ID != "" && p.ID == customerID
}

// CanReadListing: active listings are visible to any authenticated
// principal; the owner additionally sees their own inactive listings.
func CanReadListing(p principal.Principal, ownerID string, isActive bool) bool {
	if p.ID == "" {
		return false
	}
	return isActive || p.ID == ownerID
}

// CanWriteListing covers create, update and delete.
func CanWriteListing(p principal.Principal, ownerID string) bool {
	return p.ID != "" && p.ID == ownerID
}

// CanReadOrder: an order is visible to the customer who placed it and the
// farmer it targets.
func CanReadOrder(p principal.Principal, customerID, farmerID string) bool {
	if p.ID == "" {
		return false
	}
	return p.ID == customerID || p.ID == farmerID
}

// CanCreateOrder: only the customer named on the order may create it;
// farmers cannot place orders.
func CanCreateOrder(p principal.Principal, customerID string) bool {
	return p.ID != "" && p.IsCustomer() && p.ID == customerID
}

// CanReadOrderItem derives from the parent order.
func CanReadOrderItem(p principal.Principal, orderCustomerID, orderFarmerID string) bool {
	return CanReadOrder(p, orderCustomerID, orderFarmerID)
}

// CanCreateOrderItem: items are written only by the parent order's customer.
func CanCreateOrderItem(p principal.Principal, orderCustomerID string) bool {
	return p.ID != "" && p.ID == orderCustomerID
}
