package domain

import "time"

// PackageType identifies the ticket package purchased with an order.
type PackageType string

const (
	PackageSingle   PackageType = "SINGLE" // default when the client omits the field
	PackageStandard PackageType = "STANDARD"
	PackageVIP      PackageType = "VIP"
)

// ValidPackageType reports whether p is a known package.
func ValidPackageType(p PackageType) bool {
	switch p {
	case PackageSingle, PackageStandard, PackageVIP:
		return true
	}
	return false
}

// OrderStatus is the payment state of an order.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
)

// Order is a ticket purchase. Unlike registrations there is no uniqueness
// constraint: one email may place any number of orders, and an order does
// not require a prior registration.
type Order struct {
	ID           int64       `json:"id"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Amount       float64     `json:"amount"`
	PackageType  PackageType `json:"packageType"`
	ReferralCode string      `json:"referralCode,omitempty"`
	SlipURL      string      `json:"slipUrl,omitempty"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}
