// Package entity contains the core business objects of the project.
package entity

// PurchaseMode represents how a buyer intends to obtain a product.
type PurchaseMode string

const (
	// PurchaseModeDelivery indicates home delivery; it draws on the online stock pool.
	PurchaseModeDelivery PurchaseMode = "delivery"
	// PurchaseModePickup indicates collection at the shop.
	PurchaseModePickup PurchaseMode = "pickup"
	// PurchaseModeInStore indicates an in-store purchase.
	PurchaseModeInStore PurchaseMode = "in_store"
)

// String returns the string representation of the PurchaseMode.
func (m PurchaseMode) String() string {
	return string(m)
}

// IsValid checks if the PurchaseMode is a valid value.
func (m PurchaseMode) IsValid() bool {
	switch m {
	case PurchaseModeDelivery, PurchaseModePickup, PurchaseModeInStore:
		return true
	default:
		return false
	}
}
