package model

const (
	PropertyStatusRented       = "Rented"
	TransactionStatusCompleted = "Completed"
)

type Property struct {
	ID                 int64  `json:"id" db:"id"`
	OwnerID            int64  `json:"owner_id" db:"owner_id"`
	Address            string `json:"address" db:"address"`
	BHK                int    `json:"bhk" db:"bhk"`
	PropertyType       string `json:"property_type" db:"property_type"`
	AvailabilityStatus string `json:"availability_status" db:"availability_status"`
}

type RentalTransaction struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"user_id" db:"user_id"`
	PropertyID int64  `json:"property_id" db:"property_id"`
	Status     string `json:"status" db:"status"`
}

// Lease is read together with the rental transaction that created it; the
// tenant of a lease is the user of that transaction.
type Lease struct {
	ID            int64 `json:"id" db:"id"`
	PropertyID    int64 `json:"property_id" db:"property_id"`
	TransactionID int64 `json:"transaction_id" db:"transaction_id"`
	TenantID      int64 `json:"tenant_id" db:"tenant_id"`

	BHK          int    `json:"bhk" db:"bhk"`
	PropertyType string `json:"property_type" db:"property_type"`
	Address      string `json:"address" db:"address"`
}
