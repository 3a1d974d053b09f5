package model

import "time"

const PaymentStatusCompleted = "Completed"

// PaymentInfo is written once, when the gateway confirms the charge.
type PaymentInfo struct {
	TransactionID string `json:"transaction_id" db:"transaction_id"`
	GatewayStatus string `json:"gateway_status" db:"gateway_status"`
	PaymentMethod string `json:"payment_method" db:"payment_method"`
}

type Payment struct {
	ID          int64     `db:"id"`
	LeaseID     int64     `db:"lease_id"`
	UserID      int64     `db:"user_id"`
	Amount      float64   `db:"amount"`
	PaymentDate time.Time `db:"payment_date"`
	Status      string    `db:"status"`
	PaymentInfo
	Ctime int64 `db:"ctime"`
}

// PaymentAttempt describes an incoming charge request before the gateway
// has seen it.
type PaymentAttempt struct {
	LeaseID            int64
	Amount             float64
	PaymentDate        time.Time
	PaymentMethodToken string
}

// PaymentRow is a payment joined with the property of its lease.
type PaymentRow struct {
	Payment
	PropertyID   int64  `db:"property_id"`
	RentalTxID   int64  `db:"rental_transaction_id"`
	BHK          int    `db:"bhk"`
	PropertyType string `db:"property_type"`
	Address      string `db:"address"`
}

type PaymentView struct {
	ID           int64       `json:"id"`
	LeaseID      int64       `json:"lease_id"`
	Amount       float64     `json:"amount"`
	PaymentDate  string      `json:"payment_date"`
	Status       string      `json:"status"`
	PaymentInfo  PaymentInfo `json:"payment_info"`
	BHK          int         `json:"bhk"`
	PropertyType string      `json:"property_type"`
	Address      string      `json:"address"`
}

type TenantPaymentView struct {
	BHK           int     `json:"bhk"`
	PropertyType  string  `json:"property_type"`
	Address       string  `json:"address"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
}
