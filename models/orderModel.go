package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
)

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatuses lists every order status the API accepts. Transitions between
// them are unrestricted; only set membership is enforced.
var ValidStatuses = []string{
	StatusPending,
	StatusPaid,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	return method == PaymentMethodBankTransfer || method == PaymentMethodCash
}

type Order struct {
	gorm.Model
	OrderUID        string      `json:"order_uid" gorm:"uniqueIndex;size:32"`
	UserID          uint        `json:"userId"`
	User            User        `json:"-"`
	TotalPrice      int         `json:"total_price"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentVerified bool        `json:"payment_verified"`
	PaymentProofURL *string     `json:"payment_proof_url"`
	Status          string      `json:"status"`
	OrderItems      []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots name and unit price at order time so later menu edits
// never change historical orders. ItemName is deliberately not a foreign key.
type OrderItem struct {
	gorm.Model
	OrderID        uint           `json:"orderId"`
	ItemName       string         `json:"item_name"`
	Quantity       int            `json:"quantity"`
	UnitPrice      int            `json:"unit_price"`
	Customizations datatypes.JSON `json:"customizations"`
}

// DayCounter backs order UID generation. One row per calendar day, bumped
// under a row lock inside the order-creation transaction so two concurrent
// checkouts can never draw the same sequence number.
type DayCounter struct {
	gorm.Model
	Day string `json:"day" gorm:"uniqueIndex;size:8"`
	Seq int    `json:"seq"`
}
