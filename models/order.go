package models

import "time"

// Order statuses are open strings; the usual values are pending, preparing,
// completed and cancelled, but no transition is enforced server-side.
type Order struct {
	ID          uint      `gorm:"column:order_id;primaryKey" json:"order_id"`
	CustomerID  *uint     `gorm:"column:customer_id;index" json:"customer_id"`
	TotalAmount float64   `gorm:"column:total_amount;type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderTime   time.Time `gorm:"column:order_time;not null" json:"order_time"`
	Notes       *string   `gorm:"type:varchar(255)" json:"notes"`
}
