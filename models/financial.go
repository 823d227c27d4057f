package models

import "time"

// FinancialEntry is one row of the income/expense ledger. Type is expected
// to be "income" or "expense"; other values are stored as-is but do not
// count toward the daily net in the summary.
type FinancialEntry struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category  *string   `gorm:"type:varchar(50)" json:"category"`
	Note      *string   `gorm:"type:varchar(255)" json:"note"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (FinancialEntry) TableName() string {
	return "financial"
}
