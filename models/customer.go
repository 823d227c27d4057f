package models

type Customer struct {
	ID    uint    `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	Name  string  `gorm:"type:varchar(100);not null" json:"name"`
	Phone *string `gorm:"type:varchar(30)" json:"phone"`
	Email *string `gorm:"type:varchar(100)" json:"email"`
}
