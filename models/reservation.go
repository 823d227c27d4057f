package models

type Reservation struct {
	ID          uint    `gorm:"column:reservation_id;primaryKey" json:"reservation_id"`
	CustomerID  *uint   `gorm:"column:customer_id;index" json:"customer_id"`
	PartySize   int     `gorm:"column:party_size;not null;default:1" json:"party_size"`
	ReserveTime *string `gorm:"column:reserve_time;type:datetime" json:"reserve_time"`
	Status      string  `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
}
