package models

// Staff maps the staff table as migrated by this application. Legacy
// deployments may carry the phone number in a column named staff_phone
// instead of phone; reads and writes go through the column picked by
// database.DetectStaffPhoneColumn, and responses always expose the field
// as `phone`.
type Staff struct {
	ID    uint    `gorm:"column:staff_id;primaryKey" json:"staff_id"`
	Name  string  `gorm:"type:varchar(100);not null" json:"name"`
	Role  *string `gorm:"type:varchar(50)" json:"role"`
	Email *string `gorm:"type:varchar(100)" json:"email"`
	Phone *string `gorm:"type:varchar(30)" json:"phone"`
}

func (Staff) TableName() string {
	return "staff"
}
