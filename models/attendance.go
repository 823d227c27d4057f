package models

// Attendance keeps date, check_in and check_out as plain strings
// ("2006-01-02" / "15:04:05") so the values round-trip untouched between
// the dashboard and the DATE/TIME columns.
type Attendance struct {
	ID       uint    `gorm:"column:attendance_id;primaryKey" json:"attendance_id"`
	StaffID  *uint   `gorm:"column:staff_id;index" json:"staff_id"`
	Date     *string `gorm:"type:date" json:"date"`
	CheckIn  *string `gorm:"column:check_in;type:time" json:"check_in"`
	CheckOut *string `gorm:"column:check_out;type:time" json:"check_out"`
	Status   string  `gorm:"type:varchar(20);not null;default:'present'" json:"status"`
	Hours    float64 `gorm:"type:decimal(5,2);not null;default:0" json:"hours"`
}

func (Attendance) TableName() string {
	return "attendance"
}
