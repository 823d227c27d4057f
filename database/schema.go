package database

import (
	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"

	"gorm.io/gorm"
)

// StaffPhoneColumn names the physical column holding the staff phone
// number. Only the two constants below ever reach SQL text; everything
// else stays a bound parameter.
type StaffPhoneColumn string

const (
	StaffPhoneDefault StaffPhoneColumn = "phone"
	StaffPhoneLegacy  StaffPhoneColumn = "staff_phone"
)

// DetectStaffPhoneColumn probes the live schema once at startup, before any
// migration runs. First match wins: phone, then staff_phone. When the table
// cannot be inspected (fresh database, connection down) the probe logs and
// falls back to phone, so a real mismatch only surfaces on the first write.
func DetectStaffPhoneColumn(db *gorm.DB) StaffPhoneColumn {
	if !db.Migrator().HasTable(&models.Staff{}) {
		utils.InfoLogger.Printf("staff table not inspectable, using staff phone column %q", StaffPhoneDefault)
		return StaffPhoneDefault
	}

	for _, col := range []StaffPhoneColumn{StaffPhoneDefault, StaffPhoneLegacy} {
		if db.Migrator().HasColumn(&models.Staff{}, string(col)) {
			utils.InfoLogger.Printf("using staff phone column %q", col)
			return col
		}
	}

	utils.InfoLogger.Printf("no known staff phone column found, using %q", StaffPhoneDefault)
	return StaffPhoneDefault
}
