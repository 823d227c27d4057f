package database

import (
	"time"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"

	"gorm.io/gorm"
)

// SeedDataset wipes all six tables and loads the demo fixture the dashboard
// is developed against. Triggered with SEED_DATASET=true; never runs on a
// plain start.
func SeedDataset(db *gorm.DB, phoneCol StaffPhoneColumn) error {
	// Children before parents, so the FK constraints stay happy.
	wipe := []interface{}{
		&models.Order{},
		&models.Reservation{},
		&models.Attendance{},
		&models.FinancialEntry{},
		&models.Customer{},
		&models.Staff{},
	}
	for _, m := range wipe {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}

	customers := []models.Customer{
		{Name: "Asha Patel", Phone: ptr("9876543210"), Email: ptr("asha.patel@example.com")},
		{Name: "Vikram Singh", Phone: ptr("9876543211"), Email: ptr("vikram.singh@example.com")},
		{Name: "Priya Sharma", Phone: ptr("9876543212"), Email: ptr("priya.sharma@example.com")},
		{Name: "Guest"},
		{Name: "Ravi Kumar", Phone: ptr("9876543213"), Email: ptr("ravi.kumar@example.com")},
		{Name: "Neha Rao", Phone: ptr("9876543214"), Email: ptr("neha.rao@example.com")},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	staff := []struct {
		name, role, email, phone string
	}{
		{"Sanjay Mehta", "Manager", "sanjay.mehta@example.com", "9000000001"},
		{"Anita Desai", "Chef", "anita.desai@example.com", "9000000002"},
		{"Rakesh Gupta", "Captain", "rakesh.gupta@example.com", "9000000003"},
		{"Maya Iyer", "Waiter", "maya.iyer@example.com", "9000000004"},
		{"Arjun Rao", "Waiter", "arjun.rao@example.com", "9000000005"},
	}
	for _, s := range staff {
		row := models.Staff{Name: s.name, Role: ptr(s.role), Email: ptr(s.email)}
		if err := db.Omit("Phone").Create(&row).Error; err != nil {
			return err
		}
		// Phone goes through the resolved column, same as the handlers.
		if err := db.Table("staff").Where("staff_id = ?", row.ID).
			Update(string(phoneCol), s.phone).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	orders := []models.Order{
		{CustomerID: &customers[0].ID, TotalAmount: 450.00, Status: "completed", OrderTime: now.AddDate(0, 0, -3), Notes: ptr("Dine-in: Thali x2")},
		{CustomerID: &customers[1].ID, TotalAmount: 320.50, Status: "completed", OrderTime: now.AddDate(0, 0, -2), Notes: ptr("Birthday booking")},
		{CustomerID: &customers[2].ID, TotalAmount: 150.75, Status: "completed", OrderTime: now.AddDate(0, 0, -1), Notes: ptr("Lunch special")},
		{TotalAmount: 89.90, Status: "pending", OrderTime: now, Notes: ptr("Walk-in guest, snacks")},
		{CustomerID: &customers[4].ID, TotalAmount: 599.00, Status: "preparing", OrderTime: now, Notes: ptr("Dinner: Family pack")},
		{CustomerID: &customers[5].ID, TotalAmount: 240.00, Status: "completed", OrderTime: now.AddDate(0, 0, -6), Notes: ptr("Takeaway")},
	}
	if err := db.Create(&orders).Error; err != nil {
		return err
	}

	reservations := []models.Reservation{
		{CustomerID: &customers[0].ID, PartySize: 2, ReserveTime: ptr(now.AddDate(0, 0, 1).Format("2006-01-02 15:04:05")), Status: "confirmed"},
		{CustomerID: &customers[1].ID, PartySize: 4, ReserveTime: ptr(now.AddDate(0, 0, 2).Format("2006-01-02 15:04:05")), Status: "confirmed"},
		{CustomerID: &customers[4].ID, PartySize: 6, ReserveTime: ptr(now.AddDate(0, 0, 5).Format("2006-01-02 15:04:05")), Status: "confirmed"},
	}
	if err := db.Create(&reservations).Error; err != nil {
		return err
	}

	financial := []models.FinancialEntry{
		{Type: "income", Amount: 450.00, Category: ptr("sales"), Note: ptr("Order from Asha")},
		{Type: "income", Amount: 320.50, Category: ptr("sales"), Note: ptr("Order from Vikram")},
		{Type: "income", Amount: 150.75, Category: ptr("sales"), Note: ptr("Order from Priya")},
		{Type: "expense", Amount: 200.00, Category: ptr("supplies"), Note: ptr("Vegetables and fruits")},
		{Type: "expense", Amount: 300.00, Category: ptr("utilities"), Note: ptr("Gas and electricity")},
	}
	if err := db.Create(&financial).Error; err != nil {
		return err
	}

	var staffIDs []uint
	if err := db.Model(&models.Staff{}).Order("staff_id").Pluck("staff_id", &staffIDs).Error; err != nil {
		return err
	}
	today := now.Format("2006-01-02")
	attendance := []models.Attendance{
		{StaffID: &staffIDs[0], Date: &today, CheckIn: ptr("09:00:00"), CheckOut: ptr("18:00:00"), Status: "present", Hours: 9.00},
		{StaffID: &staffIDs[1], Date: &today, CheckIn: ptr("09:15:00"), CheckOut: ptr("18:30:00"), Status: "present", Hours: 9.25},
		{StaffID: &staffIDs[2], Date: &today, CheckIn: ptr("11:00:00"), CheckOut: ptr("20:00:00"), Status: "present", Hours: 9.00},
		{StaffID: &staffIDs[3], Date: &today, Status: "absent", Hours: 0},
	}
	if err := db.Create(&attendance).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("seed complete: %d customers, %d staff, %d orders", len(customers), len(staff), len(orders))
	return nil
}

func ptr(s string) *string {
	return &s
}
