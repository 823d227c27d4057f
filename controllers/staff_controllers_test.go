package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"restaurant-backoffice/controllers"
	"restaurant-backoffice/database"
	"restaurant-backoffice/models"
)

func setupStaffRouter(db *gorm.DB, col database.StaffPhoneColumn) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewStaffController(db, col)
	r.GET("/api/staff", ctrl.GetAllStaff)
	r.POST("/api/staff", ctrl.CreateStaff)
	r.PUT("/api/staff/:id", ctrl.UpdateStaff)
	r.DELETE("/api/staff/:id", ctrl.DeleteStaff)
	return r
}

// legacyStaffTable creates the staff table the way old deployments have it:
// the phone number lives in staff_phone.
func legacyStaffTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec(`CREATE TABLE staff (
		staff_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name varchar(100) NOT NULL,
		role varchar(50),
		email varchar(100),
		staff_phone varchar(30)
	)`).Error
	if err != nil {
		t.Fatalf("failed to create legacy staff table: %v", err)
	}
}

func TestStaffPhoneRoundTripDefaultColumn(t *testing.T) {
	db := openTestDB(t, &models.Staff{})
	col := database.DetectStaffPhoneColumn(db)
	assert.Equal(t, database.StaffPhoneDefault, col)

	r := setupStaffRouter(db, col)

	w := performJSON(t, r, http.MethodPost, "/api/staff", map[string]interface{}{
		"name":  "Maria Gonzales",
		"role":  "Manager",
		"phone": "555-1111",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "555-1111", created["phone"])

	w = performJSON(t, r, http.MethodGet, "/api/staff", nil)
	list := decodeList(t, w)
	assert.Len(t, list, 1)
	assert.Equal(t, "555-1111", list[0]["phone"])
}

func TestStaffPhoneRoundTripLegacyColumn(t *testing.T) {
	db := openTestDB(t)
	legacyStaffTable(t, db)

	col := database.DetectStaffPhoneColumn(db)
	assert.Equal(t, database.StaffPhoneLegacy, col)

	r := setupStaffRouter(db, col)

	w := performJSON(t, r, http.MethodPost, "/api/staff", map[string]interface{}{
		"name":  "Jake Turner",
		"phone": "555-1111",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// The API still exposes the field as phone.
	created := decodeBody(t, w)
	assert.Equal(t, "555-1111", created["phone"])

	// Physically it landed in staff_phone.
	var stored string
	err := db.Raw("SELECT staff_phone FROM staff WHERE staff_id = ?", created["staff_id"]).Scan(&stored).Error
	assert.NoError(t, err)
	assert.Equal(t, "555-1111", stored)

	w = performJSON(t, r, http.MethodGet, "/api/staff", nil)
	list := decodeList(t, w)
	assert.Len(t, list, 1)
	assert.Equal(t, "555-1111", list[0]["phone"])
}

func TestCreateStaffRequiresName(t *testing.T) {
	db := openTestDB(t, &models.Staff{})
	r := setupStaffRouter(db, database.StaffPhoneDefault)

	w := performJSON(t, r, http.MethodPost, "/api/staff", map[string]interface{}{
		"role": "Chef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name is required", decodeBody(t, w)["error"])
}

func TestUpdateStaffFullReplace(t *testing.T) {
	db := openTestDB(t, &models.Staff{})
	r := setupStaffRouter(db, database.StaffPhoneDefault)

	role := "Waiter"
	email := "arjun.rao@example.com"
	phone := "9000000005"
	staff := models.Staff{Name: "Arjun Rao", Role: &role, Email: &email, Phone: &phone}
	db.Create(&staff)

	w := performJSON(t, r, http.MethodPut, "/api/staff/"+strconv.Itoa(int(staff.ID)), map[string]interface{}{
		"name":  "Arjun Rao",
		"role":  "Captain",
		"phone": "9000000009",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.Equal(t, "Captain", updated["role"])
	assert.Equal(t, "9000000009", updated["phone"])
	assert.Nil(t, updated["email"]) // omitted field nulled by full replace
}

func TestUpdateStaffNotFound(t *testing.T) {
	db := openTestDB(t, &models.Staff{})
	r := setupStaffRouter(db, database.StaffPhoneDefault)

	w := performJSON(t, r, http.MethodPut, "/api/staff/404", map[string]interface{}{
		"name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Staff not found", decodeBody(t, w)["error"])
}

func TestDeleteStaff(t *testing.T) {
	db := openTestDB(t, &models.Staff{})
	r := setupStaffRouter(db, database.StaffPhoneDefault)

	staff := models.Staff{Name: "Temp"}
	db.Create(&staff)
	url := "/api/staff/" + strconv.Itoa(int(staff.ID))

	w := performJSON(t, r, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = performJSON(t, r, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
