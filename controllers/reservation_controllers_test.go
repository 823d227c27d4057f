package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"restaurant-backoffice/controllers"
	"restaurant-backoffice/models"
)

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewReservationController(db)
	r.GET("/api/reservations", ctrl.GetAllReservations)
	r.POST("/api/reservations", ctrl.CreateReservation)
	r.PUT("/api/reservations/:id", ctrl.UpdateReservation)
	r.DELETE("/api/reservations/:id", ctrl.DeleteReservation)
	return r
}

func TestCreateReservationDefaults(t *testing.T) {
	db := openTestDB(t, &models.Reservation{})
	r := setupReservationRouter(db)

	w := performJSON(t, r, http.MethodPost, "/api/reservations", map[string]interface{}{})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Nil(t, created["customer_id"])
	assert.EqualValues(t, 1, created["party_size"])
	assert.Equal(t, "confirmed", created["status"])
	assert.Nil(t, created["reserve_time"])
}

func TestCreateReservationWithFields(t *testing.T) {
	db := openTestDB(t, &models.Reservation{})
	r := setupReservationRouter(db)

	w := performJSON(t, r, http.MethodPost, "/api/reservations", map[string]interface{}{
		"customer_id":  2,
		"party_size":   4,
		"reserve_time": "2026-09-01 19:30:00",
		"status":       "pending",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.EqualValues(t, 2, created["customer_id"])
	assert.EqualValues(t, 4, created["party_size"])
	assert.Equal(t, "2026-09-01 19:30:00", created["reserve_time"])
	assert.Equal(t, "pending", created["status"])
}

func TestUpdateReservationFullReplace(t *testing.T) {
	db := openTestDB(t, &models.Reservation{})
	r := setupReservationRouter(db)

	custID := uint(2)
	when := "2026-09-01 19:30:00"
	reservation := models.Reservation{CustomerID: &custID, PartySize: 4, ReserveTime: &when, Status: "pending"}
	db.Create(&reservation)

	// reserve_time omitted -> NULL; party_size omitted -> back to the
	// default of 1.
	w := performJSON(t, r, http.MethodPut, "/api/reservations/"+strconv.Itoa(int(reservation.ID)), map[string]interface{}{
		"customer_id": 2,
		"status":      "confirmed",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.EqualValues(t, 1, updated["party_size"])
	assert.Equal(t, "confirmed", updated["status"])
	assert.Nil(t, updated["reserve_time"])
}

func TestUpdateReservationNotFound(t *testing.T) {
	db := openTestDB(t, &models.Reservation{})
	r := setupReservationRouter(db)

	w := performJSON(t, r, http.MethodPut, "/api/reservations/55", map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Reservation not found", decodeBody(t, w)["error"])
}

func TestDeleteReservation(t *testing.T) {
	db := openTestDB(t, &models.Reservation{})
	r := setupReservationRouter(db)

	reservation := models.Reservation{PartySize: 2, Status: "confirmed"}
	db.Create(&reservation)
	url := "/api/reservations/" + strconv.Itoa(int(reservation.ID))

	w := performJSON(t, r, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
