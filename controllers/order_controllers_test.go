package controllers_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"restaurant-backoffice/controllers"
	"restaurant-backoffice/models"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewOrderController(db)
	r.GET("/api/orders", ctrl.GetAllOrders)
	r.POST("/api/orders", ctrl.CreateOrder)
	r.PUT("/api/orders/:id", ctrl.UpdateOrder)
	r.DELETE("/api/orders/:id", ctrl.DeleteOrder)
	return r
}

func TestCreateOrderDefaults(t *testing.T) {
	db := openTestDB(t, &models.Order{})
	r := setupOrderRouter(db)

	// Guest order: no customer, no status.
	w := performJSON(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"total_amount": 89.90,
		"notes":        "Walk-in guest, snacks",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Nil(t, created["customer_id"])
	assert.Equal(t, "pending", created["status"])
	assert.InDelta(t, 89.90, created["total_amount"].(float64), 0.001)
	assert.NotEmpty(t, created["order_time"])

	var stored models.Order
	db.First(&stored)
	assert.WithinDuration(t, time.Now(), stored.OrderTime, 5*time.Second)
}

func TestCreateOrderKeepsGivenStatus(t *testing.T) {
	db := openTestDB(t, &models.Order{})
	r := setupOrderRouter(db)

	w := performJSON(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id":  1,
		"total_amount": 599.00,
		"status":       "preparing",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "preparing", decodeBody(t, w)["status"])
}

func TestUpdateOrderFullReplace(t *testing.T) {
	db := openTestDB(t, &models.Order{})
	r := setupOrderRouter(db)

	custID := uint(3)
	notes := "Lunch special"
	order := models.Order{CustomerID: &custID, TotalAmount: 150.75, Status: "completed", OrderTime: time.Now(), Notes: &notes}
	db.Create(&order)

	// Statuses are open strings: rewriting completed back to pending is
	// allowed, and the omitted notes become NULL.
	w := performJSON(t, r, http.MethodPut, "/api/orders/"+strconv.Itoa(int(order.ID)), map[string]interface{}{
		"customer_id":  3,
		"total_amount": 175.25,
		"status":       "pending",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.Equal(t, "pending", updated["status"])
	assert.InDelta(t, 175.25, updated["total_amount"].(float64), 0.001)
	assert.Nil(t, updated["notes"])
	assert.NotEmpty(t, updated["order_time"]) // creation time survives the update
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := openTestDB(t, &models.Order{})
	r := setupOrderRouter(db)

	w := performJSON(t, r, http.MethodPut, "/api/orders/777", map[string]interface{}{
		"total_amount": 1.00,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decodeBody(t, w)["error"])
}

func TestDeleteOrder(t *testing.T) {
	db := openTestDB(t, &models.Order{})
	r := setupOrderRouter(db)

	order := models.Order{TotalAmount: 10, Status: "pending", OrderTime: time.Now()}
	db.Create(&order)
	url := "/api/orders/" + strconv.Itoa(int(order.ID))

	w := performJSON(t, r, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = performJSON(t, r, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decodeBody(t, w)["error"])
}
