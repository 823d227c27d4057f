package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> every order row, unordered
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders := make([]models.Order, 0)
	if err := oc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder -> order_time is stamped here; status defaults to pending
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID  *uint   `json:"customer_id"`
		TotalAmount float64 `json:"total_amount"`
		Status      string  `json:"status"`
		Notes       *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		req.Status = "pending"
	}

	order := models.Order{
		CustomerID:  req.CustomerID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
		OrderTime:   time.Now(),
		Notes:       req.Notes,
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var created models.Order
	if err := oc.DB.First(&created, order.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New order created (ID=%d, total=%.2f)", created.ID, created.TotalAmount)
	c.JSON(http.StatusCreated, created)
}

// UpdateOrder -> full replace; order_time is never rewritten
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		CustomerID  *uint   `json:"customer_id"`
		TotalAmount float64 `json:"total_amount"`
		Status      string  `json:"status"`
		Notes       *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		req.Status = "pending"
	}

	updates := map[string]interface{}{
		"customer_id":  req.CustomerID,
		"total_amount": req.TotalAmount,
		"status":       req.Status,
		"notes":        req.Notes,
	}
	if err := oc.DB.Model(&models.Order{}).Where("order_id = ?", id).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var updated models.Order
	err := oc.DB.First(&updated, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteOrder -> 404 when nothing was deleted
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := oc.DB.Delete(&models.Order{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
