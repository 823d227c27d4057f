package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// GetAllReservations -> every reservation row, unordered
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations := make([]models.Reservation, 0)
	if err := rc.DB.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// CreateReservation -> party_size defaults to 1, status to confirmed
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerID  *uint   `json:"customer_id"`
		PartySize   int     `json:"party_size"`
		ReserveTime *string `json:"reserve_time"`
		Status      string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.PartySize == 0 {
		req.PartySize = 1
	}
	if req.Status == "" {
		req.Status = "confirmed"
	}

	reservation := models.Reservation{
		CustomerID:  req.CustomerID,
		PartySize:   req.PartySize,
		ReserveTime: req.ReserveTime,
		Status:      req.Status,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var created models.Reservation
	if err := rc.DB.First(&created, reservation.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateReservation -> full replace with the same create-time defaults
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		CustomerID  *uint   `json:"customer_id"`
		PartySize   int     `json:"party_size"`
		ReserveTime *string `json:"reserve_time"`
		Status      string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.PartySize == 0 {
		req.PartySize = 1
	}
	if req.Status == "" {
		req.Status = "confirmed"
	}

	updates := map[string]interface{}{
		"customer_id":  req.CustomerID,
		"party_size":   req.PartySize,
		"reserve_time": req.ReserveTime,
		"status":       req.Status,
	}
	if err := rc.DB.Model(&models.Reservation{}).Where("reservation_id = ?", id).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var updated models.Reservation
	err := rc.DB.First(&updated, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("Reservation not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteReservation -> 404 when nothing was deleted
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := rc.DB.Delete(&models.Reservation{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Reservation not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
