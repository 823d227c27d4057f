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

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// attendanceRow is an attendance record joined with the staff member's name
// and role for the dashboard list.
type attendanceRow struct {
	ID        uint    `gorm:"column:attendance_id" json:"attendance_id"`
	StaffID   *uint   `gorm:"column:staff_id" json:"staff_id"`
	Date      *string `gorm:"column:date" json:"date"`
	CheckIn   *string `gorm:"column:check_in" json:"check_in"`
	CheckOut  *string `gorm:"column:check_out" json:"check_out"`
	Status    string  `gorm:"column:status" json:"status"`
	Hours     float64 `gorm:"column:hours" json:"hours"`
	StaffName *string `gorm:"column:staff_name" json:"staff_name"`
	StaffRole *string `gorm:"column:staff_role" json:"staff_role"`
}

const attendanceJoin = "LEFT JOIN staff s ON a.staff_id = s.staff_id"

// GetAllAttendance -> records joined with staff, latest first
func (ac *AttendanceController) GetAllAttendance(c *gin.Context) {
	rows := make([]attendanceRow, 0)
	err := ac.DB.Table("attendance a").
		Select("a.*, s.name AS staff_name, s.role AS staff_role").
		Joins(attendanceJoin).
		Order("a.date DESC, a.check_in DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (ac *AttendanceController) readJoined(id int, dest *attendanceRow) *gorm.DB {
	return ac.DB.Table("attendance a").
		Select("a.*, s.name AS staff_name, s.role AS staff_role").
		Joins(attendanceJoin).
		Where("a.attendance_id = ?", id).
		Scan(dest)
}

// CreateAttendance -> status defaults to present, hours to 0
func (ac *AttendanceController) CreateAttendance(c *gin.Context) {
	var req struct {
		StaffID  *uint   `json:"staff_id"`
		Date     *string `json:"date"`
		CheckIn  *string `json:"check_in"`
		CheckOut *string `json:"check_out"`
		Status   string  `json:"status"`
		Hours    float64 `json:"hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		req.Status = "present"
	}

	record := models.Attendance{
		StaffID:  req.StaffID,
		Date:     req.Date,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Status:   req.Status,
		Hours:    req.Hours,
	}
	if err := ac.DB.Create(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var created attendanceRow
	if err := ac.readJoined(int(record.ID), &created).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateAttendance -> full replace with the same create-time defaults
func (ac *AttendanceController) UpdateAttendance(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		StaffID  *uint   `json:"staff_id"`
		Date     *string `json:"date"`
		CheckIn  *string `json:"check_in"`
		CheckOut *string `json:"check_out"`
		Status   string  `json:"status"`
		Hours    float64 `json:"hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		req.Status = "present"
	}

	updates := map[string]interface{}{
		"staff_id":  req.StaffID,
		"date":      req.Date,
		"check_in":  req.CheckIn,
		"check_out": req.CheckOut,
		"status":    req.Status,
		"hours":     req.Hours,
	}
	if err := ac.DB.Model(&models.Attendance{}).Where("attendance_id = ?", id).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var updated attendanceRow
	res := ac.readJoined(id, &updated)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Attendance not found"))
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAttendance -> 404 when nothing was deleted
func (ac *AttendanceController) DeleteAttendance(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := ac.DB.Delete(&models.Attendance{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Attendance not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
