package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/database"
	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

// StaffController aliases the physical phone column (phone or staff_phone,
// resolved once at startup) to `phone` on every response, so the dashboard
// never sees the difference.
type StaffController struct {
	DB       *gorm.DB
	phoneCol database.StaffPhoneColumn
}

func NewStaffController(db *gorm.DB, phoneCol database.StaffPhoneColumn) *StaffController {
	return &StaffController{DB: db, phoneCol: phoneCol}
}

func (sc *StaffController) selectColumns() string {
	return fmt.Sprintf("staff_id, name, role, email, %s AS phone", sc.phoneCol)
}

// GetAllStaff -> every staff row with the phone column aliased
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	staff := make([]models.Staff, 0)
	if err := sc.DB.Table("staff").Select(sc.selectColumns()).Scan(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// CreateStaff -> insert, write the phone through the resolved column, re-read
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		Name  string  `json:"name"`
		Role  *string `json:"role"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Name is required"))
		return
	}

	staff := models.Staff{Name: req.Name, Role: req.Role, Email: req.Email}
	if err := sc.DB.Omit("Phone").Create(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := sc.DB.Table("staff").Where("staff_id = ?", staff.ID).
		Update(string(sc.phoneCol), req.Phone).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var created models.Staff
	if err := sc.DB.Table("staff").Select(sc.selectColumns()).
		Where("staff_id = ?", staff.ID).Scan(&created).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New staff created (ID=%d)", created.ID)
	c.JSON(http.StatusCreated, created)
}

// UpdateStaff -> full replace through the resolved column
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name  string  `json:"name"`
		Role  *string `json:"role"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{
		"name":              req.Name,
		"role":              req.Role,
		"email":             req.Email,
		string(sc.phoneCol): req.Phone,
	}
	if err := sc.DB.Table("staff").Where("staff_id = ?", id).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var updated models.Staff
	res := sc.DB.Table("staff").Select(sc.selectColumns()).
		Where("staff_id = ?", id).Scan(&updated)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Staff not found"))
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteStaff -> 404 when nothing was deleted
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := sc.DB.Delete(&models.Staff{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Staff not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
