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

type FinancialController struct {
	DB *gorm.DB
}

func NewFinancialController(db *gorm.DB) *FinancialController {
	return &FinancialController{DB: db}
}

// GetAllEntries -> every ledger row, unordered
func (fc *FinancialController) GetAllEntries(c *gin.Context) {
	entries := make([]models.FinancialEntry, 0)
	if err := fc.DB.Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateEntry -> type and a non-zero amount are both required
func (fc *FinancialController) CreateEntry(c *gin.Context) {
	var req struct {
		Type     string  `json:"type"`
		Amount   float64 `json:"amount"`
		Category *string `json:"category"`
		Note     *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Type == "" || req.Amount == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("type and amount are required"))
		return
	}

	entry := models.FinancialEntry{
		Type:     req.Type,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
	}
	if err := fc.DB.Create(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var created models.FinancialEntry
	if err := fc.DB.First(&created, entry.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateEntry -> full replace; created_at is never rewritten
func (fc *FinancialController) UpdateEntry(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Type     string  `json:"type"`
		Amount   float64 `json:"amount"`
		Category *string `json:"category"`
		Note     *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{
		"type":     req.Type,
		"amount":   req.Amount,
		"category": req.Category,
		"note":     req.Note,
	}
	if err := fc.DB.Model(&models.FinancialEntry{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var updated models.FinancialEntry
	err := fc.DB.First(&updated, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("Entry not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteEntry -> 404 when nothing was deleted
func (fc *FinancialController) DeleteEntry(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := fc.DB.Delete(&models.FinancialEntry{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Entry not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
