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

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> every customer row, unordered
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers := make([]models.Customer, 0)
	if err := cc.DB.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// CreateCustomer -> insert then re-read the generated row
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name  string  `json:"name"`
		Phone *string `json:"phone"`
		Email *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Name is required"))
		return
	}

	customer := models.Customer{Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var created models.Customer
	if err := cc.DB.First(&created, customer.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", created.ID)
	c.JSON(http.StatusCreated, created)
}

// UpdateCustomer -> full replace; fields left out of the body become NULL
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name  string  `json:"name"`
		Phone *string `json:"phone"`
		Email *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{
		"name":  req.Name,
		"phone": req.Phone,
		"email": req.Email,
	}
	if err := cc.DB.Model(&models.Customer{}).Where("customer_id = ?", id).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var updated models.Customer
	err := cc.DB.First(&updated, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("Customer not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCustomer -> 404 when nothing was deleted
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := cc.DB.Delete(&models.Customer{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Customer not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
