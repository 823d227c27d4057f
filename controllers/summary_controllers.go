package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

// SummaryController folds the dashboard's six read queries into one
// response so the client doesn't have to fan out on every refresh.
type SummaryController struct {
	DB *gorm.DB
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{DB: db}
}

type dayBucket struct {
	Day     string  `json:"day"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// GetSummary -> today's metrics, global counts, a 7-day revenue series and
// the four latest orders. Any failing query aborts the whole endpoint.
func (sc *SummaryController) GetSummary(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var todayOrders struct {
		Count   int64
		Revenue float64
	}
	err := sc.DB.Model(&models.Order{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("DATE(order_time) = ?", today).
		Scan(&todayOrders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var totalsByType []struct {
		Type  string
		Total float64
	}
	err = sc.DB.Model(&models.FinancialEntry{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("DATE(created_at) = ?", today).
		Group("type").
		Scan(&totalsByType).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	// Only the two known ledger types move the net; anything else is
	// stored but doesn't count either way.
	var financialNet float64
	for _, t := range totalsByType {
		switch t.Type {
		case "income":
			financialNet += t.Total
		case "expense":
			financialNet -= t.Total
		}
	}

	var customerCount, reservationCount, staffCount int64
	if err := sc.DB.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := sc.DB.Model(&models.Reservation{}).Count(&reservationCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := sc.DB.Model(&models.Staff{}).Count(&staffCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var attendancePresent int64
	err = sc.DB.Model(&models.Attendance{}).
		Where("DATE(date) = ? AND status = ?", today, "present").
		Count(&attendancePresent).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Trailing window: today minus six days through today. Days without
	// orders produce no bucket, so the series can be sparse.
	since := time.Now().AddDate(0, 0, -6).Format("2006-01-02")
	last7 := make([]dayBucket, 0)
	err = sc.DB.Model(&models.Order{}).
		Select("DATE(order_time) AS day, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("DATE(order_time) >= ?", since).
		Group("DATE(order_time)").
		Order("day").
		Scan(&last7).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	// MySQL hands DATE() back as a full timestamp when parseTime is on;
	// trim to YYYY-MM-DD so the series key is stable across drivers.
	for i := range last7 {
		if len(last7[i].Day) > 10 {
			last7[i].Day = last7[i].Day[:10]
		}
	}

	recentOrders := make([]models.Order, 0)
	err = sc.DB.Order("order_time DESC").Limit(4).Find(&recentOrders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today": gin.H{
			"orders_count":       todayOrders.Count,
			"orders_revenue":     todayOrders.Revenue,
			"financial_net":      financialNet,
			"attendance_present": attendancePresent,
		},
		"counts": gin.H{
			"customers":    customerCount,
			"reservations": reservationCount,
			"staff":        staffCount,
		},
		"last7":        last7,
		"recentOrders": recentOrders,
	})
}
