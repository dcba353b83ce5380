package settings

import (
	"database/sql"
	"math"
	"net/http"

	"frilance/dto"
	"frilance/middleware"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func SettingsController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/settings", auth, func(c *gin.Context) { GetSettings(c, db) })
	router.PUT("/settings", auth, func(c *gin.Context) { UpdateSettings(c, db) })
}

func GetSettings(c *gin.Context, db *sql.DB) {
	settings, err := services.GetSettings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges the patch over the stored profile. Omitted fields
// keep their current value.
func UpdateSettings(c *gin.Context, db *sql.DB) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	settings, err := services.GetSettings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	if req.BusinessName != nil {
		settings.BusinessName = *req.BusinessName
	}
	if req.BusinessEmail != nil {
		settings.BusinessEmail = *req.BusinessEmail
	}
	if req.BusinessAddress != nil {
		settings.BusinessAddress = *req.BusinessAddress
	}
	if req.BusinessPhone != nil {
		settings.BusinessPhone = *req.BusinessPhone
	}
	if req.Currency != nil {
		settings.Currency = *req.Currency
	}
	if req.DefaultTaxRate != nil {
		rate := *req.DefaultTaxRate
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tax rate"})
			return
		}
		settings.DefaultTaxRate = decimal.NewFromFloat(rate)
	}

	if err := services.SaveSettings(db, settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
