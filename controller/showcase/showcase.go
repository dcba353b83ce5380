package showcase

import (
	"database/sql"
	"net/http"

	"frilance/services"

	"github.com/gin-gonic/gin"
)

// ShowcaseController serves the public portfolio page: the business
// profile plus the services catalog. No auth on purpose.
func ShowcaseController(router *gin.Engine, db *sql.DB) {
	router.GET("/showcase", func(c *gin.Context) { GetShowcase(c, db) })
}

func GetShowcase(c *gin.Context, db *sql.DB) {
	settings, err := services.GetSettings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	items, err := services.FetchServices(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": gin.H{
			"name":    settings.BusinessName,
			"email":   settings.BusinessEmail,
			"address": settings.BusinessAddress,
			"phone":   settings.BusinessPhone,
		},
		"currency": settings.Currency,
		"services": items,
	})
}
