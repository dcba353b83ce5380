package dashboard

import (
	"database/sql"
	"net/http"
	"time"

	"frilance/middleware"
	"frilance/services"

	"github.com/gin-gonic/gin"
)

func DashboardController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/dashboard/stats", auth, func(c *gin.Context) { GetStats(c, db) })
}

func GetStats(c *gin.Context, db *sql.DB) {
	projects, err := services.FetchProjects(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	clients, err := services.FetchClients(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}
	invoices, err := services.FetchInvoices(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}
	expenses, err := services.FetchExpenses(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}
	entries, err := services.FetchTimeEntries(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load time entries"})
		return
	}

	stats := services.ComputeDashboardStats(projects, clients, invoices, expenses, entries, time.Now())
	c.JSON(http.StatusOK, stats)
}
