package calendar

import (
	"database/sql"
	"net/http"

	"frilance/middleware"
	"frilance/services"

	"github.com/gin-gonic/gin"
)

func CalendarController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/calendar/events", auth, func(c *gin.Context) { ListEvents(c, db) })
}

// ListEvents returns the merged agenda of project deadlines, invoice due
// dates and todo due dates.
func ListEvents(c *gin.Context, db *sql.DB) {
	projects, err := services.FetchProjects(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	invoices, err := services.FetchInvoices(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}
	todos, err := services.FetchTodos(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load todos"})
		return
	}

	events := services.BuildCalendarEvents(projects, invoices, todos)
	c.JSON(http.StatusOK, events)
}
