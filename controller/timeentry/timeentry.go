package timeentry

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"frilance/dto"
	"frilance/middleware"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TimeEntryController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/time-entries", auth, func(c *gin.Context) { ListTimeEntries(c, db) })
	router.POST("/time-entries", auth, func(c *gin.Context) { CreateTimeEntry(c, db) })
	router.DELETE("/time-entries/:id", auth, func(c *gin.Context) { DeleteTimeEntry(c, db) })
}

func ListTimeEntries(c *gin.Context, db *sql.DB) {
	entries, err := services.FetchTimeEntries(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load time entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func CreateTimeEntry(c *gin.Context, db *sql.DB) {
	var req dto.TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil || date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	entry := model.TimeEntry{
		EntryID:     uuid.New().String(),
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Hours:       req.Hours,
		Date:        *date,
		CreatedAt:   time.Now(),
	}
	if req.ProjectID != "" {
		project, perr := services.GetProject(db, req.ProjectID)
		if errors.Is(perr, services.ErrProjectNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown project"})
			return
		}
		if perr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
			return
		}
		entry.ProjectName = project.Name
	}

	if err := services.InsertTimeEntry(db, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create time entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func DeleteTimeEntry(c *gin.Context, db *sql.DB) {
	err := services.DeleteTimeEntry(db, c.Param("id"))
	if errors.Is(err, services.ErrTimeEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete time entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time entry deleted"})
}
