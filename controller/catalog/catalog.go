package catalog

import (
	"database/sql"
	"errors"
	"math"
	"net/http"
	"time"

	"frilance/dto"
	"frilance/middleware"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogController serves the reusable service offerings that feed
// invoice and quotation lines.
func CatalogController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/services", auth, func(c *gin.Context) { ListServices(c, db) })
	router.POST("/services", auth, func(c *gin.Context) { CreateService(c, db) })
	router.PUT("/services/:id", auth, func(c *gin.Context) { UpdateService(c, db) })
	router.DELETE("/services/:id", auth, func(c *gin.Context) { DeleteService(c, db) })
}

func ListServices(c *gin.Context, db *sql.DB) {
	items, err := services.FetchServices(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateService(c *gin.Context, db *sql.DB) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) || req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	now := time.Now()
	item := model.ServiceItem{
		ServiceID:   uuid.New().String(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       decimal.NewFromFloat(req.Price),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := services.InsertService(db, item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateService(c *gin.Context, db *sql.DB) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) || req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	item := model.ServiceItem{
		ServiceID:   c.Param("id"),
		Name:        req.Name,
		Category:    req.Category,
		Price:       decimal.NewFromFloat(req.Price),
		Description: req.Description,
	}
	err := services.UpdateService(db, item)
	if errors.Is(err, services.ErrServiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteService(c *gin.Context, db *sql.DB) {
	err := services.DeleteService(db, c.Param("id"))
	if errors.Is(err, services.ErrServiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

